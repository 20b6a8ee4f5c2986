package property

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// fallbackCatalog is a fixed in-memory listing set served when the row store
// is unreachable, so the public browsing pages keep working during outages.
// It applies the same predicate and ordering semantics as the SQL path.
type fallbackCatalog struct {
	properties []Property
}

func newFallbackCatalog() *fallbackCatalog {
	return &fallbackCatalog{properties: seedProperties()}
}

func (c *fallbackCatalog) List(filter PropertyFilter) ([]Property, int64) {
	filtered := make([]Property, 0, len(c.properties))
	for _, p := range c.properties {
		if matchesFilter(p, filter) {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Status != filtered[j].Status {
			return filtered[i].Status < filtered[j].Status
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	total := int64(len(filtered))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = 12
	}
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []Property{}, total
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total
}

func (c *fallbackCatalog) Get(id uuid.UUID) (*Property, bool) {
	for i := range c.properties {
		if c.properties[i].ID == id {
			p := c.properties[i]
			return &p, true
		}
	}
	return nil, false
}

func (c *fallbackCatalog) ByIDs(ids []uuid.UUID) []Property {
	wanted := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []Property
	for _, p := range c.properties {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func matchesFilter(p Property, filter PropertyFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		if !strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Address), q) {
			return false
		}
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	if filter.Beds != nil && p.Bedrooms < *filter.Beds {
		return false
	}
	if filter.Status != nil && p.Status != *filter.Status {
		return false
	}
	for _, amenity := range filter.Amenities {
		found := false
		for _, have := range p.Amenities {
			if have == amenity {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// SeedCatalog returns a fresh copy of the starter listings, used to seed an
// empty database on first boot.
func SeedCatalog() []Property {
	return seedProperties()
}

func floatPtr(v float64) *float64 { return &v }

func seedProperties() []Property {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return []Property{
		{
			ID:          uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a01"),
			Title:       "The Skyline Penthouse",
			Description: "Top-floor penthouse with panoramic city views, a private terrace, and floor-to-ceiling windows throughout.",
			Price:       8500,
			Address:     "1200 Harbor View Drive, San Francisco, CA",
			Latitude:    floatPtr(37.7955),
			Longitude:   floatPtr(-122.3937),
			ImageURL:    "https://images.luxeliving.example/skyline-penthouse/cover.jpg",
			Images: pq.StringArray{
				"https://images.luxeliving.example/skyline-penthouse/living.jpg",
				"https://images.luxeliving.example/skyline-penthouse/terrace.jpg",
			},
			Sqft:      2800,
			Bedrooms:  3,
			Bathrooms: 3.5,
			Amenities: pq.StringArray{"Pool", "Gym", "Parking", "Concierge"},
			Status:    PropertyStatusAvailable,
			CreatedAt: base.AddDate(0, 0, -2),
			UpdatedAt: base.AddDate(0, 0, -2),
		},
		{
			ID:          uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a02"),
			Title:       "Marina Loft",
			Description: "Industrial-style loft steps from the marina, with exposed brick and a chef's kitchen.",
			Price:       4200,
			Address:     "88 Marina Boulevard, San Francisco, CA",
			Latitude:    floatPtr(37.8060),
			Longitude:   floatPtr(-122.4321),
			ImageURL:    "https://images.luxeliving.example/marina-loft/cover.jpg",
			Images: pq.StringArray{
				"https://images.luxeliving.example/marina-loft/kitchen.jpg",
			},
			Sqft:      1400,
			Bedrooms:  2,
			Bathrooms: 2,
			Amenities: pq.StringArray{"Gym", "Parking"},
			Status:    PropertyStatusAvailable,
			CreatedAt: base.AddDate(0, 0, -5),
			UpdatedAt: base.AddDate(0, 0, -5),
		},
		{
			ID:          uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a03"),
			Title:       "Garden Terrace Apartment",
			Description: "Ground-floor two bedroom opening onto a shared landscaped garden.",
			Price:       3100,
			Address:     "45 Elm Court, Oakland, CA",
			Latitude:    floatPtr(37.8044),
			Longitude:   floatPtr(-122.2712),
			ImageURL:    "https://images.luxeliving.example/garden-terrace/cover.jpg",
			Images:      pq.StringArray{},
			Sqft:        1100,
			Bedrooms:    2,
			Bathrooms:   1.5,
			Amenities:   pq.StringArray{"Garden", "Pet Friendly"},
			Status:      PropertyStatusAvailable,
			CreatedAt:   base.AddDate(0, 0, -9),
			UpdatedAt:   base.AddDate(0, 0, -9),
		},
		{
			ID:          uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a04"),
			Title:       "Sunset Studio",
			Description: "Bright studio in the Sunset district, recently renovated with in-unit laundry.",
			Price:       1950,
			Address:     "2200 Ocean Avenue, San Francisco, CA",
			Latitude:    floatPtr(37.7249),
			Longitude:   floatPtr(-122.4610),
			ImageURL:    "https://images.luxeliving.example/sunset-studio/cover.jpg",
			Images:      pq.StringArray{},
			Sqft:        520,
			Bedrooms:    0,
			Bathrooms:   1,
			Amenities:   pq.StringArray{"Laundry"},
			Status:      PropertyStatusAvailable,
			CreatedAt:   base.AddDate(0, 0, -12),
			UpdatedAt:   base.AddDate(0, 0, -12),
		},
		{
			ID:          uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a05"),
			Title:       "Lakeside Family Home",
			Description: "Four bedroom home with a private dock, two-car garage, and a finished basement.",
			Price:       6200,
			Address:     "17 Lakeshore Road, Berkeley, CA",
			Latitude:    floatPtr(37.8716),
			Longitude:   floatPtr(-122.2727),
			ImageURL:    "https://images.luxeliving.example/lakeside-home/cover.jpg",
			Images: pq.StringArray{
				"https://images.luxeliving.example/lakeside-home/dock.jpg",
				"https://images.luxeliving.example/lakeside-home/garage.jpg",
			},
			Sqft:      3200,
			Bedrooms:  4,
			Bathrooms: 3,
			Amenities: pq.StringArray{"Parking", "Garden", "Pet Friendly"},
			Status:    PropertyStatusRented,
			CreatedAt: base.AddDate(0, 0, -20),
			UpdatedAt: base.AddDate(0, 0, -20),
		},
		{
			ID:          uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a06"),
			Title:       "Downtown Corner Unit",
			Description: "Corner one bedroom with wraparound windows in a full-service building.",
			Price:       2800,
			Address:     "500 Mission Street, San Francisco, CA",
			Latitude:    floatPtr(37.7886),
			Longitude:   floatPtr(-122.3972),
			ImageURL:    "https://images.luxeliving.example/downtown-corner/cover.jpg",
			Images:      pq.StringArray{},
			Sqft:        780,
			Bedrooms:    1,
			Bathrooms:   1,
			Amenities:   pq.StringArray{"Gym", "Concierge"},
			Status:      PropertyStatusRented,
			CreatedAt:   base.AddDate(0, 0, -25),
			UpdatedAt:   base.AddDate(0, 0, -25),
		},
		{
			ID:          uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a07"),
			Title:       "Hillcrest Victorian",
			Description: "Restored Victorian with original moldings, currently closed for seismic retrofitting.",
			Price:       5400,
			Address:     "310 Hillcrest Avenue, San Francisco, CA",
			Latitude:    floatPtr(37.7599),
			Longitude:   floatPtr(-122.4148),
			ImageURL:    "https://images.luxeliving.example/hillcrest-victorian/cover.jpg",
			Images:      pq.StringArray{},
			Sqft:        2100,
			Bedrooms:    3,
			Bathrooms:   2,
			Amenities:   pq.StringArray{"Garden"},
			Status:      PropertyStatusMaintenance,
			CreatedAt:   base.AddDate(0, 0, -30),
			UpdatedAt:   base.AddDate(0, 0, -30),
		},
		{
			ID:          uuid.MustParse("3f1c2b84-0d5e-4a6f-9c41-8a2d6e0f1a08"),
			Title:       "Riverside Flat",
			Description: "Quiet two bedroom flat overlooking the river path, walking distance to transit.",
			Price:       2400,
			Address:     "9 River Walk, San Jose, CA",
			Latitude:    floatPtr(37.3382),
			Longitude:   floatPtr(-121.8863),
			ImageURL:    "https://images.luxeliving.example/riverside-flat/cover.jpg",
			Images:      pq.StringArray{},
			Sqft:        950,
			Bedrooms:    2,
			Bathrooms:   1,
			Amenities:   pq.StringArray{"Laundry", "Pet Friendly"},
			Status:      PropertyStatusAvailable,
			CreatedAt:   base.AddDate(0, 0, -15),
			UpdatedAt:   base.AddDate(0, 0, -15),
		},
	}
}
