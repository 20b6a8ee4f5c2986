package property

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var errStoreDown = errors.New("store unreachable")

// failingRepository simulates a row store that is down for every call.
type failingRepository struct{}

func (failingRepository) Create(ctx context.Context, p *Property) error { return errStoreDown }
func (failingRepository) FindByID(ctx context.Context, id uuid.UUID) (*Property, error) {
	return nil, errStoreDown
}
func (failingRepository) FindAll(ctx context.Context, f PropertyFilter) ([]Property, int64, error) {
	return nil, 0, errStoreDown
}
func (failingRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Property, error) {
	return nil, errStoreDown
}
func (failingRepository) Update(ctx context.Context, p *Property) error { return errStoreDown }
func (failingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return errStoreDown
}

func newFallbackService() Service {
	return NewService(failingRepository{}, nil, false, zap.NewNop())
}

func TestListPropertiesFallsBackWhenStoreDown(t *testing.T) {
	svc := newFallbackService()

	properties, total, err := svc.ListProperties(context.Background(), PropertyFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(len(seedProperties())), total)
	assert.NotEmpty(t, properties)
}

func TestListPropertiesFallbackOrdering(t *testing.T) {
	svc := newFallbackService()

	properties, _, err := svc.ListProperties(context.Background(), PropertyFilter{PageSize: 100})
	require.NoError(t, err)
	require.NotEmpty(t, properties)

	// available listings first, newest first within a status
	for i := 1; i < len(properties); i++ {
		prev, cur := properties[i-1], properties[i]
		if prev.Status == cur.Status {
			assert.False(t, prev.CreatedAt.Before(cur.CreatedAt),
				"listings within a status must be newest first")
		} else {
			assert.Less(t, string(prev.Status), string(cur.Status))
		}
	}
}

func TestListPropertiesFallbackFilters(t *testing.T) {
	svc := newFallbackService()

	minPrice := 3000.0
	maxPrice := 7000.0
	beds := 3
	status := PropertyStatusAvailable

	tests := []struct {
		name   string
		filter PropertyFilter
		check  func(t *testing.T, p Property)
	}{
		{
			name:   "query matches title or address",
			filter: PropertyFilter{Query: "marina"},
			check: func(t *testing.T, p Property) {
				assert.Contains(t, p.Title+" "+p.Address, "Marina")
			},
		},
		{
			name:   "price range",
			filter: PropertyFilter{MinPrice: &minPrice, MaxPrice: &maxPrice},
			check: func(t *testing.T, p Property) {
				assert.GreaterOrEqual(t, p.Price, minPrice)
				assert.LessOrEqual(t, p.Price, maxPrice)
			},
		},
		{
			name:   "minimum bedrooms",
			filter: PropertyFilter{Beds: &beds},
			check: func(t *testing.T, p Property) {
				assert.GreaterOrEqual(t, p.Bedrooms, beds)
			},
		},
		{
			name:   "status",
			filter: PropertyFilter{Status: &status},
			check: func(t *testing.T, p Property) {
				assert.Equal(t, PropertyStatusAvailable, p.Status)
			},
		},
		{
			name:   "amenities superset",
			filter: PropertyFilter{Amenities: []string{"Gym", "Parking"}},
			check: func(t *testing.T, p Property) {
				assert.Contains(t, []string(p.Amenities), "Gym")
				assert.Contains(t, []string(p.Amenities), "Parking")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties, total, err := svc.ListProperties(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, int64(len(properties)), total)
			require.NotEmpty(t, properties)
			for _, p := range properties {
				tt.check(t, p)
			}
		})
	}
}

func TestListPropertiesFallbackPagination(t *testing.T) {
	svc := newFallbackService()

	page1, total, err := svc.ListProperties(context.Background(), PropertyFilter{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Len(t, page1, 3)
	assert.Equal(t, int64(len(seedProperties())), total)

	page2, _, err := svc.ListProperties(context.Background(), PropertyFilter{Page: 2, PageSize: 3})
	require.NoError(t, err)
	require.NotEmpty(t, page2)
	assert.NotEqual(t, page1[0].ID, page2[0].ID)

	// past the end
	empty, total, err := svc.ListProperties(context.Background(), PropertyFilter{Page: 99, PageSize: 3})
	require.NoError(t, err)
	assert.Empty(t, empty)
	assert.Equal(t, int64(len(seedProperties())), total)
}

func TestGetPropertyFallsBackWhenStoreDown(t *testing.T) {
	svc := newFallbackService()
	known := seedProperties()[0]

	p, err := svc.GetProperty(context.Background(), known.ID)
	require.NoError(t, err)
	assert.Equal(t, known.Title, p.Title)

	_, err = svc.GetProperty(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestListPropertiesByIDsFallsBackWhenStoreDown(t *testing.T) {
	svc := newFallbackService()
	seeds := seedProperties()

	properties, err := svc.ListPropertiesByIDs(context.Background(), []uuid.UUID{
		seeds[0].ID, seeds[2].ID, uuid.New(),
	})

	require.NoError(t, err)
	assert.Len(t, properties, 2)
}

func TestListPropertiesByIDsEmptyInput(t *testing.T) {
	svc := newFallbackService()

	properties, err := svc.ListPropertiesByIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, properties)
}

func TestCreatePropertySurfacesStoreErrors(t *testing.T) {
	svc := newFallbackService()

	_, err := svc.CreateProperty(context.Background(), CreatePropertyInput{
		Title:   "New Listing",
		Price:   2000,
		Address: "1 Main Street",
	})

	// Admin writes have no fallback; the caller must see the failure.
	assert.ErrorIs(t, err, errStoreDown)
}

type stubGeocoder struct {
	lat, lng float64
	err      error
	calls    int
}

func (g *stubGeocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	g.calls++
	return g.lat, g.lng, g.err
}

// recordingRepository captures the property passed to Create.
type recordingRepository struct {
	failingRepository
	created *Property
}

func (r *recordingRepository) Create(ctx context.Context, p *Property) error {
	r.created = p
	return nil
}

func TestCreatePropertyGeocodesMissingCoordinates(t *testing.T) {
	repo := &recordingRepository{}
	geo := &stubGeocoder{lat: 37.7749, lng: -122.4194}
	svc := NewService(repo, geo, false, zap.NewNop())

	p, err := svc.CreateProperty(context.Background(), CreatePropertyInput{
		Title:   "New Listing",
		Price:   2000,
		Address: "1 Main Street, San Francisco, CA",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, geo.calls)
	require.NotNil(t, p.Latitude)
	assert.Equal(t, 37.7749, *p.Latitude)
	assert.Equal(t, -122.4194, *p.Longitude)
}

func TestCreatePropertySkipsGeocodingWhenCoordinatesGiven(t *testing.T) {
	repo := &recordingRepository{}
	geo := &stubGeocoder{lat: 1, lng: 1}
	svc := NewService(repo, geo, false, zap.NewNop())

	lat, lng := 40.0, -70.0
	p, err := svc.CreateProperty(context.Background(), CreatePropertyInput{
		Title:     "New Listing",
		Price:     2000,
		Address:   "1 Main Street",
		Latitude:  &lat,
		Longitude: &lng,
	})

	require.NoError(t, err)
	assert.Zero(t, geo.calls)
	assert.Equal(t, lat, *p.Latitude)
}

func TestCreatePropertyToleratesGeocoderFailure(t *testing.T) {
	repo := &recordingRepository{}
	geo := &stubGeocoder{err: errors.New("rate limited")}
	svc := NewService(repo, geo, false, zap.NewNop())

	p, err := svc.CreateProperty(context.Background(), CreatePropertyInput{
		Title:   "New Listing",
		Price:   2000,
		Address: "1 Main Street",
	})

	require.NoError(t, err)
	assert.Nil(t, p.Latitude)
	assert.Nil(t, p.Longitude)
}

func TestForceMockServesFallbackCatalog(t *testing.T) {
	// forceMock must serve the catalog without touching the store at all;
	// a repository that panics proves no call is made.
	svc := NewService(nil, nil, true, zap.NewNop())

	properties, total, err := svc.ListProperties(context.Background(), PropertyFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(len(seedProperties())), total)
	assert.NotEmpty(t, properties)
}
