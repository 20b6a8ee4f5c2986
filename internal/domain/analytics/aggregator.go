package analytics

import (
	"math"
	"sort"
)

const (
	// topPropertiesLimit caps the ranked by-views list.
	topPropertiesLimit = 5
	// maxSeriesDays bounds the daily series for bounded windows so a
	// wide explicit range cannot produce an unbounded response.
	maxSeriesDays = 365

	dateLayout = "2006-01-02"

	// unknownTitle labels view counts for properties without a
	// resolvable title. They still count toward totals.
	unknownTitle = "Unknown"
)

// Aggregate computes the summary for the given records and window. It is
// a pure function over its inputs: an empty record set yields zero
// totals, an empty top list, and a fully zero-filled daily series.
func Aggregate(records []EventRecord, window Window) *Summary {
	summary := &Summary{
		TopProperties: []TopProperty{},
		ViewsByDate:   []DailyViews{},
	}

	type propertyViews struct {
		title string
		count int
	}
	viewsByProperty := make(map[string]*propertyViews)
	viewsByDate := make(map[string]int)

	loc := window.End.Location()

	for _, rec := range records {
		switch rec.EventType {
		case EventTypeView:
			summary.TotalViews++
			viewsByDate[rec.CreatedAt.In(loc).Format(dateLayout)]++

			if rec.PropertyID != nil {
				id := rec.PropertyID.String()
				pv := viewsByProperty[id]
				if pv == nil {
					pv = &propertyViews{title: unknownTitle}
					if rec.PropertyTitle != nil && *rec.PropertyTitle != "" {
						pv.title = *rec.PropertyTitle
					}
					viewsByProperty[id] = pv
				}
				pv.count++
			}
		case EventTypeFavorite:
			summary.TotalFavorites++
		case EventTypeInquiry:
			summary.TotalInquiries++
		}
	}

	// Rank properties by view count descending; ties break by property
	// id ascending so the ordering is deterministic.
	ids := make([]string, 0, len(viewsByProperty))
	for id := range viewsByProperty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := viewsByProperty[ids[i]], viewsByProperty[ids[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		return ids[i] < ids[j]
	})
	if len(ids) > topPropertiesLimit {
		ids = ids[:topPropertiesLimit]
	}
	for _, id := range ids {
		pv := viewsByProperty[id]
		summary.TopProperties = append(summary.TopProperties, TopProperty{
			ID:    id,
			Title: pv.title,
			Views: pv.count,
		})
	}

	// Emit one entry per day counting backward from the window end,
	// zero-filled where no views exist.
	days := seriesDays(window, len(viewsByDate))
	endDay := window.End.In(loc)
	for i := days - 1; i >= 0; i-- {
		date := endDay.AddDate(0, 0, -i).Format(dateLayout)
		summary.ViewsByDate = append(summary.ViewsByDate, DailyViews{
			Date:  date,
			Views: viewsByDate[date],
		})
	}

	return summary
}

// seriesDays computes how many daily entries to emit. Bounded windows
// span both endpoints inclusively and are capped; unbounded windows show
// as many days as were observed, minimum one.
func seriesDays(window Window, observedDays int) int {
	if window.AllTime {
		if observedDays < 1 {
			return 1
		}
		return observedDays
	}

	days := int(math.Ceil(window.End.Sub(window.Start).Hours()/24)) + 1
	if days > maxSeriesDays {
		days = maxSeriesDays
	}
	if days < 1 {
		days = 1
	}
	return days
}
