package burndown

import (
	"fmt"
	"time"
)

// Compute aggregates items into the ideal and actual daily series for a
// sprint window. planned, when non-nil, overrides the summed item total
// used for the ideal line. The function is pure: identical input yields
// identical output.
//
// When no items survive the sprint filter, both series are returned
// all-zero together with ErrNoItems so the caller can report the
// condition without crashing.
func Compute(items []Item, w Window, planned *float64, pointsField string) (*Result, error) {
	if w.End.Before(w.Start) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidWindow,
			w.Start.Format("2006-01-02"), w.End.Format("2006-01-02"))
	}

	result := &Result{GeneratedAt: time.Now()}
	start := dateOnly(w.Start)

	var filtered []Item
	var points []float64
	var total float64
	for _, item := range items {
		if !MatchesSprint(item, w) {
			continue
		}
		// Items finished before the sprint began contribute nothing on any day.
		if item.ClosedAt != nil && dateOnly(*item.ClosedAt).Before(start) {
			continue
		}
		p, ok := ExtractPoints(item, pointsField)
		if !ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("item %q has no recognizable point value, counting 0", item.Title))
		}
		filtered = append(filtered, item)
		points = append(points, p)
		total += p
	}

	result.ItemCount = len(filtered)
	result.TotalPoints = total
	// An empty sprint stays all-zero even when a planned total is
	// configured; the override only adjusts a real item set.
	if planned != nil && len(filtered) > 0 {
		result.TotalPoints = *planned
	}

	days := w.Days()
	n := days + 1
	result.Dates = make([]time.Time, 0, n)
	result.Ideal = make([]float64, 0, n)
	result.Actual = make([]float64, 0, n)

	for i := 0; i < n; i++ {
		day := start.AddDate(0, 0, i)
		result.Dates = append(result.Dates, day)

		// Straight line from the planned total down to 0, both endpoints
		// inclusive. A single-day window stays at the total.
		ideal := result.TotalPoints
		if days > 0 {
			ideal = result.TotalPoints * float64(days-i) / float64(days)
		}
		if ideal < 0 {
			ideal = 0
		}
		result.Ideal = append(result.Ideal, ideal)

		var remaining float64
		for j, item := range filtered {
			if item.ClosedAt == nil || dateOnly(*item.ClosedAt).After(day) {
				remaining += points[j]
			}
		}
		result.Actual = append(result.Actual, remaining)
	}

	if len(filtered) == 0 {
		return result, ErrNoItems
	}
	return result, nil
}
