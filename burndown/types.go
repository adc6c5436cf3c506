package burndown

import "time"

// types.go - Data structures for burndown aggregation

// FieldValue is a single project field value attached to an item.
// Exactly one of Text or Number is normally set; single-select values
// arrive as Text.
type FieldValue struct {
	Field  string   `json:"field"`
	Text   string   `json:"text,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

// Item is an immutable snapshot of one project-board entry.
type Item struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	State     string       `json:"state"`
	Labels    []string     `json:"labels"`
	Fields    []FieldValue `json:"fields"`
	CreatedAt time.Time    `json:"created_at"`
	ClosedAt  *time.Time   `json:"closed_at,omitempty"`
}

// Window is the inclusive sprint date range plus the matcher that
// decides sprint membership.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`

	// Label is the sprint name to match, e.g. "Sprint 3". Empty means
	// no filter: every item belongs to the sprint.
	Label string `json:"label"`

	// Field is the project field holding the sprint assignment, e.g.
	// "Sprint". When empty only item labels are consulted.
	Field string `json:"field"`
}

// Days returns the number of calendar days between start and end.
// Counted via AddDate so windows spanning a DST transition keep every
// calendar day.
func (w Window) Days() int {
	days := 0
	for d := dateOnly(w.Start); d.Before(dateOnly(w.End)); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// Result is the aggregated burndown data for one sprint window.
type Result struct {
	Project     string      `json:"project"`
	Dates       []time.Time `json:"dates"`
	Ideal       []float64   `json:"ideal"`
	Actual      []float64   `json:"actual"`
	TotalPoints float64     `json:"total_points"`
	ItemCount   int         `json:"item_count"`
	Warnings    []string    `json:"warnings,omitempty"`
	GeneratedAt time.Time   `json:"generated_at"`
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
