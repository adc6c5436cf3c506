package burndown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPointsPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		item       Item
		wantPoints float64
		wantOK     bool
	}{
		{
			name: "configured field number wins over everything",
			item: Item{
				Labels: []string{"8 points"},
				Fields: []FieldValue{
					{Field: "Size", Number: ptr(13.0)},
					{Field: "Points", Number: ptr(5.0)},
				},
			},
			wantPoints: 5,
			wantOK:     true,
		},
		{
			name: "configured field text parsed as number",
			item: Item{
				Fields: []FieldValue{{Field: "Points", Text: "3"}},
			},
			wantPoints: 3,
			wantOK:     true,
		},
		{
			name: "configured field name compared case-insensitively",
			item: Item{
				Fields: []FieldValue{{Field: "points", Number: ptr(2.0)}},
			},
			wantPoints: 2,
			wantOK:     true,
		},
		{
			name: "any numeric field as fallback",
			item: Item{
				Fields: []FieldValue{
					{Field: "Sprint", Text: "Sprint 3"},
					{Field: "Estimate", Number: ptr(8.0)},
				},
			},
			wantPoints: 8,
			wantOK:     true,
		},
		{
			name: "numeric text field as fallback",
			item: Item{
				Fields: []FieldValue{{Field: "Estimate", Text: " 2.5 "}},
			},
			wantPoints: 2.5,
			wantOK:     true,
		},
		{
			name: "label-encoded points as last resort",
			item: Item{
				Labels: []string{"bug", "3 points"},
			},
			wantPoints: 3,
			wantOK:     true,
		},
		{
			name:       "nothing usable defaults to zero",
			item:       Item{Labels: []string{"bug"}, Fields: []FieldValue{{Field: "Status", Text: "Doing"}}},
			wantPoints: 0,
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractPoints(tt.item, "Points")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPoints, got)
		})
	}
}

func TestMatchesSprint(t *testing.T) {
	w := Window{Label: "Sprint 3", Field: "Sprint"}

	t.Run("sprint field exact match, case-insensitive", func(t *testing.T) {
		item := Item{Fields: []FieldValue{{Field: "Sprint", Text: "sprint 3"}}}
		assert.True(t, MatchesSprint(item, w))
	})

	t.Run("sprint field mismatch wins over labels", func(t *testing.T) {
		item := Item{
			Fields: []FieldValue{{Field: "Sprint", Text: "Sprint 4"}},
			Labels: []string{"Sprint 3"},
		}
		assert.False(t, MatchesSprint(item, w))
	})

	t.Run("label fallback when field value absent", func(t *testing.T) {
		item := Item{Labels: []string{"enhancement", "SPRINT 3"}}
		assert.True(t, MatchesSprint(item, w))
	})

	t.Run("substring is not a match", func(t *testing.T) {
		item := Item{Labels: []string{"Sprint 33"}}
		assert.False(t, MatchesSprint(item, w))
	})

	t.Run("empty label matches everything", func(t *testing.T) {
		item := Item{Labels: []string{"whatever"}}
		assert.True(t, MatchesSprint(item, Window{}))
	})
}
