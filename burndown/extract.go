package burndown

import (
	"regexp"
	"strconv"
	"strings"
)

// extract.go - Point extraction and sprint matching heuristics

var labelPointsPattern = regexp.MustCompile(`(\d+(\.\d+)?)`)

// extractor tries to pull a point value out of an item. The second
// return reports success.
type extractor func(item Item, pointsField string) (float64, bool)

// Extraction order matters: a configured points field beats numeric
// field heuristics, which beat label-encoded points. First success wins.
var extractors = []extractor{
	namedFieldNumber,
	namedFieldText,
	anyFieldNumber,
	anyFieldText,
	labelPoints,
}

// ExtractPoints returns the story-point estimate for an item, trying
// each extraction strategy in order. Items with no recognizable point
// source yield 0 and ok=false so the caller can warn.
func ExtractPoints(item Item, pointsField string) (float64, bool) {
	for _, ex := range extractors {
		if v, ok := ex(item, pointsField); ok {
			return v, true
		}
	}
	return 0, false
}

func namedFieldNumber(item Item, pointsField string) (float64, bool) {
	if pointsField == "" {
		return 0, false
	}
	for _, fv := range item.Fields {
		if strings.EqualFold(fv.Field, pointsField) && fv.Number != nil {
			return *fv.Number, true
		}
	}
	return 0, false
}

func namedFieldText(item Item, pointsField string) (float64, bool) {
	if pointsField == "" {
		return 0, false
	}
	for _, fv := range item.Fields {
		if strings.EqualFold(fv.Field, pointsField) && fv.Text != "" {
			if v, err := strconv.ParseFloat(strings.TrimSpace(fv.Text), 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

func anyFieldNumber(item Item, _ string) (float64, bool) {
	for _, fv := range item.Fields {
		if fv.Number != nil {
			return *fv.Number, true
		}
	}
	return 0, false
}

func anyFieldText(item Item, _ string) (float64, bool) {
	for _, fv := range item.Fields {
		if fv.Text == "" {
			continue
		}
		if v, err := strconv.ParseFloat(strings.TrimSpace(fv.Text), 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// labelPoints recognizes labels like "3 points" or "estimate: 5".
func labelPoints(item Item, _ string) (float64, bool) {
	for _, label := range item.Labels {
		if m := labelPointsPattern.FindString(label); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil {
				return v, true
			}
		}
	}
	return 0, false
}

// MatchesSprint decides whether an item belongs to the window's sprint.
// A configured sprint field wins: its value must equal the sprint label
// case-insensitively. Items without that field value fall back to a
// case-insensitive label comparison. An empty sprint label matches
// everything.
func MatchesSprint(item Item, w Window) bool {
	if w.Label == "" {
		return true
	}
	if w.Field != "" {
		for _, fv := range item.Fields {
			if strings.EqualFold(fv.Field, w.Field) && fv.Text != "" {
				return strings.EqualFold(fv.Text, w.Label)
			}
		}
	}
	for _, label := range item.Labels {
		if strings.EqualFold(label, w.Label) {
			return true
		}
	}
	return false
}
