package burndown

import "errors"

// ErrInvalidWindow reports a sprint window whose end precedes its start.
var ErrInvalidWindow = errors.New("invalid sprint window: end date precedes start date")

// ErrNoItems reports that no items matched the sprint filter. Compute
// still returns zeroed series alongside it so callers can render or
// inspect them.
var ErrNoItems = errors.New("no items matched the sprint filter")
