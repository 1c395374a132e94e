package scraper

import (
	"errors"
	"fmt"
)

var (
	ErrTooFewCells   = errors.New("row has fewer than 5 cells")
	ErrMissingSpan   = errors.New("no span.hidden-xs in cell")
	ErrNegativeScore = errors.New("score is negative")
)

// StatusError is returned when the site answers with a non-success status
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d (%s)", e.StatusCode, e.URL)
}

// ParseError reports where extraction stopped. Table and Row are zero-based
// positions among matching tables and data rows.
type ParseError struct {
	Table  int
	Row    int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("table %d, row %d: %v", e.Table, e.Row, e.Err)
	}
	return fmt.Sprintf("table %d, row %d, %s: %v", e.Table, e.Row, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
