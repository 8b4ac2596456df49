package sources

import (
	"errors"
	"fmt"
)

// ErrNotInSeason marks a source that was deliberately skipped because its
// season window does not cover today.
var ErrNotInSeason = errors.New("not in season")

// ErrSourceNotFound marks an unknown source identifier on toggle/test.
var ErrSourceNotFound = errors.New("source not found")

// NoDataError reports a source with no backing records to parse. This is
// distinct from zero upcoming fixtures, which is a valid empty success.
type NoDataError struct {
	Source string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("%s: no backing data available", e.Source)
}

// AsNoDataError attempts to unwrap an error into a NoDataError.
func AsNoDataError(err error) (*NoDataError, bool) {
	var ndErr *NoDataError
	if errors.As(err, &ndErr) {
		return ndErr, true
	}
	return nil, false
}

// ExtractionError wraps a fault raised while extracting a source's records.
type ExtractionError struct {
	Source string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: extraction failed: %v", e.Source, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
