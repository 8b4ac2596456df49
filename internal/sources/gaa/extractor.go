package gaa

import (
	"context"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/sources"
)

// Extractor produces upcoming GAA fixtures from a raw record source.
type Extractor struct {
	records RecordSource
	now     func() time.Time
}

// New constructs the GAA extractor over the given record source.
func New(records RecordSource) *Extractor {
	return &Extractor{
		records: records,
		now:     time.Now,
	}
}

// Name returns the source display name.
func (e *Extractor) Name() string {
	return "GAA"
}

// IsActive reports whether the GAA season covers the current month.
// League runs January through June, championship June through September.
func (e *Extractor) IsActive() bool {
	month := e.now().Month()
	return month >= time.January && month <= time.September
}

// Extract scans the raw records into day-grouped fixture batches. Missing or
// empty backing data is reported, not retried.
func (e *Extractor) Extract(ctx context.Context) ([]domain.DayFixtures, error) {
	records, err := e.records.Records(ctx)
	if err != nil {
		return nil, &sources.ExtractionError{Source: e.Name(), Err: err}
	}
	if len(records) == 0 {
		return nil, &sources.NoDataError{Source: e.Name()}
	}
	return BuildDays(records, e.now()), nil
}
