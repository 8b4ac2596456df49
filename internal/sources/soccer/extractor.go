package soccer

import (
	"context"
	"errors"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/sources"
)

// SourceID is the registry identifier for the soccer source.
const SourceID = "soccer"

var errNotImplemented = errors.New("soccer extraction not implemented")

// Extractor is a placeholder; the source stays registered but disabled until
// a fixtures feed for the main leagues is wired up.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

func (e *Extractor) Name() string {
	return "Soccer"
}

// IsActive is true year-round; competitions overlap across the calendar.
func (e *Extractor) IsActive() bool {
	return true
}

func (e *Extractor) Extract(ctx context.Context) ([]domain.DayFixtures, error) {
	return nil, &sources.ExtractionError{Source: e.Name(), Err: errNotImplemented}
}
