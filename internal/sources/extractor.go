package sources

import (
	"context"

	"fixtures-service/internal/domain"
)

// Extractor defines how one sport's upcoming fixtures are produced.
// Implementations own their extraction method entirely (rendered page,
// static table, future API); the aggregation core only sees this contract.
type Extractor interface {
	// Name returns the source's display name.
	Name() string

	// IsActive reports whether the source is currently in season. It must be
	// side-effect free; month-granularity checks are the norm.
	IsActive() bool

	// Extract produces zero or more day batches of upcoming fixtures, each
	// grouped by calendar date and sorted by kickoff time. Internal faults
	// come back as errors, never as panics.
	Extract(ctx context.Context) ([]domain.DayFixtures, error)
}
