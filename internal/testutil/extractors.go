package testutil

import (
	"context"

	"fixtures-service/internal/domain"
)

// GoodExtractor returns the provided days with no error.
type GoodExtractor struct {
	SourceName string
	Days       []domain.DayFixtures
}

func (e GoodExtractor) Name() string   { return e.SourceName }
func (e GoodExtractor) IsActive() bool { return true }

func (e GoodExtractor) Extract(ctx context.Context) ([]domain.DayFixtures, error) {
	return e.Days, nil
}

// ErrExtractor always returns the provided error.
type ErrExtractor struct {
	SourceName string
	Err        error
}

func (e ErrExtractor) Name() string   { return e.SourceName }
func (e ErrExtractor) IsActive() bool { return true }

func (e ErrExtractor) Extract(ctx context.Context) ([]domain.DayFixtures, error) {
	return nil, e.Err
}

// DormantExtractor reports itself out of season and must never be invoked.
type DormantExtractor struct {
	SourceName string
}

func (e DormantExtractor) Name() string   { return e.SourceName }
func (e DormantExtractor) IsActive() bool { return false }

func (e DormantExtractor) Extract(ctx context.Context) ([]domain.DayFixtures, error) {
	panic("extract called on dormant source")
}

// PanicExtractor panics inside Extract to exercise failure isolation.
type PanicExtractor struct {
	SourceName string
}

func (e PanicExtractor) Name() string   { return e.SourceName }
func (e PanicExtractor) IsActive() bool { return true }

func (e PanicExtractor) Extract(ctx context.Context) ([]domain.DayFixtures, error) {
	panic("extractor blew up")
}
