package f1

import (
	"context"
	"sort"
	"strings"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/sources"
	"fixtures-service/internal/timeutil"
)

// SourceID is the registry identifier for the F1 source.
const SourceID = "f1"

// Extractor serves upcoming race-weekend sessions from the static calendar.
type Extractor struct {
	events []Event
	now    func() time.Time
}

// New constructs the F1 extractor over the built-in calendar.
func New() *Extractor {
	return &Extractor{
		events: schedule2025,
		now:    time.Now,
	}
}

// Name returns the source display name.
func (e *Extractor) Name() string {
	return "F1"
}

// IsActive is always true; the calendar itself decides what is upcoming.
func (e *Extractor) IsActive() bool {
	return true
}

// Extract groups the remaining calendar into day batches.
func (e *Extractor) Extract(ctx context.Context) ([]domain.DayFixtures, error) {
	if err := ctx.Err(); err != nil {
		return nil, &sources.ExtractionError{Source: e.Name(), Err: err}
	}
	if len(e.events) == 0 {
		return nil, &sources.NoDataError{Source: e.Name()}
	}

	today := timeutil.FormatDate(e.now())
	byDate := make(map[string]*domain.DayFixtures)

	for _, ev := range e.events {
		if ev.Date < today {
			continue
		}
		date, err := timeutil.ParseDate(ev.Date)
		if err != nil {
			continue
		}

		day, exists := byDate[ev.Date]
		if !exists {
			day = &domain.DayFixtures{
				Day:  timeutil.WeekdayName(date),
				Date: ev.Date,
			}
			byDate[ev.Date] = day
		}
		day.Fixtures = append(day.Fixtures, domain.Fixture{
			ID:          domain.FixtureID(ev.Name, ev.Time),
			Time:        ev.Time,
			Sport:       "F1",
			Match:       ev.Name,
			Channel:     ev.Channel,
			Date:        ev.Date,
			Venue:       grandPrix(ev.Name),
			Competition: "Formula 1",
		})
	}

	days := make([]domain.DayFixtures, 0, len(byDate))
	for _, day := range byDate {
		sort.SliceStable(day.Fixtures, func(i, j int) bool {
			return timeutil.TimeToMinutes(day.Fixtures[i].Time) < timeutil.TimeToMinutes(day.Fixtures[j].Time)
		})
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// grandPrix extracts the weekend name from a session label like
// "British GP – Qualifying".
func grandPrix(name string) string {
	if idx := strings.Index(name, " – "); idx > 0 {
		return name[:idx]
	}
	return name
}
