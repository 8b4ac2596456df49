package aggregate

import (
	"sort"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/timeutil"
)

// MergeDays flattens the day batches of every successful result into one
// chronological view: batches sharing a calendar date are merged across
// sources, days are sorted ascending by date, and each merged day is
// re-sorted by kickoff time. Equal kickoffs keep their relative order.
// Inputs are not mutated.
func MergeDays(results []domain.SourceResult) []domain.DayFixtures {
	byDate := make(map[string]*domain.DayFixtures)

	for _, result := range results {
		if !result.Success {
			continue
		}
		for _, day := range result.Fixtures {
			merged, exists := byDate[day.Date]
			if !exists {
				merged = &domain.DayFixtures{Day: day.Day, Date: day.Date}
				byDate[day.Date] = merged
			}
			merged.Fixtures = append(merged.Fixtures, day.Fixtures...)
		}
	}

	days := make([]domain.DayFixtures, 0, len(byDate))
	for _, day := range byDate {
		sort.SliceStable(day.Fixtures, func(i, j int) bool {
			return timeutil.TimeToMinutes(day.Fixtures[i].Time) < timeutil.TimeToMinutes(day.Fixtures[j].Time)
		})
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// BuildResponse assembles the aggregate payload from one run's results.
func BuildResponse(results []domain.SourceResult) domain.FixturesResponse {
	summaries := make([]domain.SourceSummary, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, domain.Summarize(r))
	}
	return domain.FixturesResponse{
		Days:      MergeDays(results),
		Sources:   summaries,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
