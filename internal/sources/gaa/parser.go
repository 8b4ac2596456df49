package gaa

import (
	"sort"
	"strings"
	"time"

	"fixtures-service/internal/domain"
	"fixtures-service/internal/timeutil"
)

// baselineSection labels matches that appear before any section header.
const baselineSection = "GAA"

// BuildDays folds the raw record scan into day-grouped, time-sorted fixture
// batches. The fold carries the most-recently-seen section header as the
// current competition; matches dated before today are dropped.
func BuildDays(records []RawRecord, now time.Time) []domain.DayFixtures {
	today := timeutil.FormatDate(now)
	byDate := make(map[string]*domain.DayFixtures)

	section := baselineSection
	for _, rec := range records {
		if rec.IsSection() {
			section = strings.TrimSpace(rec.Section)
			if section == "" {
				section = baselineSection
			}
			continue
		}

		fixture, date, ok := buildFixture(rec, section)
		if !ok || fixture.Date < today {
			continue
		}

		day, exists := byDate[fixture.Date]
		if !exists {
			day = &domain.DayFixtures{
				Day:  timeutil.WeekdayName(date),
				Date: fixture.Date,
			}
			byDate[fixture.Date] = day
		}
		day.Fixtures = append(day.Fixtures, fixture)
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

func buildFixture(rec RawRecord, section string) (domain.Fixture, time.Time, bool) {
	home := strings.TrimSpace(rec.Home)
	away := strings.TrimSpace(rec.Away)
	kickoff := strings.TrimSpace(rec.Time)
	if home == "" || away == "" || !timeutil.ValidClock(kickoff) {
		return domain.Fixture{}, time.Time{}, false
	}

	date, ok := normalizeDate(rec.Date)
	if !ok {
		return domain.Fixture{}, time.Time{}, false
	}

	match := home + " v " + away
	return domain.Fixture{
		ID:          domain.FixtureID(match, kickoff),
		Time:        kickoff,
		Sport:       sportForSection(section),
		Match:       match,
		Channel:     CanonicalChannel(rec.Channel),
		Date:        timeutil.FormatDate(date),
		Venue:       strings.TrimSpace(rec.Venue),
		Competition: section,
	}, date, true
}

// sportForSection distinguishes the two codes by the section header text.
func sportForSection(section string) string {
	if strings.Contains(section, "Hurling") {
		return "GAA Hurling"
	}
	return "GAA Football"
}

// normalizeDate accepts the page's date marker as either a bare date or an
// ISO datetime and reduces it to the calendar date.
func normalizeDate(raw string) (time.Time, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, false
	}
	if idx := strings.IndexByte(value, 'T'); idx > 0 {
		value = value[:idx]
	}
	date, err := timeutil.ParseDate(value)
	if err != nil {
		return time.Time{}, false
	}
	return date, true
}
