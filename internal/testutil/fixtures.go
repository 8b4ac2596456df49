package testutil

import (
	"fixtures-service/internal/domain"
)

// SampleFixture returns a minimal fixture for the given match and kickoff time.
func SampleFixture(sport, match, kickoff, date string) domain.Fixture {
	return domain.Fixture{
		ID:      domain.FixtureID(match, kickoff),
		Time:    kickoff,
		Sport:   sport,
		Match:   match,
		Channel: domain.NoCoverage,
		Date:    date,
	}
}

// SampleDay builds a DayFixtures for the given date with the provided fixtures.
func SampleDay(day, date string, fixtures ...domain.Fixture) domain.DayFixtures {
	return domain.DayFixtures{
		Day:      day,
		Date:     date,
		Fixtures: fixtures,
	}
}

// SuccessResult builds a successful SourceResult for the sport.
func SuccessResult(sport string, days ...domain.DayFixtures) domain.SourceResult {
	return domain.NewSourceResult(sport, days, true, "")
}

// FailureResult builds a failed SourceResult with the given error message.
func FailureResult(sport, msg string) domain.SourceResult {
	return domain.NewSourceResult(sport, nil, false, msg)
}
