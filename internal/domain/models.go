package domain

import "time"

// NoCoverage is the channel sentinel for fixtures without a broadcaster.
const NoCoverage = "No TV Coverage"

// Fixture is the canonical record every source normalizes into.
// ID is derived from the match description and kickoff time, so repeated
// extractions of the same event produce the same ID.
type Fixture struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	Sport       string `json:"sport"`
	Match       string `json:"match"`
	Channel     string `json:"channel"`
	Date        string `json:"date"`
	Venue       string `json:"venue,omitempty"`
	Competition string `json:"competition,omitempty"`
}

// DayFixtures groups the fixtures for one calendar date.
type DayFixtures struct {
	Day      string    `json:"day"`
	Date     string    `json:"date"`
	Fixtures []Fixture `json:"fixtures"`
}

// SourceConfig holds per-source registry configuration.
type SourceConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Enabled     bool   `json:"enabled"`
	Priority    int    `json:"priority"`
	SeasonStart string `json:"seasonStart,omitempty"`
	SeasonEnd   string `json:"seasonEnd,omitempty"`
}

// SourceResult captures one source's outcome for a single aggregation run.
// Failed results always carry zero fixtures.
type SourceResult struct {
	Sport     string        `json:"sport"`
	Fixtures  []DayFixtures `json:"fixtures"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
	Timestamp string        `json:"timestamp"`
}

// NewSourceResult builds a SourceResult stamped with the current time.
func NewSourceResult(sport string, fixtures []DayFixtures, success bool, errMsg string) SourceResult {
	return SourceResult{
		Sport:     sport,
		Fixtures:  fixtures,
		Success:   success,
		Error:     errMsg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// FixtureCount returns the total number of fixtures across day batches.
func FixtureCount(days []DayFixtures) int {
	total := 0
	for _, d := range days {
		total += len(d.Fixtures)
	}
	return total
}

// SourceSummary is the per-source line item in the aggregate payload.
type SourceSummary struct {
	Name         string `json:"name"`
	Success      bool   `json:"success"`
	FixtureCount int    `json:"fixtureCount"`
	Error        string `json:"error,omitempty"`
}

// Summarize reduces a SourceResult to its summary line.
func Summarize(r SourceResult) SourceSummary {
	return SourceSummary{
		Name:         r.Sport,
		Success:      r.Success,
		FixtureCount: FixtureCount(r.Fixtures),
		Error:        r.Error,
	}
}

// FixturesResponse is the payload returned by /fixtures.
type FixturesResponse struct {
	Days      []DayFixtures   `json:"days"`
	Sources   []SourceSummary `json:"sources"`
	Timestamp string          `json:"timestamp"`
}
