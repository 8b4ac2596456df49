package domain

import "regexp"

var whitespace = regexp.MustCompile(`\s+`)

// FixtureID derives the stable fixture identifier from the match description
// and kickoff time. Whitespace is stripped so the same event always yields
// the same id across repeated extractions.
func FixtureID(match, kickoff string) string {
	return whitespace.ReplaceAllString(match+"-"+kickoff, "")
}
