package gaa

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"fixtures-service/internal/domain"
)

// channelNames maps the raw broadcaster labels seen on the fixtures page to
// the canonical channel names the display layer expects.
var channelNames = map[string]string{
	"rtebbc":     "RTE / BBC Sport",
	"rte":        "RTE",
	"bbc":        "BBC Sport",
	"tg4":        "TG4",
	"sky sports": "Sky Sports",
	"gaa go":     "GAAGO",
}

// titleCaser uppercases the first letter of each word without touching the
// rest, so unknown labels keep their original casing.
var titleCaser = cases.Title(language.English, cases.NoLower)

// CanonicalChannel normalizes a raw broadcaster label. Unrecognized labels
// fall back to a title-cased copy; an absent label means no coverage.
func CanonicalChannel(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return domain.NoCoverage
	}
	if name, ok := channelNames[strings.ToLower(trimmed)]; ok {
		return name
	}
	return titleCaser.String(trimmed)
}
