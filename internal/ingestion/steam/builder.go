package steam

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// GameRecord is the canonical shape every ingested payload converges to,
// regardless of which fields the upstream variant carries.
type GameRecord struct {
	SteamAppID   *int64
	Name         string
	Description  string
	Genres       string
	AgeRating    int
	Price        decimal.Decimal
	Platforms    []string
	Popularity   int
	ReleaseDate  string
	Requirements []Requirement
}

// Requirement holds the cleaned per-platform system requirements.
// Recommended is nil when the upstream text was absent or empty.
type Requirement struct {
	Platform    string
	Minimum     string
	Recommended *string
}

// ValidationError marks a payload that cannot become a valid record.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid game payload: %s %s", e.Field, e.Reason)
}

// BuildGameRecord maps a raw app details payload to the canonical record.
// Every field except the name has a safe default, so the only fatal
// condition is an empty name after trimming. No I/O happens here.
func BuildGameRecord(raw Payload) (*GameRecord, error) {
	record := &GameRecord{}

	if id, ok := intValue(raw, "steam_appid"); ok {
		record.SteamAppID = &id
	} else if id, ok := intValue(raw, "appid"); ok {
		record.SteamAppID = &id
	}

	name, _ := stringValue(raw, "name")
	record.Name = strings.TrimSpace(name)
	if record.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	description, ok := stringValue(raw, "detailed_description")
	if !ok || description == "" {
		description, _ = stringValue(raw, "about_the_game")
	}
	record.Description = CleanText(description)

	record.Genres = ExtractGenres(raw)
	record.AgeRating = ExtractAgeRating(raw)
	record.Price = ExtractPrice(raw)
	record.Platforms = ExtractPlatforms(raw)
	record.Popularity = ExtractPopularity(raw)
	record.ReleaseDate = ExtractReleaseDate(raw)
	record.Requirements = dedupeRequirements(ExtractSystemRequirements(raw))

	return record, nil
}

// dedupeRequirements enforces at most one entry per platform; a later
// extraction for the same platform overwrites the earlier one.
func dedupeRequirements(requirements []Requirement) []Requirement {
	byPlatform := make(map[string]Requirement, len(requirements))
	order := make([]string, 0, len(requirements))

	for _, req := range requirements {
		if _, seen := byPlatform[req.Platform]; !seen {
			order = append(order, req.Platform)
		}
		byPlatform[req.Platform] = req
	}

	deduped := make([]Requirement, 0, len(order))
	for _, platform := range order {
		deduped = append(deduped, byPlatform[platform])
	}
	return deduped
}
