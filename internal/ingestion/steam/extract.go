package steam

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Closed vocabularies from the store API. Platform availability flags and
// requirement platforms use different names upstream (windows vs pc).
var (
	platformFlags        = []string{"windows", "mac", "linux"}
	requirementPlatforms = []string{"pc", "mac", "linux"}
	validAgeRatings      = map[int]bool{0: true, 6: true, 12: true, 16: true, 18: true}
)

// ExtractAgeRating pulls the USK age rating from ratings.usk.rating.
// Only the closed set {0, 6, 12, 16, 18} is accepted; anything else
// (including missing or mistyped blocks) maps to 0.
func ExtractAgeRating(payload Payload) int {
	ratings, ok := objectValue(payload, "ratings")
	if !ok {
		return 0
	}
	usk, ok := objectValue(ratings, "usk")
	if !ok {
		return 0
	}

	var raw string
	if s, ok := stringValue(usk, "rating"); ok {
		raw = s
	} else if n, ok := intValue(usk, "rating"); ok {
		raw = strconv.FormatInt(n, 10)
	}

	var digits strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}

	rating, err := strconv.Atoi(digits.String())
	if err != nil || !validAgeRatings[rating] {
		return 0
	}
	return rating
}

// ExtractPrice reads price_overview.final (minor currency units) and converts
// to a two-fraction-digit decimal. Absent or non-integer values yield 0.00.
func ExtractPrice(payload Payload) decimal.Decimal {
	overview, ok := objectValue(payload, "price_overview")
	if !ok {
		return decimal.Zero
	}
	final, ok := intValue(overview, "final")
	if !ok || final < 0 {
		return decimal.Zero
	}
	// final is in cents; shift the exponent instead of dividing floats
	return decimal.New(final, -2)
}

// ExtractPlatforms collects the platform names whose availability flag is
// exactly true, in the fixed vocabulary order so output is deterministic.
func ExtractPlatforms(payload Payload) []string {
	platforms, ok := objectValue(payload, "platforms")
	if !ok {
		return nil
	}

	var available []string
	for _, name := range platformFlags {
		if flag, ok := boolValue(platforms, name); ok && flag {
			available = append(available, name)
		}
	}
	return available
}

// ExtractGenres joins the non-empty genre descriptions with ", ".
func ExtractGenres(payload Payload) string {
	genres, ok := listValue(payload, "genres")
	if !ok {
		return ""
	}

	var descriptions []string
	for _, entry := range genres {
		genre, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if desc, ok := stringValue(genre, "description"); ok {
			if trimmed := strings.TrimSpace(desc); trimmed != "" {
				descriptions = append(descriptions, trimmed)
			}
		}
	}
	return strings.Join(descriptions, ", ")
}

// releaseDateLayouts covers the store's day-month-year and month-day-year
// renderings with abbreviated and full month names. First match wins.
var releaseDateLayouts = []string{
	"2 Jan, 2006",
	"2 January, 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// ExtractReleaseDate normalizes release_date.date to an ISO date when one of
// the known layouts matches. Unparseable dates ("coming soon" and friends)
// pass through cleaned but otherwise unchanged; absent input yields "".
func ExtractReleaseDate(payload Payload) string {
	releaseDate, ok := objectValue(payload, "release_date")
	if !ok {
		return ""
	}
	raw, ok := stringValue(releaseDate, "date")
	if !ok {
		return ""
	}

	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, "\u00a0", " "))
	if cleaned == "" {
		return ""
	}

	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return cleaned
}

// ExtractPopularity reads recommendations.total; absent or invalid yields 0.
func ExtractPopularity(payload Payload) int {
	recommendations, ok := objectValue(payload, "recommendations")
	if !ok {
		return 0
	}
	total, ok := intValue(recommendations, "total")
	if !ok || total < 0 {
		return 0
	}
	return int(total)
}

// ExtractSystemRequirements collects per-platform requirement texts from the
// pc_requirements / mac_requirements / linux_requirements blocks. Markup is
// stripped from both fields; a platform with neither minimum nor recommended
// text is omitted entirely, and an empty recommended is represented as nil
// rather than an empty string.
func ExtractSystemRequirements(payload Payload) []Requirement {
	var requirements []Requirement
	for _, platform := range requirementPlatforms {
		block, ok := objectValue(payload, platform+"_requirements")
		if !ok {
			continue
		}

		minimumRaw, _ := stringValue(block, "minimum")
		recommendedRaw, _ := stringValue(block, "recommended")

		minimum := CleanText(minimumRaw)
		recommended := CleanText(recommendedRaw)

		if minimum == "" && recommended == "" {
			continue
		}

		req := Requirement{Platform: platform, Minimum: minimum}
		if recommended != "" {
			req.Recommended = &recommended
		}
		requirements = append(requirements, req)
	}
	return requirements
}
