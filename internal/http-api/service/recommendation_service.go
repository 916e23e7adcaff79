package service

import (
	"context"
	"sort"
	"strings"

	"gameadvisor/internal/http-api/models"
	"gameadvisor/internal/http-api/repository"
)

// Scoring constants. Genre-match count dominates ordering; capped popularity
// only breaks ties within the same match count.
const (
	profileSize       = 5
	genreMatchWeight  = 100.0
	popularityCap     = 50000
	popularityDivisor = 1000.0
)

// Recommendation is computed per request and never persisted.
type Recommendation struct {
	SteamAppID *int64  `json:"appid,omitempty"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Reason     string  `json:"reason"`
}

// CatalogLister is the slice of the game repository the engine reads.
type CatalogLister interface {
	ListCatalog(ctx context.Context) ([]models.Game, error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, userID string, limit int) ([]Recommendation, error)
	TopLibraryGenres(ctx context.Context, userID string, limit int) ([]string, error)
}

type recommendationService struct {
	library repository.LibraryRepository
	catalog CatalogLister
}

func NewRecommendationService(library repository.LibraryRepository, catalog CatalogLister) RecommendationService {
	return &recommendationService{library: library, catalog: catalog}
}

// Recommend scores every catalog game outside the user's library against the
// user's dominant genres and returns the top entries, best first. Purely a
// read-then-compute operation; running it twice over unchanged data yields
// the identical ordered list.
func (s *recommendationService) Recommend(ctx context.Context, userID string, limit int) ([]Recommendation, error) {
	if limit <= 0 {
		return []Recommendation{}, nil
	}

	topGenres, err := s.TopLibraryGenres(ctx, userID, profileSize)
	if err != nil {
		return nil, err
	}
	if len(topGenres) == 0 {
		return []Recommendation{}, nil
	}

	owned, err := s.library.OwnedGameIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog.ListCatalog(ctx)
	if err != nil {
		return nil, err
	}

	recommendations := make([]Recommendation, 0)
	for _, game := range catalog {
		if _, inLibrary := owned[game.ID]; inLibrary {
			continue
		}

		gameGenres := make(map[string]struct{})
		for _, genre := range splitGenres(game.Genres) {
			gameGenres[genre] = struct{}{}
		}

		// Intersection in profile order, so the reason always names the
		// user's strongest genres first.
		var matches []string
		for _, genre := range topGenres {
			if _, ok := gameGenres[genre]; ok {
				matches = append(matches, genre)
			}
		}
		if len(matches) == 0 {
			continue
		}

		popularity := game.Popularity
		if popularity < 0 {
			popularity = 0
		}
		if popularity > popularityCap {
			popularity = popularityCap
		}
		score := genreMatchWeight*float64(len(matches)) + float64(popularity)/popularityDivisor

		reasonGenres := matches
		if len(reasonGenres) > 2 {
			reasonGenres = reasonGenres[:2]
		}

		recommendations = append(recommendations, Recommendation{
			SteamAppID: game.SteamAppID,
			Name:       game.Name,
			Score:      score,
			Reason:     "Genre-Match: " + strings.Join(reasonGenres, ", "),
		})
	}

	// Stable sort keeps catalog order for exact score ties.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > limit {
		recommendations = recommendations[:limit]
	}
	return recommendations, nil
}

// TopLibraryGenres derives the user's genre profile: the most frequent
// normalized genres across every library entry, any status. Ties keep
// first-seen order so the ranking is deterministic.
func (s *recommendationService) TopLibraryGenres(ctx context.Context, userID string, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	entries, err := s.library.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	var firstSeen []string
	for _, entry := range entries {
		if entry.Game == nil {
			continue
		}
		for _, genre := range splitGenres(entry.Game.Genres) {
			if _, seen := counts[genre]; !seen {
				firstSeen = append(firstSeen, genre)
			}
			counts[genre]++
		}
	}

	sort.SliceStable(firstSeen, func(i, j int) bool {
		return counts[firstSeen[i]] > counts[firstSeen[j]]
	})

	if len(firstSeen) > limit {
		firstSeen = firstSeen[:limit]
	}
	return firstSeen, nil
}

// splitGenres normalizes a comma-separated genre string: trim, lowercase,
// drop empties. Matching is exact after this normalization.
func splitGenres(genres string) []string {
	var out []string
	for _, genre := range strings.Split(genres, ",") {
		normalized := strings.ToLower(strings.TrimSpace(genre))
		if normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}
