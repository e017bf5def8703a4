package anilist

import (
	"context"
	"fmt"
	"strings"

	"github.com/anisan-cli/anilist/log"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// normalizedName returns a lowercased, trimmed string for consistent comparison.
func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// titleMatch is how well a media matches a name.
type titleMatch struct {
	media    *Media
	fuzzy    bool
	distance int
}

// matchTitle compares name with every title and synonym of m and keeps the best score.
func matchTitle(m *Media, name string) titleMatch {
	titles := lo.Uniq(lo.Map(append(m.Title.All(), m.Synonyms...), func(title string, _ int) string {
		return normalizedName(title)
	}))

	match := titleMatch{media: m, distance: -1}
	for _, title := range titles {
		if title == "" {
			continue
		}

		if fuzzy.MatchNormalizedFold(name, title) {
			match.fuzzy = true
		}

		if d := levenshtein.Distance(name, title); match.distance < 0 || d < match.distance {
			match.distance = d
		}
	}

	return match
}

// RankMedia orders candidates from the best to the worst match for name.
// Media whose titles contain the name's letters in order come first, then lower Levenshtein distance wins.
// Candidates without any title are dropped.
func RankMedia(candidates []*Media, name string) []*Media {
	name = normalizedName(name)

	matches := lo.FilterMap(candidates, func(m *Media, _ int) (titleMatch, bool) {
		if m == nil {
			return titleMatch{}, false
		}
		match := matchTitle(m, name)
		return match, match.distance >= 0
	})

	slices.SortStableFunc(matches, func(a, b titleMatch) int {
		if a.fuzzy != b.fuzzy {
			if a.fuzzy {
				return -1
			}
			return 1
		}
		return a.distance - b.distance
	})

	return lo.Map(matches, func(match titleMatch, _ int) *Media {
		return match.media
	})
}

// ClosestMedia returns the candidate whose title is closest to name.
func ClosestMedia(candidates []*Media, name string) (*Media, bool) {
	ranked := RankMedia(candidates, name)
	if len(ranked) == 0 {
		return nil, false
	}
	return ranked[0], true
}

// FindClosestAnime searches Anilist for name and returns the closest anime among the first page of results.
// It makes a single request.
func (c *Client) FindClosestAnime(ctx context.Context, name string) (*Media, error) {
	name = normalizedName(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	page, err := c.SearchAnime(ctx, name, defaultPage, defaultPerPage)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	closest, ok := ClosestMedia(page.Items, name)
	if !ok {
		err := fmt.Errorf("%w: no results found on Anilist for anime %q", ErrNoMatch, name)
		log.Error(err)
		return nil, err
	}

	log.Info("Found closest match: " + closest.Name())
	return closest, nil
}
