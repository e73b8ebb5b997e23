package catalog

import (
	"strings"

	"github.com/xrash/smetrics"
)

// minSuggestionScore is the minimal similarity, in the 0-100 range, for a catalog
// name to be offered as a suggestion.
const minSuggestionScore = 60

// SuggestArtist returns the artist name closest to `name` or an empty string when
// nothing is similar enough.
func (c *Catalog) SuggestArtist(name string) string {
	var names []string
	for _, genre := range c.Genres {
		for _, artist := range genre.Artists {
			names = append(names, artist.Name)
		}
	}
	return suggest(name, names)
}

// SuggestGenre returns the genre name closest to `name` or an empty string.
func (c *Catalog) SuggestGenre(name string) string {
	names := make([]string, 0, len(c.Genres))
	for _, genre := range c.Genres {
		names = append(names, genre.Name)
	}
	return suggest(name, names)
}

// SuggestSong returns the song name closest to `name` or an empty string.
func (c *Catalog) SuggestSong(name string) string {
	var names []string
	for _, genre := range c.Genres {
		for _, artist := range genre.Artists {
			for _, album := range artist.Albums {
				names = append(names, album.Songs...)
			}
		}
	}
	return suggest(name, names)
}

func albumNames(artist Artist) []string {
	names := make([]string, 0, len(artist.Albums))
	for _, album := range artist.Albums {
		names = append(names, album.Name)
	}
	return names
}

// suggest picks the most similar candidate. On equal scores the first one in
// catalog order wins.
func suggest(name string, candidates []string) string {
	var (
		best      string
		bestScore = minSuggestionScore - 1
	)

	for _, candidate := range candidates {
		score := similarity(name, candidate)
		if score > bestScore {
			best, bestScore = candidate, score
		}
	}

	return best
}

// similarity is a 0-100 score derived from the Wagner-Fischer edit distance of
// the lower-cased strings.
func similarity(a, b string) int {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	if maxLen == 0 {
		return 100
	}

	distance := smetrics.WagnerFischer(a, b, 1, 1, 2)
	score := 100 - (distance * 100 / maxLen)
	if score < 0 {
		return 0
	}
	return score
}
