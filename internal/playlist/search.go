package playlist

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is a song matched by Search. Lower Distance is a closer match.
type Match struct {
	Song     Song
	Distance int
}

// Search returns the songs whose names fuzzily contain query, best match
// first. Matching ignores case. An empty query matches every song in
// playlist order.
func Search(s State, query string) []Match {
	query = strings.TrimSpace(query)
	if query == "" {
		matches := make([]Match, len(s.Songs))
		for i, song := range s.Songs {
			matches[i] = Match{Song: song}
		}
		return matches
	}

	names := make([]string, len(s.Songs))
	for i, song := range s.Songs {
		names[i] = song.Name
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	matches := make([]Match, len(ranks))
	for i, r := range ranks {
		matches[i] = Match{Song: s.Songs[r.OriginalIndex], Distance: r.Distance}
	}
	return matches
}
