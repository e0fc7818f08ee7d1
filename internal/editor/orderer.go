package editor

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/pressnav/pressnav/core"
	"github.com/pressnav/pressnav/internal/store"
)

// MaxResults caps how many records a single palette source contributes.
const MaxResults = 10

// RankRecords orders records by how well their titles match search and keeps
// at most MaxResults of them. Non-matching records are dropped when search is
// non-empty; the input slice itself is never reordered or mutated. Score ties
// break on Levenshtein distance to the search, then on input order.
func RankRecords(records []store.Record, search string) []store.Record {
	if len(records) == 0 {
		return nil
	}
	search = strings.TrimSpace(search)
	if search == "" {
		out := records
		if len(out) > MaxResults {
			out = out[:MaxResults]
		}
		return append([]store.Record(nil), out...)
	}

	type scored struct {
		rec   store.Record
		score int
		dist  int
		index int
	}
	searchLower := strings.ToLower(search)
	ranked := make([]scored, 0, len(records))
	for i, rec := range records {
		matched, score := core.FuzzyMatchScore(rec.Title, search)
		if !matched {
			continue
		}
		ranked = append(ranked, scored{
			rec:   rec,
			score: score,
			dist:  levenshtein.ComputeDistance(strings.ToLower(rec.Title), searchLower),
			index: i,
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if ranked[i].dist != ranked[j].dist {
			return ranked[i].dist < ranked[j].dist
		}
		return ranked[i].index < ranked[j].index
	})

	if len(ranked) > MaxResults {
		ranked = ranked[:MaxResults]
	}
	out := make([]store.Record, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.rec)
	}
	return out
}
