package stats

import (
	"sort"

	"github.com/verte-zerg/typer/internal/model"
)

// TopMissedWords returns the n words missed most often. Ties are broken by
// miss rate, then alphabetically.
func TopMissedWords(aggs []model.WordAggregate, n int) []model.WordAggregate {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := make([]model.WordAggregate, len(aggs))
	copy(items, aggs)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Misses != items[j].Misses {
			return items[i].Misses > items[j].Misses
		}
		ri, rj := missRate(items[i]), missRate(items[j])
		if ri != rj {
			return ri > rj
		}
		return items[i].Word < items[j].Word
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

func missRate(agg model.WordAggregate) float64 {
	if agg.Attempts == 0 {
		return 0
	}
	return float64(agg.Misses) / float64(agg.Attempts)
}
