package analysis

import (
	"sort"

	"github.com/SeamusWaldron/cubesolver/internal/notation"
	"github.com/SeamusWaldron/cubesolver/pkg/types"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N        int    `json:"n" yaml:"n"`
	Sequence string `json:"sequence" yaml:"sequence"`
	Count    int    `json:"count" yaml:"count"`
	First    int    `json:"first_index" yaml:"first_index"`
}

// MineNGrams returns up to top sequences of n moves that occur more than
// once, most frequent first. Ties keep first-occurrence order.
func MineNGrams(moves []types.Move, n, top int) []NGram {
	if n <= 0 || len(moves) < n {
		return nil
	}

	index := make(map[string]int)
	var grams []NGram
	key := make([]byte, n)
	for i := 0; i+n <= len(moves); i++ {
		for j := 0; j < n; j++ {
			key[j] = moves[i+j].Token()
		}
		if at, ok := index[string(key)]; ok {
			grams[at].Count++
			continue
		}
		index[string(key)] = len(grams)
		grams = append(grams, NGram{
			N:        n,
			Sequence: notation.FormatSequence(moves[i : i+n]),
			Count:    1,
			First:    i,
		})
	}

	repeated := grams[:0]
	for _, g := range grams {
		if g.Count > 1 {
			repeated = append(repeated, g)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].Count > repeated[j].Count
	})
	if top > 0 && len(repeated) > top {
		repeated = repeated[:top]
	}
	return repeated
}
