// Package generator draws the word sequence for a practice session.
package generator

import (
	"math/rand"
	"time"
	"unicode"
)

// Options controls how words are decorated after drawing.
type Options struct {
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Generator produces randomized practice sequences.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Draw picks count words from pool. While the pool is large enough every
// word appears at most once; beyond that, whole shuffled passes repeat.
// The pool itself is never modified.
func (g *Generator) Draw(pool []string, count int, opts Options) []string {
	if len(pool) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	order := make([]string, len(pool))
	for len(result) < count {
		copy(order, pool)
		g.rnd.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
		for _, word := range order {
			if len(result) == count {
				break
			}
			word = applyCaps(g.rnd, word, opts.CapsPct)
			word = applyPunct(g.rnd, word, opts.PunctPct, opts.PunctSet)
			result = append(result, word)
		}
	}
	return result
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
