package scheduler

import (
	"fmt"
	"sort"

	"github.com/sagara/kotoba/internal/catalog"
	"github.com/sagara/kotoba/internal/strength"
)

// Mix holds the target category percentages for a review queue.
type Mix struct {
	Vocabulary int `json:"vocabulary"`
	Characters int `json:"characters"`
	Grammar    int `json:"grammar"`
}

// DefaultMix is the product default queue composition.
func DefaultMix() Mix {
	return Mix{Vocabulary: 50, Characters: 30, Grammar: 20}
}

// Validate checks that the mix is a valid percentage split.
func (m Mix) Validate() error {
	if m.Vocabulary < 0 || m.Characters < 0 || m.Grammar < 0 {
		return &strength.InvalidInputError{Field: "reviewMix", Reason: "percentages must not be negative"}
	}
	if sum := m.Vocabulary + m.Characters + m.Grammar; sum != 100 {
		return &strength.InvalidInputError{
			Field:  "reviewMix",
			Reason: fmt.Sprintf("percentages must sum to 100, got %d", sum),
		}
	}
	return nil
}

// weight returns the mix percentage for an item type.
func (m Mix) weight(t catalog.ItemType) int {
	switch t {
	case catalog.TypeVocabulary:
		return m.Vocabulary
	case catalog.TypeCharacter:
		return m.Characters
	case catalog.TypeGrammar:
		return m.Grammar
	}
	return 0
}

// Allocate splits maxItems slots across categories per the mix, then
// redistributes shortfall from categories with fewer available items to
// categories with headroom, in proportion to their mix weights.
// The result never allocates more than available per category.
func Allocate(mix Mix, maxItems int, available map[catalog.ItemType]int) map[catalog.ItemType]int {
	weights := make(map[catalog.ItemType]int, len(catalog.ItemTypes))
	for _, t := range catalog.ItemTypes {
		weights[t] = mix.weight(t)
	}

	alloc := apportion(weights, maxItems)

	for {
		// Cap allocations at availability and collect the excess.
		excess := 0
		for _, t := range catalog.ItemTypes {
			if alloc[t] > available[t] {
				excess += alloc[t] - available[t]
				alloc[t] = available[t]
			}
		}
		if excess == 0 {
			return alloc
		}

		// Redistribute the excess to categories that still have due items,
		// weighted by their remaining mix percentages.
		headroom := make(map[catalog.ItemType]int)
		for _, t := range catalog.ItemTypes {
			if available[t] > alloc[t] && weights[t] > 0 {
				headroom[t] = weights[t]
			}
		}
		if len(headroom) == 0 {
			return alloc
		}
		extra := apportion(headroom, excess)
		for t, n := range extra {
			alloc[t] += n
		}
	}
}

// apportion distributes total slots across weighted categories using the
// largest-remainder method. Ties break in fixed category order so the
// result is deterministic.
func apportion(weights map[catalog.ItemType]int, total int) map[catalog.ItemType]int {
	out := make(map[catalog.ItemType]int, len(weights))
	sumW := 0
	for _, w := range weights {
		sumW += w
	}
	if sumW == 0 || total <= 0 {
		return out
	}

	type share struct {
		t   catalog.ItemType
		rem float64
	}
	var shares []share
	assigned := 0
	for _, t := range catalog.ItemTypes {
		w, ok := weights[t]
		if !ok {
			continue
		}
		exact := float64(total) * float64(w) / float64(sumW)
		base := int(exact)
		out[t] = base
		assigned += base
		shares = append(shares, share{t: t, rem: exact - float64(base)})
	}

	// Hand leftover slots to the largest fractional shortfalls.
	sort.SliceStable(shares, func(i, j int) bool { return shares[i].rem > shares[j].rem })
	for i := 0; i < total-assigned && i < len(shares); i++ {
		out[shares[i].t]++
	}
	return out
}
