// Package ranking implements the adaptive prioritization algorithm that
// orders the card board for a user.
//
// Each card's score combines its static base priority with a concave
// transform of how often the user has selected it:
//
//	score = basePriority + ln(1 + usageCount) * weight
//
// The logarithm deliberately bounds how far pure frequency can push a card:
// a toy card (base 10) selected 100 times scores 10 + ln(101)*2.0 ≈ 19.2,
// still far below an untouched toilet card at base 90. Urgent needs stay on
// top even when entertainment cards dominate the history.
package ranking

import (
	"math"
	"sort"

	"github.com/phrazzld/commboard-api/internal/domain"
)

// Score computes the ranking score for a single card.
//
// The function is pure and defined for every usageCount >= 0. A count of
// zero contributes exactly zero, so an unused card scores precisely its
// base priority. Negative counts are a caller contract violation; the
// append-only event log can never produce one.
func Score(basePriority int, usageCount int64, weight float64) float64 {
	return float64(basePriority) + math.Log1p(float64(usageCount))*weight
}

// Rank orders cards by descending score, highest priority first.
//
// Cards absent from usageCounts are treated as having a count of zero, not
// as missing data: the count aggregate only contains cards with at least
// one event. The sort is stable, so cards with equal scores keep their
// catalog order. That makes Rank deterministic: two calls with the same
// inputs produce identical sequences, including tie order.
//
// The input slice is not modified; a new slice is returned.
func Rank(cards []*domain.Card, usageCounts map[int64]int64, params *Params) []*domain.Card {
	if params == nil {
		params = NewDefaultParams()
	}

	ranked := make([]*domain.Card, len(cards))
	copy(ranked, cards)

	scores := make(map[int64]float64, len(ranked))
	for _, card := range ranked {
		scores[card.ID] = Score(card.BasePriority, usageCounts[card.ID], params.UsageWeight)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i].ID] > scores[ranked[j].ID]
	})

	return ranked
}
