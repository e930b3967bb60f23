package odds

import (
	"github.com/lox/twentyone/internal/deck"
)

// Population describes the cards still to be drawn: N in total, K of them
// ten-valued.
type Population struct {
	N int
	K int
}

// TenProbability is the chance the next card is worth ten.
func (p Population) TenProbability() float64 {
	return PMF(1, p.N, p.K, 1)
}

// RemainingPopulation reads N and K straight from the deck. The deck is the
// source of truth, so the counts stay correct after a mid-round reshuffle.
// An exhausted deck reports a full one, since that is what the next draw
// comes from.
func RemainingPopulation(d *deck.Deck) Population {
	if d.Remaining() == 0 {
		return Population{N: deck.Size, K: deck.TenValued}
	}
	return Population{
		N: d.Remaining(),
		K: d.Count(deck.Card.IsTenValue),
	}
}

// EstimatePopulation infers the population from the cards seen so far,
// assuming a single full deck with nothing else removed.
func EstimatePopulation(visible []deck.Card) Population {
	tens := 0
	for _, c := range visible {
		if c.IsTenValue() {
			tens++
		}
	}
	return Population{
		N: max(deck.Size-len(visible), 0),
		K: max(deck.TenValued-tens, 0),
	}
}

// RankCounts is the number of cards of each rank that can still be drawn,
// indexed by deck.Rank.
type RankCounts [deck.King + 1]int

// Total returns the number of cards counted.
func (rc RankCounts) Total() int {
	n := 0
	for _, r := range deck.Ranks {
		n += rc[r]
	}
	return n
}

// CountsFromDeck returns the remaining rank counts of d, or a full deck's
// counts when d is exhausted.
func CountsFromDeck(d *deck.Deck) RankCounts {
	if d.Remaining() == 0 {
		return CountsFromVisible(nil)
	}
	return RankCounts(d.RankCounts())
}

// CountsFromVisible starts from four of each rank and removes every visible
// card.
func CountsFromVisible(visible []deck.Card) RankCounts {
	var rc RankCounts
	for _, r := range deck.Ranks {
		rc[r] = deck.PerRank
	}
	for _, c := range visible {
		if rc[c.Rank] > 0 {
			rc[c.Rank]--
		}
	}
	return rc
}
