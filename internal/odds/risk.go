package odds

import (
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/hand"
)

// RiskReport summarises what the next card can do to a hand.
type RiskReport struct {
	Total int
	// SafeMargin is how many points can be added without passing 21.
	SafeMargin int
	// Danger is set when a ten-valued card would bust the hand.
	Danger         bool
	Population     Population
	TenProbability float64
	// BustRanks lists the ranks that would bust the hand, after ace demotion.
	BustRanks []deck.Rank
	// BustOuts is the number of remaining cards of those ranks.
	BustOuts        int
	BustProbability float64
	Counts          RankCounts
}

// SafeProbability is the chance the next card does not bust the hand.
func (r RiskReport) SafeProbability() float64 {
	if r.Population.N == 0 {
		return 0
	}
	return 1 - r.BustProbability
}

// NextDrawRisk evaluates a single hit on cards against the deck it will be
// drawn from.
func NextDrawRisk(cards []deck.Card, d *deck.Deck) RiskReport {
	return RiskFromCounts(cards, CountsFromDeck(d))
}

// RiskFromCounts evaluates a single hit on cards when the undrawn cards are
// known only by rank.
func RiskFromCounts(cards []deck.Card, counts RankCounts) RiskReport {
	score := hand.Value(cards)
	pop := Population{N: counts.Total(), K: counts[deck.Ten] + counts[deck.Jack] + counts[deck.Queen] + counts[deck.King]}

	r := RiskReport{
		Total:          score.Total,
		SafeMargin:     max(hand.Limit-score.Total, 0),
		Danger:         score.Total+10 > hand.Limit,
		Population:     pop,
		TenProbability: pop.TenProbability(),
		Counts:         counts,
	}

	for _, rank := range deck.Ranks {
		if !hand.WithCard(cards, deck.NewCard(rank, deck.Spades)).Bust() {
			continue
		}
		r.BustRanks = append(r.BustRanks, rank)
		r.BustOuts += counts[rank]
	}
	r.BustProbability = PMF(1, pop.N, r.BustOuts, 1)

	return r
}
