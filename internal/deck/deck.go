package deck

import (
	rand "math/rand/v2"
)

// Deck is the ordered pile of cards not yet dealt. It is not safe for
// concurrent use.
type Deck struct {
	cards    []Card
	rng      *rand.Rand
	restarts int
}

// NewShuffled creates a full 52-card deck in uniformly random order.
func NewShuffled(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, Size),
		rng:   rng,
	}
	d.refill()
	return d
}

// NewFromCards creates a deck that deals cards in the given order. Once the
// stacked cards run out it refills from rng like any other deck.
func NewFromCards(cards []Card, rng *rand.Rand) *Deck {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Deck{cards: stacked, rng: rng}
}

// Full returns the 52 cards of a fresh deck in suit then rank order.
func Full() []Card {
	cards := make([]Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Draw removes and returns the top card. An empty deck is first replaced by a
// freshly shuffled full deck, in which case restarted is true.
func (d *Deck) Draw() (card Card, restarted bool) {
	if len(d.cards) == 0 {
		d.refill()
		d.restarts++
		restarted = true
	}

	card = d.cards[0]
	d.cards = d.cards[1:]
	return card, restarted
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Restarts returns how many times the deck was refilled after running out.
func (d *Deck) Restarts() int {
	return d.restarts
}

// Cards returns a copy of the remaining cards, top first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Count returns how many remaining cards satisfy match.
func (d *Deck) Count(match func(Card) bool) int {
	n := 0
	for _, c := range d.cards {
		if match(c) {
			n++
		}
	}
	return n
}

// CountRank returns how many cards of rank are still in the deck.
func (d *Deck) CountRank(rank Rank) int {
	return d.Count(func(c Card) bool { return c.Rank == rank })
}

// RankCounts returns the remaining count of every rank, indexed by Rank.
func (d *Deck) RankCounts() [King + 1]int {
	var counts [King + 1]int
	for _, c := range d.cards {
		counts[c.Rank]++
	}
	return counts
}

func (d *Deck) refill() {
	d.cards = append(d.cards[:0], Full()...)
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
