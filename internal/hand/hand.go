// Package hand scores blackjack hands.
//
// Aces count 11 and are demoted to 1, one at a time, while the total is over
// 21. A two-card 21 is a natural; Score carries that as a flag rather than as
// a special total, so Total is always the number to compare.
package hand

import (
	"fmt"
	"strings"

	"github.com/lox/twentyone/internal/deck"
)

// Limit is the highest total that does not bust.
const Limit = 21

// Score is the evaluated value of a hand.
type Score struct {
	Total   int
	Natural bool
	// Soft is true while at least one ace is still counted as 11.
	Soft bool
}

// Bust reports whether the total is over 21.
func (s Score) Bust() bool {
	return s.Total > Limit
}

func (s Score) String() string {
	switch {
	case s.Natural:
		return "BLACKJACK (21)"
	case s.Soft:
		return fmt.Sprintf("soft %d", s.Total)
	default:
		return fmt.Sprintf("%d", s.Total)
	}
}

// Value evaluates cards.
func Value(cards []deck.Card) Score {
	total, aces := 0, 0
	for _, c := range cards {
		total += c.Points()
		if c.IsAce() {
			aces++
		}
	}

	for total > Limit && aces > 0 {
		total -= 10
		aces--
	}

	return Score{
		Total:   total,
		Natural: total == Limit && len(cards) == 2,
		Soft:    aces > 0,
	}
}

// IsBust reports whether cards total more than 21.
func IsBust(cards []deck.Card) bool {
	return Value(cards).Bust()
}

// WithCard evaluates cards as if c had been added to them.
func WithCard(cards []deck.Card, c deck.Card) Score {
	next := make([]deck.Card, len(cards), len(cards)+1)
	copy(next, cards)
	return Value(append(next, c))
}

// Hand is the ordered set of cards held by the player or the dealer.
type Hand struct {
	cards []deck.Card
}

// New creates a hand holding cards.
func New(cards ...deck.Card) *Hand {
	h := &Hand{}
	h.cards = append(h.cards, cards...)
	return h
}

// Add appends a card to the hand.
func (h *Hand) Add(c deck.Card) {
	h.cards = append(h.cards, c)
}

// Cards returns a copy of the cards in the order they were dealt.
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Value evaluates the hand.
func (h *Hand) Value() Score {
	return Value(h.cards)
}

// IsBust reports whether the hand is over 21.
func (h *Hand) IsBust() bool {
	return h.Value().Bust()
}

// IsNatural reports whether the hand is a two-card 21.
func (h *Hand) IsNatural() bool {
	return h.Value().Natural
}

func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
