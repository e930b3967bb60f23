package game

import (
	"fmt"
	"strings"

	"github.com/lox/twentyone/internal/deck"
)

// FormatEvent renders an event as a single line for the table log. Events
// with nothing worth showing return "".
func FormatEvent(event GameEvent) string {
	switch e := event.(type) {
	case RoundDealtEvent:
		return fmt.Sprintf("Round %d: you have %s, dealer shows %s", e.Round, formatCards(e.Player), e.DealerUp)
	case CardDrawnEvent:
		if e.Seat == DealerSeat {
			return fmt.Sprintf("Dealer draws %s (%s)", e.Card, e.Score)
		}
		return fmt.Sprintf("You draw %s (%s)", e.Card, e.Score)
	case DeckRestartedEvent:
		return "Deck exhausted, reshuffled a full deck"
	case RoundResolvedEvent:
		return fmt.Sprintf("%s: %s vs dealer %s %s (%+d, score %d)",
			e.Outcome, e.PlayerScore, e.DealerScore, formatCards(e.Dealer), e.Delta, e.Score)
	case SessionEndedEvent:
		if !e.Recorded {
			return fmt.Sprintf("Session over, %s finished on %d (not saved)", e.Name, e.Score)
		}
		return fmt.Sprintf("Session over, %s finished on %d", e.Name, e.Score)
	default:
		return ""
	}
}

func formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
