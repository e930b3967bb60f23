package game

import (
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/hand"
	"github.com/lox/twentyone/internal/odds"
)

// Snapshot is everything a presentation layer needs to draw the table. It is
// a copy; changing it does not affect the session.
type Snapshot struct {
	State     State
	Name      string
	SessionID string
	Score     int
	Round     int
	Rounds    int

	DeckRemaining int
	DeckRestarts  int

	Player      []deck.Card
	PlayerScore hand.Score
	Dealer      []deck.Card
	// HoleHidden is set while the player is still acting; Dealer[0] must not
	// be shown and DealerScore covers the up card only.
	HoleHidden  bool
	DealerScore hand.Score

	Outcome Outcome
	// Status carries a non-fatal problem worth showing, such as a failed save.
	Status string

	Chart      ChartMode
	Trials     int
	// CurveDraws is Trials capped at the number of cards left.
	CurveDraws int
	Population odds.Population
	Risk       odds.RiskReport
	Curve      []odds.Point
}

// Snapshot recomputes every derived value from the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:         s.state,
		Name:          s.name,
		SessionID:     s.id,
		Score:         s.score,
		Round:         s.round,
		Rounds:        Rounds,
		DeckRemaining: s.deck.Remaining(),
		DeckRestarts:  s.deck.Restarts(),
		Player:        s.player.Cards(),
		PlayerScore:   s.player.Value(),
		Dealer:        s.dealer.Cards(),
		DealerScore:   s.dealer.Value(),
		Outcome:       s.outcome,
		Status:        s.status,
		Chart:         s.chart,
		Trials:        s.trials,
		Population:    odds.RemainingPopulation(s.deck),
	}

	if s.state == Playing && len(snap.Dealer) > 1 {
		snap.HoleHidden = true
		snap.DealerScore = hand.Value(snap.Dealer[1:])
	}

	snap.Risk = odds.NextDrawRisk(snap.Player, s.deck)
	snap.CurveDraws = min(s.trials, snap.Population.N)
	snap.Curve = odds.Curve(snap.Population.N, snap.Population.K, snap.CurveDraws)
	return snap
}
