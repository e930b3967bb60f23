package game

import "github.com/lox/twentyone/internal/hand"

const (
	// Rounds is the fixed length of a session.
	Rounds = 10
	// WinPoints is added to the score for every won round.
	WinPoints = 10
	// LossPoints is subtracted for every lost round, however it was lost.
	LossPoints = 10
	// DealerStandsOn is the total at which the dealer stops drawing.
	DealerStandsOn = 17
)

// Outcome is how a round ended.
type Outcome int

const (
	NoOutcome Outcome = iota
	PlayerBlackjack
	DealerBlackjack
	BlackjackPush
	PlayerBust
	DealerBust
	PlayerWins
	DealerWins
	Push
)

// Result is the outcome from the player's point of view.
type Result int

const (
	Pending Result = iota
	Win
	Loss
	Tie
)

func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Tie:
		return "tie"
	default:
		return "pending"
	}
}

// Decide resolves a round from the final scores. Naturals are checked first,
// then a player bust, then a dealer bust, then totals.
func Decide(player, dealer hand.Score) Outcome {
	switch {
	case player.Natural && dealer.Natural:
		return BlackjackPush
	case player.Natural:
		return PlayerBlackjack
	case dealer.Natural:
		return DealerBlackjack
	case player.Bust():
		return PlayerBust
	case dealer.Bust():
		return DealerBust
	case player.Total > dealer.Total:
		return PlayerWins
	case player.Total < dealer.Total:
		return DealerWins
	default:
		return Push
	}
}

// Result classifies the outcome as a win, loss or tie.
func (o Outcome) Result() Result {
	switch o {
	case PlayerBlackjack, DealerBust, PlayerWins:
		return Win
	case DealerBlackjack, PlayerBust, DealerWins:
		return Loss
	case BlackjackPush, Push:
		return Tie
	default:
		return Pending
	}
}

// Delta is the score change the outcome causes.
func (o Outcome) Delta() int {
	switch o.Result() {
	case Win:
		return WinPoints
	case Loss:
		return -LossPoints
	default:
		return 0
	}
}

func (o Outcome) String() string {
	switch o {
	case PlayerBlackjack:
		return "Blackjack! You win"
	case DealerBlackjack:
		return "Dealer blackjack, you lose"
	case BlackjackPush:
		return "Both blackjack, push"
	case PlayerBust:
		return "Bust, you lose"
	case DealerBust:
		return "Dealer busts, you win"
	case PlayerWins:
		return "You win"
	case DealerWins:
		return "You lose"
	case Push:
		return "Push"
	default:
		return ""
	}
}
