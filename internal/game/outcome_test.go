package game

import (
	"testing"

	"github.com/lox/twentyone/internal/hand"
	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	natural := hand.Score{Total: 21, Natural: true, Soft: true}
	tests := []struct {
		name   string
		player hand.Score
		dealer hand.Score
		want   Outcome
		delta  int
	}{
		{"player natural", natural, hand.Score{Total: 20}, PlayerBlackjack, 10},
		{"dealer natural", hand.Score{Total: 20}, natural, DealerBlackjack, -10},
		{"both natural", natural, natural, BlackjackPush, 0},
		{"dealer natural beats built 21", hand.Score{Total: 21}, natural, DealerBlackjack, -10},
		{"player bust", hand.Score{Total: 22}, hand.Score{Total: 17}, PlayerBust, -10},
		{"player bust even if dealer busts", hand.Score{Total: 25}, hand.Score{Total: 23}, PlayerBust, -10},
		{"dealer bust", hand.Score{Total: 18}, hand.Score{Total: 24}, DealerBust, 10},
		{"higher total", hand.Score{Total: 20}, hand.Score{Total: 18}, PlayerWins, 10},
		{"lower total", hand.Score{Total: 17}, hand.Score{Total: 19}, DealerWins, -10},
		{"equal totals", hand.Score{Total: 19}, hand.Score{Total: 19}, Push, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.player, tt.dealer)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.delta, got.Delta())
		})
	}
}

func TestOutcomeResult(t *testing.T) {
	assert.Equal(t, Win, PlayerBlackjack.Result())
	assert.Equal(t, Loss, DealerBlackjack.Result())
	assert.Equal(t, Tie, BlackjackPush.Result())
	assert.Equal(t, Pending, NoOutcome.Result())
	assert.Zero(t, NoOutcome.Delta())
	assert.Empty(t, NoOutcome.String())
}
