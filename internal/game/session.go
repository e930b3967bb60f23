package game

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/hand"
	"github.com/lox/twentyone/internal/odds"
)

// MaxNameLength is the longest accepted player name, in characters.
const MaxNameLength = 16

var (
	ErrEmptyName   = errors.New("player name is required")
	ErrNameTooLong = fmt.Errorf("player name is longer than %d characters", MaxNameLength)
)

// Session is one player's run of Rounds rounds against the dealer. It is
// driven by one input at a time and is not safe for concurrent use.
type Session struct {
	deck     *deck.Deck
	clock    quartz.Clock
	logger   *log.Logger
	recorder ScoreRecorder
	bus      EventBus
	newID    func() string

	state   State
	name    string
	id      string
	score   int
	round   int
	player  *hand.Hand
	dealer  *hand.Hand
	outcome Outcome
	status  string

	chart  ChartMode
	trials int
}

// NewSession creates a session waiting for a player name. The RNG shuffles
// the deck unless WithDeck supplies one.
func NewSession(rng *rand.Rand, opts ...Option) *Session {
	if rng == nil {
		panic("rng is required for session creation")
	}

	cfg := &sessionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	cfg.applyDefaults()

	d := cfg.deck
	if d == nil {
		d = deck.NewShuffled(rng)
	}
	newID := cfg.newID
	if newID == nil {
		newID = uuid.NewString
	}

	return &Session{
		deck:     d,
		clock:    cfg.clock,
		logger:   cfg.logger.WithPrefix("session"),
		recorder: cfg.recorder,
		bus:      cfg.bus,
		newID:    newID,
		state:    AwaitingName,
		name:     strings.TrimSpace(cfg.name),
		player:   hand.New(),
		dealer:   hand.New(),
		chart:    cfg.chart,
		trials:   cfg.trials,
	}
}

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Name returns the player name, possibly carried over from the last session.
func (s *Session) Name() string { return s.name }

// Score returns the running score.
func (s *Session) Score() int { return s.score }

// Round returns the number of rounds resolved so far.
func (s *Session) Round() int { return s.round }

// SubmitName sets the player name while the session is awaiting one. In any
// other state the call is ignored.
func (s *Session) SubmitName(name string) error {
	if s.state != AwaitingName {
		return nil
	}

	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return ErrEmptyName
	case utf8.RuneCountInString(name) > MaxNameLength:
		return ErrNameTooLong
	}

	s.name = name
	s.logger.Debug("Name submitted", "name", name)
	return nil
}

// Apply handles one operator input. It reports whether the input was valid
// for the current state; invalid inputs change nothing.
func (s *Session) Apply(a Action) bool {
	switch a {
	case Start:
		if s.state != AwaitingName || s.name == "" {
			return false
		}
		s.start()
	case Hit:
		if s.state != Playing {
			return false
		}
		s.hit()
	case Stand:
		if s.state != Playing {
			return false
		}
		s.stand()
	case NextRound:
		if s.state != RoundEnd {
			return false
		}
		s.deal()
	case NewSession:
		if s.state != SessionEnd {
			return false
		}
		s.reset()
	case ToggleChart:
		if s.state == AwaitingName {
			return false
		}
		if s.chart == ChartRisk {
			s.chart = ChartPMF
		} else {
			s.chart = ChartRisk
		}
	case CycleTrials:
		if s.state == AwaitingName {
			return false
		}
		s.trials = odds.NextTrials(s.trials)
	default:
		return false
	}

	s.logger.Debug("Applied action", "action", a, "state", s.state)
	return true
}

func (s *Session) start() {
	s.id = s.newID()
	s.score = 0
	s.round = 0
	s.status = ""
	s.logger.Info("Starting session", "name", s.name, "session", s.id)
	s.deal()
}

func (s *Session) reset() {
	s.logger.Info("Resetting for a new session", "previous", s.id)
	s.state = AwaitingName
	s.id = ""
	s.score = 0
	s.round = 0
	s.outcome = NoOutcome
	s.status = ""
	s.player = hand.New()
	s.dealer = hand.New()
}

// deal starts a round: two cards to the player, then two to the dealer.
// A natural on either side ends the round on the spot.
func (s *Session) deal() {
	s.player = hand.New()
	s.dealer = hand.New()
	s.outcome = NoOutcome

	for range 2 {
		s.player.Add(s.draw())
	}
	for range 2 {
		s.dealer.Add(s.draw())
	}

	dealerCards := s.dealer.Cards()
	s.bus.Publish(RoundDealtEvent{
		Round:     s.round + 1,
		SessionID: s.id,
		Player:    s.player.Cards(),
		DealerUp:  dealerCards[1],
		timestamp: s.clock.Now(),
	})
	s.logger.Info("Dealt round",
		"round", s.round+1,
		"player", s.player,
		"dealer", s.dealer,
		"deck", s.deck.Remaining())

	s.state = Playing
	if s.player.IsNatural() || s.dealer.IsNatural() {
		s.resolve()
	}
}

func (s *Session) hit() {
	c := s.draw()
	s.player.Add(c)
	score := s.player.Value()
	s.bus.Publish(CardDrawnEvent{Seat: PlayerSeat, Card: c, Score: score, timestamp: s.clock.Now()})

	if score.Bust() {
		s.resolve()
	}
}

func (s *Session) stand() {
	for s.dealer.Value().Total < DealerStandsOn {
		c := s.draw()
		s.dealer.Add(c)
		s.bus.Publish(CardDrawnEvent{Seat: DealerSeat, Card: c, Score: s.dealer.Value(), timestamp: s.clock.Now()})
	}
	s.resolve()
}

func (s *Session) draw() deck.Card {
	c, restarted := s.deck.Draw()
	if restarted {
		s.logger.Info("Deck exhausted, reshuffled", "restarts", s.deck.Restarts())
		s.bus.Publish(DeckRestartedEvent{Restarts: s.deck.Restarts(), timestamp: s.clock.Now()})
	}
	return c
}

func (s *Session) resolve() {
	playerScore := s.player.Value()
	dealerScore := s.dealer.Value()

	s.outcome = Decide(playerScore, dealerScore)
	delta := s.outcome.Delta()
	s.score += delta
	s.round++

	s.logger.Info("Round resolved",
		"round", s.round,
		"outcome", s.outcome.Result(),
		"player", playerScore.Total,
		"dealer", dealerScore.Total,
		"delta", delta,
		"score", s.score)
	s.bus.Publish(RoundResolvedEvent{
		Round:       s.round,
		Outcome:     s.outcome,
		Delta:       delta,
		Score:       s.score,
		PlayerScore: playerScore,
		DealerScore: dealerScore,
		Dealer:      s.dealer.Cards(),
		timestamp:   s.clock.Now(),
	})

	if s.round < Rounds {
		s.state = RoundEnd
		return
	}

	s.state = SessionEnd
	s.finish()
}

func (s *Session) finish() {
	recorded := true
	if s.recorder != nil {
		if err := s.recorder.Record(s.name, s.score, s.id); err != nil {
			recorded = false
			s.status = fmt.Sprintf("could not save score: %v", err)
			s.logger.Error("Failed to record score", "error", err, "session", s.id)
		}
	}

	s.logger.Info("Session ended", "name", s.name, "score", s.score, "session", s.id)
	s.bus.Publish(SessionEndedEvent{
		SessionID: s.id,
		Name:      s.name,
		Score:     s.score,
		Recorded:  recorded,
		timestamp: s.clock.Now(),
	})
}
