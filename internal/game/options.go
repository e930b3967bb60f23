package game

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/odds"
)

// ScoreRecorder stores the final score of a finished session.
type ScoreRecorder interface {
	Record(name string, score int, sessionID string) error
}

// Option configures a Session during creation.
type Option func(*sessionConfig)

type sessionConfig struct {
	deck     *deck.Deck
	clock    quartz.Clock
	logger   *log.Logger
	recorder ScoreRecorder
	bus      EventBus
	chart    ChartMode
	trials   int
	name     string
	newID    func() string
}

// WithDeck deals from d instead of a freshly shuffled deck.
func WithDeck(d *deck.Deck) Option {
	return func(c *sessionConfig) { c.deck = d }
}

// WithClock sets the clock used for event timestamps.
func WithClock(clock quartz.Clock) Option {
	return func(c *sessionConfig) { c.clock = clock }
}

// WithLogger sets the session logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *sessionConfig) { c.logger = logger }
}

// WithScoreRecorder receives the final score of every finished session.
func WithScoreRecorder(r ScoreRecorder) Option {
	return func(c *sessionConfig) { c.recorder = r }
}

// WithEventBus publishes session events on bus.
func WithEventBus(bus EventBus) Option {
	return func(c *sessionConfig) { c.bus = bus }
}

// WithChart sets the initial chart mode and number of draws. A draw count
// outside odds.MinTrials..odds.MaxTrials falls back to odds.MinTrials.
func WithChart(mode ChartMode, trials int) Option {
	return func(c *sessionConfig) {
		c.chart = mode
		c.trials = trials
	}
}

// WithName pre-fills the player name.
func WithName(name string) Option {
	return func(c *sessionConfig) { c.name = name }
}

// WithSessionIDs replaces the generator of session identifiers.
func WithSessionIDs(next func() string) Option {
	return func(c *sessionConfig) { c.newID = next }
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func (c *sessionConfig) applyDefaults() {
	if c.clock == nil {
		c.clock = quartz.NewReal()
	}
	if c.logger == nil {
		c.logger = discardLogger()
	}
	if c.bus == nil {
		c.bus = NewEventBus()
	}
	if !odds.ValidTrials(c.trials) {
		c.trials = odds.MinTrials
	}
}
