package game

import (
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/randutil"
)

var testEpoch = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

type recordedScore struct {
	name    string
	score   int
	session string
}

type fakeRecorder struct {
	records []recordedScore
	err     error
}

func (f *fakeRecorder) Record(name string, score int, sessionID string) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, recordedScore{name: name, score: score, session: sessionID})
	return nil
}

var errDiskFull = errors.New("disk full")

type eventLog struct {
	events []GameEvent
}

func (l *eventLog) OnEvent(e GameEvent) { l.events = append(l.events, e) }

func (l *eventLog) ofType(t EventType) []GameEvent {
	var out []GameEvent
	for _, e := range l.events {
		if e.EventType() == t {
			out = append(out, e)
		}
	}
	return out
}

// newStackedSession returns a named session whose deck deals cards in order:
// player, player, dealer (hole), dealer (up), then hits and dealer draws.
func newStackedSession(t *testing.T, cards string, opts ...Option) (*Session, *eventLog) {
	t.Helper()

	clock := quartz.NewMock(t)
	clock.Set(testEpoch)

	events := &eventLog{}
	bus := NewEventBus()
	bus.Subscribe(events)

	d := deck.NewFromCards(deck.MustParseCards(cards), randutil.New(1))
	base := []Option{
		WithDeck(d),
		WithClock(clock),
		WithEventBus(bus),
		WithName("Ana"),
		WithSessionIDs(func() string { return "session-1" }),
	}
	return NewSession(randutil.New(1), append(base, opts...)...), events
}
