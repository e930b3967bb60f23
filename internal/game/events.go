package game

import (
	"time"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/hand"
)

// EventType represents a game event type with type safety
type EventType string

const (
	EventTypeRoundDealt    EventType = "round_dealt"
	EventTypeCardDrawn     EventType = "card_drawn"
	EventTypeDeckRestarted EventType = "deck_restarted"
	EventTypeRoundResolved EventType = "round_resolved"
	EventTypeSessionEnded  EventType = "session_ended"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents anything that happens during a session
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// RoundDealtEvent is published after the opening two cards of each hand.
type RoundDealtEvent struct {
	Round     int
	SessionID string
	Player    []deck.Card
	// DealerUp is the dealer's face-up card; the hole card stays hidden.
	DealerUp  deck.Card
	timestamp time.Time
}

func (e RoundDealtEvent) EventType() EventType { return EventTypeRoundDealt }
func (e RoundDealtEvent) Timestamp() time.Time { return e.timestamp }

// CardDrawnEvent is published when a hit or a dealer draw adds a card.
type CardDrawnEvent struct {
	Seat      Seat
	Card      deck.Card
	Score     hand.Score
	timestamp time.Time
}

func (e CardDrawnEvent) EventType() EventType { return EventTypeCardDrawn }
func (e CardDrawnEvent) Timestamp() time.Time { return e.timestamp }

// DeckRestartedEvent is published when an exhausted deck was reshuffled.
// Cards counted so far no longer describe the deck.
type DeckRestartedEvent struct {
	Restarts  int
	timestamp time.Time
}

func (e DeckRestartedEvent) EventType() EventType { return EventTypeDeckRestarted }
func (e DeckRestartedEvent) Timestamp() time.Time { return e.timestamp }

// RoundResolvedEvent is published once per round with its outcome.
type RoundResolvedEvent struct {
	Round       int
	Outcome     Outcome
	Delta       int
	Score       int
	PlayerScore hand.Score
	DealerScore hand.Score
	Dealer      []deck.Card
	timestamp   time.Time
}

func (e RoundResolvedEvent) EventType() EventType { return EventTypeRoundResolved }
func (e RoundResolvedEvent) Timestamp() time.Time { return e.timestamp }

// SessionEndedEvent is published after the last round of a session.
type SessionEndedEvent struct {
	SessionID string
	Name      string
	Score     int
	// Recorded is false when saving to the scoreboard failed.
	Recorded  bool
	timestamp time.Time
}

func (e SessionEndedEvent) EventType() EventType { return EventTypeSessionEnded }
func (e SessionEndedEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// SubscriberFunc adapts a function to EventSubscriber.
type SubscriberFunc func(event GameEvent)

// OnEvent calls f.
func (f SubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
