package game

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType identifies a kind of game event.
type EventType string

const (
	// Lifecycle events
	EventGameStarted EventType = "GAME_STARTED"
	EventTurnStarted EventType = "TURN_STARTED"

	// State-change events published after an action executes
	EventCardMoved      EventType = "CARD_MOVED"
	EventCardsDrawn     EventType = "CARDS_DRAWN"
	EventCardPlayed     EventType = "CARD_PLAYED"
	EventStatModified   EventType = "STAT_MODIFIED"
	EventCardTapped     EventType = "CARD_TAPPED"
	EventCardUntapped   EventType = "CARD_UNTAPPED"
	EventCardDiscarded  EventType = "CARD_DISCARDED"
	EventZoneShuffled   EventType = "ZONE_SHUFFLED"
	EventCounterAdded   EventType = "COUNTER_ADDED"
	EventCounterRemoved EventType = "COUNTER_REMOVED"
	EventPhaseChanged   EventType = "PHASE_CHANGED"
	EventZoneViewed     EventType = "ZONE_VIEWED"

	// Request events emitted by compiled rules; an interpreter turns them
	// back into actions
	EventMoveCardRequested      EventType = "MOVE_CARD_REQUESTED"
	EventDrawCardsRequested     EventType = "DRAW_CARDS_REQUESTED"
	EventPlayCardRequested      EventType = "PLAY_CARD_REQUESTED"
	EventModifyStatRequested    EventType = "MODIFY_STAT_REQUESTED"
	EventTapCardRequested       EventType = "TAP_CARD_REQUESTED"
	EventUntapCardRequested     EventType = "UNTAP_CARD_REQUESTED"
	EventDiscardCardRequested   EventType = "DISCARD_CARD_REQUESTED"
	EventShuffleZoneRequested   EventType = "SHUFFLE_ZONE_REQUESTED"
	EventAddCounterRequested    EventType = "ADD_COUNTER_REQUESTED"
	EventRemoveCounterRequested EventType = "REMOVE_COUNTER_REQUESTED"
	EventSetTurnPhaseRequested  EventType = "SET_TURN_PHASE_REQUESTED"
	EventViewZoneRequested      EventType = "VIEW_ZONE_REQUESTED"

	// EventActionError carries a failed rule-action resolution.
	EventActionError EventType = "ACTION_ERROR"
)

// requestSuffix marks events that request an action rather than report one.
const requestSuffix = "_REQUESTED"

// IsRequest reports whether the event type is an action request.
func (t EventType) IsRequest() bool {
	return strings.HasSuffix(string(t), requestSuffix)
}

// RequestedAction returns the action type a request event asks for, or false
// when the event is not a request.
func (t EventType) RequestedAction() (string, bool) {
	if !t.IsRequest() {
		return "", false
	}
	return strings.TrimSuffix(string(t), requestSuffix), true
}

// TriggeredBySystem marks events raised by the engine itself rather than a
// player.
const TriggeredBySystem = "system"

// Event is one thing that happened (or is being requested) in a game.
// Payload holds event-specific data keyed by stable field names.
type Event struct {
	ID          string
	Type        EventType
	Payload     map[string]interface{}
	Timestamp   time.Time
	TriggeredBy string
}

// NewEvent creates an event attributed to the given player or system actor.
// The payload map is copied; the returned event always carries a non-nil
// payload.
func NewEvent(eventType EventType, payload map[string]interface{}, triggeredBy string) Event {
	p := make(map[string]interface{}, len(payload))
	for k, v := range payload {
		p[k] = v
	}
	if triggeredBy == "" {
		triggeredBy = TriggeredBySystem
	}
	return Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		Payload:     p,
		Timestamp:   time.Now(),
		TriggeredBy: triggeredBy,
	}
}

// NewSystemEvent creates an event attributed to the engine.
func NewSystemEvent(eventType EventType, payload map[string]interface{}) Event {
	return NewEvent(eventType, payload, TriggeredBySystem)
}

// Copy returns a copy of the event with an independent payload map.
func (e Event) Copy() Event {
	next := e
	next.Payload = make(map[string]interface{}, len(e.Payload))
	for k, v := range e.Payload {
		next.Payload[k] = v
	}
	return next
}
