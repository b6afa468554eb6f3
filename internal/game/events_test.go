package game

import (
	"testing"
	"time"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{"cardId": "c1", "amount": 3}
	evt := NewEvent(EventCardPlayed, payload, "alice")

	if evt.ID == "" {
		t.Fatal("expected generated event id")
	}
	if evt.Type != EventCardPlayed {
		t.Fatalf("expected type CARD_PLAYED, got %s", evt.Type)
	}
	if evt.TriggeredBy != "alice" {
		t.Fatalf("expected triggeredBy alice, got %s", evt.TriggeredBy)
	}
	if evt.Payload["cardId"] != "c1" || evt.Payload["amount"] != 3 {
		t.Fatalf("unexpected payload: %v", evt.Payload)
	}

	// Payload is copied on construction
	payload["cardId"] = "tampered"
	if evt.Payload["cardId"] != "c1" {
		t.Fatal("event payload must be independent of the source map")
	}
}

func TestNewEventDefaultsToSystem(t *testing.T) {
	evt := NewEvent(EventPhaseChanged, nil, "")
	if evt.TriggeredBy != TriggeredBySystem {
		t.Fatalf("expected system attribution, got %s", evt.TriggeredBy)
	}
	if evt.Payload == nil {
		t.Fatal("expected non-nil payload map")
	}

	sys := NewSystemEvent(EventTurnStarted, nil)
	if sys.TriggeredBy != TriggeredBySystem {
		t.Fatalf("expected system attribution, got %s", sys.TriggeredBy)
	}
}

func TestEventTimestamp(t *testing.T) {
	before := time.Now()
	evt := NewSystemEvent(EventGameStarted, nil)
	after := time.Now()

	if evt.Timestamp.Before(before) || evt.Timestamp.After(after) {
		t.Fatal("event timestamp should be between before and after")
	}
}

func TestEventCopyIndependence(t *testing.T) {
	evt := NewSystemEvent(EventCardMoved, map[string]interface{}{"cardId": "c1"})
	dup := evt.Copy()
	dup.Payload["cardId"] = "c2"

	if evt.Payload["cardId"] != "c1" {
		t.Fatal("copy must not share its payload map")
	}
}

func TestRequestEventTypes(t *testing.T) {
	if !EventModifyStatRequested.IsRequest() {
		t.Fatal("MODIFY_STAT_REQUESTED should be a request event")
	}
	if EventCardPlayed.IsRequest() {
		t.Fatal("CARD_PLAYED should not be a request event")
	}

	action, ok := EventDrawCardsRequested.RequestedAction()
	if !ok {
		t.Fatal("expected DRAW_CARDS_REQUESTED to name an action")
	}
	if action != "DRAW_CARDS" {
		t.Fatalf("expected action DRAW_CARDS, got %s", action)
	}

	if _, ok := EventActionError.RequestedAction(); ok {
		t.Fatal("ACTION_ERROR should not name an action")
	}
}
