package actions

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/deckforge/engine-go/internal/game"
	"github.com/deckforge/engine-go/internal/game/counters"
)

// RequestEventType returns the event type that requests the given action.
func RequestEventType(t ActionType) game.EventType {
	return game.EventType(string(t) + "_REQUESTED")
}

// doneEventType maps an action to the event announcing its completion.
func doneEventType(t ActionType) game.EventType {
	switch t {
	case ActionMoveCard:
		return game.EventCardMoved
	case ActionDrawCards:
		return game.EventCardsDrawn
	case ActionPlayCard:
		return game.EventCardPlayed
	case ActionModifyStat:
		return game.EventStatModified
	case ActionTapCard:
		return game.EventCardTapped
	case ActionUntapCard:
		return game.EventCardUntapped
	case ActionDiscardCard:
		return game.EventCardDiscarded
	case ActionShuffleZone:
		return game.EventZoneShuffled
	case ActionAddCounter:
		return game.EventCounterAdded
	case ActionRemoveCounter:
		return game.EventCounterRemoved
	case ActionSetTurnPhase:
		return game.EventPhaseChanged
	case ActionViewZone:
		return game.EventZoneViewed
	default:
		return game.EventType(t)
	}
}

// payloadForAction renders the action's fields under their wire names.
func payloadForAction(a Action) map[string]interface{} {
	payload := map[string]interface{}{}
	switch a.Type {
	case ActionMoveCard:
		payload["cardId"] = string(a.CardID)
		payload["fromZone"] = string(a.FromZone)
		payload["toZone"] = string(a.ToZone)
		if a.Position >= 0 {
			payload["position"] = a.Position
		}
	case ActionDrawCards:
		payload["playerId"] = string(a.PlayerID)
		payload["count"] = a.Count
	case ActionPlayCard:
		payload["cardId"] = string(a.CardID)
		payload["playerId"] = string(a.PlayerID)
		if len(a.Targets) > 0 {
			targets := make([]string, len(a.Targets))
			for i, t := range a.Targets {
				targets[i] = string(t)
			}
			payload["targets"] = targets
		}
	case ActionModifyStat:
		payload["target"] = a.Target.String()
		payload["stat"] = a.Stat
		payload["value"] = a.Value
	case ActionTapCard, ActionUntapCard:
		payload["cardId"] = string(a.CardID)
	case ActionDiscardCard:
		payload["playerId"] = string(a.PlayerID)
		payload["cardId"] = string(a.CardID)
	case ActionShuffleZone:
		payload["zoneId"] = string(a.ZoneID)
	case ActionAddCounter, ActionRemoveCounter:
		payload["target"] = a.Target.String()
		payload["counterType"] = string(a.CounterType)
		payload["count"] = a.Count
	case ActionSetTurnPhase:
		payload["phase"] = a.Phase
	case ActionViewZone:
		payload["playerId"] = string(a.PlayerID)
		payload["zoneId"] = string(a.ZoneID)
		if a.Count > 0 {
			payload["count"] = a.Count
		}
	}
	return payload
}

// RequestEvent wraps an action in the event that asks for it to be run.
func RequestEvent(a Action, triggeredBy string) game.Event {
	return game.NewEvent(RequestEventType(a.Type), payloadForAction(a), triggeredBy)
}

// EventForAction builds the event announcing that an action ran against the
// given game. The game supplies display data the action alone does not
// carry, like the played card's name or the cards a view revealed.
func EventForAction(g game.Game, a Action, triggeredBy string) game.Event {
	payload := payloadForAction(a)
	switch a.Type {
	case ActionPlayCard:
		if card, ok := g.FindCard(a.CardID); ok {
			payload["cardName"] = card.Name
			payload["cardType"] = card.Type
		}
	case ActionSetTurnPhase:
		phase, ok := game.ParsePhase(a.Phase)
		if !ok {
			phase = game.FirstPhase()
		}
		payload["phase"] = string(phase)
	case ActionViewZone:
		if view, err := g.ZoneViewFor(a.PlayerID, a.ZoneID, a.Count); err == nil {
			ids := make([]string, len(view.Cards))
			for i, cv := range view.Cards {
				ids[i] = cv.ID
			}
			payload["cards"] = ids
		}
	}
	return game.NewEvent(doneEventType(a.Type), payload, triggeredBy)
}

// NewActionErrorEvent reports a requested action that could not be resolved
// or executed.
func NewActionErrorEvent(actionType string, sourceEventID string, cause error) game.Event {
	return game.NewSystemEvent(game.EventActionError, map[string]interface{}{
		"actionType":  actionType,
		"sourceEvent": sourceEventID,
		"error":       cause.Error(),
	})
}

// payloadReader pulls typed fields out of an event payload, remembering the
// first coercion failure.
type payloadReader struct {
	payload map[string]interface{}
	err     error
}

func (r *payloadReader) str(key string) string {
	raw, ok := r.payload[key]
	if !ok {
		return ""
	}
	return cast.ToString(raw)
}

func (r *payloadReader) intOr(key string, fallback int) int {
	raw, ok := r.payload[key]
	if !ok {
		return fallback
	}
	n, err := cast.ToIntE(raw)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("field %q: %w", key, err)
		}
		return fallback
	}
	return n
}

func (r *payloadReader) cardIDs(key string) []game.CardID {
	raw, ok := r.payload[key]
	if !ok {
		return nil
	}
	values, err := cast.ToStringSliceE(raw)
	if err != nil {
		if r.err == nil {
			r.err = fmt.Errorf("field %q: %w", key, err)
		}
		return nil
	}
	ids := make([]game.CardID, len(values))
	for i, v := range values {
		ids[i] = game.CardID(v)
	}
	return ids
}

func (r *payloadReader) target(key string) TargetRef {
	s := r.str(key)
	if s == "" {
		return TargetRef{}
	}
	return RawTarget(s)
}

// FromRequestEvent parses a *_REQUESTED event back into the action it asks
// for. Field coercion is forgiving where a default makes sense (a missing
// draw count means one card) and strict where it does not (a non-numeric
// value is an error, not zero damage).
func FromRequestEvent(ev game.Event) (Action, error) {
	tag, ok := ev.Type.RequestedAction()
	if !ok {
		return Action{}, fmt.Errorf("event type %s does not request an action", ev.Type)
	}
	if !IsKnown(tag) {
		return Action{}, fmt.Errorf("unknown action type %q requested by event %s", tag, ev.ID)
	}

	p := &payloadReader{payload: ev.Payload}
	a := Action{Type: ActionType(tag)}
	switch a.Type {
	case ActionMoveCard:
		a.CardID = game.CardID(p.str("cardId"))
		a.FromZone = game.ZoneID(p.str("fromZone"))
		a.ToZone = game.ZoneID(p.str("toZone"))
		a.Position = p.intOr("position", -1)
	case ActionDrawCards:
		a.PlayerID = game.PlayerID(p.str("playerId"))
		a.Count = p.intOr("count", 1)
	case ActionPlayCard:
		a.CardID = game.CardID(p.str("cardId"))
		a.PlayerID = game.PlayerID(p.str("playerId"))
		a.Targets = p.cardIDs("targets")
	case ActionModifyStat:
		a.Target = p.target("target")
		a.Stat = p.str("stat")
		a.Value = p.intOr("value", 0)
	case ActionTapCard, ActionUntapCard:
		a.CardID = game.CardID(p.str("cardId"))
	case ActionDiscardCard:
		a.PlayerID = game.PlayerID(p.str("playerId"))
		a.CardID = game.CardID(p.str("cardId"))
	case ActionShuffleZone:
		a.ZoneID = game.ZoneID(p.str("zoneId"))
	case ActionAddCounter, ActionRemoveCounter:
		a.Target = p.target("target")
		a.CounterType = counters.CounterType(p.str("counterType"))
		a.Count = p.intOr("count", 1)
	case ActionSetTurnPhase:
		a.Phase = p.str("phase")
	case ActionViewZone:
		a.PlayerID = game.PlayerID(p.str("playerId"))
		a.ZoneID = game.ZoneID(p.str("zoneId"))
		a.Count = p.intOr("count", 0)
	}
	if p.err != nil {
		return Action{}, fmt.Errorf("request %s: %w", ev.Type, p.err)
	}
	return a, nil
}
