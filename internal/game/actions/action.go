// Package actions implements the closed set of state-transition verbs that
// drive a game. Every action kind has a validate half answering "is this
// legal against the current snapshot" and an execute half producing the next
// snapshot. Actions never mutate the game they are given.
package actions

import (
	"github.com/deckforge/engine-go/internal/game"
	"github.com/deckforge/engine-go/internal/game/counters"
)

// ActionType tags an action with its verb.
type ActionType string

const (
	ActionMoveCard      ActionType = "MOVE_CARD"
	ActionDrawCards     ActionType = "DRAW_CARDS"
	ActionPlayCard      ActionType = "PLAY_CARD"
	ActionModifyStat    ActionType = "MODIFY_STAT"
	ActionTapCard       ActionType = "TAP_CARD"
	ActionUntapCard     ActionType = "UNTAP_CARD"
	ActionDiscardCard   ActionType = "DISCARD_CARD"
	ActionShuffleZone   ActionType = "SHUFFLE_ZONE"
	ActionAddCounter    ActionType = "ADD_COUNTER"
	ActionRemoveCounter ActionType = "REMOVE_COUNTER"
	ActionSetTurnPhase  ActionType = "SET_TURN_PHASE"
	ActionViewZone      ActionType = "VIEW_ZONE"
)

// Action is one state-transition request. Only the fields relevant to the
// Type are set; the New* constructors fix the right ones per verb.
type Action struct {
	Type ActionType

	CardID   game.CardID
	PlayerID game.PlayerID
	FromZone game.ZoneID
	ToZone   game.ZoneID
	ZoneID   game.ZoneID

	// Position is the insertion index for MOVE_CARD; negative appends.
	Position int

	// Count is the card count for DRAW_CARDS, the counter amount for
	// ADD_COUNTER/REMOVE_COUNTER, and the view limit for VIEW_ZONE
	// (zero views the whole zone).
	Count int

	Targets []game.CardID

	Target      TargetRef
	Stat        string
	Value       int
	CounterType counters.CounterType
	Phase       string
}

// NewMoveCard moves a card between zones, appending to the destination.
func NewMoveCard(cardID game.CardID, fromZone, toZone game.ZoneID) Action {
	return Action{Type: ActionMoveCard, CardID: cardID, FromZone: fromZone, ToZone: toZone, Position: -1}
}

// NewMoveCardAt moves a card between zones, inserting at the given position.
func NewMoveCardAt(cardID game.CardID, fromZone, toZone game.ZoneID, position int) Action {
	return Action{Type: ActionMoveCard, CardID: cardID, FromZone: fromZone, ToZone: toZone, Position: position}
}

// NewDrawCards draws count cards from the player's deck into their hand.
func NewDrawCards(playerID game.PlayerID, count int) Action {
	return Action{Type: ActionDrawCards, PlayerID: playerID, Count: count}
}

// NewPlayCard plays a card from the player's hand into their play area.
func NewPlayCard(cardID game.CardID, playerID game.PlayerID, targets ...game.CardID) Action {
	return Action{Type: ActionPlayCard, CardID: cardID, PlayerID: playerID, Targets: targets}
}

// NewModifyStat adds value to a player resource or card numeric property.
func NewModifyStat(target TargetRef, stat string, value int) Action {
	return Action{Type: ActionModifyStat, Target: target, Stat: stat, Value: value}
}

// NewTapCard taps an untapped card.
func NewTapCard(cardID game.CardID) Action {
	return Action{Type: ActionTapCard, CardID: cardID}
}

// NewUntapCard untaps a tapped card.
func NewUntapCard(cardID game.CardID) Action {
	return Action{Type: ActionUntapCard, CardID: cardID}
}

// NewDiscardCard moves a card from the player's hand to their discard pile.
func NewDiscardCard(playerID game.PlayerID, cardID game.CardID) Action {
	return Action{Type: ActionDiscardCard, PlayerID: playerID, CardID: cardID}
}

// NewShuffleZone shuffles an ordered zone.
func NewShuffleZone(zoneID game.ZoneID) Action {
	return Action{Type: ActionShuffleZone, ZoneID: zoneID}
}

// NewAddCounter adds count counters of the given type to the target.
func NewAddCounter(target TargetRef, counterType counters.CounterType, count int) Action {
	return Action{Type: ActionAddCounter, Target: target, CounterType: counterType, Count: count}
}

// NewRemoveCounter removes up to count counters of the given type from the
// target.
func NewRemoveCounter(target TargetRef, counterType counters.CounterType, count int) Action {
	return Action{Type: ActionRemoveCounter, Target: target, CounterType: counterType, Count: count}
}

// NewSetTurnPhase sets the turn phase by name. Unknown names reset the game
// to the first phase of the cycle.
func NewSetTurnPhase(phase string) Action {
	return Action{Type: ActionSetTurnPhase, Phase: phase}
}

// NewViewZone inspects a zone as the given player. A positive count limits
// the view to the top count cards.
func NewViewZone(playerID game.PlayerID, zoneID game.ZoneID, count int) Action {
	return Action{Type: ActionViewZone, PlayerID: playerID, ZoneID: zoneID, Count: count}
}
