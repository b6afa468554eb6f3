package actions

import (
	"fmt"
	"sort"

	"github.com/deckforge/engine-go/internal/game"
)

// handler pairs the two halves of one action kind.
type handler struct {
	validate func(game.Game, Action) bool
	execute  func(game.Game, Action) (game.Game, error)
}

var handlers = map[ActionType]handler{
	ActionMoveCard:      {validateMoveCard, executeMoveCard},
	ActionDrawCards:     {validateDrawCards, executeDrawCards},
	ActionPlayCard:      {validatePlayCard, executePlayCard},
	ActionModifyStat:    {validateModifyStat, executeModifyStat},
	ActionTapCard:       {validateTapCard, executeTapCard},
	ActionUntapCard:     {validateUntapCard, executeUntapCard},
	ActionDiscardCard:   {validateDiscardCard, executeDiscardCard},
	ActionShuffleZone:   {validateShuffleZone, executeShuffleZone},
	ActionAddCounter:    {validateAddCounter, executeAddCounter},
	ActionRemoveCounter: {validateRemoveCounter, executeRemoveCounter},
	ActionSetTurnPhase:  {validateSetTurnPhase, executeSetTurnPhase},
	ActionViewZone:      {validateViewZone, executeViewZone},
}

// Validate reports whether the action is legal against the snapshot. A false
// return is the normal "cannot act now" signal; the error return fires only
// for action types outside the closed set.
func Validate(g game.Game, a Action) (bool, error) {
	h, ok := handlers[a.Type]
	if !ok {
		return false, fmt.Errorf("unknown action type %q", a.Type)
	}
	return h.validate(g, a), nil
}

// Execute applies the action and returns the next snapshot. Callers are
// expected to Validate first; executing an invalid action is a programmer
// error reported as a descriptive error, never a panic.
func Execute(g game.Game, a Action) (game.Game, error) {
	h, ok := handlers[a.Type]
	if !ok {
		return game.Game{}, fmt.Errorf("unknown action type %q", a.Type)
	}
	return h.execute(g, a)
}

// CanExecute wraps Validate for callers that only want a yes/no answer:
// unknown action types and any unexpected failure come back as false.
func CanExecute(g game.Game, a Action) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	legal, err := Validate(g, a)
	return err == nil && legal
}

// IsKnown reports whether the string names an action in the closed set.
func IsKnown(actionType string) bool {
	_, ok := handlers[ActionType(actionType)]
	return ok
}

// KnownTypes returns the closed verb set in stable order.
func KnownTypes() []ActionType {
	types := make([]ActionType, 0, len(handlers))
	for t := range handlers {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
