package actions

import (
	"github.com/deckforge/engine-go/internal/game"
)

// validateSetTurnPhase always passes: unknown phase names are not an error,
// they reset the turn to the first phase on execute.
func validateSetTurnPhase(g game.Game, a Action) bool {
	return true
}

func executeSetTurnPhase(g game.Game, a Action) (game.Game, error) {
	phase, ok := game.ParsePhase(a.Phase)
	if !ok {
		phase = game.FirstPhase()
	}
	return g.WithPhase(phase)
}
