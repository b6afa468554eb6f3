package actions

import (
	"fmt"

	"github.com/deckforge/engine-go/internal/game"
)

func validateTapCard(g game.Game, a Action) bool {
	card, ok := g.FindCard(a.CardID)
	return ok && !card.Tapped
}

func executeTapCard(g game.Game, a Action) (game.Game, error) {
	card, ok := g.FindCard(a.CardID)
	if !ok {
		return game.Game{}, fmt.Errorf("tap card: unknown card %s", a.CardID)
	}
	if card.Tapped {
		return game.Game{}, fmt.Errorf("tap card: card %s is already tapped", a.CardID)
	}
	return g.WithCard(card.WithTapped(true))
}

func validateUntapCard(g game.Game, a Action) bool {
	card, ok := g.FindCard(a.CardID)
	return ok && card.Tapped
}

func executeUntapCard(g game.Game, a Action) (game.Game, error) {
	card, ok := g.FindCard(a.CardID)
	if !ok {
		return game.Game{}, fmt.Errorf("untap card: unknown card %s", a.CardID)
	}
	if !card.Tapped {
		return game.Game{}, fmt.Errorf("untap card: card %s is not tapped", a.CardID)
	}
	return g.WithCard(card.WithTapped(false))
}
