package actions

import (
	"fmt"

	"github.com/deckforge/engine-go/internal/game"
)

func validateDiscardCard(g game.Game, a Action) bool {
	card, ok := g.FindCard(a.CardID)
	if !ok {
		return false
	}
	hand, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameHand)
	if !ok || !hand.Contains(a.CardID) || card.CurrentZone != hand.ID {
		return false
	}
	discard, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameDiscardPile)
	if !ok {
		return false
	}
	return !discard.IsFull()
}

// executeDiscardCard moves a card from the player's hand to the top of their
// discard pile. Unlike playing a card, discarding never creates zones: a
// player with no discard pile cannot discard.
func executeDiscardCard(g game.Game, a Action) (game.Game, error) {
	card, ok := g.FindCard(a.CardID)
	if !ok {
		return game.Game{}, fmt.Errorf("discard card: unknown card %s", a.CardID)
	}
	hand, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameHand)
	if !ok {
		return game.Game{}, fmt.Errorf("discard card: player %s has no hand", a.PlayerID)
	}
	discard, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameDiscardPile)
	if !ok {
		return game.Game{}, fmt.Errorf("discard card: player %s has no discard pile", a.PlayerID)
	}

	hand, removed := hand.RemoveCard(a.CardID)
	if !removed {
		return game.Game{}, fmt.Errorf("discard card: card %s not in hand", a.CardID)
	}
	discard, err := discard.InsertCard(a.CardID, -1)
	if err != nil {
		return game.Game{}, fmt.Errorf("discard card: %w", err)
	}

	next, err := g.WithZone(hand)
	if err != nil {
		return game.Game{}, err
	}
	if next, err = next.WithZone(discard); err != nil {
		return game.Game{}, err
	}
	return next.WithCard(card.WithZone(discard.ID))
}
