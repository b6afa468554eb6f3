package actions

import (
	"fmt"

	"github.com/deckforge/engine-go/internal/game"
)

func validateDrawCards(g game.Game, a Action) bool {
	if a.Count < 1 {
		return false
	}
	if _, ok := g.FindPlayer(a.PlayerID); !ok {
		return false
	}
	deck, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameDeck)
	if !ok || deck.Size() < a.Count {
		return false
	}
	hand, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameHand)
	if !ok {
		return false
	}
	if hand.MaxSize > 0 && hand.Size()+a.Count > hand.MaxSize {
		return false
	}
	return true
}

// executeDrawCards takes a.Count cards off the top of the deck in order and
// appends them to the hand, so the first card drawn ends up first of the
// drawn run.
func executeDrawCards(g game.Game, a Action) (game.Game, error) {
	deck, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameDeck)
	if !ok {
		return game.Game{}, fmt.Errorf("draw cards: player %s has no deck", a.PlayerID)
	}
	hand, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameHand)
	if !ok {
		return game.Game{}, fmt.Errorf("draw cards: player %s has no hand", a.PlayerID)
	}
	if deck.Size() < a.Count {
		return game.Game{}, fmt.Errorf("draw cards: deck has %d cards, need %d", deck.Size(), a.Count)
	}

	drawn := make([]game.CardID, a.Count)
	copy(drawn, deck.Cards[:a.Count])

	next := g
	var err error
	for _, cardID := range drawn {
		deck, ok = next.PlayerZoneNamed(a.PlayerID, game.ZoneNameDeck)
		if !ok {
			return game.Game{}, fmt.Errorf("draw cards: player %s has no deck", a.PlayerID)
		}
		hand, ok = next.PlayerZoneNamed(a.PlayerID, game.ZoneNameHand)
		if !ok {
			return game.Game{}, fmt.Errorf("draw cards: player %s has no hand", a.PlayerID)
		}

		deck, removed := deck.RemoveCard(cardID)
		if !removed {
			return game.Game{}, fmt.Errorf("draw cards: card %s left the deck mid-draw", cardID)
		}
		hand, err = hand.InsertCard(cardID, -1)
		if err != nil {
			return game.Game{}, fmt.Errorf("draw cards: %w", err)
		}

		if next, err = next.WithZone(deck); err != nil {
			return game.Game{}, err
		}
		if next, err = next.WithZone(hand); err != nil {
			return game.Game{}, err
		}

		card, ok := next.FindCard(cardID)
		if !ok {
			return game.Game{}, fmt.Errorf("draw cards: card %s not in game", cardID)
		}
		if next, err = next.WithCard(card.WithZone(hand.ID)); err != nil {
			return game.Game{}, err
		}
	}
	return next, nil
}
