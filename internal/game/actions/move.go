package actions

import (
	"fmt"

	"github.com/deckforge/engine-go/internal/game"
)

func validateMoveCard(g game.Game, a Action) bool {
	if _, ok := g.FindCard(a.CardID); !ok {
		return false
	}
	from, ok := g.FindZone(a.FromZone)
	if !ok || !from.Contains(a.CardID) {
		return false
	}
	to, ok := g.FindZone(a.ToZone)
	if !ok {
		return false
	}
	// A move within one zone never changes its size, so capacity only
	// matters across zones.
	if a.FromZone != a.ToZone && to.IsFull() {
		return false
	}
	return true
}

func executeMoveCard(g game.Game, a Action) (game.Game, error) {
	card, ok := g.FindCard(a.CardID)
	if !ok {
		return game.Game{}, fmt.Errorf("move card: card %s not in game", a.CardID)
	}
	from, ok := g.FindZone(a.FromZone)
	if !ok {
		return game.Game{}, fmt.Errorf("move card: zone %s not in game", a.FromZone)
	}

	from, removed := from.RemoveCard(a.CardID)
	if !removed {
		return game.Game{}, fmt.Errorf("move card: card %s not in zone %s", a.CardID, a.FromZone)
	}

	// Reordering within one zone reinserts into the freshly shrunk zone.
	to := from
	if a.FromZone != a.ToZone {
		to, ok = g.FindZone(a.ToZone)
		if !ok {
			return game.Game{}, fmt.Errorf("move card: zone %s not in game", a.ToZone)
		}
	}
	to, err := to.InsertCard(a.CardID, a.Position)
	if err != nil {
		return game.Game{}, fmt.Errorf("move card: %w", err)
	}

	next := g
	if a.FromZone != a.ToZone {
		if next, err = next.WithZone(from); err != nil {
			return game.Game{}, err
		}
	}
	if next, err = next.WithZone(to); err != nil {
		return game.Game{}, err
	}
	return next.WithCard(card.WithZone(to.ID))
}
