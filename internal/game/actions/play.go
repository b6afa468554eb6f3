package actions

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/deckforge/engine-go/internal/game"
)

// manaCost reads the card's mana cost property. Cards without one are free.
func manaCost(c game.Card) (int, bool) {
	raw, ok := c.Property("manaCost")
	if !ok {
		return 0, true
	}
	cost, err := cast.ToIntE(raw)
	if err != nil || cost < 0 {
		return 0, false
	}
	return cost, true
}

func validatePlayCard(g game.Game, a Action) bool {
	player, ok := g.FindPlayer(a.PlayerID)
	if !ok {
		return false
	}
	card, ok := g.FindCard(a.CardID)
	if !ok {
		return false
	}
	hand, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameHand)
	if !ok || !hand.Contains(a.CardID) || card.CurrentZone != hand.ID {
		return false
	}
	cost, ok := manaCost(card)
	if !ok {
		return false
	}
	return player.Resource("mana") >= cost
}

// executePlayCard moves the card from the player's hand to their play area,
// paying the card's mana cost. Players without a play area get one created
// on the spot.
func executePlayCard(g game.Game, a Action) (game.Game, error) {
	player, ok := g.FindPlayer(a.PlayerID)
	if !ok {
		return game.Game{}, fmt.Errorf("play card: unknown player %s", a.PlayerID)
	}
	card, ok := g.FindCard(a.CardID)
	if !ok {
		return game.Game{}, fmt.Errorf("play card: unknown card %s", a.CardID)
	}
	hand, ok := g.PlayerZoneNamed(a.PlayerID, game.ZoneNameHand)
	if !ok {
		return game.Game{}, fmt.Errorf("play card: player %s has no hand", a.PlayerID)
	}
	cost, ok := manaCost(card)
	if !ok {
		return game.Game{}, fmt.Errorf("play card: card %s has a non-numeric mana cost", a.CardID)
	}
	if player.Resource("mana") < cost {
		return game.Game{}, fmt.Errorf("play card: player %s cannot pay %d mana", a.PlayerID, cost)
	}

	next := g
	var err error

	playArea, ok := next.PlayerZoneNamed(a.PlayerID, game.ZoneNamePlayArea)
	if !ok {
		playArea = game.NewPlayArea(a.PlayerID)
		if next, err = next.AddZone(playArea); err != nil {
			return game.Game{}, fmt.Errorf("play card: %w", err)
		}
		owner, _ := next.FindPlayer(a.PlayerID)
		if next, err = next.WithPlayer(owner.WithZoneAttached(playArea.ID)); err != nil {
			return game.Game{}, err
		}
	}

	hand, removed := hand.RemoveCard(a.CardID)
	if !removed {
		return game.Game{}, fmt.Errorf("play card: card %s not in hand", a.CardID)
	}
	playArea, err = playArea.InsertCard(a.CardID, -1)
	if err != nil {
		return game.Game{}, fmt.Errorf("play card: %w", err)
	}

	if next, err = next.WithZone(hand); err != nil {
		return game.Game{}, err
	}
	if next, err = next.WithZone(playArea); err != nil {
		return game.Game{}, err
	}
	if next, err = next.WithCard(card.WithZone(playArea.ID)); err != nil {
		return game.Game{}, err
	}
	if cost > 0 {
		player, _ = next.FindPlayer(a.PlayerID)
		if next, err = next.WithPlayer(player.AddResource("mana", -cost)); err != nil {
			return game.Game{}, err
		}
	}
	return next, nil
}
