package actions

import (
	"fmt"

	"github.com/deckforge/engine-go/internal/game"
)

func validateViewZone(g game.Game, a Action) bool {
	if _, ok := g.FindPlayer(a.PlayerID); !ok {
		return false
	}
	_, err := g.ZoneViewFor(a.PlayerID, a.ZoneID, a.Count)
	return err == nil
}

// executeViewZone is a read: the game comes back untouched and the inspected
// cards travel on the ZONE_VIEWED event instead.
func executeViewZone(g game.Game, a Action) (game.Game, error) {
	if _, err := g.ZoneViewFor(a.PlayerID, a.ZoneID, a.Count); err != nil {
		return game.Game{}, fmt.Errorf("view zone: %w", err)
	}
	return g, nil
}

// ViewZoneResult resolves the zone view a VIEW_ZONE action asks for, applying
// the same visibility rules as executing it.
func ViewZoneResult(g game.Game, a Action) (game.ZoneView, error) {
	return g.ZoneViewFor(a.PlayerID, a.ZoneID, a.Count)
}
