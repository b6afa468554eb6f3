package actions

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/deckforge/engine-go/internal/game"
)

func validateShuffleZone(g game.Game, a Action) bool {
	zone, ok := g.FindZone(a.ZoneID)
	return ok && zone.CanShuffle() && zone.Size() > 0
}

// shuffleSeed derives a stable seed from the game identity, the zone and the
// turn number, so replaying the same action on the same state yields the
// same order.
func shuffleSeed(g game.Game, zoneID game.ZoneID) int64 {
	h := fnv.New64a()
	h.Write([]byte(g.ID))
	h.Write([]byte{0})
	h.Write([]byte(zoneID))
	h.Write([]byte{0})
	h.Write([]byte(g.Phase))
	h.Write([]byte{byte(g.TurnNumber), byte(g.TurnNumber >> 8)})
	return int64(h.Sum64())
}

func executeShuffleZone(g game.Game, a Action) (game.Game, error) {
	zone, ok := g.FindZone(a.ZoneID)
	if !ok {
		return game.Game{}, fmt.Errorf("shuffle zone: unknown zone %s", a.ZoneID)
	}
	if !zone.CanShuffle() {
		return game.Game{}, fmt.Errorf("shuffle zone: zone %s is not ordered", a.ZoneID)
	}

	shuffled := make([]game.CardID, len(zone.Cards))
	copy(shuffled, zone.Cards)
	rng := rand.New(rand.NewSource(shuffleSeed(g, zone.ID)))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	zone, err := zone.WithCards(shuffled)
	if err != nil {
		return game.Game{}, fmt.Errorf("shuffle zone: %w", err)
	}
	return g.WithZone(zone)
}
