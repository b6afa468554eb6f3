package game

import (
	"github.com/deckforge/engine-go/internal/game/counters"
)

// Player is an immutable player within a game. Resources hold named numeric
// pools (life, mana, ...); Zones lists the zone ids the player owns.
type Player struct {
	ID        PlayerID
	Name      string
	Resources map[string]int
	Zones     []ZoneID
	Counters  counters.Counters
}

// NewPlayer creates a player with no resources or zones.
func NewPlayer(id PlayerID, name string) (Player, error) {
	if id == "" {
		return Player{}, newValidationError("player.id", "must not be empty")
	}
	if name == "" {
		return Player{}, newValidationError("player.name", "must not be empty")
	}
	return Player{ID: id, Name: name}, nil
}

// WithResource returns a copy with the named resource set to value.
func (p Player) WithResource(name string, value int) Player {
	next := p.Copy()
	if next.Resources == nil {
		next.Resources = make(map[string]int)
	}
	next.Resources[name] = value
	return next
}

// AddResource returns a copy with delta added to the named resource.
// Absent resources count as zero.
func (p Player) AddResource(name string, delta int) Player {
	return p.WithResource(name, p.Resource(name)+delta)
}

// Resource returns the named resource value, zero when absent.
func (p Player) Resource(name string) int {
	return p.Resources[name]
}

// WithZoneAttached returns a copy with the zone id appended to the player's
// zone list. Attaching an already-listed zone is a no-op copy.
func (p Player) WithZoneAttached(zoneID ZoneID) Player {
	next := p.Copy()
	for _, id := range next.Zones {
		if id == zoneID {
			return next
		}
	}
	next.Zones = append(next.Zones, zoneID)
	return next
}

// OwnsZone reports whether the zone id is in the player's zone list.
func (p Player) OwnsZone(zoneID ZoneID) bool {
	for _, id := range p.Zones {
		if id == zoneID {
			return true
		}
	}
	return false
}

// WithCounters returns a copy with the counter collection replaced.
func (p Player) WithCounters(cs counters.Counters) Player {
	next := p.Copy()
	next.Counters = cs.Copy()
	return next
}

// Copy returns a deep copy of the player.
func (p Player) Copy() Player {
	next := p
	if p.Resources != nil {
		next.Resources = make(map[string]int, len(p.Resources))
		for k, v := range p.Resources {
			next.Resources[k] = v
		}
	}
	if p.Zones != nil {
		next.Zones = make([]ZoneID, len(p.Zones))
		copy(next.Zones, p.Zones)
	}
	next.Counters = p.Counters.Copy()
	return next
}
