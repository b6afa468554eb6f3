package game

import (
	"github.com/deckforge/engine-go/internal/game/counters"
)

// Card is an immutable card instance. Updates go through the With* methods,
// which return a modified copy and never touch the receiver.
type Card struct {
	ID          CardID
	Name        string
	Text        string
	Type        string
	Owner       PlayerID
	CurrentZone ZoneID
	Properties  map[string]interface{}
	Counters    counters.Counters
	Tapped      bool
}

// NewCard creates a card owned by the given player. The card starts with no
// zone assignment; placement happens when it is added to a game.
func NewCard(id CardID, name, cardType string, owner PlayerID) (Card, error) {
	if id == "" {
		return Card{}, newValidationError("card.id", "must not be empty")
	}
	if name == "" {
		return Card{}, newValidationError("card.name", "must not be empty")
	}
	if owner == "" {
		return Card{}, newValidationError("card.owner", "must not be empty")
	}
	return Card{
		ID:    id,
		Name:  name,
		Type:  cardType,
		Owner: owner,
	}, nil
}

// WithText returns a copy with the rules text replaced.
func (c Card) WithText(text string) Card {
	next := c.Copy()
	next.Text = text
	return next
}

// WithZone returns a copy relocated to the given zone.
func (c Card) WithZone(zoneID ZoneID) Card {
	next := c.Copy()
	next.CurrentZone = zoneID
	return next
}

// WithTapped returns a copy with the tapped state replaced.
func (c Card) WithTapped(tapped bool) Card {
	next := c.Copy()
	next.Tapped = tapped
	return next
}

// WithProperty returns a copy with one property set.
func (c Card) WithProperty(key string, value interface{}) Card {
	next := c.Copy()
	if next.Properties == nil {
		next.Properties = make(map[string]interface{})
	}
	next.Properties[key] = value
	return next
}

// WithCounters returns a copy with the counter collection replaced.
func (c Card) WithCounters(cs counters.Counters) Card {
	next := c.Copy()
	next.Counters = cs.Copy()
	return next
}

// Property returns the named property and whether it is present.
func (c Card) Property(key string) (interface{}, bool) {
	v, ok := c.Properties[key]
	return v, ok
}

// Copy returns a deep copy of the card.
func (c Card) Copy() Card {
	next := c
	if c.Properties != nil {
		next.Properties = make(map[string]interface{}, len(c.Properties))
		for k, v := range c.Properties {
			next.Properties[k] = v
		}
	}
	next.Counters = c.Counters.Copy()
	return next
}
