package game

// Visibility controls who may inspect a zone's contents.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Ordering marks whether card order within a zone is meaningful.
type Ordering string

const (
	OrderingOrdered   Ordering = "ordered"
	OrderingUnordered Ordering = "unordered"
)

// Standard zone names used by the stock zone constructors. Actions that need a
// player's deck, hand, discard pile, or play area look them up by these names.
const (
	ZoneNameDeck        = "Deck"
	ZoneNameHand        = "Hand"
	ZoneNameDiscardPile = "Discard Pile"
	ZoneNamePlayArea    = "Play Area"
	ZoneNameStack       = "Stack"
)

// Zone is an immutable container of card references. An empty Owner marks a
// shared zone. MaxSize zero means unbounded.
type Zone struct {
	ID         ZoneID
	Name       string
	Owner      PlayerID
	Cards      []CardID
	Visibility Visibility
	Ordering   Ordering
	MaxSize    int
}

// NewZone creates an empty zone.
func NewZone(id ZoneID, name string, owner PlayerID, visibility Visibility, ordering Ordering) (Zone, error) {
	if id == "" {
		return Zone{}, newValidationError("zone.id", "must not be empty")
	}
	if name == "" {
		return Zone{}, newValidationError("zone.name", "must not be empty")
	}
	if visibility != VisibilityPublic && visibility != VisibilityPrivate {
		return Zone{}, newValidationError("zone.visibility", "unknown visibility %q", visibility)
	}
	if ordering != OrderingOrdered && ordering != OrderingUnordered {
		return Zone{}, newValidationError("zone.ordering", "unknown ordering %q", ordering)
	}
	return Zone{
		ID:         id,
		Name:       name,
		Owner:      owner,
		Visibility: visibility,
		Ordering:   ordering,
	}, nil
}

// NewDeck creates a player's deck: private, ordered.
func NewDeck(owner PlayerID) Zone {
	z, _ := NewZone(NewZoneID(), ZoneNameDeck, owner, VisibilityPrivate, OrderingOrdered)
	return z
}

// NewHand creates a player's hand: private, unordered.
func NewHand(owner PlayerID) Zone {
	z, _ := NewZone(NewZoneID(), ZoneNameHand, owner, VisibilityPrivate, OrderingUnordered)
	return z
}

// NewDiscardPile creates a player's discard pile: public, ordered.
func NewDiscardPile(owner PlayerID) Zone {
	z, _ := NewZone(NewZoneID(), ZoneNameDiscardPile, owner, VisibilityPublic, OrderingOrdered)
	return z
}

// NewPlayArea creates a player's play area: public, unordered.
func NewPlayArea(owner PlayerID) Zone {
	z, _ := NewZone(NewZoneID(), ZoneNamePlayArea, owner, VisibilityPublic, OrderingUnordered)
	return z
}

// NewStack creates the shared resolution stack: public, ordered.
func NewStack() Zone {
	z, _ := NewZone(NewZoneID(), ZoneNameStack, "", VisibilityPublic, OrderingOrdered)
	return z
}

// WithMaxSize returns a copy with the capacity bound set. Fails when the zone
// already holds more cards than the new bound.
func (z Zone) WithMaxSize(maxSize int) (Zone, error) {
	if maxSize < 0 {
		return Zone{}, newValidationError("zone.maxSize", "must not be negative: %d", maxSize)
	}
	if maxSize > 0 && len(z.Cards) > maxSize {
		return Zone{}, newValidationError("zone.maxSize", "zone %s holds %d cards, exceeds bound %d", z.ID, len(z.Cards), maxSize)
	}
	next := z.Copy()
	next.MaxSize = maxSize
	return next, nil
}

// WithCards returns a copy with the card list replaced. Fails past capacity.
func (z Zone) WithCards(cards []CardID) (Zone, error) {
	if z.MaxSize > 0 && len(cards) > z.MaxSize {
		return Zone{}, newValidationError("zone.cards", "zone %s capacity %d exceeded by %d cards", z.ID, z.MaxSize, len(cards))
	}
	next := z.Copy()
	next.Cards = make([]CardID, len(cards))
	copy(next.Cards, cards)
	return next, nil
}

// InsertCard returns a copy with the card inserted at the given position.
// A negative position or one past the end appends. Fails at capacity or when
// the card is already present.
func (z Zone) InsertCard(cardID CardID, position int) (Zone, error) {
	if z.Contains(cardID) {
		return Zone{}, newValidationError("zone.cards", "card %s already in zone %s", cardID, z.ID)
	}
	if z.IsFull() {
		return Zone{}, newValidationError("zone.cards", "zone %s is at capacity %d", z.ID, z.MaxSize)
	}
	next := z.Copy()
	if position < 0 || position >= len(next.Cards) {
		next.Cards = append(next.Cards, cardID)
		return next, nil
	}
	next.Cards = append(next.Cards, "")
	copy(next.Cards[position+1:], next.Cards[position:])
	next.Cards[position] = cardID
	return next, nil
}

// RemoveCard returns a copy without the card. The second return reports
// whether the card was present.
func (z Zone) RemoveCard(cardID CardID) (Zone, bool) {
	for i, id := range z.Cards {
		if id == cardID {
			next := z.Copy()
			next.Cards = append(next.Cards[:i], next.Cards[i+1:]...)
			return next, true
		}
	}
	return z, false
}

// Contains reports whether the card is in this zone.
func (z Zone) Contains(cardID CardID) bool {
	for _, id := range z.Cards {
		if id == cardID {
			return true
		}
	}
	return false
}

// IsFull reports whether the zone is at its capacity bound.
func (z Zone) IsFull() bool {
	return z.MaxSize > 0 && len(z.Cards) >= z.MaxSize
}

// CanShuffle reports whether shuffling is meaningful for this zone.
// Only ordered zones may be shuffled.
func (z Zone) CanShuffle() bool {
	return z.Ordering == OrderingOrdered
}

// Size returns the number of cards in the zone.
func (z Zone) Size() int {
	return len(z.Cards)
}

// Copy returns a deep copy of the zone.
func (z Zone) Copy() Zone {
	next := z
	if z.Cards != nil {
		next.Cards = make([]CardID, len(z.Cards))
		copy(next.Cards, z.Cards)
	}
	return next
}
