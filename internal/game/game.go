package game

// Game is the immutable aggregate root of one session: every player, zone,
// and card, the shared stack, the turn state, and the owned event manager.
// All updates return a modified copy; a Game value is never changed in place.
type Game struct {
	ID               GameID
	Players          []Player
	Zones            []Zone
	Cards            []Card
	CurrentPlayer    PlayerID
	Phase            Phase
	TurnNumber       int
	Stack            Zone
	GlobalProperties map[string]interface{}
	Events           EventManager
}

// NewGame assembles and validates a game. Inputs are deep-copied, so callers
// keep no live references into the returned value. The shared stack zone and
// the event manager are created fresh; the game opens on the first phase of
// turn zero with no current player.
func NewGame(id GameID, players []Player, zones []Zone, cards []Card) (Game, error) {
	if id == "" {
		return Game{}, newValidationError("game.id", "must not be empty")
	}

	g := Game{
		ID:         id,
		Players:    make([]Player, len(players)),
		Zones:      make([]Zone, len(zones)),
		Cards:      make([]Card, len(cards)),
		Phase:      FirstPhase(),
		TurnNumber: 0,
		Stack:      NewStack(),
		Events:     NewEventManager(),
	}
	for i, p := range players {
		g.Players[i] = p.Copy()
	}
	for i, z := range zones {
		g.Zones[i] = z.Copy()
	}
	for i, c := range cards {
		g.Cards[i] = c.Copy()
	}

	if err := g.validate(); err != nil {
		return Game{}, err
	}
	return g, nil
}

// validate checks the cross-entity invariants: unique ids per collection,
// resolvable references, and card/zone membership agreement in both
// directions.
func (g Game) validate() error {
	playerIDs := make(map[PlayerID]struct{}, len(g.Players))
	for _, p := range g.Players {
		if p.ID == "" {
			return newValidationError("game.players", "player id must not be empty")
		}
		if _, dup := playerIDs[p.ID]; dup {
			return newValidationError("game.players", "duplicate player id %s", p.ID)
		}
		playerIDs[p.ID] = struct{}{}
	}

	zoneIDs := make(map[ZoneID]struct{}, len(g.Zones)+1)
	for _, z := range g.allZones() {
		if z.ID == "" {
			return newValidationError("game.zones", "zone id must not be empty")
		}
		if _, dup := zoneIDs[z.ID]; dup {
			return newValidationError("game.zones", "duplicate zone id %s", z.ID)
		}
		zoneIDs[z.ID] = struct{}{}
		if z.Owner != "" {
			if _, ok := playerIDs[z.Owner]; !ok {
				return newValidationError("game.zones", "zone %s owner %s not in game", z.ID, z.Owner)
			}
		}
	}

	cardIDs := make(map[CardID]struct{}, len(g.Cards))
	for _, c := range g.Cards {
		if c.ID == "" {
			return newValidationError("game.cards", "card id must not be empty")
		}
		if _, dup := cardIDs[c.ID]; dup {
			return newValidationError("game.cards", "duplicate card id %s", c.ID)
		}
		cardIDs[c.ID] = struct{}{}
		if _, ok := playerIDs[c.Owner]; !ok {
			return newValidationError("game.cards", "card %s owner %s not in game", c.ID, c.Owner)
		}
	}

	// Membership must agree in both directions: a card's zone lists the card,
	// and a zone's cards point back at the zone.
	for _, c := range g.Cards {
		if c.CurrentZone == "" {
			return newValidationError("game.cards", "card %s has no zone", c.ID)
		}
		z, ok := g.FindZone(c.CurrentZone)
		if !ok {
			return newValidationError("game.cards", "card %s references unknown zone %s", c.ID, c.CurrentZone)
		}
		if !z.Contains(c.ID) {
			return newValidationError("game.cards", "zone %s does not list card %s", z.ID, c.ID)
		}
	}
	for _, z := range g.allZones() {
		for _, cardID := range z.Cards {
			c, ok := g.FindCard(cardID)
			if !ok {
				return newValidationError("game.zones", "zone %s lists unknown card %s", z.ID, cardID)
			}
			if c.CurrentZone != z.ID {
				return newValidationError("game.zones", "card %s listed in zone %s but placed in %s", cardID, z.ID, c.CurrentZone)
			}
		}
	}

	for _, p := range g.Players {
		for _, zoneID := range p.Zones {
			if _, ok := zoneIDs[zoneID]; !ok {
				return newValidationError("game.players", "player %s references unknown zone %s", p.ID, zoneID)
			}
		}
	}

	if g.CurrentPlayer != "" {
		if _, ok := playerIDs[g.CurrentPlayer]; !ok {
			return newValidationError("game.currentPlayer", "player %s not in game", g.CurrentPlayer)
		}
	}
	if g.TurnNumber < 0 {
		return newValidationError("game.turnNumber", "must not be negative: %d", g.TurnNumber)
	}
	return nil
}

// allZones iterates the zone collection plus the shared stack.
func (g Game) allZones() []Zone {
	zones := make([]Zone, 0, len(g.Zones)+1)
	zones = append(zones, g.Zones...)
	if g.Stack.ID != "" {
		zones = append(zones, g.Stack)
	}
	return zones
}

// FindPlayer returns the player with the given id.
func (g Game) FindPlayer(id PlayerID) (Player, bool) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, true
		}
	}
	return Player{}, false
}

// FindCard returns the card with the given id.
func (g Game) FindCard(id CardID) (Card, bool) {
	for _, c := range g.Cards {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}

// FindZone returns the zone with the given id, checking the shared stack too.
func (g Game) FindZone(id ZoneID) (Zone, bool) {
	for _, z := range g.Zones {
		if z.ID == id {
			return z, true
		}
	}
	if g.Stack.ID == id {
		return g.Stack, true
	}
	return Zone{}, false
}

// IsCardInZone reports whether the zone exists and lists the card.
func (g Game) IsCardInZone(cardID CardID, zoneID ZoneID) bool {
	z, ok := g.FindZone(zoneID)
	return ok && z.Contains(cardID)
}

// PlayerZoneNamed returns the first zone owned by the player with the given
// name. Used to locate a player's deck, hand, discard pile, or play area.
func (g Game) PlayerZoneNamed(playerID PlayerID, name string) (Zone, bool) {
	for _, z := range g.Zones {
		if z.Owner == playerID && z.Name == name {
			return z, true
		}
	}
	return Zone{}, false
}

// WithPlayer returns a copy with the matching player replaced.
func (g Game) WithPlayer(p Player) (Game, error) {
	next := g.Copy()
	for i, cur := range next.Players {
		if cur.ID == p.ID {
			next.Players[i] = p.Copy()
			return next, nil
		}
	}
	return Game{}, newValidationError("game.players", "player %s not in game", p.ID)
}

// WithZone returns a copy with the matching zone replaced. Replacing the
// shared stack zone is allowed through the same call.
func (g Game) WithZone(z Zone) (Game, error) {
	next := g.Copy()
	for i, cur := range next.Zones {
		if cur.ID == z.ID {
			next.Zones[i] = z.Copy()
			return next, nil
		}
	}
	if next.Stack.ID == z.ID {
		next.Stack = z.Copy()
		return next, nil
	}
	return Game{}, newValidationError("game.zones", "zone %s not in game", z.ID)
}

// WithCard returns a copy with the matching card replaced.
func (g Game) WithCard(c Card) (Game, error) {
	next := g.Copy()
	for i, cur := range next.Cards {
		if cur.ID == c.ID {
			next.Cards[i] = c.Copy()
			return next, nil
		}
	}
	return Game{}, newValidationError("game.cards", "card %s not in game", c.ID)
}

// AddZone returns a copy with a new zone appended. The zone must carry a
// fresh id, an owner already in the game (or none), and no cards yet.
func (g Game) AddZone(z Zone) (Game, error) {
	if z.ID == "" {
		return Game{}, newValidationError("zone.id", "must not be empty")
	}
	if _, exists := g.FindZone(z.ID); exists {
		return Game{}, newValidationError("game.zones", "duplicate zone id %s", z.ID)
	}
	if z.Owner != "" {
		if _, ok := g.FindPlayer(z.Owner); !ok {
			return Game{}, newValidationError("game.zones", "zone %s owner %s not in game", z.ID, z.Owner)
		}
	}
	if len(z.Cards) > 0 {
		return Game{}, newValidationError("game.zones", "zone %s must be added empty", z.ID)
	}
	next := g.Copy()
	next.Zones = append(next.Zones, z.Copy())
	return next, nil
}

// WithCurrentPlayer returns a copy with the active player set. An empty id
// clears it.
func (g Game) WithCurrentPlayer(id PlayerID) (Game, error) {
	if id != "" {
		if _, ok := g.FindPlayer(id); !ok {
			return Game{}, newValidationError("game.currentPlayer", "player %s not in game", id)
		}
	}
	next := g.Copy()
	next.CurrentPlayer = id
	return next, nil
}

// WithPhase returns a copy with the turn phase set.
func (g Game) WithPhase(p Phase) (Game, error) {
	if !p.IsValid() {
		return Game{}, newValidationError("game.phase", "unknown phase %q", p)
	}
	next := g.Copy()
	next.Phase = p
	return next, nil
}

// WithTurnNumber returns a copy with the turn number set. The turn number
// never decreases.
func (g Game) WithTurnNumber(n int) (Game, error) {
	if n < g.TurnNumber {
		return Game{}, newValidationError("game.turnNumber", "must not decrease: %d -> %d", g.TurnNumber, n)
	}
	next := g.Copy()
	next.TurnNumber = n
	return next, nil
}

// AdvancePhase returns a copy moved to the next phase of the cycle. Wrapping
// past the last phase starts the next turn.
func (g Game) AdvancePhase() Game {
	next := g.Copy()
	phase, wrapped := next.Phase.Next()
	next.Phase = phase
	if wrapped {
		next.TurnNumber++
	}
	return next
}

// WithGlobalProperty returns a copy with one global property set.
func (g Game) WithGlobalProperty(key string, value interface{}) Game {
	next := g.Copy()
	if next.GlobalProperties == nil {
		next.GlobalProperties = make(map[string]interface{})
	}
	next.GlobalProperties[key] = value
	return next
}

// WithEvents returns a copy with the event manager replaced.
func (g Game) WithEvents(m EventManager) Game {
	next := g.Copy()
	next.Events = m.Copy()
	return next
}

// Copy returns a deep copy of the game.
func (g Game) Copy() Game {
	next := g
	if g.Players != nil {
		next.Players = make([]Player, len(g.Players))
		for i, p := range g.Players {
			next.Players[i] = p.Copy()
		}
	}
	if g.Zones != nil {
		next.Zones = make([]Zone, len(g.Zones))
		for i, z := range g.Zones {
			next.Zones[i] = z.Copy()
		}
	}
	if g.Cards != nil {
		next.Cards = make([]Card, len(g.Cards))
		for i, c := range g.Cards {
			next.Cards[i] = c.Copy()
		}
	}
	next.Stack = g.Stack.Copy()
	if g.GlobalProperties != nil {
		next.GlobalProperties = make(map[string]interface{}, len(g.GlobalProperties))
		for k, v := range g.GlobalProperties {
			next.GlobalProperties[k] = v
		}
	}
	next.Events = g.Events.Copy()
	return next
}
