package game

// View types are read-only projections of game state with visibility rules
// applied. They carry plain types only so callers outside the engine can
// consume them without touching engine internals.

// CounterView is one counter entry on a card or player.
type CounterView struct {
	Type  string
	Count int
}

// CardView is a visible card.
type CardView struct {
	ID       string
	Name     string
	Type     string
	Tapped   bool
	Counters []CounterView
}

// ZoneView is a zone as seen by one viewer. For a hidden zone the card list
// is withheld but the card count stays visible.
type ZoneView struct {
	ID         string
	Name       string
	Owner      string
	Visibility string
	CardCount  int
	Cards      []CardView
	Hidden     bool
}

// PlayerView is a player's public state.
type PlayerView struct {
	ID        string
	Name      string
	Resources map[string]int
	Counters  []CounterView
}

// GameView is a whole-game projection for one viewer.
type GameView struct {
	ID            string
	TurnNumber    int
	Phase         string
	CurrentPlayer string
	Players       []PlayerView
	Zones         []ZoneView
}

// ZoneViewFor builds a view of one zone for the given viewer. Private zones
// are visible only to their owner. A positive count limits the view to the
// top count cards.
func (g Game) ZoneViewFor(viewer PlayerID, zoneID ZoneID, count int) (ZoneView, error) {
	z, ok := g.FindZone(zoneID)
	if !ok {
		return ZoneView{}, newValidationError("zone.id", "zone %s not in game", zoneID)
	}
	if z.Visibility == VisibilityPrivate && z.Owner != viewer {
		return ZoneView{}, newValidationError("zone.visibility", "zone %s is not visible to player %s", zoneID, viewer)
	}
	return g.buildZoneView(z, count, false), nil
}

// ViewFor builds a whole-game view for the given viewer. Zones the viewer
// may not inspect appear redacted rather than omitted.
func (g Game) ViewFor(viewer PlayerID) GameView {
	view := GameView{
		ID:            string(g.ID),
		TurnNumber:    g.TurnNumber,
		Phase:         string(g.Phase),
		CurrentPlayer: string(g.CurrentPlayer),
	}
	for _, p := range g.Players {
		view.Players = append(view.Players, buildPlayerView(p))
	}
	for _, z := range g.allZones() {
		hidden := z.Visibility == VisibilityPrivate && z.Owner != viewer
		view.Zones = append(view.Zones, g.buildZoneView(z, 0, hidden))
	}
	return view
}

func (g Game) buildZoneView(z Zone, count int, hidden bool) ZoneView {
	view := ZoneView{
		ID:         string(z.ID),
		Name:       z.Name,
		Owner:      string(z.Owner),
		Visibility: string(z.Visibility),
		CardCount:  len(z.Cards),
		Hidden:     hidden,
	}
	if hidden {
		return view
	}
	ids := z.Cards
	if count > 0 && count < len(ids) {
		ids = ids[:count]
	}
	for _, id := range ids {
		c, ok := g.FindCard(id)
		if !ok {
			continue
		}
		view.Cards = append(view.Cards, buildCardView(c))
	}
	return view
}

func buildCardView(c Card) CardView {
	view := CardView{
		ID:     string(c.ID),
		Name:   c.Name,
		Type:   c.Type,
		Tapped: c.Tapped,
	}
	for _, counter := range c.Counters {
		view.Counters = append(view.Counters, CounterView{Type: string(counter.Type), Count: counter.Count})
	}
	return view
}

func buildPlayerView(p Player) PlayerView {
	view := PlayerView{
		ID:   string(p.ID),
		Name: p.Name,
	}
	if p.Resources != nil {
		view.Resources = make(map[string]int, len(p.Resources))
		for k, v := range p.Resources {
			view.Resources[k] = v
		}
	}
	for _, counter := range p.Counters {
		view.Counters = append(view.Counters, CounterView{Type: string(counter.Type), Count: counter.Count})
	}
	return view
}
