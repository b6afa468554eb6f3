// Package scenario loads self-contained game setups from YAML and runs
// scripted action sequences against them. A scenario bundles the starting
// state, a rule graph, and the script; the runner reports every action,
// every rule-requested follow-up, and a checksum of the final state.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deckforge/engine-go/internal/game"
	"github.com/deckforge/engine-go/internal/game/rules"
)

// Scenario is the YAML document root.
type Scenario struct {
	Name   string          `yaml:"name"`
	Game   GameSpec        `yaml:"game"`
	Rules  rules.RuleGraph `yaml:"rules"`
	Script []Step          `yaml:"script"`
}

// GameSpec describes the starting state.
type GameSpec struct {
	ID            string       `yaml:"id"`
	CurrentPlayer string       `yaml:"currentPlayer"`
	Players       []PlayerSpec `yaml:"players"`
}

// PlayerSpec describes one player and the zones they own.
type PlayerSpec struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Resources map[string]int `yaml:"resources"`
	Zones     []ZoneSpec     `yaml:"zones"`
}

// ZoneSpec describes one zone with its starting cards. Stock zone names
// (Deck, Hand, Discard Pile, Play Area) get their standard visibility and
// ordering; custom zones may set both explicitly.
type ZoneSpec struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	Visibility string     `yaml:"visibility,omitempty"`
	Ordering   string     `yaml:"ordering,omitempty"`
	Cards      []CardSpec `yaml:"cards"`
}

// CardSpec describes one card.
type CardSpec struct {
	ID         string                 `yaml:"id"`
	Name       string                 `yaml:"name"`
	Type       string                 `yaml:"type"`
	Text       string                 `yaml:"text,omitempty"`
	Tapped     bool                   `yaml:"tapped,omitempty"`
	Properties map[string]interface{} `yaml:"properties,omitempty"`
}

// Step is one scripted entry: either an action to execute or a raw event to
// publish, never both. Action params use the same field names as the action's
// request event payload; event params become the event payload as-is.
type Step struct {
	Action      string                 `yaml:"action,omitempty"`
	Event       string                 `yaml:"event,omitempty"`
	Params      map[string]interface{} `yaml:"params"`
	TriggeredBy string                 `yaml:"triggeredBy,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses scenario YAML.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	if sc.Game.ID == "" {
		return nil, fmt.Errorf("scenario: game.id must not be empty")
	}
	return &sc, nil
}

// Build assembles the starting game state through the regular factories, so
// a scenario cannot describe a state the engine would reject.
func (s *Scenario) Build() (game.Game, error) {
	players := make([]game.Player, 0, len(s.Game.Players))
	var zones []game.Zone
	var cards []game.Card

	for _, ps := range s.Game.Players {
		p, err := game.NewPlayer(game.PlayerID(ps.ID), ps.Name)
		if err != nil {
			return game.Game{}, fmt.Errorf("player %s: %w", ps.ID, err)
		}
		for name, value := range ps.Resources {
			p = p.WithResource(name, value)
		}
		for _, zs := range ps.Zones {
			zone, zoneCards, err := buildZone(zs, p.ID)
			if err != nil {
				return game.Game{}, fmt.Errorf("player %s: %w", ps.ID, err)
			}
			p = p.WithZoneAttached(zone.ID)
			zones = append(zones, zone)
			cards = append(cards, zoneCards...)
		}
		players = append(players, p)
	}

	g, err := game.NewGame(game.GameID(s.Game.ID), players, zones, cards)
	if err != nil {
		return game.Game{}, err
	}
	if s.Game.CurrentPlayer != "" {
		g, err = g.WithCurrentPlayer(game.PlayerID(s.Game.CurrentPlayer))
		if err != nil {
			return game.Game{}, err
		}
	}
	return g, nil
}

func buildZone(zs ZoneSpec, owner game.PlayerID) (game.Zone, []game.Card, error) {
	visibility, ordering := zoneDefaults(zs.Name)
	if zs.Visibility != "" {
		visibility = game.Visibility(zs.Visibility)
	}
	if zs.Ordering != "" {
		ordering = game.Ordering(zs.Ordering)
	}
	id := game.ZoneID(zs.ID)
	if id == "" {
		id = game.NewZoneID()
	}
	zone, err := game.NewZone(id, zs.Name, owner, visibility, ordering)
	if err != nil {
		return game.Zone{}, nil, err
	}

	cards := make([]game.Card, 0, len(zs.Cards))
	ids := make([]game.CardID, 0, len(zs.Cards))
	for _, cs := range zs.Cards {
		card, err := buildCard(cs, owner, zone.ID)
		if err != nil {
			return game.Zone{}, nil, fmt.Errorf("zone %s: %w", zone.ID, err)
		}
		cards = append(cards, card)
		ids = append(ids, card.ID)
	}
	zone, err = zone.WithCards(ids)
	if err != nil {
		return game.Zone{}, nil, err
	}
	return zone, cards, nil
}

func zoneDefaults(name string) (game.Visibility, game.Ordering) {
	switch name {
	case game.ZoneNameDeck:
		return game.VisibilityPrivate, game.OrderingOrdered
	case game.ZoneNameHand:
		return game.VisibilityPrivate, game.OrderingUnordered
	case game.ZoneNameDiscardPile, game.ZoneNameStack:
		return game.VisibilityPublic, game.OrderingOrdered
	default:
		return game.VisibilityPublic, game.OrderingUnordered
	}
}

func buildCard(cs CardSpec, owner game.PlayerID, zoneID game.ZoneID) (game.Card, error) {
	id := game.CardID(cs.ID)
	if id == "" {
		id = game.NewCardID()
	}
	card, err := game.NewCard(id, cs.Name, cs.Type, owner)
	if err != nil {
		return game.Card{}, err
	}
	if cs.Text != "" {
		card = card.WithText(cs.Text)
	}
	card = card.WithZone(zoneID).WithTapped(cs.Tapped)
	for k, v := range cs.Properties {
		card = card.WithProperty(k, v)
	}
	return card, nil
}
