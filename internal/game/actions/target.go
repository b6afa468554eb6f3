package actions

import "github.com/deckforge/engine-go/internal/game"

// TargetKind tags what a TargetRef points at.
type TargetKind string

const (
	// TargetPlayer and TargetCard reference a known entity kind directly.
	TargetPlayer TargetKind = "player"
	TargetCard   TargetKind = "card"
	// TargetRaw carries an untyped identifier from an external surface
	// (rule parameters, event payloads); resolution decides its kind.
	TargetRaw TargetKind = "raw"
)

// TargetRef is an explicit player-or-card reference.
type TargetRef struct {
	Kind   TargetKind
	Player game.PlayerID
	Card   game.CardID
	Raw    string
}

// PlayerTarget references a player.
func PlayerTarget(id game.PlayerID) TargetRef {
	return TargetRef{Kind: TargetPlayer, Player: id}
}

// CardTarget references a card.
func CardTarget(id game.CardID) TargetRef {
	return TargetRef{Kind: TargetCard, Card: id}
}

// RawTarget references an identifier whose kind is decided at resolution
// time: a player with that id wins over a card with that id.
func RawTarget(id string) TargetRef {
	return TargetRef{Kind: TargetRaw, Raw: id}
}

// IsZero reports an unset reference.
func (t TargetRef) IsZero() bool {
	return t.Kind == ""
}

// String returns the referenced identifier.
func (t TargetRef) String() string {
	switch t.Kind {
	case TargetPlayer:
		return string(t.Player)
	case TargetCard:
		return string(t.Card)
	default:
		return t.Raw
	}
}

// Target is a resolved reference: exactly one of Player or Card is set,
// reported by Kind.
type Target struct {
	Kind   TargetKind
	Player game.Player
	Card   game.Card
}

// ResolveTarget is the single lookup for player-or-card references. Raw
// references try players first, then cards.
func ResolveTarget(g game.Game, ref TargetRef) (Target, bool) {
	switch ref.Kind {
	case TargetPlayer:
		if p, ok := g.FindPlayer(ref.Player); ok {
			return Target{Kind: TargetPlayer, Player: p}, true
		}
	case TargetCard:
		if c, ok := g.FindCard(ref.Card); ok {
			return Target{Kind: TargetCard, Card: c}, true
		}
	case TargetRaw:
		if p, ok := g.FindPlayer(game.PlayerID(ref.Raw)); ok {
			return Target{Kind: TargetPlayer, Player: p}, true
		}
		if c, ok := g.FindCard(game.CardID(ref.Raw)); ok {
			return Target{Kind: TargetCard, Card: c}, true
		}
	}
	return Target{}, false
}
