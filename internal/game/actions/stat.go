package actions

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/deckforge/engine-go/internal/game"
)

func validateModifyStat(g game.Game, a Action) bool {
	if a.Stat == "" {
		return false
	}
	target, ok := ResolveTarget(g, a.Target)
	if !ok {
		return false
	}
	if target.Kind == TargetCard {
		if raw, has := target.Card.Property(a.Stat); has {
			if _, err := cast.ToIntE(raw); err != nil {
				return false
			}
		}
	}
	return true
}

// executeModifyStat applies a signed delta to the target's stat. Player
// targets adjust the named resource; card targets adjust the named property,
// treating an absent property as zero.
func executeModifyStat(g game.Game, a Action) (game.Game, error) {
	target, ok := ResolveTarget(g, a.Target)
	if !ok {
		return game.Game{}, fmt.Errorf("modify stat: target %s not found", a.Target)
	}
	switch target.Kind {
	case TargetPlayer:
		return g.WithPlayer(target.Player.AddResource(a.Stat, a.Value))
	case TargetCard:
		current := 0
		if raw, has := target.Card.Property(a.Stat); has {
			parsed, err := cast.ToIntE(raw)
			if err != nil {
				return game.Game{}, fmt.Errorf("modify stat: card %s property %q is not numeric", target.Card.ID, a.Stat)
			}
			current = parsed
		}
		return g.WithCard(target.Card.WithProperty(a.Stat, current+a.Value))
	default:
		return game.Game{}, fmt.Errorf("modify stat: unresolvable target kind %q", target.Kind)
	}
}
