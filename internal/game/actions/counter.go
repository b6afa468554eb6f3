package actions

import (
	"fmt"

	"github.com/deckforge/engine-go/internal/game"
)

func validateAddCounter(g game.Game, a Action) bool {
	if a.CounterType == "" || a.Count < 1 {
		return false
	}
	_, ok := ResolveTarget(g, a.Target)
	return ok
}

func executeAddCounter(g game.Game, a Action) (game.Game, error) {
	target, ok := ResolveTarget(g, a.Target)
	if !ok {
		return game.Game{}, fmt.Errorf("add counter: target %s not found", a.Target)
	}
	switch target.Kind {
	case TargetPlayer:
		return g.WithPlayer(target.Player.WithCounters(target.Player.Counters.Add(a.CounterType, a.Count)))
	case TargetCard:
		return g.WithCard(target.Card.WithCounters(target.Card.Counters.Add(a.CounterType, a.Count)))
	default:
		return game.Game{}, fmt.Errorf("add counter: unresolvable target kind %q", target.Kind)
	}
}

func validateRemoveCounter(g game.Game, a Action) bool {
	if a.CounterType == "" || a.Count < 1 {
		return false
	}
	target, ok := ResolveTarget(g, a.Target)
	if !ok {
		return false
	}
	switch target.Kind {
	case TargetPlayer:
		return target.Player.Counters.Has(a.CounterType)
	case TargetCard:
		return target.Card.Counters.Has(a.CounterType)
	default:
		return false
	}
}

// executeRemoveCounter strips up to a.Count counters of the given type from
// the target. Removing more than the target holds clamps at zero rather than
// failing.
func executeRemoveCounter(g game.Game, a Action) (game.Game, error) {
	target, ok := ResolveTarget(g, a.Target)
	if !ok {
		return game.Game{}, fmt.Errorf("remove counter: target %s not found", a.Target)
	}
	switch target.Kind {
	case TargetPlayer:
		remaining, present := target.Player.Counters.Remove(a.CounterType, a.Count)
		if !present {
			return game.Game{}, fmt.Errorf("remove counter: player %s has no %s counters", target.Player.ID, a.CounterType)
		}
		return g.WithPlayer(target.Player.WithCounters(remaining))
	case TargetCard:
		remaining, present := target.Card.Counters.Remove(a.CounterType, a.Count)
		if !present {
			return game.Game{}, fmt.Errorf("remove counter: card %s has no %s counters", target.Card.ID, a.CounterType)
		}
		return g.WithCard(target.Card.WithCounters(remaining))
	default:
		return game.Game{}, fmt.Errorf("remove counter: unresolvable target kind %q", target.Kind)
	}
}
