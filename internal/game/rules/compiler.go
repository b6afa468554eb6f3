package rules

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/deckforge/engine-go/internal/game"
	"github.com/deckforge/engine-go/internal/game/actions"
)

// Compile turns a rule graph into event listeners ready to install on a
// game's event manager. Graph-structure problems and condition syntax errors
// abort the compile; action nodes with unknown action types are skipped with
// a warning so one bad node does not take down the rest of the rule set.
func Compile(graph RuleGraph, logger *zap.Logger) ([]game.Listener, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ruleSet, err := ExtractRules(graph)
	if err != nil {
		return nil, err
	}

	listeners := make([]game.Listener, 0, len(ruleSet))
	for _, rule := range ruleSet {
		listener, ok, err := compileRule(rule, logger)
		if err != nil {
			return nil, err
		}
		if ok {
			listeners = append(listeners, listener)
		}
	}
	return listeners, nil
}

func compileRule(rule Rule, logger *zap.Logger) (game.Listener, bool, error) {
	trigger := rule.Trigger
	if trigger.Data.EventType == "" {
		return game.Listener{}, false, fmt.Errorf("trigger %q has no event type", trigger.ID)
	}

	var cond *Condition
	if trigger.Data.Condition != "" {
		compiled, err := CompileCondition(trigger.Data.Condition)
		if err != nil {
			return game.Listener{}, false, fmt.Errorf("trigger %q: %w", trigger.ID, err)
		}
		cond = compiled
	}

	kept := make([]Node, 0, len(rule.Actions))
	for _, node := range rule.Actions {
		if !actions.IsKnown(node.Data.ActionType) {
			logger.Warn("skipping rule action with unknown action type",
				zap.String("trigger", trigger.ID),
				zap.String("node", node.ID),
				zap.String("actionType", node.Data.ActionType))
			continue
		}
		kept = append(kept, node)
	}
	if len(kept) == 0 {
		return game.Listener{}, false, nil
	}

	listener := game.Listener{
		ID:        trigger.ID,
		EventType: game.EventType(trigger.Data.EventType),
		Priority:  trigger.Data.Priority,
		Callback:  makeCallback(kept),
	}
	if cond != nil {
		listener.Condition = cond.Evaluate
	}
	return listener, true, nil
}

// makeCallback builds the listener body: each action node becomes a
// *_REQUESTED event with its parameters resolved against the triggering
// event. A node whose resolved parameters do not form a well-formed request
// yields an ACTION_ERROR event in its place.
func makeCallback(nodes []Node) func(game.Event, game.Game) ([]game.Event, error) {
	return func(ev game.Event, g game.Game) ([]game.Event, error) {
		out := make([]game.Event, 0, len(nodes))
		for _, node := range nodes {
			payload := ResolveTemplates(node.Data.Parameters, ev, g)
			request := game.NewSystemEvent(actions.RequestEventType(actions.ActionType(node.Data.ActionType)), payload)
			if _, err := actions.FromRequestEvent(request); err != nil {
				out = append(out, actions.NewActionErrorEvent(node.Data.ActionType, ev.ID, err))
				continue
			}
			out = append(out, request)
		}
		return out, nil
	}
}

// InstallRules subscribes compiled listeners to a manager, stopping at the
// first subscription failure.
func InstallRules(manager game.EventManager, listeners []game.Listener) (game.EventManager, error) {
	var err error
	for _, l := range listeners {
		manager, err = manager.Subscribe(l)
		if err != nil {
			return manager, fmt.Errorf("installing rule %q: %w", l.ID, err)
		}
	}
	return manager, nil
}
