// Package rules compiles visual rule graphs into event listeners. A graph
// pairs trigger nodes (which event, under what condition, at what priority)
// with action nodes (which action to request, with what parameters); edges
// wire triggers to the actions they fire.
package rules

import (
	"fmt"
)

// NodeKind distinguishes trigger nodes from action nodes.
type NodeKind string

const (
	NodeTrigger NodeKind = "trigger"
	NodeAction  NodeKind = "action"
)

// NodeData carries the kind-specific payload of a node. Trigger nodes use
// EventType, Condition and Priority; action nodes use ActionType and
// Parameters. Label is free text from the editor and has no runtime effect.
type NodeData struct {
	EventType  string                 `json:"eventType,omitempty" yaml:"eventType,omitempty"`
	Condition  string                 `json:"condition,omitempty" yaml:"condition,omitempty"`
	Priority   int                    `json:"priority,omitempty" yaml:"priority,omitempty"`
	Label      string                 `json:"label,omitempty" yaml:"label,omitempty"`
	ActionType string                 `json:"actionType,omitempty" yaml:"actionType,omitempty"`
	Parameters map[string]interface{} `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// Node is one box in the rule graph.
type Node struct {
	ID   string   `json:"id" yaml:"id"`
	Kind NodeKind `json:"kind" yaml:"kind"`
	Data NodeData `json:"data" yaml:"data"`
}

// Edge connects a trigger node to an action node by id.
type Edge struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
}

// RuleGraph is the serialized form a rule editor produces.
type RuleGraph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Rule is one trigger with the actions it fires, in edge-declaration order.
type Rule struct {
	Trigger Node
	Actions []Node
}

// ExtractRules groups the graph into rules. Rules come back in the order the
// triggers first appear in the edge list, actions in edge order, so the same
// graph always yields the same rules. Triggers with no connected action
// produce no rule.
func ExtractRules(graph RuleGraph) ([]Rule, error) {
	nodes := make(map[string]Node, len(graph.Nodes))
	for _, n := range graph.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("rule graph: node with empty id")
		}
		if _, dup := nodes[n.ID]; dup {
			return nil, fmt.Errorf("rule graph: duplicate node id %q", n.ID)
		}
		if n.Kind != NodeTrigger && n.Kind != NodeAction {
			return nil, fmt.Errorf("rule graph: node %q has unknown kind %q", n.ID, n.Kind)
		}
		nodes[n.ID] = n
	}

	byTrigger := make(map[string]*Rule)
	var order []string
	for _, e := range graph.Edges {
		source, ok := nodes[e.Source]
		if !ok {
			return nil, fmt.Errorf("rule graph: edge source %q does not exist", e.Source)
		}
		target, ok := nodes[e.Target]
		if !ok {
			return nil, fmt.Errorf("rule graph: edge target %q does not exist", e.Target)
		}
		if source.Kind != NodeTrigger {
			return nil, fmt.Errorf("rule graph: edge source %q is not a trigger node", e.Source)
		}
		if target.Kind != NodeAction {
			return nil, fmt.Errorf("rule graph: edge target %q is not an action node", e.Target)
		}

		rule, ok := byTrigger[source.ID]
		if !ok {
			rule = &Rule{Trigger: source}
			byTrigger[source.ID] = rule
			order = append(order, source.ID)
		}
		rule.Actions = append(rule.Actions, target)
	}

	rules := make([]Rule, 0, len(order))
	for _, id := range order {
		rules = append(rules, *byTrigger[id])
	}
	return rules, nil
}
