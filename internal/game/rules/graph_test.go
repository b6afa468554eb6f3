package rules

import (
	"strings"
	"testing"
)

func TestExtractRulesGroupsActionsPerTrigger(t *testing.T) {
	graph := RuleGraph{
		Nodes: []Node{
			{ID: "t1", Kind: NodeTrigger, Data: NodeData{EventType: "CARD_PLAYED"}},
			{ID: "a1", Kind: NodeAction, Data: NodeData{ActionType: "DRAW_CARDS"}},
			{ID: "a2", Kind: NodeAction, Data: NodeData{ActionType: "MODIFY_STAT"}},
			{ID: "t2", Kind: NodeTrigger, Data: NodeData{EventType: "TURN_STARTED"}},
		},
		Edges: []Edge{
			{Source: "t2", Target: "a1"},
			{Source: "t1", Target: "a2"},
			{Source: "t1", Target: "a1"},
		},
	}

	rules, err := ExtractRules(graph)
	if err != nil {
		t.Fatalf("ExtractRules: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	if rules[0].Trigger.ID != "t2" || rules[1].Trigger.ID != "t1" {
		t.Fatalf("rule order = %s, %s; want t2, t1", rules[0].Trigger.ID, rules[1].Trigger.ID)
	}
	if len(rules[1].Actions) != 2 {
		t.Fatalf("t1 has %d actions, want 2", len(rules[1].Actions))
	}
	if rules[1].Actions[0].ID != "a2" || rules[1].Actions[1].ID != "a1" {
		t.Fatalf("t1 action order = %s, %s; want a2, a1", rules[1].Actions[0].ID, rules[1].Actions[1].ID)
	}
}

func TestExtractRulesDropsTriggersWithoutActions(t *testing.T) {
	graph := RuleGraph{
		Nodes: []Node{
			{ID: "lonely", Kind: NodeTrigger, Data: NodeData{EventType: "GAME_STARTED"}},
		},
	}

	rules, err := ExtractRules(graph)
	if err != nil {
		t.Fatalf("ExtractRules: %v", err)
	}
	if len(rules) != 0 {
		t.Fatalf("got %d rules, want 0", len(rules))
	}
}

func TestExtractRulesRejectsDuplicateNodeIDs(t *testing.T) {
	graph := RuleGraph{
		Nodes: []Node{
			{ID: "n1", Kind: NodeTrigger, Data: NodeData{EventType: "GAME_STARTED"}},
			{ID: "n1", Kind: NodeAction, Data: NodeData{ActionType: "DRAW_CARDS"}},
		},
	}

	if _, err := ExtractRules(graph); err == nil {
		t.Fatal("expected an error for duplicate node ids")
	}
}

func TestExtractRulesRejectsBadEdges(t *testing.T) {
	trigger := Node{ID: "t", Kind: NodeTrigger, Data: NodeData{EventType: "GAME_STARTED"}}
	action := Node{ID: "a", Kind: NodeAction, Data: NodeData{ActionType: "DRAW_CARDS"}}

	cases := []struct {
		name  string
		graph RuleGraph
		want  string
	}{
		{
			name:  "unknown source",
			graph: RuleGraph{Nodes: []Node{trigger, action}, Edges: []Edge{{Source: "ghost", Target: "a"}}},
			want:  "does not exist",
		},
		{
			name:  "unknown target",
			graph: RuleGraph{Nodes: []Node{trigger, action}, Edges: []Edge{{Source: "t", Target: "ghost"}}},
			want:  "does not exist",
		},
		{
			name:  "action as source",
			graph: RuleGraph{Nodes: []Node{trigger, action}, Edges: []Edge{{Source: "a", Target: "a"}}},
			want:  "not a trigger",
		},
		{
			name:  "trigger as target",
			graph: RuleGraph{Nodes: []Node{trigger, action}, Edges: []Edge{{Source: "t", Target: "t"}}},
			want:  "not an action",
		},
		{
			name:  "unknown node kind",
			graph: RuleGraph{Nodes: []Node{{ID: "x", Kind: "decoration"}}},
			want:  "unknown kind",
		},
	}
	for _, tc := range cases {
		_, err := ExtractRules(tc.graph)
		if err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}
