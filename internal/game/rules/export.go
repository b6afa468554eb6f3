package rules

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/deckforge/engine-go/internal/game/actions"
)

// ExportCode renders the rule graph as readable rule text. The output is
// deterministic: rules sort by trigger id, parameters by key, so the same
// graph always exports byte-identical text no matter how its nodes and edges
// were ordered.
func ExportCode(graph RuleGraph) (string, error) {
	ruleSet, err := ExtractRules(graph)
	if err != nil {
		return "", err
	}
	sort.Slice(ruleSet, func(i, j int) bool { return ruleSet[i].Trigger.ID < ruleSet[j].Trigger.ID })

	var b strings.Builder
	fmt.Fprintf(&b, "// Compiled rule set: %d rule(s).\n", len(ruleSet))
	for _, rule := range ruleSet {
		fmt.Fprintf(&b, "\nrule %q {\n", rule.Trigger.ID)
		if rule.Trigger.Data.Label != "" {
			fmt.Fprintf(&b, "\t// %s\n", rule.Trigger.Data.Label)
		}
		fmt.Fprintf(&b, "\ton %s", rule.Trigger.Data.EventType)
		if rule.Trigger.Data.Priority != 0 {
			fmt.Fprintf(&b, " priority %d", rule.Trigger.Data.Priority)
		}
		b.WriteString("\n")
		if rule.Trigger.Data.Condition != "" {
			fmt.Fprintf(&b, "\twhen %s\n", rule.Trigger.Data.Condition)
		}
		for _, action := range rule.Actions {
			if !actions.IsKnown(action.Data.ActionType) {
				fmt.Fprintf(&b, "\t// skipped: unknown action type %q\n", action.Data.ActionType)
				continue
			}
			fmt.Fprintf(&b, "\tdo %s {\n", action.Data.ActionType)
			keys := make([]string, 0, len(action.Data.Parameters))
			for k := range action.Data.Parameters {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(&b, "\t\t%s: %s\n", k, renderValue(action.Data.Parameters[k]))
			}
			b.WriteString("\t}\n")
		}
		b.WriteString("}\n")
	}
	return b.String(), nil
}

func renderValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strconv.Quote(t)
	case map[string]interface{}:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s: %s", k, renderValue(t[k]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []interface{}:
		parts := make([]string, len(t))
		for i, item := range t {
			parts[i] = renderValue(item)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
