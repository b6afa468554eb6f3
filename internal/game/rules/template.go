package rules

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/deckforge/engine-go/internal/game"
)

// Template variables are whole-value only: a parameter whose string value is
// exactly "$event.payload.damage" resolves, "deal $event.payload.damage"
// stays literal text.

// ResolveTemplates substitutes template variables in an action parameter map
// against the triggering event and the current game. Resolved values are
// always strings; a reference that points nowhere becomes "".
func ResolveTemplates(params map[string]interface{}, ev game.Event, g game.Game) map[string]interface{} {
	out := make(map[string]interface{}, len(params))
	for k, v := range params {
		out[k] = resolveValue(v, ev, g)
	}
	return out
}

func resolveValue(v interface{}, ev game.Event, g game.Game) interface{} {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, "$") {
			return resolveTemplate(t, ev, g)
		}
		return t
	case map[string]interface{}:
		return ResolveTemplates(t, ev, g)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = resolveValue(item, ev, g)
		}
		return out
	default:
		return v
	}
}

// resolveTemplate resolves one $-reference. Supported references are
// $event.payload.<key>, $event.triggeredBy and $game.currentPlayer.
func resolveTemplate(ref string, ev game.Event, g game.Game) string {
	segs := strings.Split(strings.TrimPrefix(ref, "$"), ".")
	switch segs[0] {
	case "event":
		if len(segs) == 2 && segs[1] == "triggeredBy" {
			return ev.TriggeredBy
		}
		if len(segs) >= 3 && segs[1] == "payload" {
			if v, ok := resolveEventPath(ev, segs[1:]); ok {
				return cast.ToString(v)
			}
		}
		return ""
	case "game":
		if len(segs) == 2 && segs[1] == "currentPlayer" {
			return string(g.CurrentPlayer)
		}
		return ""
	default:
		return ""
	}
}
