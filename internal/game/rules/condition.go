package rules

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/spf13/cast"

	"github.com/deckforge/engine-go/internal/game"
)

// The guard language: comparisons over event fields joined by and/or. There
// are no function calls, no arithmetic and no assignments; the lexer and
// grammar admit nothing else, so a rule author cannot smuggle code in here.

var conditionLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "whitespace", Pattern: `\s+`},
	{Name: "Op", Pattern: `===|!==|==|!=|>=|<=|>|<|&&|\|\|`},
	{Name: "String", Pattern: `'[^']*'|"[^"]*"`},
	{Name: "Number", Pattern: `-?\d+(?:\.\d+)?`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[().]`},
})

type conditionExpr struct {
	First *andExpr   `@@`
	Rest  []*andExpr `( ( "or" | "||" ) @@ )*`
}

type andExpr struct {
	First *comparison   `@@`
	Rest  []*comparison `( ( "and" | "&&" ) @@ )*`
}

type comparison struct {
	Left  *operand `@@`
	Op    string   `( @( "===" | "!==" | "==" | "!=" | ">=" | "<=" | ">" | "<" )`
	Right *operand `  @@ )?`
}

type operand struct {
	Number *float64       `  @Number`
	Str    *string        `| @String`
	Bool   *string        `| @( "true" | "false" )`
	Path   []string       `| @Ident ( "." @Ident )*`
	Sub    *conditionExpr `| "(" @@ ")"`
}

var conditionParser = participle.MustBuild[conditionExpr](
	participle.Lexer(conditionLexer),
	participle.Elide("whitespace"),
)

// Condition is a compiled guard expression evaluated against events.
type Condition struct {
	source string
	root   *conditionExpr
}

// CompileCondition parses and checks a guard expression. Addressable fields
// are payload.<key>, type and triggeredBy (an optional event. prefix is
// allowed); operands are string, number and boolean literals. Unsupported
// syntax and out-of-sandbox identifiers are rejected here, at compile time.
func CompileCondition(source string) (*Condition, error) {
	root, err := conditionParser.ParseString("", source)
	if err != nil {
		return nil, fmt.Errorf("condition %q: %w", source, err)
	}
	if err := checkExpr(root); err != nil {
		return nil, fmt.Errorf("condition %q: %w", source, err)
	}
	return &Condition{source: source, root: root}, nil
}

// Source returns the expression text the condition was compiled from.
func (c *Condition) Source() string {
	return c.source
}

// Evaluate runs the condition against an event. Comparisons that cannot be
// made, like ordering a missing field, come out false rather than erroring.
func (c *Condition) Evaluate(ev game.Event) bool {
	return evalExpr(c.root, ev)
}

func checkExpr(e *conditionExpr) error {
	for _, and := range append([]*andExpr{e.First}, e.Rest...) {
		for _, cmp := range append([]*comparison{and.First}, and.Rest...) {
			if err := checkOperand(cmp.Left); err != nil {
				return err
			}
			if cmp.Right != nil {
				if err := checkOperand(cmp.Right); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func checkOperand(o *operand) error {
	switch {
	case o.Sub != nil:
		return checkExpr(o.Sub)
	case len(o.Path) > 0:
		return checkPath(o.Path)
	default:
		return nil
	}
}

func checkPath(path []string) error {
	segs := path
	if len(segs) > 1 && segs[0] == "event" {
		segs = segs[1:]
	}
	switch segs[0] {
	case "payload":
		if len(segs) < 2 {
			return fmt.Errorf("path %q: payload needs a key", strings.Join(path, "."))
		}
		return nil
	case "type", "triggeredBy":
		if len(segs) != 1 {
			return fmt.Errorf("path %q: %s has no sub-fields", strings.Join(path, "."), segs[0])
		}
		return nil
	default:
		return fmt.Errorf("unsupported identifier %q", strings.Join(path, "."))
	}
}

func evalExpr(e *conditionExpr, ev game.Event) bool {
	if evalAnd(e.First, ev) {
		return true
	}
	for _, and := range e.Rest {
		if evalAnd(and, ev) {
			return true
		}
	}
	return false
}

func evalAnd(e *andExpr, ev game.Event) bool {
	if !evalComparison(e.First, ev) {
		return false
	}
	for _, cmp := range e.Rest {
		if !evalComparison(cmp, ev) {
			return false
		}
	}
	return true
}

func evalComparison(c *comparison, ev game.Event) bool {
	left, leftOK := operandValue(c.Left, ev)
	if c.Right == nil {
		return leftOK && truthy(left)
	}
	right, rightOK := operandValue(c.Right, ev)

	switch c.Op {
	case "===", "==":
		return leftOK && rightOK && looseEqual(left, right)
	case "!==", "!=":
		return !(leftOK && rightOK && looseEqual(left, right))
	}

	// Ordering operators need numbers on both sides.
	if !leftOK || !rightOK {
		return false
	}
	l, errL := cast.ToFloat64E(left)
	r, errR := cast.ToFloat64E(right)
	if errL != nil || errR != nil {
		return false
	}
	switch c.Op {
	case ">":
		return l > r
	case ">=":
		return l >= r
	case "<":
		return l < r
	case "<=":
		return l <= r
	}
	return false
}

func operandValue(o *operand, ev game.Event) (interface{}, bool) {
	switch {
	case o.Number != nil:
		return *o.Number, true
	case o.Str != nil:
		return unquote(*o.Str), true
	case o.Bool != nil:
		return *o.Bool == "true", true
	case o.Sub != nil:
		return evalExpr(o.Sub, ev), true
	case len(o.Path) > 0:
		return resolveEventPath(ev, o.Path)
	}
	return nil, false
}

// looseEqual compares numerically when both sides read as numbers, otherwise
// by string form. '3' equals 3; 'Lightning Bolt' compares as text.
func looseEqual(left, right interface{}) bool {
	l, errL := cast.ToFloat64E(left)
	r, errR := cast.ToFloat64E(right)
	if errL == nil && errR == nil {
		return l == r
	}
	return cast.ToString(left) == cast.ToString(right)
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return f != 0
	}
	return true
}

// resolveEventPath reads a sandbox path off the event. The second return is
// false when the path does not resolve, which comparisons treat as "equal to
// nothing".
func resolveEventPath(ev game.Event, path []string) (interface{}, bool) {
	segs := path
	if len(segs) > 1 && segs[0] == "event" {
		segs = segs[1:]
	}
	switch segs[0] {
	case "payload":
		var current interface{} = ev.Payload
		for _, seg := range segs[1:] {
			m, ok := current.(map[string]interface{})
			if !ok {
				return nil, false
			}
			current, ok = m[seg]
			if !ok {
				return nil, false
			}
		}
		return current, true
	case "type":
		return string(ev.Type), true
	case "triggeredBy":
		return ev.TriggeredBy, true
	}
	return nil, false
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
