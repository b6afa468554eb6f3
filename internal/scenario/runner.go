package scenario

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/deckforge/engine-go/internal/game"
	"github.com/deckforge/engine-go/internal/game/actions"
	"github.com/deckforge/engine-go/internal/game/rules"
)

// maxInterpretRounds bounds the ping-pong between executed actions and the
// rules their completion events trigger. Cascades inside a single Process
// call are bounded by the event manager; this bounds the outer loop.
const maxInterpretRounds = 16

// Runner executes scenario scripts.
type Runner struct {
	logger  *zap.Logger
	manager *game.EventManager
}

// NewRunner returns a runner. A nil logger is replaced with a no-op one.
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{logger: logger}
}

// WithManager replaces the event manager the starting state is built with,
// typically to apply configured queue and cascade limits.
func (r *Runner) WithManager(m game.EventManager) *Runner {
	r.manager = &m
	return r
}

// StepResult records one script step: the parsed action, its completion
// event, every rule-requested follow-up action, and any errors.
type StepResult struct {
	Step     int
	Action   actions.Action
	Event    game.Event
	Requests []game.Event
	Errors   []error
}

// Report is the outcome of a full run. Checksum covers the final state, so
// two runs of the same scenario can be compared with a string equality.
type Report struct {
	Scenario string
	Steps    []StepResult
	Checksum string
	Final    game.Game
}

// ErrorCount sums the errors across all steps.
func (r *Report) ErrorCount() int {
	n := 0
	for _, s := range r.Steps {
		n += len(s.Errors)
	}
	return n
}

// Summary renders a human-readable run report.
func (r *Report) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "scenario %q: %d step(s), %d error(s)\n", r.Scenario, len(r.Steps), r.ErrorCount())
	for _, s := range r.Steps {
		name := string(s.Action.Type)
		if name == "" && s.Event.Type != "" {
			name = "event " + string(s.Event.Type)
		}
		if name == "" {
			name = "(unparsed)"
		}
		status := "ok"
		if len(s.Errors) > 0 {
			status = "failed"
		}
		fmt.Fprintf(&b, "  step %d: %s %s", s.Step, name, status)
		if len(s.Requests) > 0 {
			fmt.Fprintf(&b, " (%d rule request(s))", len(s.Requests))
		}
		b.WriteString("\n")
		for _, err := range s.Errors {
			fmt.Fprintf(&b, "    error: %v\n", err)
		}
	}
	fmt.Fprintf(&b, "final checksum: %s\n", r.Checksum)
	return b.String()
}

// Run builds the scenario's starting state, installs its rules, and executes
// the script. Steps that fail to parse, validate, or execute are recorded
// and skipped; the run itself only fails when the scenario cannot be set up.
func (r *Runner) Run(sc *Scenario) (*Report, error) {
	g, err := sc.Build()
	if err != nil {
		return nil, fmt.Errorf("building scenario %q: %w", sc.Name, err)
	}
	if r.manager != nil {
		g = g.WithEvents(*r.manager)
	}
	listeners, err := rules.Compile(sc.Rules, r.logger)
	if err != nil {
		return nil, fmt.Errorf("compiling rules for scenario %q: %w", sc.Name, err)
	}
	manager, err := rules.InstallRules(g.Events, listeners)
	if err != nil {
		return nil, fmt.Errorf("installing rules for scenario %q: %w", sc.Name, err)
	}
	g = g.WithEvents(manager)

	report := &Report{Scenario: sc.Name}
	for i, step := range sc.Script {
		res := StepResult{Step: i + 1}
		switch {
		case step.Event != "" && step.Action != "":
			res.Errors = append(res.Errors, fmt.Errorf("step %d sets both action and event", res.Step))
		case step.Event != "":
			r.logger.Debug("publishing scripted event",
				zap.Int("step", res.Step),
				zap.String("event", step.Event))
			g, res = r.runEvent(g, step, res)
		case step.Action != "":
			action, err := step.parse()
			if err != nil {
				r.logger.Warn("skipping unparseable step",
					zap.Int("step", res.Step),
					zap.String("action", step.Action),
					zap.Error(err))
				res.Errors = append(res.Errors, err)
				break
			}
			res.Action = action
			r.logger.Debug("executing step",
				zap.Int("step", res.Step),
				zap.String("action", string(action.Type)))
			g, res = r.runAction(g, action, step.TriggeredBy, res)
		default:
			res.Errors = append(res.Errors, fmt.Errorf("step %d sets neither action nor event", res.Step))
		}
		report.Steps = append(report.Steps, res)
	}

	report.Final = g
	report.Checksum = game.Checksum(g)
	return report, nil
}

// parse converts a script step into an action by round-tripping it through
// the request event bridge, so scripts and rule parameters share one format.
func (s Step) parse() (actions.Action, error) {
	if !actions.IsKnown(s.Action) {
		return actions.Action{}, fmt.Errorf("unknown action type %q", s.Action)
	}
	request := game.NewEvent(actions.RequestEventType(actions.ActionType(s.Action)), s.Params, s.TriggeredBy)
	return actions.FromRequestEvent(request)
}

func (r *Runner) runAction(g game.Game, action actions.Action, actor string, res StepResult) (game.Game, StepResult) {
	legal, err := actions.Validate(g, action)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return g, res
	}
	if !legal {
		res.Errors = append(res.Errors, fmt.Errorf("action %s is not legal in the current state", action.Type))
		return g, res
	}
	next, err := actions.Execute(g, action)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return g, res
	}

	done := actions.EventForAction(next, action, actor)
	res.Event = done
	manager, err := next.Events.Publish(done)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return next.WithEvents(manager), res
	}
	return r.drain(next, manager, res)
}

// runEvent publishes a scripted raw event without executing any action, then
// lets the rules react to it.
func (r *Runner) runEvent(g game.Game, step Step, res StepResult) (game.Game, StepResult) {
	ev := game.NewEvent(game.EventType(step.Event), step.Params, step.TriggeredBy)
	res.Event = ev
	manager, err := g.Events.Publish(ev)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return g, res
	}
	return r.drain(g, manager, res)
}

// drain alternates queue processing with interpretation of the actions the
// rules requested; each interpreted action's completion event may trigger
// further rules.
func (r *Runner) drain(g game.Game, manager game.EventManager, res StepResult) (game.Game, StepResult) {
	for round := 0; ; round++ {
		result := manager.Process(g)
		if err := result.Err(); err != nil {
			res.Errors = append(res.Errors, err)
		}
		manager = result.Manager
		requests := requestEvents(result.Generated)
		res.Requests = append(res.Requests, requests...)
		if len(requests) == 0 {
			break
		}
		if round >= maxInterpretRounds {
			res.Errors = append(res.Errors, fmt.Errorf("rule-requested actions still pending after %d rounds", maxInterpretRounds))
			break
		}
		g, manager = r.interpret(g, manager, requests, &res)
	}
	return g.WithEvents(manager), res
}

// interpret executes rule-requested actions. Failures publish an
// ACTION_ERROR event instead of aborting the run.
func (r *Runner) interpret(g game.Game, manager game.EventManager, requests []game.Event, res *StepResult) (game.Game, game.EventManager) {
	for _, request := range requests {
		tag, ok := request.Type.RequestedAction()
		if !ok {
			tag = string(request.Type)
		}
		action, err := actions.FromRequestEvent(request)
		if err == nil {
			var legal bool
			legal, err = actions.Validate(g, action)
			if err == nil && !legal {
				err = fmt.Errorf("requested action %s is not legal in the current state", action.Type)
			}
		}
		if err == nil {
			var next game.Game
			next, err = actions.Execute(g, action)
			if err == nil {
				g = next
				manager = r.publish(manager, actions.EventForAction(g, action, game.TriggeredBySystem), res)
				continue
			}
		}
		r.logger.Warn("rule-requested action failed",
			zap.String("action", tag),
			zap.String("sourceEvent", request.ID),
			zap.Error(err))
		res.Errors = append(res.Errors, err)
		manager = r.publish(manager, actions.NewActionErrorEvent(tag, request.ID, err), res)
	}
	return g, manager
}

func (r *Runner) publish(manager game.EventManager, ev game.Event, res *StepResult) game.EventManager {
	next, err := manager.Publish(ev)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return manager
	}
	return next
}

func requestEvents(events []game.Event) []game.Event {
	var requests []game.Event
	for _, ev := range events {
		if ev.Type.IsRequest() {
			requests = append(requests, ev)
		}
	}
	return requests
}
