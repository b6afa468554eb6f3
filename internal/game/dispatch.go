package game

import (
	"fmt"

	"go.uber.org/multierr"
)

// Dispatch limits. Both are per-manager and configurable through
// NewEventManagerWithLimits.
const (
	// DefaultQueueCapacity bounds how many events may wait for processing.
	DefaultQueueCapacity = 100
	// DefaultMaxCascadeDepth bounds how deep listener-generated events may
	// cascade within one Process call.
	DefaultMaxCascadeDepth = 10
)

// Listener reacts to events of one type. Condition, when set, filters events
// before the callback runs. The callback receives the event and the current
// game snapshot and may return follow-up events; it must not mutate the game.
type Listener struct {
	ID        string
	EventType EventType
	Priority  int
	Condition func(Event) bool
	Callback  func(Event, Game) ([]Event, error)
}

// EventManager holds the listener registry and the pending event queue.
// It is a value type owned by a Game: Subscribe, Unsubscribe, and Publish
// return a new manager and leave the receiver untouched, and Process returns
// the drained manager inside its result.
//
// Listeners are kept sorted ascending by priority; listeners with equal
// priority stay in subscription order.
type EventManager struct {
	listeners     []Listener
	queue         []Event
	queueCapacity int
	maxDepth      int
}

// NewEventManager creates a manager with default queue capacity and cascade
// depth.
func NewEventManager() EventManager {
	return NewEventManagerWithLimits(DefaultQueueCapacity, DefaultMaxCascadeDepth)
}

// NewEventManagerWithLimits creates a manager with explicit bounds. Values
// below one fall back to the defaults.
func NewEventManagerWithLimits(queueCapacity, maxDepth int) EventManager {
	if queueCapacity < 1 {
		queueCapacity = DefaultQueueCapacity
	}
	if maxDepth < 1 {
		maxDepth = DefaultMaxCascadeDepth
	}
	return EventManager{
		queueCapacity: queueCapacity,
		maxDepth:      maxDepth,
	}
}

// Subscribe returns a manager with the listener registered. Duplicate
// listener ids, empty event types, and nil callbacks are rejected.
func (m EventManager) Subscribe(l Listener) (EventManager, error) {
	if l.ID == "" {
		return EventManager{}, fmt.Errorf("listener id must not be empty")
	}
	if l.EventType == "" {
		return EventManager{}, fmt.Errorf("listener %s: event type must not be empty", l.ID)
	}
	if l.Callback == nil {
		return EventManager{}, fmt.Errorf("listener %s: callback must not be nil", l.ID)
	}
	for _, cur := range m.listeners {
		if cur.ID == l.ID {
			return EventManager{}, fmt.Errorf("listener %s already subscribed", l.ID)
		}
	}

	next := m.Copy()
	// Insert after every listener with priority <= the new one so equal
	// priorities keep subscription order.
	pos := len(next.listeners)
	for i, cur := range next.listeners {
		if cur.Priority > l.Priority {
			pos = i
			break
		}
	}
	next.listeners = append(next.listeners, Listener{})
	copy(next.listeners[pos+1:], next.listeners[pos:])
	next.listeners[pos] = l
	return next, nil
}

// Unsubscribe returns a manager without the identified listener.
func (m EventManager) Unsubscribe(id string) (EventManager, error) {
	for i, cur := range m.listeners {
		if cur.ID == id {
			next := m.Copy()
			next.listeners = append(next.listeners[:i], next.listeners[i+1:]...)
			return next, nil
		}
	}
	return EventManager{}, fmt.Errorf("listener %s not subscribed", id)
}

// Publish returns a manager with the event appended to the queue. Publishing
// past the queue capacity fails.
func (m EventManager) Publish(e Event) (EventManager, error) {
	if len(m.queue) >= m.queueCapacity {
		return EventManager{}, fmt.Errorf("event queue at capacity (%d)", m.queueCapacity)
	}
	next := m.Copy()
	next.queue = append(next.queue, e.Copy())
	return next, nil
}

// ProcessResult reports one Process call: the drained manager, every event
// that was dispatched (queued plus cascaded), every event a callback
// produced, and the isolated listener failures.
type ProcessResult struct {
	Manager   EventManager
	Processed []Event
	Generated []Event
	Errors    []error
}

// Err folds the collected errors into one, nil when there were none.
func (r ProcessResult) Err() error {
	return multierr.Combine(r.Errors...)
}

// queuedEvent pairs an event with its cascade depth. Queued roots start at
// depth zero; callback-generated events carry their parent's depth plus one.
type queuedEvent struct {
	event Event
	depth int
}

// Process drains the queue against the game snapshot. For each event, every
// listener of the matching type whose condition passes is invoked in priority
// order. Returned events join the same drain at the next cascade depth; a
// batch that would reach the depth limit is dropped and recorded as a single
// error. Listener failures (returned errors and panics) are collected and
// never stop the remaining listeners or events. The game is never modified;
// mutation intent travels only in the returned events.
func (m EventManager) Process(g Game) ProcessResult {
	result := ProcessResult{Manager: m.Copy()}

	work := make([]queuedEvent, 0, len(m.queue))
	for _, e := range m.queue {
		work = append(work, queuedEvent{event: e.Copy(), depth: 0})
	}
	result.Manager.queue = nil

	for len(work) > 0 {
		item := work[0]
		work = work[1:]
		result.Processed = append(result.Processed, item.event)

		for _, l := range m.listeners {
			if l.EventType != item.event.Type {
				continue
			}
			matched, err := evalCondition(l, item.event)
			if err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			if !matched {
				continue
			}

			produced, err := invokeCallback(l, item.event, g)
			if err != nil {
				result.Errors = append(result.Errors, err)
				continue
			}
			if len(produced) == 0 {
				continue
			}
			result.Generated = append(result.Generated, produced...)

			childDepth := item.depth + 1
			if childDepth >= m.maxDepth {
				result.Errors = append(result.Errors,
					fmt.Errorf("maximum recursion depth reached (%d), dropping %d event(s) from listener %s", m.maxDepth, len(produced), l.ID))
				continue
			}
			for _, e := range produced {
				work = append(work, queuedEvent{event: e.Copy(), depth: childDepth})
			}
		}
	}
	return result
}

// evalCondition runs the listener's condition, converting a panic into an
// error so one bad predicate cannot halt the drain.
func evalCondition(l Listener, e Event) (matched bool, err error) {
	if l.Condition == nil {
		return true, nil
	}
	defer func() {
		if r := recover(); r != nil {
			matched = false
			err = fmt.Errorf("listener %s condition panicked on event %s: %v", l.ID, e.Type, r)
		}
	}()
	return l.Condition(e), nil
}

// invokeCallback runs the listener's callback with panic isolation.
func invokeCallback(l Listener, e Event, g Game) (produced []Event, err error) {
	defer func() {
		if r := recover(); r != nil {
			produced = nil
			err = fmt.Errorf("listener %s panicked on event %s: %v", l.ID, e.Type, r)
		}
	}()
	produced, err = l.Callback(e, g)
	if err != nil {
		return nil, fmt.Errorf("listener %s failed on event %s: %w", l.ID, e.Type, err)
	}
	return produced, nil
}

// Listeners returns the registered listeners in dispatch order.
func (m EventManager) Listeners() []Listener {
	out := make([]Listener, len(m.listeners))
	copy(out, m.listeners)
	return out
}

// QueueLength returns the number of events waiting for processing.
func (m EventManager) QueueLength() int {
	return len(m.queue)
}

// QueueCapacity returns the queue bound.
func (m EventManager) QueueCapacity() int {
	return m.queueCapacity
}

// MaxDepth returns the cascade depth bound.
func (m EventManager) MaxDepth() int {
	return m.maxDepth
}

// PendingEvents returns a copy of the queued events in publish order.
func (m EventManager) PendingEvents() []Event {
	out := make([]Event, len(m.queue))
	for i, e := range m.queue {
		out[i] = e.Copy()
	}
	return out
}

// Copy returns a deep copy of the manager. Listener callbacks are shared by
// reference; everything else is independent.
func (m EventManager) Copy() EventManager {
	next := EventManager{
		queueCapacity: m.queueCapacity,
		maxDepth:      m.maxDepth,
	}
	if m.listeners != nil {
		next.listeners = make([]Listener, len(m.listeners))
		copy(next.listeners, m.listeners)
	}
	if m.queue != nil {
		next.queue = make([]Event, len(m.queue))
		for i, e := range m.queue {
			next.queue[i] = e.Copy()
		}
	}
	return next
}
