package counters

import "fmt"

// Counter is an amount of a single counter type held by a card or player.
type Counter struct {
	Type  CounterType
	Count int
}

// New creates a counter. The count must not be negative.
func New(counterType CounterType, count int) (Counter, error) {
	if counterType == "" {
		return Counter{}, fmt.Errorf("counter type must not be empty")
	}
	if count < 0 {
		return Counter{}, fmt.Errorf("counter count must not be negative: %d", count)
	}
	return Counter{Type: counterType, Count: count}, nil
}

// String renders the counter as "type=count".
func (c Counter) String() string {
	return fmt.Sprintf("%s=%d", c.Type, c.Count)
}
