package counters

// Counters is an ordered collection of counters. Entries keep their insertion
// order, one entry per counter type. The zero value is an empty collection.
//
// All operations are copy-on-write: they return a new collection and leave the
// receiver untouched, so collections can be shared freely across game snapshots.
type Counters []Counter

// Add merges amount counters of the given type into a new collection.
// Same-type entries merge by summation. Amounts below one are a no-op.
func (cs Counters) Add(counterType CounterType, amount int) Counters {
	if amount <= 0 {
		return cs
	}
	next := cs.Copy()
	for i, c := range next {
		if c.Type == counterType {
			next[i].Count += amount
			return next
		}
	}
	return append(next, Counter{Type: counterType, Count: amount})
}

// Remove takes up to amount counters of the given type out of the collection.
// The count clamps at zero and an emptied entry is deleted. The second return
// reports whether the collection held any counter of that type.
func (cs Counters) Remove(counterType CounterType, amount int) (Counters, bool) {
	if amount <= 0 {
		return cs, cs.Has(counterType)
	}
	for i, c := range cs {
		if c.Type != counterType {
			continue
		}
		next := cs.Copy()
		if c.Count <= amount {
			next = append(next[:i], next[i+1:]...)
		} else {
			next[i].Count -= amount
		}
		return next, true
	}
	return cs, false
}

// Count returns the number of counters of the given type.
func (cs Counters) Count(counterType CounterType) int {
	for _, c := range cs {
		if c.Type == counterType {
			return c.Count
		}
	}
	return 0
}

// Has reports whether any counters of the given type are present.
func (cs Counters) Has(counterType CounterType) bool {
	return cs.Count(counterType) > 0
}

// Total returns the total number of counters across all types.
func (cs Counters) Total() int {
	total := 0
	for _, c := range cs {
		total += c.Count
	}
	return total
}

// Copy returns an independent copy of the collection.
func (cs Counters) Copy() Counters {
	if len(cs) == 0 {
		return nil
	}
	next := make(Counters, len(cs))
	copy(next, cs)
	return next
}
