// Copyright (c) 2026 The ITC Authors
// SPDX-License-Identifier: MIT

package itc

// Leq decides the happens-before partial order between s and o's causal
// histories: it holds when every tick recorded by s was also recorded by
// o, i.e. s's history could have led to o's. Identity plays no role in
// the comparison, only history does.
func (s Stamp) Leq(o Stamp) bool {
	return LeqEvent(s.evt, o.evt)
}

// Equiv reports whether s and o carry causally indistinguishable
// histories: Leq holds in both directions.
func (s Stamp) Equiv(o Stamp) bool {
	return s.Leq(o) && o.Leq(s)
}

// Dominates reports whether s strictly happened after o: o's history
// precedes s's, but not the reverse.
func (s Stamp) Dominates(o Stamp) bool {
	return o.Leq(s) && !s.Leq(o)
}

// Concurrent reports whether s and o's histories are incomparable: neither
// happened-before the other. This is the signal that the two stamps
// recorded independent, potentially conflicting updates.
func (s Stamp) Concurrent(o Stamp) bool {
	return !s.Leq(o) && !o.Leq(s)
}
