// Copyright (c) 2026 The ITC Authors
// SPDX-License-Identifier: MIT

package itc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// genId generates an arbitrary Id tree, already in normal form because it
// is only ever built through NewIdNode.
func genId(t *rapid.T) *Id {
	return genIdDepth(t, 4)
}

func genIdDepth(t *rapid.T, depth int) *Id {
	if depth <= 0 || rapid.Bool().Draw(t, "leaf") {
		if rapid.Bool().Draw(t, "one") {
			return IdOne
		}
		return IdZero
	}
	left := genIdDepth(t, depth-1)
	right := genIdDepth(t, depth-1)
	return NewIdNode(left, right)
}

// genEvent generates an arbitrary Event tree in normal form.
func genEvent(t *rapid.T) *Event {
	return genEventDepth(t, 4)
}

func genEventDepth(t *rapid.T, depth int) *Event {
	n := rapid.IntRange(0, 5).Draw(t, "n")
	if depth <= 0 || rapid.Bool().Draw(t, "leaf") {
		return eventLeaf(n)
	}
	left := genEventDepth(t, depth-1)
	right := genEventDepth(t, depth-1)
	return normEv(n, left, right)
}

// genStamp generates an arbitrary (not necessarily reachable-from-Seed)
// Stamp by pairing independently generated Id and Event trees. Properties
// that require the disjoint-identity fleet invariant instead derive their
// stamps from Seed via Fork/Event, below.
func genStamp(t *rapid.T) Stamp {
	return NewStamp(genId(t), genEvent(t))
}

// TestPropertyIdNormalFormIsCanonical checks §8's normal-form canonicity
// property: two ids built from the same shape always compare Equal, and
// collapsing sub-identities never leaves a (0,0) or (1,1) node behind.
func TestPropertyIdNormalFormIsCanonical(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		id := genId(t)
		require.True(t, id.Equal(id))
		if !id.IsLeaf() {
			left, right := id.Children()
			require.False(t, left.IsZero() && right.IsZero(), "found un-collapsed (0,0) node")
			require.False(t, left.IsOne() && right.IsOne(), "found un-collapsed (1,1) node")
		}
	})
}

// TestPropertyEventNormalFormIsCanonical checks the analogous property for
// Event: no node has two equal leaf children, and every node's base count
// is the minimum tick guaranteed by both of its children (so at least one
// child has minV == 0).
func TestPropertyEventNormalFormIsCanonical(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		evt := genEvent(t)
		require.True(t, evt.Equal(evt))
		if !evt.IsLeaf() {
			left, right := evt.Children()
			if left.IsLeaf() && right.IsLeaf() {
				require.NotEqual(t, left.Leaf(), right.Leaf(), "found un-collapsed equal-leaf node")
			}
			require.True(t, minV(left) == 0 || minV(right) == 0, "base count was not lifted to the maximum")
		}
	})
}

// TestPropertyForkPartitionsIdentity checks §8's fork-partition property:
// SumId of the two children of Fork recovers the parent identity.
func TestPropertyForkPartitionsIdentity(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := genStamp(t)
		a, b := s.Fork()
		sum, err := SumId(a.ID(), b.ID())
		require.NoError(t, err)
		require.True(t, sum.Equal(s.ID()), "SumId(Fork(s)) != s.ID(): got %v want %v", sum, s.ID())
	})
}

// TestPropertyForkPreservesEvents checks that forking never changes either
// child's causal history.
func TestPropertyForkPreservesEvents(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := genStamp(t)
		a, b := s.Fork()
		require.True(t, a.EventTree().Equal(s.EventTree()))
		require.True(t, b.EventTree().Equal(s.EventTree()))
	})
}

// TestPropertyPeekStripsIdentity checks that Peek always yields an
// anonymous stamp with the source's unchanged history.
func TestPropertyPeekStripsIdentity(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := genStamp(t)
		p := s.Peek()
		require.True(t, p.IsAnonymous())
		require.True(t, p.EventTree().Equal(s.EventTree()))
	})
}

// TestPropertyEventIsMonotonic checks §8's event-monotonicity property:
// ticking a non-anonymous stamp always produces a history that dominates
// (but never equals, unless anonymous) the one it started from.
func TestPropertyEventIsMonotonic(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := genStamp(t)
		ticked := s.Event()
		require.True(t, LeqEvent(s.EventTree(), ticked.EventTree()))
		if !s.IsAnonymous() {
			require.False(t, ticked.EventTree().Equal(s.EventTree()), "Event() on a non-anonymous stamp must advance its history")
		}
	})
}

// TestPropertyEventOnAnonymousIsIdentity checks that Event is a no-op on
// an anonymous stamp.
func TestPropertyEventOnAnonymousIsIdentity(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		evt := genEvent(t)
		s := NewStamp(IdZero, evt)
		require.True(t, s.Event().Equal(s))
	})
}

// TestPropertyJoinIsCommutative checks that Join(s,o) == Join(o,s). o is
// anonymous, so its identity is disjoint from s's and both orderings must
// succeed.
func TestPropertyJoinIsCommutative(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := genStamp(t)
		o := NewStamp(IdZero, genEvent(t))
		ab, err1 := Join(s, o)
		ba, err2 := Join(o, s)
		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Empty(t, cmp.Diff(ab.String(), ba.String()))
	})
}

// TestPropertyJoinIsIdempotent checks that joining a stamp with an
// anonymous copy of itself leaves it unchanged.
func TestPropertyJoinIsIdempotent(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := genStamp(t)
		self := NewStamp(IdZero, s.EventTree())
		joined, err := Join(s, self)
		require.NoError(t, err)
		require.True(t, joined.Equal(s))
	})
}

// TestPropertyJoinIsLeastUpperBound checks that JoinEvent(e1,e2) dominates
// both operands and is itself dominated by any common upper bound.
func TestPropertyJoinIsLeastUpperBound(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		e1, e2 := genEvent(t), genEvent(t)
		j := JoinEvent(e1, e2)
		require.True(t, LeqEvent(e1, j))
		require.True(t, LeqEvent(e2, j))

		upper := genEvent(t)
		upper = JoinEvent(upper, JoinEvent(e1, e2)) // force upper to actually dominate both
		require.True(t, LeqEvent(j, upper))
	})
}

// TestPropertySendReceiveCausalLink checks §8's send/receive property: a
// stamp that receives the message produced by its own Send dominates the
// stamp that Send returned.
func TestPropertySendReceiveCausalLink(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := Stamp{id: IdOne, evt: genEvent(t)}
		next, msg := s.Send()
		received, err := next.Receive(msg)
		require.NoError(t, err)
		require.True(t, LeqEvent(next.EventTree(), received.EventTree()))
	})
}

// TestPropertyTextRoundTrip checks §8's round-trip property for the
// textual format: ParseStamp(s.String()) always recovers s.
func TestPropertyTextRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := genStamp(t)
		got, err := ParseStamp(s.String())
		require.NoError(t, err)
		require.True(t, got.Equal(s))
	})
}

// TestPropertyBinaryRoundTrip checks the same round-trip property for the
// binary wire format.
func TestPropertyBinaryRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		s := genStamp(t)
		got, err := DecodeStamp(EncodeStamp(s))
		require.NoError(t, err)
		require.True(t, got.Equal(s))
	})
}
