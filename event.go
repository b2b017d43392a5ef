// Copyright (c) 2026 The ITC Authors
// SPDX-License-Identifier: MIT

package itc

import "strconv"

// Event is the history half of a stamp: a binary tree of non-negative
// integers. A leaf n means every point of the covered interval has been
// inflated at least n times; a node (n, left, right) means n base ticks
// for the whole interval plus the relative ticks recorded in each half.
// The absolute tick count at any point is the sum of the n values along
// the path from the root to that point.
//
// Event is immutable once constructed: every constructor returns a value
// in normal form, and no exported operation ever mutates an existing
// Event. Subtrees may be shared across multiple Event values.
type Event struct {
	leaf        bool // true if this is an integer leaf, false if it is a node
	n           int  // leaf value, or base tick count for a node
	left, right *Event
}

// EventZero is the leaf 0: no ticks recorded anywhere.
var EventZero = &Event{leaf: true, n: 0}

// IsLeaf reports whether e is an integer leaf rather than a (n,left,right)
// node.
func (e *Event) IsLeaf() bool {
	return e.leaf
}

// Leaf returns e's leaf value. It panics if e is not a leaf.
func (e *Event) Leaf() int {
	if !e.leaf {
		panic("itc: Leaf called on an Event node")
	}
	return e.n
}

// Base returns the base tick count n of a node. It panics if e is a leaf;
// use Leaf for that case.
func (e *Event) Base() int {
	if e.leaf {
		panic("itc: Base called on an Event leaf")
	}
	return e.n
}

// Children returns e's left and right subtrees. It panics if e is a leaf.
func (e *Event) Children() (left, right *Event) {
	if e.leaf {
		panic("itc: Children called on an Event leaf")
	}
	return e.left, e.right
}

// eventLeaf builds a leaf without validating n. It is only used internally
// where n cannot be negative: in the kernel algebra, and in Parse and
// Decode, which only read unsigned digits or unsigned varints. NewEventLeaf
// is the validating constructor for caller-supplied values.
func eventLeaf(n int) *Event {
	return &Event{leaf: true, n: n}
}

// NewEventLeaf builds the leaf n, returning ErrInvalidLeafValue if n is
// negative.
func NewEventLeaf(n int) (*Event, error) {
	if n < 0 {
		return nil, ErrInvalidLeafValue
	}
	return eventLeaf(n), nil
}

// NewEventNode builds the normal form of the node (n, left, right) per
// normEv, returning ErrInvalidLeafValue if n is negative.
func NewEventNode(n int, left, right *Event) (*Event, error) {
	if n < 0 {
		return nil, ErrInvalidLeafValue
	}
	return normEv(n, left, right), nil
}

// normEv is norm_ev from the ITC kernel: every node built from a new pair
// of children goes through it, which is what keeps every Event produced by
// this package in normal form. (lift and sink only shift the root count of
// an already-normal node, and the (n,0,0) expansions inside JoinEvent and
// growEvent are intermediate values that are never returned.) left and
// right must already be normal.
func normEv(n int, left, right *Event) *Event {
	if left.leaf && right.leaf && left.n == right.n {
		return eventLeaf(n + left.n)
	}
	m := minV(left)
	if r := minV(right); r < m {
		m = r
	}
	if m == 0 {
		return &Event{n: n, left: left, right: right}
	}
	return &Event{n: n + m, left: sink(left, m), right: sink(right, m)}
}

// minV is min_v from the kernel: the tick count guaranteed at every point
// under e.
func minV(e *Event) int {
	return e.n
}

// maxV is max_v from the kernel: the largest tick count recorded at any
// single point under e.
func maxV(e *Event) int {
	if e.leaf {
		return e.n
	}
	l, r := maxV(e.left), maxV(e.right)
	if l > r {
		return e.n + l
	}
	return e.n + r
}

// lift is lift(e, m) from the kernel: adds m to e's root tick count.
func lift(e *Event, m int) *Event {
	if m == 0 {
		return e
	}
	if e.leaf {
		return eventLeaf(e.n + m)
	}
	return &Event{n: e.n + m, left: e.left, right: e.right}
}

// sink is sink(e, m) from the kernel: subtracts m from e's root tick
// count. The caller must ensure m <= minV(e).
func sink(e *Event, m int) *Event {
	if m == 0 {
		return e
	}
	if e.leaf {
		return eventLeaf(e.n - m)
	}
	return &Event{n: e.n - m, left: e.left, right: e.right}
}

// JoinEvent is join_ev from the kernel: the least event tree that is >=
// both e1 and e2, i.e. the pointwise maximum of the two histories.
func JoinEvent(e1, e2 *Event) *Event {
	switch {
	case e1.leaf && e2.leaf:
		if e1.n >= e2.n {
			return e1
		}
		return e2
	case e1.leaf:
		return JoinEvent(&Event{n: e1.n, left: EventZero, right: EventZero}, e2)
	case e2.leaf:
		return JoinEvent(e1, &Event{n: e2.n, left: EventZero, right: EventZero})
	case e1.n > e2.n:
		return JoinEvent(e2, e1)
	default:
		d := e2.n - e1.n
		left := JoinEvent(e1.left, lift(e2.left, d))
		right := JoinEvent(e1.right, lift(e2.right, d))
		return normEv(e1.n, left, right)
	}
}

// LeqEvent is leq from the kernel: the happens-before partial order on
// event trees. LeqEvent(e1, e2) holds when every tick recorded in e1 is
// also recorded in e2, i.e. e1's history could have produced e2's.
func LeqEvent(e1, e2 *Event) bool {
	switch {
	case e1.leaf && e2.leaf:
		return e1.n <= e2.n
	case e1.leaf:
		return e1.n <= e2.n
	case e2.leaf:
		n1 := e1.n
		return n1 <= e2.n &&
			LeqEvent(lift(e1.left, n1), e2) &&
			LeqEvent(lift(e1.right, n1), e2)
	default:
		n1, n2 := e1.n, e2.n
		return n1 <= n2 &&
			LeqEvent(lift(e1.left, n1), lift(e2.left, n2)) &&
			LeqEvent(lift(e1.right, n1), lift(e2.right, n2))
	}
}

// Equal reports whether e and o are structurally identical. Because every
// Event produced by this package is in normal form, structural equality
// coincides with semantic equality (LeqEvent holding both ways).
func (e *Event) Equal(o *Event) bool {
	if e == o {
		return true
	}
	if e == nil || o == nil {
		return false
	}
	if e.leaf != o.leaf {
		return false
	}
	if e.leaf {
		return e.n == o.n
	}
	return e.n == o.n && e.left.Equal(o.left) && e.right.Equal(o.right)
}

// String renders e in the canonical textual notation: a decimal integer
// for a leaf, or "(n,left,right)" for a node, with no surrounding
// whitespace.
func (e *Event) String() string {
	var b []byte
	b = e.appendTo(b)
	return string(b)
}

func (e *Event) appendTo(b []byte) []byte {
	if e.leaf {
		return strconv.AppendInt(b, int64(e.n), 10)
	}
	b = append(b, '(')
	b = strconv.AppendInt(b, int64(e.n), 10)
	b = append(b, ',')
	b = e.left.appendTo(b)
	b = append(b, ',')
	b = e.right.appendTo(b)
	return append(b, ')')
}
