// Copyright (c) 2026 The ITC Authors
// SPDX-License-Identifier: MIT

package itc

// Id is the identity half of a stamp: a binary tree over {0,1} leaves
// representing ownership of a share of the [0,1] interval. The zero value
// of Id is not meaningful on its own; use IdZero, IdOne or NewIdNode to
// build one.
//
// Id is immutable once constructed: every constructor returns a value in
// normal form, and no exported operation ever mutates an existing Id.
// Subtrees may be shared across multiple Id values.
type Id struct {
	leaf        bool // true if this is a {0,1} leaf, false if it is a node
	one         bool // leaf value, only meaningful when leaf is true
	left, right *Id  // children, only meaningful when leaf is false
}

// IdZero is the leaf claiming no share of the interval.
var IdZero = &Id{leaf: true, one: false}

// IdOne is the leaf claiming the whole interval.
var IdOne = &Id{leaf: true, one: true}

// IsLeaf reports whether i is a {0,1} leaf rather than a (left,right) node.
func (i *Id) IsLeaf() bool {
	return i.leaf
}

// IsZero reports whether i is the leaf 0.
func (i *Id) IsZero() bool {
	return i.leaf && !i.one
}

// IsOne reports whether i is the leaf 1.
func (i *Id) IsOne() bool {
	return i.leaf && i.one
}

// Children returns i's left and right subtrees. It panics if i is a leaf.
func (i *Id) Children() (left, right *Id) {
	if i.leaf {
		panic("itc: Children called on an Id leaf")
	}
	return i.left, i.right
}

// NewIdNode builds the normal form of the node (left, right), collapsing
// (0,0) to IdZero and (1,1) to IdOne per normID.
func NewIdNode(left, right *Id) *Id {
	return normID(left, right)
}

// normID is norm_id from the ITC kernel: it is the only place a (left,
// right) pair is turned into an *Id, which is what keeps every Id produced
// by this package in normal form.
func normID(left, right *Id) *Id {
	if left.IsZero() && right.IsZero() {
		return IdZero
	}
	if left.IsOne() && right.IsOne() {
		return IdOne
	}
	return &Id{left: left, right: right}
}

// Equal reports whether i and j are structurally identical. Because every
// Id produced by this package is in normal form, structural equality
// coincides with semantic equality (same interval ownership).
func (i *Id) Equal(j *Id) bool {
	if i == j {
		return true
	}
	if i == nil || j == nil {
		return false
	}
	if i.leaf != j.leaf {
		return false
	}
	if i.leaf {
		return i.one == j.one
	}
	return i.left.Equal(j.left) && i.right.Equal(j.right)
}

// SumId is sum(i, j) from the kernel: the pointwise disjunction of two
// disjoint identities, normalized. It returns ErrOverlappingIds if i and j
// both claim any point of the interval - that can only happen if the
// caller hands it two ids that were never produced by a disjoint Split of
// a common ancestor.
func SumId(i, j *Id) (*Id, error) {
	switch {
	case i.IsZero():
		return j, nil
	case j.IsZero():
		return i, nil
	case i.IsOne() || j.IsOne():
		// Both can't be non-zero leaves unless both are 1, which overlaps
		// on the whole interval.
		return nil, ErrOverlappingIds
	}
	il, ir := i.left, i.right
	jl, jr := j.left, j.right
	left, err := SumId(il, jl)
	if err != nil {
		return nil, err
	}
	right, err := SumId(ir, jr)
	if err != nil {
		return nil, err
	}
	return normID(left, right), nil
}

// SplitId is split(i) from the kernel: it partitions i into two disjoint
// ids i', i'' such that SumId(i', i'') == i. SplitId never fails; it is
// total on every Id this package can construct.
func SplitId(i *Id) (left, right *Id) {
	switch {
	case i.IsZero():
		return IdZero, IdZero
	case i.IsOne():
		return normID(IdOne, IdZero), normID(IdZero, IdOne)
	}
	l, r := i.left, i.right
	switch {
	case r.IsZero():
		l0, l1 := SplitId(l)
		return normID(l0, IdZero), normID(l1, IdZero)
	case l.IsZero():
		r0, r1 := SplitId(r)
		return normID(IdZero, r0), normID(IdZero, r1)
	default:
		return normID(l, IdZero), normID(IdZero, r)
	}
}

// String renders i in the canonical textual notation: "0", "1", or
// "(left,right)" with no surrounding whitespace.
func (i *Id) String() string {
	var b []byte
	b = i.appendTo(b)
	return string(b)
}

func (i *Id) appendTo(b []byte) []byte {
	if i.leaf {
		if i.one {
			return append(b, '1')
		}
		return append(b, '0')
	}
	b = append(b, '(')
	b = i.left.appendTo(b)
	b = append(b, ',')
	b = i.right.appendTo(b)
	return append(b, ')')
}
