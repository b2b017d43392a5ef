// Copyright (c) 2026 The ITC Authors
// SPDX-License-Identifier: MIT

// Package itc implements Interval Tree Clocks (ITC), a causality-tracking
// mechanism for distributed systems with a dynamic number of participants.
//
// An ITC stamp pairs an identity tree with an event tree. The identity tree
// represents ownership of a share of a [0,1] interval; the event tree
// represents a causal history as per-region inflation counts. Stamps can be
// forked to create new, disjoint-identity participants without a global
// coordinator, ticked locally to record an event, and joined on
// communication to merge two causal histories.
//
// The core algebra is:
//
//   - Fork splits a stamp's identity into two disjoint halves, both
//     carrying the full causal history.
//   - Event inflates the event tree in the region owned by the stamp's
//     identity, never growing the tree further than necessary.
//   - Join merges two stamps' identities and histories; it is how a
//     spawned identity is retired back into the system, and how two
//     causal histories are reconciled on receipt of a message.
//   - Peek strips a stamp's identity, producing an anonymous stamp fit to
//     travel with an outgoing message. Send and Receive are peek/event and
//     join/event composites for that exchange.
//
// Leq decides the happens-before partial order between two event trees;
// Equiv, Dominates and Concurrent are derived from it. Two stamps are
// concurrent when neither happened-before the other - the signal that two
// writers touched overlapping state without coordination.
//
// Both tree types carry a canonical minimal (normal) form: normalization
// collapses redundant structure so that structural equality and semantic
// equality coincide. Every operation in this package returns values already
// in normal form.
//
// Stamp values are immutable. There is no shared mutable state, no I/O, and
// no network or clock dependency anywhere in this package; integrating ITC
// into a running system - deciding who forks for a new participant, how
// stamps travel with messages, how a shared stamp is synchronized across
// goroutines - is the caller's responsibility. Package itc presents pure
// values and a closed algebra over them.
//
// Two portability surfaces are provided for moving stamps across process
// boundaries: a canonical textual notation (Parse/String) matching the
// grammar from the original ITC paper, and a compact bit-packed binary
// codec (Encode/Decode) for wire transport.
package itc
