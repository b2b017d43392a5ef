// Copyright (c) 2026 The ITC Authors
// SPDX-License-Identifier: MIT

package itc

import (
	"errors"
	"math"

	"github.com/halvorsen/itc/internal/wire"
)

// EncodeStamp writes s in the compact bit-packed binary format from §6:
// the identity tree followed by the event tree, each node tagged with a
// single leaf/node bit, and event leaf counts written as 7-bit-chunk
// variable-length integers. The format is self-delimiting, so no length
// prefix is written; trailing bits in the final byte are zero padding.
func EncodeStamp(s Stamp) []byte {
	w := wire.NewWriter()
	encodeID(w, s.id)
	encodeEvent(w, s.evt)
	return w.Bytes()
}

// DecodeStamp reads a value written by EncodeStamp. It fails with a
// *DecodeError wrapping ErrTruncated if data ends before a complete stamp
// has been read.
func DecodeStamp(data []byte) (Stamp, error) {
	r := wire.NewReader(data)
	id, err := decodeID(r)
	if err != nil {
		return Stamp{}, decodeErr(r, err)
	}
	evt, err := decodeEvent(r)
	if err != nil {
		return Stamp{}, decodeErr(r, err)
	}
	return Stamp{id: id, evt: evt}, nil
}

// EncodeID writes i alone, using the same tagging scheme as EncodeStamp.
func EncodeID(i *Id) []byte {
	w := wire.NewWriter()
	encodeID(w, i)
	return w.Bytes()
}

// DecodeID reads a value written by EncodeID.
func DecodeID(data []byte) (*Id, error) {
	r := wire.NewReader(data)
	id, err := decodeID(r)
	if err != nil {
		return nil, decodeErr(r, err)
	}
	return id, nil
}

// EncodeEvent writes e alone, using the same tagging scheme as
// EncodeStamp.
func EncodeEvent(e *Event) []byte {
	w := wire.NewWriter()
	encodeEvent(w, e)
	return w.Bytes()
}

// DecodeEvent reads a value written by EncodeEvent.
func DecodeEvent(data []byte) (*Event, error) {
	r := wire.NewReader(data)
	evt, err := decodeEvent(r)
	if err != nil {
		return nil, decodeErr(r, err)
	}
	return evt, nil
}

// errLeafOverflow marks a uvarint that decoded to a value no int on this
// platform can represent; decodeErr turns it into ErrInvalidLeafValue
// rather than the default ErrTruncated.
var errLeafOverflow = errors.New("itc: event leaf value overflows int")

func decodeErr(r *wire.Reader, err error) error {
	sentinel := ErrTruncated
	if errors.Is(err, errLeafOverflow) {
		sentinel = ErrInvalidLeafValue
	}
	return &DecodeError{Offset: int(r.BitPos()), Reason: err.Error(), Err: sentinel}
}

func encodeID(w *wire.Writer, i *Id) {
	if i.leaf {
		w.WriteBit(false)
		w.WriteBit(i.one)
		return
	}
	w.WriteBit(true)
	encodeID(w, i.left)
	encodeID(w, i.right)
}

func decodeID(r *wire.Reader) (*Id, error) {
	isNode, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	if !isNode {
		one, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if one {
			return IdOne, nil
		}
		return IdZero, nil
	}
	left, err := decodeID(r)
	if err != nil {
		return nil, err
	}
	right, err := decodeID(r)
	if err != nil {
		return nil, err
	}
	return normID(left, right), nil
}

func encodeEvent(w *wire.Writer, e *Event) {
	if e.leaf {
		w.WriteBit(false)
		w.WriteUvarint(uint64(e.n))
		return
	}
	w.WriteBit(true)
	w.WriteUvarint(uint64(e.n))
	encodeEvent(w, e.left)
	encodeEvent(w, e.right)
}

func decodeEvent(r *wire.Reader) (*Event, error) {
	isNode, err := r.ReadBit()
	if err != nil {
		return nil, err
	}
	n, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if n > uint64(math.MaxInt) {
		return nil, errLeafOverflow
	}
	if !isNode {
		return eventLeaf(int(n)), nil
	}
	left, err := decodeEvent(r)
	if err != nil {
		return nil, err
	}
	right, err := decodeEvent(r)
	if err != nil {
		return nil, err
	}
	return normEv(int(n), left, right), nil
}
