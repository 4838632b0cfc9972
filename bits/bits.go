// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bits reads and writes unsigned integers of up to 16 bits at
// arbitrary bit offsets within a byte buffer. Bit 0 is the most
// significant bit of byte 0. Windows may straddle byte boundaries and
// may extend past the end of the buffer: reads treat missing bytes as
// zero, writes report the bytes they could not store.
//
// A window of at most 16 bits starting anywhere inside a byte spans at
// most three bytes, so both operations work through a 24-bit window
// loaded from (or merged into) three consecutive bytes.
package bits

import "wordkey.io/errors"

// MaxCount is the widest window Read and Write accept.
const MaxCount = 16

const (
	windowBits = 24
	windowMask = 1<<windowBits - 1
)

// Result reports the outcome of a Write. Truncated is set when one or
// more of the window's bytes fell outside the buffer. Lost is the OR
// of the byte values that could not be stored; a truncated write with
// Lost == 0 dropped only zero bits.
type Result struct {
	Truncated bool
	Lost      byte
}

// Read extracts the count-bit unsigned integer starting at bit offset
// startbit in buf. Bytes at or beyond len(buf) read as zero, so a
// window may run past the end of the buffer and the missing low-order
// bits come back as zero padding. count must be in [1, MaxCount].
func Read(buf []byte, startbit, count int) (uint16, error) {
	const op = "bits.Read"
	if count < 1 || count > MaxCount {
		return 0, errors.E(op, errors.InvalidBitCount, errors.Errorf("bit count %d", count))
	}
	startbyte := startbit / 8
	var w uint32
	for i := 0; i < 3; i++ {
		w <<= 8
		if j := startbyte + i; j < len(buf) {
			w |= uint32(buf[j])
		}
	}
	// Align the target bits to the top of the 24-bit window, then
	// right-justify them.
	w = w << uint(startbit%8) & windowMask
	return uint16(w >> uint(windowBits-count)), nil
}

// Write stores the low count bits of v starting at bit offset startbit
// in buf, leaving all bits outside the window untouched. v must fit in
// count bits; Write does not range-check it. Window bytes beyond
// len(buf) are not written and are reported through the Result.
// count must be in [1, MaxCount].
func Write(buf []byte, v uint16, startbit, count int) (Result, error) {
	const op = "bits.Write"
	if count < 1 || count > MaxCount {
		return Result{}, errors.E(op, errors.InvalidBitCount, errors.Errorf("bit count %d", count))
	}
	shift := uint(startbit % 8)
	val := uint32(v) << uint(windowBits-count) >> shift
	mask := (uint32(1)<<uint(count) - 1) << uint(windowBits-count) >> shift
	keep := ^mask & windowMask

	startbyte := startbit / 8
	var res Result
	for i := 0; i < 3; i++ {
		off := uint(windowBits - 8 - 8*i)
		b := byte(val >> off)
		j := startbyte + i
		if j >= len(buf) {
			res.Truncated = true
			res.Lost |= b
			continue
		}
		buf[j] = buf[j]&byte(keep>>off) | b
	}
	return res, nil
}
