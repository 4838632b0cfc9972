// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hexutil converts keys to and from hexadecimal text.
//
// It differs from encoding/hex in one convenience: Decode accepts an
// odd number of digits and pads the final byte with a zero nibble, so
// a hand-transcribed key that lost its last character still decodes.
package hexutil

import "wordkey.io/errors"

const digits = "0123456789abcdef"

// Encode returns the lowercase hexadecimal form of key, two characters
// per byte.
func Encode(key []byte) string {
	buf := make([]byte, 2*len(key))
	for i, b := range key {
		buf[2*i] = digits[b>>4]
		buf[2*i+1] = digits[b&0x0f]
	}
	return string(buf)
}

// Decode converts hexadecimal text to bytes. Upper and lower case are
// accepted. Odd-length input is padded with a trailing zero nibble.
func Decode(s string) ([]byte, error) {
	const op = "hexutil.Decode"
	if len(s)%2 != 0 {
		s += "0"
	}
	key := make([]byte, len(s)/2)
	for i := range key {
		hi, err := nibble(s[2*i])
		if err != nil {
			return nil, errors.E(op, errors.Invalid, err)
		}
		lo, err := nibble(s[2*i+1])
		if err != nil {
			return nil, errors.E(op, errors.Invalid, err)
		}
		key[i] = hi<<4 | lo
	}
	return key, nil
}

func nibble(c byte) (byte, error) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', nil
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, nil
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, nil
	}
	return 0, errors.Errorf("non-hex character %q", c)
}
