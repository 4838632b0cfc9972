// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package passphrase converts binary keys to memorable word sequences
// and back, losslessly.
//
// A key's bitstream is cut into fixed-width windows of
// floor(log2(dictionary size)) bits, and each window's value selects
// one dictionary word. Encoding reads past the end of a key as zero
// bits, so the final word of a passphrase may carry padding; decoding
// writes those zero bits back into a buffer that is already zero.
package passphrase

import (
	"strings"

	"wordkey.io/bits"
	"wordkey.io/dict"
	"wordkey.io/errors"
)

// DefaultKeyLen is the key size in bytes assumed by Decode when the
// caller passes a length of zero.
const DefaultKeyLen = 32

// BitsPerWord returns the number of key bits one word of d encodes:
// floor(log2(word count)). A nil dictionary means the default.
// It is recomputed on every call; dictionaries are cheap to measure
// and callers may swap them between calls.
func BitsPerWord(d *dict.Dictionary) (int, error) {
	const op = "passphrase.BitsPerWord"
	if d == nil {
		d = dict.Default()
	}
	n := d.Len()
	if n < dict.MinWords || n >= dict.MaxWords {
		return 0, errors.E(op, errors.InvalidDictionary, errors.Errorf("%d words", n))
	}
	b := 0
	for n > 1 {
		n >>= 1
		b++
	}
	return b, nil
}

// Encode converts key to a passphrase of words from d, joined by
// single spaces. A nil dictionary means the default. The key must not
// be empty.
func Encode(key []byte, d *dict.Dictionary) (string, error) {
	const op = "passphrase.Encode"
	if d == nil {
		d = dict.Default()
	}
	bpw, err := BitsPerWord(d)
	if err != nil {
		return "", errors.E(op, err)
	}
	if len(key) == 0 {
		return "", errors.E(op, errors.MissingKey, errors.Str("empty key"))
	}
	nwords := (len(key)*8 + bpw - 1) / bpw
	words := make([]string, nwords)
	for i := range words {
		v, err := bits.Read(key, i*bpw, bpw)
		if err != nil {
			return "", errors.E(op, err)
		}
		words[i] = d.Word(int(v))
	}
	return strings.Join(words, " "), nil
}

// Decode converts a passphrase back to a key of keyLen bytes. A nil
// dictionary means the default; a keyLen of zero means DefaultKeyLen.
// The passphrase must supply at least keyLen*8 bits of words, every
// word must be in the dictionary, and any bits past the end of the key
// must be zero (the padding Encode itself produces).
func Decode(phrase string, keyLen int, d *dict.Dictionary) ([]byte, error) {
	const op = "passphrase.Decode"
	if d == nil {
		d = dict.Default()
	}
	if keyLen == 0 {
		keyLen = DefaultKeyLen
	}
	if keyLen < 0 {
		return nil, errors.E(op, errors.Invalid, errors.Errorf("key length %d", keyLen))
	}
	bpw, err := BitsPerWord(d)
	if err != nil {
		return nil, errors.E(op, err)
	}
	words := d.Split(phrase)
	if len(words)*bpw < keyLen*8 {
		return nil, errors.E(op, errors.InsufficientWords,
			errors.Errorf("%d words supply %d bits, need %d", len(words), len(words)*bpw, keyLen*8))
	}
	key := make([]byte, keyLen)
	for i, w := range words {
		n := d.Lookup(w)
		if n < 0 {
			return nil, errors.E(op, errors.UnknownWord, errors.Word(w))
		}
		res, err := bits.Write(key, uint16(n), i*bpw, bpw)
		if err != nil {
			return nil, errors.E(op, err)
		}
		if res.Truncated && res.Lost != 0 {
			return nil, errors.E(op, errors.EncodingOverflow,
				errors.Errorf("%d words encode more than %d bytes", len(words), keyLen))
		}
	}
	return key, nil
}

// WordLookup returns the index of word in d, or -1 if it is absent.
// A nil dictionary means the default.
func WordLookup(word string, d *dict.Dictionary) int {
	if d == nil {
		d = dict.Default()
	}
	return d.Lookup(word)
}
