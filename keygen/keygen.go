// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keygen produces key material for passphrase encoding.
package keygen

import (
	"crypto/rand"
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"wordkey.io/dict"
	"wordkey.io/errors"
	"wordkey.io/passphrase"
)

// Random returns n cryptographically-secure random bytes. It fails
// rather than fall back to a weaker source.
func Random(n int) ([]byte, error) {
	const op = "keygen.Random"
	if n < 1 {
		return nil, errors.E(op, errors.Invalid, errors.Errorf("key length %d", n))
	}
	key := make([]byte, n)
	if _, err := rand.Read(key); err != nil {
		return nil, errors.E(op, errors.IO, err)
	}
	return key, nil
}

// FromSeed derives an n-byte key from a memorable seed string using
// HKDF-SHA256. The same seed always yields the same key. The seed
// carries only as much entropy as was put into it; FromSeed stretches,
// it does not strengthen.
func FromSeed(seed string, n int) ([]byte, error) {
	const op = "keygen.FromSeed"
	if seed == "" {
		return nil, errors.E(op, errors.MissingKey, errors.Str("empty seed"))
	}
	if n < 1 {
		return nil, errors.E(op, errors.Invalid, errors.Errorf("key length %d", n))
	}
	key := make([]byte, n)
	r := hkdf.New(sha256.New, []byte(seed), nil, []byte("wordkey"))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, errors.E(op, err)
	}
	return key, nil
}

// New returns a fresh random key of n bytes together with its
// passphrase in d. A nil dictionary means the default.
func New(n int, d *dict.Dictionary) (key []byte, phrase string, err error) {
	key, err = Random(n)
	if err != nil {
		return nil, "", err
	}
	phrase, err = passphrase.Encode(key, d)
	if err != nil {
		return nil, "", err
	}
	return key, phrase, nil
}
