// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict defines the word dictionaries that serve as the
// addressing alphabet for passphrase encoding.
//
// A dictionary is immutable once constructed, so a single instance may
// be shared freely between concurrent encoders and decoders.
package dict

import (
	mathbits "math/bits"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"wordkey.io/errors"
	"wordkey.io/log"
)

// Bounds on the number of words in a dictionary. A word index must fit
// in a 16-bit field, and the all-ones value is reserved by the original
// wire format, so the count is bounded by [MinWords, MaxWords).
const (
	MinWords = 2
	MaxWords = 0xFFFF
)

// Options configures a Dictionary under construction.
type Options struct {
	// Sorted declares that the words are already in ascending
	// lexicographic order, enabling binary search. New does not
	// verify the claim; a misdeclared dictionary silently misses
	// lookups.
	Sorted bool

	// CaseSensitive disables the lower-casing of tokens during
	// lookup and tokenization.
	CaseSensitive bool

	// NFKD applies Unicode NFKD normalization to tokens during
	// lookup and tokenization. The words themselves must already be
	// in NFKD form. Needed for the non-ASCII builtin lists.
	NFKD bool

	// Separator tokenizes passphrases. Nil means runs of ASCII
	// whitespace.
	Separator *regexp.Regexp
}

// Dictionary is an ordered list of unique words plus the tokenization
// and comparison rules that go with it.
type Dictionary struct {
	words         []string
	sorted        bool
	caseSensitive bool
	nfkd          bool
	separator     *regexp.Regexp
}

var whitespace = regexp.MustCompile(`\s+`)

// New builds a dictionary from words. The slice is copied; the caller
// may reuse it. When the word count is not a power of two the words at
// indices beyond the largest reachable power of two can never be
// produced by encoding; New logs how many and carries on.
func New(words []string, opts Options) (*Dictionary, error) {
	const op = "dict.New"
	if len(words) < MinWords || len(words) >= MaxWords {
		return nil, errors.E(op, errors.InvalidDictionary,
			errors.Errorf("%d words, need at least %d and fewer than %d", len(words), MinWords, MaxWords))
	}
	d := &Dictionary{
		words:         append([]string(nil), words...),
		sorted:        opts.Sorted,
		caseSensitive: opts.CaseSensitive,
		nfkd:          opts.NFKD,
		separator:     opts.Separator,
	}
	if d.separator == nil {
		d.separator = whitespace
	}
	if n := len(d.words); n&(n-1) != 0 {
		reachable := 1 << uint(mathbits.Len(uint(n))-1)
		log.Printf("dict: %d of %d words are beyond the largest power of two and unreachable by encoding", n-reachable, n)
	}
	return d, nil
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Word returns the word at index i.
func (d *Dictionary) Word(i int) string {
	return d.words[i]
}

// Lookup returns the zero-based index of word, or -1 if it is absent.
// The word is folded and normalized according to the dictionary's
// rules before comparison. Sorted dictionaries are binary searched;
// the rest are scanned.
func (d *Dictionary) Lookup(word string) int {
	word = d.normalize(word)
	if d.sorted {
		i := sort.SearchStrings(d.words, word)
		if i < len(d.words) && d.words[i] == word {
			return i
		}
		return -1
	}
	for i, w := range d.words {
		if w == word {
			return i
		}
	}
	return -1
}

// Split tokenizes a passphrase using the dictionary's separator,
// folding and normalizing each token and discarding empty ones.
func (d *Dictionary) Split(phrase string) []string {
	var words []string
	for _, w := range d.separator.Split(phrase, -1) {
		if w == "" {
			continue
		}
		words = append(words, d.normalize(w))
	}
	return words
}

func (d *Dictionary) normalize(word string) string {
	if !d.caseSensitive {
		word = strings.ToLower(word)
	}
	if d.nfkd {
		word = norm.NFKD.String(word)
	}
	return word
}
