// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tyler-smith/go-bip39/wordlists"

	"wordkey.io/errors"
)

// The builtin dictionaries are the BIP-39 word lists: 2048 words each,
// so every builtin yields 11 bits per word. Only the English list is
// guaranteed to sort ascending under Go's byte-wise string comparison;
// the others are looked up linearly. The non-ASCII lists are published
// in NFKD form, so tokens are NFKD-normalized before comparison, and
// Japanese passphrases are conventionally joined with the ideographic
// space (U+3000).
var (
	ideographic = regexp.MustCompile(`[\s\x{3000}]+`)

	english            = mustBuiltin(wordlists.English, Options{Sorted: true})
	chineseSimplified  = mustBuiltin(wordlists.ChineseSimplified, Options{})
	chineseTraditional = mustBuiltin(wordlists.ChineseTraditional, Options{})
	french             = mustBuiltin(wordlists.French, Options{NFKD: true})
	italian            = mustBuiltin(wordlists.Italian, Options{NFKD: true})
	japanese           = mustBuiltin(wordlists.Japanese, Options{NFKD: true, Separator: ideographic})
	korean             = mustBuiltin(wordlists.Korean, Options{NFKD: true})
	spanish            = mustBuiltin(wordlists.Spanish, Options{NFKD: true})
)

var builtins = map[string]*Dictionary{
	"english":             english,
	"chinese_simplified":  chineseSimplified,
	"chinese_traditional": chineseTraditional,
	"french":              french,
	"italian":             italian,
	"japanese":            japanese,
	"korean":              korean,
	"spanish":             spanish,
}

// Default returns the dictionary used when a caller supplies none:
// the BIP-39 English list.
func Default() *Dictionary {
	return english
}

// ByLanguage returns the builtin dictionary for the named language,
// such as "english" or "japanese".
func ByLanguage(name string) (*Dictionary, error) {
	const op = "dict.ByLanguage"
	d, ok := builtins[strings.ToLower(name)]
	if !ok {
		return nil, errors.E(op, errors.InvalidDictionary, errors.Errorf("no builtin dictionary %q", name))
	}
	return d, nil
}

// Languages returns the names of the builtin dictionaries, sorted.
func Languages() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustBuiltin(words []string, opts Options) *Dictionary {
	d, err := New(words, opts)
	if err != nil {
		panic("dict: bad builtin word list: " + err.Error())
	}
	return d
}
