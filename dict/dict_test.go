// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"fmt"
	"reflect"
	"testing"

	"wordkey.io/errors"
)

var sortedWords = []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel"}
var unsortedWords = []string{"golf", "alpha", "hotel", "charlie", "echo", "bravo", "delta", "foxtrot"}

// genWords returns n unique words in ascending lexicographic order.
func genWords(n int) []string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%05d", i)
	}
	return words
}

func TestNewBounds(t *testing.T) {
	tests := []struct {
		n  int
		ok bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{8192, true},
		{65534, true},
		{65535, false},
		{70000, false},
	}
	for _, test := range tests {
		_, err := New(genWords(test.n), Options{Sorted: true})
		if test.ok && err != nil {
			t.Errorf("New(%d words): %v", test.n, err)
		}
		if !test.ok && !errors.Is(errors.InvalidDictionary, err) {
			t.Errorf("New(%d words): got %v; want InvalidDictionary", test.n, err)
		}
	}
}

func TestLookup(t *testing.T) {
	sorted, err := New(sortedWords, Options{Sorted: true})
	if err != nil {
		t.Fatal(err)
	}
	unsorted, err := New(unsortedWords, Options{})
	if err != nil {
		t.Fatal(err)
	}

	// Binary search and linear scan must agree on outcomes: every
	// word at its true index, -1 for absent words.
	for _, d := range []*Dictionary{sorted, unsorted} {
		for i := 0; i < d.Len(); i++ {
			w := d.Word(i)
			if got := d.Lookup(w); got != i {
				t.Errorf("Lookup(%q)=%d; want %d", w, got, i)
			}
		}
		for _, w := range []string{"", "aardvark", "alphabet", "zulu"} {
			if got := d.Lookup(w); got != -1 {
				t.Errorf("Lookup(%q)=%d; want -1", w, got)
			}
		}
	}
}

func TestLookupCase(t *testing.T) {
	folding, err := New(sortedWords, Options{Sorted: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := folding.Lookup("ALPHA"); got != 0 {
		t.Errorf(`case-folding Lookup("ALPHA")=%d; want 0`, got)
	}

	exact, err := New(sortedWords, Options{Sorted: true, CaseSensitive: true})
	if err != nil {
		t.Fatal(err)
	}
	if got := exact.Lookup("ALPHA"); got != -1 {
		t.Errorf(`case-sensitive Lookup("ALPHA")=%d; want -1`, got)
	}
	if got := exact.Lookup("alpha"); got != 0 {
		t.Errorf(`case-sensitive Lookup("alpha")=%d; want 0`, got)
	}
}

func TestSplit(t *testing.T) {
	d, err := New(sortedWords, Options{Sorted: true})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		phrase string
		want   []string
	}{
		{"alpha bravo", []string{"alpha", "bravo"}},
		{"  alpha \t bravo\n", []string{"alpha", "bravo"}},
		{"ALPHA Bravo", []string{"alpha", "bravo"}},
		{"", nil},
		{" \t\n ", nil},
	}
	for _, test := range tests {
		got := d.Split(test.phrase)
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Split(%q)=%q; want %q", test.phrase, got, test.want)
		}
	}
}

func TestBuiltins(t *testing.T) {
	for _, name := range Languages() {
		d, err := ByLanguage(name)
		if err != nil {
			t.Fatalf("ByLanguage(%q): %v", name, err)
		}
		if d.Len() != 2048 {
			t.Errorf("%s: %d words; want 2048", name, d.Len())
		}
		// Every word must resolve to its own index.
		for _, i := range []int{0, 1, 1023, 2047} {
			if got := d.Lookup(d.Word(i)); got != i {
				t.Errorf("%s: Lookup(Word(%d))=%d", name, i, got)
			}
		}
	}
}

func TestDefault(t *testing.T) {
	d := Default()
	if got := d.Lookup("abandon"); got != 0 {
		t.Errorf(`Lookup("abandon")=%d; want 0`, got)
	}
	if got := d.Lookup("zoo"); got != 2047 {
		t.Errorf(`Lookup("zoo")=%d; want 2047`, got)
	}
	if got := d.Lookup("zzzz"); got != -1 {
		t.Errorf(`Lookup("zzzz")=%d; want -1`, got)
	}
}

func TestByLanguageUnknown(t *testing.T) {
	_, err := ByLanguage("klingon")
	if !errors.Is(errors.InvalidDictionary, err) {
		t.Errorf("ByLanguage(klingon): got %v; want InvalidDictionary", err)
	}
}

func TestJapaneseSeparator(t *testing.T) {
	d, err := ByLanguage("japanese")
	if err != nil {
		t.Fatal(err)
	}
	// Japanese passphrases join words with the ideographic space.
	phrase := d.Word(0) + "　" + d.Word(1)
	words := d.Split(phrase)
	if len(words) != 2 {
		t.Fatalf("Split yielded %d words; want 2", len(words))
	}
	if got := d.Lookup(words[0]); got != 0 {
		t.Errorf("Lookup(%q)=%d; want 0", words[0], got)
	}
	if got := d.Lookup(words[1]); got != 1 {
		t.Errorf("Lookup(%q)=%d; want 1", words[1], got)
	}
}
