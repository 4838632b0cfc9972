// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"wordkey.io/errors"
)

const testDict = `
words:
  - alpha
  - bravo
  - charlie
  - delta
sorted: true
case_sensitive: false
separator: '[\s,]+'
`

func TestReadFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "dict")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "test.yaml")
	if err := ioutil.WriteFile(name, []byte(testDict), 0600); err != nil {
		t.Fatal(err)
	}

	d, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 4 {
		t.Fatalf("%d words; want 4", d.Len())
	}
	if got := d.Lookup("charlie"); got != 2 {
		t.Errorf(`Lookup("charlie")=%d; want 2`, got)
	}
	// The custom separator accepts commas.
	words := d.Split("alpha, bravo,charlie")
	if len(words) != 3 {
		t.Errorf("Split yielded %d words; want 3", len(words))
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("no/such/dictionary.yaml")
	if !errors.Is(errors.IO, err) {
		t.Errorf("got %v; want IO error", err)
	}
}

func TestParseBad(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind errors.Kind
	}{
		{"malformed yaml", "words: [", errors.Invalid},
		{"bad separator", "words: [a, b]\nseparator: '['", errors.Invalid},
		{"too few words", "words: [lonely]", errors.InvalidDictionary},
	}
	for _, test := range tests {
		_, err := parse([]byte(test.data))
		if !errors.Is(test.kind, err) {
			t.Errorf("%s: got %v; want %v", test.name, err, test.kind)
		}
	}
}
