// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"io/ioutil"
	"regexp"

	"gopkg.in/yaml.v2"

	"wordkey.io/errors"
)

// dictFile is the YAML schema for a dictionary on disk:
//
//	words:
//	  - aardvark
//	  - abacus
//	sorted: true
//	case_sensitive: false
//	nfkd: false
//	separator: '\s+'
type dictFile struct {
	Words         []string `yaml:"words"`
	Sorted        bool     `yaml:"sorted"`
	CaseSensitive bool     `yaml:"case_sensitive"`
	NFKD          bool     `yaml:"nfkd"`
	Separator     string   `yaml:"separator"`
}

// ReadFile loads a dictionary from a YAML file.
func ReadFile(name string) (*Dictionary, error) {
	const op = "dict.ReadFile"
	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.E(op, errors.IO, err)
	}
	d, err := parse(data)
	if err != nil {
		return nil, errors.E(op, err)
	}
	return d, nil
}

func parse(data []byte) (*Dictionary, error) {
	var f dictFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.E(errors.Invalid, err)
	}
	opts := Options{
		Sorted:        f.Sorted,
		CaseSensitive: f.CaseSensitive,
		NFKD:          f.NFKD,
	}
	if f.Separator != "" {
		sep, err := regexp.Compile(f.Separator)
		if err != nil {
			return nil, errors.E(errors.Invalid, err)
		}
		opts.Separator = sep
	}
	return New(f.Words, opts)
}
