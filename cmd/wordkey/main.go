// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Wordkey converts binary keys to memorable passphrases and back.
//
// Usage:
//
//	wordkey [flags] generate
//	wordkey [flags] encode [hexkey]
//	wordkey [flags] decode [word...]
//	wordkey [flags] words
//
// Encode and decode read from standard input when given no arguments.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"wordkey.io/dict"
	"wordkey.io/hexutil"
	"wordkey.io/keygen"
	"wordkey.io/log"
	"wordkey.io/passphrase"
	"wordkey.io/version"
)

var (
	lang         = flag.String("lang", "english", "builtin dictionary to use ("+strings.Join(dict.Languages(), ", ")+")")
	dictFile     = flag.String("dict", "", "YAML dictionary `file` (overrides -lang)")
	keyBytes     = flag.Int("bytes", passphrase.DefaultKeyLen, "key length in bytes")
	logLevel     = flag.String("log", "info", "log `level` (debug, info, error, disabled)")
	printVersion = flag.Bool("version", false, "print build version and exit")
)

func main() {
	flag.Usage = usage
	flag.Parse()
	log.SetLevel(*logLevel)
	if *printVersion {
		fmt.Print(version.Version())
		return
	}
	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	d, err := dictionary()
	if err != nil {
		log.Fatalf("wordkey: %v", err)
	}

	args := flag.Args()[1:]
	switch flag.Arg(0) {
	case "generate":
		generate(d)
	case "encode":
		encode(d, args)
	case "decode":
		decode(d, args)
	case "words":
		words(d)
	default:
		log.Error.Printf("wordkey: no such command %q", flag.Arg(0))
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: wordkey [flags] generate|encode|decode|words [args]")
	flag.PrintDefaults()
}

func dictionary() (*dict.Dictionary, error) {
	if *dictFile != "" {
		return dict.ReadFile(*dictFile)
	}
	return dict.ByLanguage(*lang)
}

// generate creates a fresh random key and prints it in both forms.
func generate(d *dict.Dictionary) {
	key, phrase, err := keygen.New(*keyBytes, d)
	if err != nil {
		log.Fatalf("wordkey: generating key: %v", err)
	}
	fmt.Println(hexutil.Encode(key))
	fmt.Println(phrase)
}

func encode(d *dict.Dictionary, args []string) {
	key, err := hexutil.Decode(input(args))
	if err != nil {
		log.Fatalf("wordkey: reading key: %v", err)
	}
	phrase, err := passphrase.Encode(key, d)
	if err != nil {
		log.Fatalf("wordkey: encoding: %v", err)
	}
	fmt.Println(phrase)
}

func decode(d *dict.Dictionary, args []string) {
	key, err := passphrase.Decode(input(args), *keyBytes, d)
	if err != nil {
		log.Fatalf("wordkey: decoding: %v", err)
	}
	fmt.Println(hexutil.Encode(key))
}

// words prints the dictionary's size and derived properties.
func words(d *dict.Dictionary) {
	bpw, err := passphrase.BitsPerWord(d)
	if err != nil {
		log.Fatalf("wordkey: %v", err)
	}
	fmt.Printf("words:         %d\n", d.Len())
	fmt.Printf("bits per word: %d\n", bpw)
	if dead := d.Len() - 1<<uint(bpw); dead > 0 {
		fmt.Printf("unreachable:   %d\n", dead)
	}
}

// input joins the command arguments, or reads standard input when
// there are none.
func input(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("wordkey: reading standard input: %v", err)
	}
	return strings.TrimSpace(string(data))
}
