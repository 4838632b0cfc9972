// Copyright 2021 The Wordkey Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log exports logging primitives that log to stderr.
package log

// We call this log instead of logging for two reasons:
// 1) It's shorter to type;
// 2) it mimics Go's log package and can be used as a drop-in replacement for it.

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the interface for logging messages.
type Logger interface {
	// Printf writes a formatted message to the log.
	Printf(format string, v ...interface{})

	// Print writes a message to the log.
	Print(v ...interface{})

	// Println writes a line to the log.
	Println(v ...interface{})

	// Fatal writes a message to the log and aborts.
	Fatal(v ...interface{})

	// Fatalf writes a formatted message to the log and aborts.
	Fatalf(format string, v ...interface{})
}

// Pre-allocated Loggers at each logging level.
var (
	Debug Logger = logger{zerolog.DebugLevel}
	Info  Logger = logger{zerolog.InfoLevel}
	Error Logger = logger{zerolog.ErrorLevel}
)

var base = zerolog.New(os.Stderr).With().Timestamp().Logger()

// logger emits messages at a fixed level through the shared base logger.
type logger struct {
	level zerolog.Level
}

func (l logger) Printf(format string, v ...interface{}) {
	base.WithLevel(l.level).Msgf(format, v...)
}

func (l logger) Print(v ...interface{}) {
	base.WithLevel(l.level).Msg(fmt.Sprint(v...))
}

func (l logger) Println(v ...interface{}) {
	base.WithLevel(l.level).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (l logger) Fatal(v ...interface{}) {
	base.Fatal().Msg(fmt.Sprint(v...))
}

func (l logger) Fatalf(format string, v ...interface{}) {
	base.Fatal().Msgf(format, v...)
}

// SetLevel sets the current level of logging.
// Messages below the level are discarded.
func SetLevel(level string) {
	base = base.Level(ParseLevel(level, zerolog.InfoLevel))
}

// ParseLevel parses a string which represents a log level and returns
// a zerolog.Level, or defaultLevel if the string is not recognized.
func ParseLevel(level string, defaultLevel zerolog.Level) zerolog.Level {
	l := defaultLevel
	switch strings.ToLower(level) {
	case "debug":
		l = zerolog.DebugLevel
	case "info":
		l = zerolog.InfoLevel
	case "error":
		l = zerolog.ErrorLevel
	case "disabled":
		l = zerolog.Disabled
	}
	return l
}

// The following functions mirror the standard log package
// at the Info level.

// Printf writes a formatted message to the log.
func Printf(format string, v ...interface{}) {
	Info.Printf(format, v...)
}

// Print writes a message to the log.
func Print(v ...interface{}) {
	Info.Print(v...)
}

// Println writes a line to the log.
func Println(v ...interface{}) {
	Info.Println(v...)
}

// Fatal writes a message to the log and aborts.
func Fatal(v ...interface{}) {
	Info.Fatal(v...)
}

// Fatalf writes a formatted message to the log and aborts.
func Fatalf(format string, v ...interface{}) {
	Info.Fatalf(format, v...)
}
