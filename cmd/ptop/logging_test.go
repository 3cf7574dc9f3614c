package main

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
)

func discardLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestNewLoggerDefaultsToInfoLevel(t *testing.T) {
	log, err := newLogger("", false)
	if err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != zerolog.InfoLevel {
		t.Fatalf("got level %v, want InfoLevel", log.GetLevel())
	}
}

func TestNewLoggerVerboseSetsDebugLevel(t *testing.T) {
	log, err := newLogger("", true)
	if err != nil {
		t.Fatal(err)
	}
	if log.GetLevel() != zerolog.DebugLevel {
		t.Fatalf("got level %v, want DebugLevel", log.GetLevel())
	}
}
