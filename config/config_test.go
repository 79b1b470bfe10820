package config

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"snake-classic/logging"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestParseDefaults(t *testing.T) {
	cfg, err := parse(nil, envMap(nil), io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{Frontend: Window, LogLevel: "info", LogFormat: logging.FormatConsole}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseEnvAndFlags(t *testing.T) {
	env := envMap(map[string]string{
		"SNAKE_UI":   "term",
		"LOG_LEVEL":  "debug",
		"LOG_FORMAT": "json",
		"SNAKE_MUTE": "true",
		"SNAKE_SEED": "12",
	})

	cfg, err := parse(nil, env, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{Frontend: Terminal, LogLevel: "debug", LogFormat: logging.FormatJSON, Mute: true, Seed: 12}
	if cfg != want {
		t.Errorf("env cfg = %+v, want %+v", cfg, want)
	}

	cfg, err = parse([]string{"-ui", "window", "-mute=false", "-seed", "5"}, env, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Frontend != Window || cfg.Mute || cfg.Seed != 5 || cfg.LogLevel != "debug" {
		t.Errorf("flags did not override env: %+v", cfg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad frontend", []string{"-ui", "gl"}, nil},
		{"bad format", []string{"-log-format", "xml"}, nil},
		{"bad mute env", nil, map[string]string{"SNAKE_MUTE": "maybe"}},
		{"bad seed env", nil, map[string]string{"SNAKE_SEED": "-1"}},
		{"unknown flag", []string{"-speed", "3"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(tt.args, envMap(tt.env), io.Discard); err == nil {
				t.Error("parse succeeded")
			}
		})
	}
}

func TestParseHelpPrintsUsage(t *testing.T) {
	var usage bytes.Buffer
	_, err := parse([]string{"-h"}, envMap(nil), &usage)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	for _, name := range []string{"-ui", "-log-level", "-mute", "-seed"} {
		if !strings.Contains(usage.String(), name) {
			t.Errorf("usage does not mention %s:\n%s", name, usage.String())
		}
	}
}
