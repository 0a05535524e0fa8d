package cmd

import (
	"errors"
	"testing"
)

func TestParseEmpty(t *testing.T) {
	groups, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) returned error: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("Parse(nil) = %v groups; want 0", len(groups))
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		command string
		flags   int
	}{
		{"long version", []string{"--version"}, "--version", 0},
		{"short version", []string{"-V"}, "-V", 0},
		{"keys", []string{"--keys"}, "--keys", 0},
		{"help", []string{"-h"}, "-h", 0},
		{"verbose keys", []string{"-v", "--keys"}, "--keys", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v) returned error: %v", tt.args, err)
			}
			if len(groups) != 1 {
				t.Fatalf("Parse(%v) = %d groups; want 1", tt.args, len(groups))
			}
			if groups[0].Command != tt.command {
				t.Errorf("Command = %q; want %q", groups[0].Command, tt.command)
			}
			if len(groups[0].Flags) != tt.flags {
				t.Errorf("Flags = %v; want %d", groups[0].Flags, tt.flags)
			}
		})
	}
}

func TestParseModifierOnly(t *testing.T) {
	groups, err := Parse([]string{"-v"})
	if err != nil {
		t.Fatalf("Parse(-v) returned error: %v", err)
	}
	if len(groups) != 1 || groups[0].Command != "" {
		t.Fatalf("Parse(-v) = %+v; want one commandless group", groups)
	}
	if len(groups[0].Flags) != 1 || groups[0].Flags[0] != "-v" {
		t.Errorf("Flags = %v; want [-v]", groups[0].Flags)
	}
}

func TestParseCombinedShortFlags(t *testing.T) {
	groups, err := Parse([]string{"-vk"})
	if err != nil {
		t.Fatalf("Parse(-vk) returned error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("Parse(-vk) = %d groups; want 1", len(groups))
	}
	if groups[0].Command != "-k" {
		t.Errorf("Command = %q; want -k", groups[0].Command)
	}
	if len(groups[0].Flags) != 1 || groups[0].Flags[0] != "-v" {
		t.Errorf("Flags = %v; want [-v]", groups[0].Flags)
	}
}

func TestParseHelpTarget(t *testing.T) {
	groups, err := Parse([]string{"--help", "--keys"})
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups; want 1", len(groups))
	}
	if groups[0].Command != "--help" {
		t.Errorf("Command = %q; want --help", groups[0].Command)
	}
	if len(groups[0].Args) != 1 || groups[0].Args[0] != "--keys" {
		t.Errorf("Args = %v; want [--keys]", groups[0].Args)
	}
}

func TestParseInvalidOption(t *testing.T) {
	_, err := Parse([]string{"--bogus"})
	if err == nil {
		t.Fatal("Parse(--bogus) succeeded; want error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T; want *ParseError", err)
	}
	if parseErr.Index != 0 {
		t.Errorf("Index = %d; want 0", parseErr.Index)
	}
}

func TestParsePositionalRejected(t *testing.T) {
	_, err := Parse([]string{"something"})
	if err == nil {
		t.Fatal("Parse(something) succeeded; want error")
	}
}
