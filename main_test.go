package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"darkmaze/pkg/game/generator"
)

func TestParseFlags_Defaults(t *testing.T) {
	o, err := parseFlags(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	def := generator.DefaultConfig()
	if o.cfg.Width != def.Width || o.cfg.Depth != def.Depth || o.cfg.ThemeCount != def.ThemeCount {
		t.Errorf("cfg = %+v, want defaults %+v", o.cfg, def)
	}
	if o.backend != "tui" || o.pace != 10*time.Millisecond {
		t.Errorf("backend=%q pace=%v", o.backend, o.pace)
	}
}

func TestParseFlags_Values(t *testing.T) {
	o, err := parseFlags([]string{"-width", "7", "-depth", "0", "-doors", "1", "-themes", "2", "-seed", "99", "-renderer", "ebiten", "-pace", "0"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if o.cfg.Width != 7 || o.cfg.DoorProbability != 1 || o.cfg.ThemeCount != 2 || o.cfg.Seed != 99 {
		t.Errorf("cfg = %+v", o.cfg)
	}
	if o.fitWidth || !o.fitDepth {
		t.Errorf("fitWidth=%v fitDepth=%v, want false/true", o.fitWidth, o.fitDepth)
	}

	o.resolveSize(func(int) (int, int) { return 30, 12 })
	if o.cfg.Width != 7 || o.cfg.Depth != 12 {
		t.Errorf("resolved size %dx%d, want 7x12", o.cfg.Width, o.cfg.Depth)
	}
}

func TestParseFlags_UnknownRenderer(t *testing.T) {
	if _, err := parseFlags([]string{"-renderer", "sdl"}, io.Discard); err == nil {
		t.Error("unknown renderer accepted")
	}
}

func TestParseFlags_InvalidConfigReportedByValidate(t *testing.T) {
	o, err := parseFlags([]string{"-doors", "1.5", "-themes", "0"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	err = o.cfg.Validate()
	if !errors.Is(err, generator.ErrInvalidDoorProbability) || !errors.Is(err, generator.ErrInvalidThemeCount) {
		t.Errorf("Validate() = %v, want both problems", err)
	}
}

func TestPrintBindings(t *testing.T) {
	var buf bytes.Buffer
	printBindings(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(boundActions) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(boundActions), buf.String())
	}
	if !strings.HasPrefix(lines[0], "Forward:") || !strings.Contains(lines[0], "arrow_up, w") {
		t.Errorf("first line = %q", lines[0])
	}
	if strings.Contains(buf.String(), "(unbound)") {
		t.Errorf("every listed action should be bound:\n%s", buf.String())
	}
}
