package sinks

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"duel-arena/engine/logging"
)

func TestMemorySinkIsolatesStoredEvents(t *testing.T) {
	sink := NewMemorySink()
	event := logging.Event{
		Type:    "combat.hit",
		Tick:    3,
		Targets: []logging.EntityRef{{ID: "2", Kind: logging.EntityKindCombatant}},
		Extra:   map[string]any{"matchId": "m-1"},
	}
	if err := sink.Write(event); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	// Mutating the original after the write must not reach the stored copy.
	event.Targets[0].ID = "mutated"
	event.Extra["matchId"] = "mutated"

	stored := sink.Events()
	if len(stored) != 1 {
		t.Fatalf("expected one stored event, got %d", len(stored))
	}
	if stored[0].Targets[0].ID != "2" {
		t.Fatalf("stored targets alias the caller's slice")
	}
	if stored[0].Extra["matchId"] != "m-1" {
		t.Fatalf("stored extras alias the caller's map")
	}

	sink.Reset()
	if len(sink.Events()) != 0 {
		t.Fatalf("expected empty sink after reset")
	}
}

func TestJSONSinkWritesOneEventPerLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSON(&buf, 0)

	events := []logging.Event{
		{Type: "combat.hit", Tick: 4, Actor: logging.EntityRef{ID: "1", Kind: logging.EntityKindCombatant}},
		{Type: "duel.match_ended", Tick: 9, Actor: logging.EntityRef{ID: "m-1", Kind: logging.EntityKindMatch}},
	}
	for _, event := range events {
		if err := sink.Write(event); err != nil {
			t.Fatalf("unexpected write error: %v", err)
		}
	}
	if err := sink.Close(context.Background()); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two NDJSON lines, got %d: %q", len(lines), buf.String())
	}
	for i, line := range lines {
		var decoded logging.Event
		if err := json.Unmarshal([]byte(line), &decoded); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if decoded.Type != events[i].Type || decoded.Tick != events[i].Tick {
			t.Fatalf("line %d round-trip mismatch: %+v", i, decoded)
		}
	}
}

func TestConsoleSinkFormatsEvent(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, logging.ConsoleConfig{})

	err := sink.Write(logging.Event{
		Type:     "combat.hit",
		Tick:     12,
		Actor:    logging.EntityRef{ID: "1", Kind: logging.EntityKindCombatant},
		Targets:  []logging.EntityRef{{ID: "2", Kind: logging.EntityKindCombatant}},
		Severity: logging.SeverityInfo,
		Payload:  map[string]int{"damage": 9},
	})
	if err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	line := buf.String()
	for _, want := range []string{"[combat.hit]", "tick=12", "actor=combatant:1", "severity=info", "targets=combatant:2", `"damage":9`} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected console line to contain %q, got %q", want, line)
		}
	}
}
