package logging

import (
	"context"
	"sync"
	"testing"
	"time"
)

type captureSink struct {
	mu     sync.Mutex
	events []Event
	closed bool
}

func (s *captureSink) Write(event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *captureSink) Close(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *captureSink) snapshot() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]Event, len(s.events))
	copy(copied, s.events)
	return copied
}

func newTestRouter(cfg Config, sink Sink) *Router {
	return NewRouter(ClockFunc(func() time.Time {
		return time.Unix(1700000000, 0).UTC()
	}), cfg, []NamedSink{{Name: "capture", Sink: sink}})
}

func TestRouterForwardsEvents(t *testing.T) {
	sink := &captureSink{}
	router := newTestRouter(DefaultConfig(), sink)

	router.Publish(context.Background(), Event{
		Type:     EventType("test.event"),
		Tick:     7,
		Actor:    EntityRef{ID: "1", Kind: EntityKindCombatant},
		Severity: SeverityInfo,
	})
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	events := sink.snapshot()
	if len(events) != 1 {
		t.Fatalf("expected one forwarded event, got %d", len(events))
	}
	if events[0].Type != "test.event" || events[0].Tick != 7 {
		t.Fatalf("unexpected event %+v", events[0])
	}
	if events[0].Time.IsZero() {
		t.Fatalf("expected router to stamp the clock time")
	}
	if !sink.closed {
		t.Fatalf("expected sink closed with the router")
	}
}

func TestRouterFiltersBySeverity(t *testing.T) {
	sink := &captureSink{}
	cfg := DefaultConfig()
	cfg.MinimumSeverity = SeverityWarn
	router := newTestRouter(cfg, sink)

	router.Publish(context.Background(), Event{Type: "test.debug", Severity: SeverityDebug})
	router.Publish(context.Background(), Event{Type: "test.warn", Severity: SeverityWarn})
	router.Close(context.Background())

	events := sink.snapshot()
	if len(events) != 1 {
		t.Fatalf("expected only the warn event, got %d", len(events))
	}
	if events[0].Type != "test.warn" {
		t.Fatalf("expected warn event, got %q", events[0].Type)
	}
}

func TestRouterDropsUntypedEvents(t *testing.T) {
	sink := &captureSink{}
	router := newTestRouter(DefaultConfig(), sink)

	router.Publish(context.Background(), Event{Tick: 1})
	router.Close(context.Background())

	if events := sink.snapshot(); len(events) != 0 {
		t.Fatalf("expected untyped event ignored, got %d", len(events))
	}
}

func TestRouterIgnoresPublishAfterClose(t *testing.T) {
	sink := &captureSink{}
	router := newTestRouter(DefaultConfig(), sink)
	router.Close(context.Background())

	router.Publish(context.Background(), Event{Type: "test.late"})
	if events := sink.snapshot(); len(events) != 0 {
		t.Fatalf("expected no events after close, got %d", len(events))
	}
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("expected redundant close to be a no-op, got %v", err)
	}
}

func TestRouterStatsCountForwardedEvents(t *testing.T) {
	sink := &captureSink{}
	router := newTestRouter(DefaultConfig(), sink)

	router.Publish(context.Background(), Event{Type: "test.one", Severity: SeverityInfo})
	router.Publish(context.Background(), Event{Type: "test.two", Severity: SeverityInfo})
	router.Close(context.Background())

	stats := router.Stats()
	if stats.EventsTotal != 2 {
		t.Fatalf("expected 2 forwarded events, got %d", stats.EventsTotal)
	}
	if stats.DroppedTotal != 0 {
		t.Fatalf("expected no drops, got %d", stats.DroppedTotal)
	}
}

func TestRouterAttachesConfiguredFields(t *testing.T) {
	sink := &captureSink{}
	cfg := DefaultConfig()
	cfg.Fields = map[string]any{"matchId": "m-1"}
	router := newTestRouter(cfg, sink)

	router.Publish(context.Background(), Event{Type: "test.fields", Severity: SeverityInfo})
	router.Close(context.Background())

	events := sink.snapshot()
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
	if events[0].Extra["matchId"] != "m-1" {
		t.Fatalf("expected configured field attached, got %+v", events[0].Extra)
	}
}

func TestWithFieldsDoesNotOverrideExisting(t *testing.T) {
	var got Event
	pub := WithFields(PublisherFunc(func(_ context.Context, event Event) {
		got = event
	}), map[string]any{"source": "wrapper", "matchId": "m-1"})

	pub.Publish(context.Background(), Event{
		Type:  "test.fields",
		Extra: map[string]any{"source": "original"},
	})

	if got.Extra["source"] != "original" {
		t.Fatalf("expected existing extra preserved, got %v", got.Extra["source"])
	}
	if got.Extra["matchId"] != "m-1" {
		t.Fatalf("expected wrapper field attached, got %v", got.Extra["matchId"])
	}
}
