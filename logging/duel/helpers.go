package duel

import (
	"context"

	"duel-arena/engine/logging"
)

const (
	// EventMatchStarted is emitted when a match leaves its unstarted state.
	EventMatchStarted logging.EventType = "duel.match_started"
	// EventRoundEnded is emitted when a round timer expires with rounds remaining.
	EventRoundEnded logging.EventType = "duel.round_ended"
	// EventMatchEnded is emitted exactly once when a match reaches its terminal state.
	EventMatchEnded logging.EventType = "duel.match_ended"
)

// RoundEndedPayload summarizes the round that just closed.
type RoundEndedPayload struct {
	Round     int     `json:"round"`
	NextRound int     `json:"nextRound"`
	SimTime   float64 `json:"simTime"`
}

// MatchEndedPayload carries the authoritative outcome.
type MatchEndedPayload struct {
	Winner        string  `json:"winner"`
	Method        string  `json:"method"`
	RoundsReached int     `json:"roundsReached"`
	Elapsed       float64 `json:"elapsedSeconds"`
}

func MatchStarted(ctx context.Context, pub logging.Publisher, tick uint64, match logging.EntityRef) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventMatchStarted,
		Tick:     tick,
		Actor:    match,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryRound,
	})
}

func RoundEnded(ctx context.Context, pub logging.Publisher, tick uint64, match logging.EntityRef, payload RoundEndedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRoundEnded,
		Tick:     tick,
		Actor:    match,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryRound,
		Payload:  payload,
	})
}

func MatchEnded(ctx context.Context, pub logging.Publisher, tick uint64, match logging.EntityRef, payload MatchEndedPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventMatchEnded,
		Tick:     tick,
		Actor:    match,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryRound,
		Payload:  payload,
	})
}
