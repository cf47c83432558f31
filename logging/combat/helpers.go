package combat

import (
	"context"

	"duel-arena/engine/logging"
)

const (
	// EventHit is emitted when a swing lands for full damage.
	EventHit logging.EventType = "combat.hit"
	// EventBlocked is emitted when a defending combatant absorbs a swing.
	EventBlocked logging.EventType = "combat.blocked"
	// EventDodged is emitted when a swing is fully negated.
	EventDodged logging.EventType = "combat.dodged"
	// EventSpecial is emitted when a combatant fires its special attack.
	EventSpecial logging.EventType = "combat.special"
	// EventKnockout is emitted when a combatant's health reaches zero.
	EventKnockout logging.EventType = "combat.knockout"
)

// HitPayload captures the outcome of a landed swing.
type HitPayload struct {
	Damage       int     `json:"damage"`
	TargetHealth float64 `json:"targetHealth"`
	Crit         bool    `json:"crit,omitempty"`
	Combo        int     `json:"combo,omitempty"`
	SimTime      float64 `json:"simTime"`
}

// BlockedPayload captures a swing absorbed by an active guard.
type BlockedPayload struct {
	Damage       int     `json:"damage"`
	Reflected    int     `json:"reflected,omitempty"`
	TargetHealth float64 `json:"targetHealth"`
	SimTime      float64 `json:"simTime"`
}

// DodgedPayload captures a fully negated swing.
type DodgedPayload struct {
	SimTime float64 `json:"simTime"`
}

// SpecialPayload captures a fired special attack.
type SpecialPayload struct {
	MeterSpent float64 `json:"meterSpent"`
	SimTime    float64 `json:"simTime"`
}

// KnockoutPayload describes the fatal blow.
type KnockoutPayload struct {
	Damage  int     `json:"damage"`
	Round   int     `json:"round"`
	SimTime float64 `json:"simTime"`
}

func Hit(ctx context.Context, pub logging.Publisher, tick uint64, attacker, target logging.EntityRef, payload HitPayload) {
	publish(ctx, pub, EventHit, tick, attacker, target, payload)
}

func Blocked(ctx context.Context, pub logging.Publisher, tick uint64, attacker, target logging.EntityRef, payload BlockedPayload) {
	publish(ctx, pub, EventBlocked, tick, attacker, target, payload)
}

func Dodged(ctx context.Context, pub logging.Publisher, tick uint64, attacker, target logging.EntityRef, payload DodgedPayload) {
	publish(ctx, pub, EventDodged, tick, attacker, target, payload)
}

func Special(ctx context.Context, pub logging.Publisher, tick uint64, attacker logging.EntityRef, payload SpecialPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventSpecial,
		Tick:     tick,
		Actor:    attacker,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}

func Knockout(ctx context.Context, pub logging.Publisher, tick uint64, attacker, target logging.EntityRef, payload KnockoutPayload) {
	publish(ctx, pub, EventKnockout, tick, attacker, target, payload)
}

func publish(ctx context.Context, pub logging.Publisher, eventType logging.EventType, tick uint64, actor, target logging.EntityRef, payload any) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     eventType,
		Tick:     tick,
		Actor:    actor,
		Targets:  []logging.EntityRef{target},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryCombat,
		Payload:  payload,
	})
}
