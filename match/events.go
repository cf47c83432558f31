package match

// EventKind discriminates the domain events drained from Advance.
type EventKind string

const (
	EventKindHit      EventKind = "hit"
	EventKindRoundEnd EventKind = "round_end"
	EventKindMatchEnd EventKind = "match_end"
)

// Event is one entry of the ordered stream a match accumulates during
// Advance. Exactly one of the payload pointers is set, matching Kind.
type Event struct {
	Kind  EventKind      `json:"kind"`
	Tick  uint64         `json:"tick"`
	Time  float64        `json:"time"`
	Hit   *HitEvent      `json:"hit,omitempty"`
	Round *RoundEndEvent `json:"round,omitempty"`
	End   *MatchEndEvent `json:"end,omitempty"`
}

// HitEvent records one landed swing.
type HitEvent struct {
	Attacker string  `json:"attacker"`
	Target   string  `json:"target"`
	Damage   int     `json:"damage"`
	TargetHP float64 `json:"targetHp"`
	Crit     bool    `json:"crit"`
	Combo    int     `json:"combo"`
	Time     float64 `json:"time"`
}

// RoundEndEvent records a round-timer expiry with rounds remaining.
type RoundEndEvent struct {
	Round     int                `json:"round"`
	NextRound int                `json:"nextRound"`
	Summary   []CombatantSummary `json:"summary"`
}

// MatchEndEvent is emitted exactly once when a match terminates.
type MatchEndEvent struct {
	Winner        string             `json:"winner"`
	Method        Method             `json:"method"`
	Summary       []CombatantSummary `json:"summary"`
	RoundsReached int                `json:"roundsReached"`
	Elapsed       float64            `json:"elapsedSeconds"`
}

// CombatantSummary is the per-fighter roll-up carried by round and match ends.
type CombatantSummary struct {
	ID         string  `json:"id"`
	HP         float64 `json:"hp"`
	MaxHP      float64 `json:"maxHp"`
	HitsLanded int     `json:"hitsLanded"`
	HitsTaken  int     `json:"hitsTaken"`
	CritHits   int     `json:"critHits"`
	Dodges     int     `json:"dodges"`
	MaxCombo   int     `json:"maxCombo"`
	Score      int     `json:"score"`
}

// Hooks are optional synchronous callbacks invoked during Advance, for
// consumers who prefer push delivery over draining the event slice.
type Hooks struct {
	OnHit      func(HitEvent)
	OnRoundEnd func(RoundEndEvent)
	OnMatchEnd func(MatchEndEvent)
}
