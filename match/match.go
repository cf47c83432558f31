package match

import (
	"context"
	"fmt"
	"math/rand"

	"duel-arena/engine/config"
	"duel-arena/engine/logging"
	loggingduel "duel-arena/engine/logging/duel"
	"duel-arena/engine/physics"
)

// Phase tracks the round/match state machine.
type Phase string

const (
	PhaseFighting   Phase = "fighting"
	PhaseRoundPause Phase = "round_pause"
	PhaseFinished   Phase = "finished"
)

// Method is how a finished match was decided.
type Method string

const (
	MethodKnockout Method = "knockout"
	MethodDecision Method = "decision"
	MethodTimeout  Method = "timeout"
)

// Config carries everything needed to construct a match. Tuning and Publisher
// are optional; Seed defaults so unseeded matches stay reproducible.
type Config struct {
	MatchID     string
	ArenaWidth  float64
	ArenaHeight float64
	Bonuses     [2]EquipmentBonuses
	Tuning      *config.Tuning
	Seed        string
	Publisher   logging.Publisher
	Hooks       Hooks
}

// Match owns the authoritative state of one duel. It is single-threaded by
// contract: a driver calls Advance at its own cadence and independent matches
// share nothing.
type Match struct {
	id     string
	tuning config.Tuning

	world    *physics.World
	fighters [2]*Combatant
	rng      *rand.Rand
	phase    Phase

	started  bool
	paused   bool
	disposed bool

	tick           uint64
	now            float64
	round          int
	roundRemaining float64
	pauseUntil     float64

	winner  string
	method  Method
	endedAt float64

	events  []Event
	visuals []VisualEffect

	hooks     Hooks
	publisher logging.Publisher
}

// New builds a paused, unstarted match. Physics construction failures are
// fatal and abort creation; equipment problems never are.
func New(cfg Config) (*Match, error) {
	tuning := config.DefaultTuning()
	if cfg.Tuning != nil {
		tuning = *cfg.Tuning
		tuning.Normalize()
	}

	world, err := physics.NewWorld(cfg.ArenaWidth, cfg.ArenaHeight)
	if err != nil {
		return nil, fmt.Errorf("match: construct arena: %w", err)
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}

	m := &Match{
		id:             cfg.MatchID,
		tuning:         tuning,
		world:          world,
		rng:            newDeterministicRNG(cfg.Seed, "match"),
		phase:          PhaseFighting,
		round:          1,
		roundRemaining: tuning.Rounds.RoundSeconds,
		hooks:          cfg.Hooks,
		publisher:      publisher,
	}

	spawnX := [2]float64{cfg.ArenaWidth * 0.25, cfg.ArenaWidth * 0.75}
	for i := 0; i < 2; i++ {
		id := fmt.Sprintf("%d", i+1)
		fighter := newCombatant(id, cfg.Bonuses[i], &tuning, m.rng)
		body, err := world.NewBody(spawnX[i], cfg.ArenaHeight/2, tuning.Physics.BodyRadius, tuning.Physics.BodyMass)
		if err != nil {
			world.Dispose()
			return nil, fmt.Errorf("match: construct combatant %s: %w", id, err)
		}
		body.MaxSpeed = tuning.Physics.MaxSpeed
		weapon, err := world.AttachBar(body, tuning.Physics.WeaponLength, tuning.Physics.WeaponRest)
		if err != nil {
			world.Dispose()
			return nil, fmt.Errorf("match: construct weapon for %s: %w", id, err)
		}
		fighter.body = body
		fighter.weapon = weapon
		m.fighters[i] = fighter
	}

	return m, nil
}

// Start begins ticking. Idempotent; a no-op once finished or disposed.
func (m *Match) Start() {
	if m == nil || m.disposed || m.phase == PhaseFinished || m.started {
		return
	}
	m.started = true
	loggingduel.MatchStarted(context.Background(), m.publisher, m.tick, m.ref())
}

// Stop force-ends the match: method timeout, higher current HP wins.
// Idempotent; a no-op if never started or already finished.
func (m *Match) Stop() {
	if m == nil || m.disposed || !m.started || m.phase == PhaseFinished {
		return
	}
	winner := m.fighters[0].ID
	if m.fighters[1].HP > m.fighters[0].HP {
		winner = m.fighters[1].ID
	}
	m.finish(winner, MethodTimeout)
}

// Pause freezes the simulation clock. Idempotent.
func (m *Match) Pause() {
	if m == nil {
		return
	}
	m.paused = true
}

// Resume lifts a Pause. Idempotent.
func (m *Match) Resume() {
	if m == nil {
		return
	}
	m.paused = false
}

// Finished reports whether the match reached its terminal state.
func (m *Match) Finished() bool {
	return m != nil && m.phase == PhaseFinished
}

// Advance moves the simulation forward by dt seconds. It is the sole per-tick
// entry point and a strict no-op when not running, paused, finished, or
// disposed, keeping driver misuse side-effect free.
func (m *Match) Advance(dt float64) {
	if m == nil || m.disposed || !m.started || m.paused || m.phase == PhaseFinished || dt <= 0 {
		return
	}
	m.tick++
	m.now += dt

	switch m.phase {
	case PhaseRoundPause:
		m.ageVisuals(dt)
		if m.now >= m.pauseUntil {
			m.beginRound()
		}
	case PhaseFighting:
		m.stepFighting(dt)
	}
}

// stepFighting runs one full simulation tick: physics, AI, contact
// resolution, status timers, then termination checks.
func (m *Match) stepFighting(dt float64) {
	m.world.Step(dt)

	m.runAI(m.fighters[0], m.fighters[1], dt)
	m.runAI(m.fighters[1], m.fighters[0], dt)

	m.resolveContacts()
	m.advanceStatuses(dt)
	m.ageVisuals(dt)

	if m.checkKnockout() {
		return
	}

	m.roundRemaining -= dt
	if m.roundRemaining <= 0 {
		m.endRound()
	}
}

// checkKnockout finishes the match the tick any combatant's HP reaches zero.
func (m *Match) checkKnockout() bool {
	for i, fighter := range m.fighters {
		if fighter.HP > 0 {
			continue
		}
		m.finish(m.fighters[1-i].ID, MethodKnockout)
		return true
	}
	return false
}

// endRound handles round-timer expiry: either a between-rounds pause or, at
// the final round, a decision.
func (m *Match) endRound() {
	if m.round >= m.tuning.Rounds.MaxRounds {
		m.finish(m.decideWinner(), MethodDecision)
		return
	}

	for _, fighter := range m.fighters {
		fighter.heal(m.tuning.Rounds.HPRestore)
		fighter.Combo = 0
		fighter.Momentum = 0
		fighter.gainSpecial(m.tuning.Special.RoundRefund, m.tuning.Special.MeterMax)
	}

	event := RoundEndEvent{
		Round:     m.round,
		NextRound: m.round + 1,
		Summary:   m.summaries(),
	}
	m.pushEvent(Event{Kind: EventKindRoundEnd, Tick: m.tick, Time: m.now, Round: &event})
	if m.hooks.OnRoundEnd != nil {
		m.hooks.OnRoundEnd(event)
	}
	loggingduel.RoundEnded(context.Background(), m.publisher, m.tick, m.ref(), loggingduel.RoundEndedPayload{
		Round:     event.Round,
		NextRound: event.NextRound,
		SimTime:   m.now,
	})

	m.phase = PhaseRoundPause
	m.pauseUntil = m.now + m.tuning.Rounds.PauseSeconds
	m.round++
}

// beginRound resumes fighting with a fresh round timer.
func (m *Match) beginRound() {
	m.phase = PhaseFighting
	m.roundRemaining = m.tuning.Rounds.RoundSeconds
}

// decideWinner resolves final-round expiry: higher HP wins, exact HP ties
// break on accumulated score, and a full tie goes to combatant 1.
func (m *Match) decideWinner() string {
	a, b := m.fighters[0], m.fighters[1]
	if a.HP != b.HP {
		if a.HP > b.HP {
			return a.ID
		}
		return b.ID
	}
	if b.Score > a.Score {
		return b.ID
	}
	return a.ID
}

// finish transitions to the terminal state and emits the outcome exactly once.
func (m *Match) finish(winner string, method Method) {
	m.phase = PhaseFinished
	m.winner = winner
	m.method = method
	m.endedAt = m.now

	event := MatchEndEvent{
		Winner:        winner,
		Method:        method,
		Summary:       m.summaries(),
		RoundsReached: m.round,
		Elapsed:       m.now,
	}
	m.pushEvent(Event{Kind: EventKindMatchEnd, Tick: m.tick, Time: m.now, End: &event})
	if m.hooks.OnMatchEnd != nil {
		m.hooks.OnMatchEnd(event)
	}
	loggingduel.MatchEnded(context.Background(), m.publisher, m.tick, m.ref(), loggingduel.MatchEndedPayload{
		Winner:        winner,
		Method:        string(method),
		RoundsReached: m.round,
		Elapsed:       m.now,
	})
}

func (m *Match) summaries() []CombatantSummary {
	return []CombatantSummary{m.fighters[0].summary(), m.fighters[1].summary()}
}

func (m *Match) pushEvent(event Event) {
	m.events = append(m.events, event)
}

// DrainEvents returns the ordered events accumulated since the previous drain
// and clears the buffer.
func (m *Match) DrainEvents() []Event {
	if m == nil || len(m.events) == 0 {
		return nil
	}
	drained := make([]Event, len(m.events))
	copy(drained, m.events)
	m.events = m.events[:0]
	return drained
}

// Dispose releases the physics substrate. The match is unusable afterwards.
func (m *Match) Dispose() {
	if m == nil || m.disposed {
		return
	}
	m.disposed = true
	m.world.Dispose()
}

func (m *Match) ref() logging.EntityRef {
	return logging.EntityRef{ID: m.id, Kind: logging.EntityKindMatch}
}
