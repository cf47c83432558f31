package match

// Snapshot is the broadcast-friendly copy of a match's authoritative state.
// Consumers may hold it across ticks; nothing in it aliases live state.
type Snapshot struct {
	MatchID string  `json:"matchId,omitempty"`
	Tick    uint64  `json:"tick"`
	Time    float64 `json:"time"`
	Phase   Phase   `json:"phase"`

	Round          int     `json:"round"`
	MaxRounds      int     `json:"maxRounds"`
	RoundRemaining float64 `json:"roundRemaining"`

	Winner string `json:"winner,omitempty"`
	Method Method `json:"method,omitempty"`

	Combatants [2]CombatantSnapshot `json:"combatants"`
	Effects    []VisualEffect       `json:"effects,omitempty"`
}

// CombatantSnapshot mirrors one fighter for rendering and settlement.
type CombatantSnapshot struct {
	ID    string  `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Angle float64 `json:"angle"`

	HP    float64 `json:"hp"`
	MaxHP float64 `json:"maxHp"`

	IsDefending  bool `json:"isDefending"`
	IsDodging    bool `json:"isDodging"`
	IsAttacking  bool `json:"isAttacking"`
	IsStunned    bool `json:"isStunned"`
	IsBurning    bool `json:"isBurning"`
	IsSlowed     bool `json:"isSlowed"`
	IsInvincible bool `json:"isInvincible"`

	SpecialMeter float64 `json:"specialMeter"`
	SpecialReady bool    `json:"specialReady"`

	Combo      int `json:"combo"`
	MaxCombo   int `json:"maxCombo"`
	HitsLanded int `json:"hitsLanded"`
	HitsTaken  int `json:"hitsTaken"`
	CritHits   int `json:"critHits"`
	Dodges     int `json:"dodges"`
	Score      int `json:"score"`

	Momentum float64 `json:"momentum"`

	WeaponX     float64 `json:"weaponX"`
	WeaponY     float64 `json:"weaponY"`
	WeaponAngle float64 `json:"weaponAngle"`
}

// Snapshot copies the current state into an immutable view.
func (m *Match) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	snapshot := Snapshot{
		MatchID:        m.id,
		Tick:           m.tick,
		Time:           m.now,
		Phase:          m.phase,
		Round:          m.round,
		MaxRounds:      m.tuning.Rounds.MaxRounds,
		RoundRemaining: m.roundRemaining,
	}
	if m.phase == PhaseFinished {
		snapshot.Winner = m.winner
		snapshot.Method = m.method
	}
	for i, fighter := range m.fighters {
		snapshot.Combatants[i] = m.snapshotCombatant(fighter)
	}
	if len(m.visuals) > 0 {
		snapshot.Effects = make([]VisualEffect, len(m.visuals))
		copy(snapshot.Effects, m.visuals)
	}
	return snapshot
}

func (m *Match) snapshotCombatant(c *Combatant) CombatantSnapshot {
	velocity := c.body.Velocity()
	return CombatantSnapshot{
		ID:    c.ID,
		X:     c.body.X,
		Y:     c.body.Y,
		VX:    velocity.X,
		VY:    velocity.Y,
		Angle: c.body.Angle,

		HP:    c.HP,
		MaxHP: c.MaxHP,

		IsDefending:  c.IsDefending(m.now),
		IsDodging:    c.IsDodging(m.now),
		IsAttacking:  c.IsAttacking(m.now),
		IsStunned:    c.IsStunned(m.now),
		IsBurning:    c.IsBurning(m.now),
		IsSlowed:     c.IsSlowed(m.now),
		IsInvincible: c.IsInvincible(m.now),

		SpecialMeter: c.SpecialMeter,
		SpecialReady: c.SpecialReady,

		Combo:      c.Combo,
		MaxCombo:   c.MaxCombo,
		HitsLanded: c.HitsLanded,
		HitsTaken:  c.HitsTaken,
		CritHits:   c.CritHits,
		Dodges:     c.Dodges,
		Score:      c.Score,

		Momentum: c.Momentum,

		WeaponX:     c.weapon.X,
		WeaponY:     c.weapon.Y,
		WeaponAngle: c.weapon.Angle,
	}
}
