package match

import (
	"math"
	"math/rand"

	"duel-arena/engine/config"
	"duel-arena/engine/physics"
)

type attackKind string

const (
	attackNone    attackKind = ""
	attackNormal  attackKind = "normal"
	attackHeavy   attackKind = "heavy"
	attackSpecial attackKind = "special"
)

// Personality is rolled once at spawn and never mutated.
type Personality struct {
	Aggression      float64 `json:"aggression"`
	MeleePreference float64 `json:"meleePreference"`
	Defensiveness   float64 `json:"defensiveness"`
}

// Combatant is the per-fighter mutable record. All timed flags are expiry
// timestamps on the match's simulation clock; a flag is live iff now < expiry.
type Combatant struct {
	ID string

	body   *physics.Body
	weapon *physics.Bar

	HP      float64
	MaxHP   float64
	Bonuses EquipmentBonuses

	Combo       int
	MaxCombo    int
	lastHitTime float64
	comboWindow float64

	SpecialMeter float64
	SpecialReady bool

	defendUntil     float64
	dodgeUntil      float64
	attackUntil     float64
	stunUntil       float64
	burnUntil       float64
	slowUntil       float64
	invincibleUntil float64

	nextAttackAt float64
	currentSwing attackKind

	HitsLanded int
	HitsTaken  int
	CritHits   int
	Dodges     int
	Score      int

	Momentum float64

	Personality Personality
}

func newCombatant(id string, bonuses EquipmentBonuses, tuning *config.Tuning, rng *rand.Rand) *Combatant {
	roll := func(min, max float64) float64 {
		if max <= min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
	ai := tuning.AI
	return &Combatant{
		ID:          id,
		HP:          tuning.Combat.BaseMaxHP,
		MaxHP:       tuning.Combat.BaseMaxHP,
		Bonuses:     bonuses.normalized(),
		comboWindow: tuning.Combat.ComboWindow,
		lastHitTime: math.Inf(-1),
		Personality: Personality{
			Aggression:      roll(ai.BaseAggressionMin, ai.BaseAggressionMax),
			MeleePreference: roll(ai.MeleePreferenceMin, ai.MeleePreferenceMax),
			Defensiveness:   roll(ai.DefensivenessMin, ai.DefensivenessMax),
		},
	}
}

func (c *Combatant) IsDefending(now float64) bool  { return now < c.defendUntil }
func (c *Combatant) IsDodging(now float64) bool    { return now < c.dodgeUntil }
func (c *Combatant) IsAttacking(now float64) bool  { return now < c.attackUntil }
func (c *Combatant) IsStunned(now float64) bool    { return now < c.stunUntil }
func (c *Combatant) IsBurning(now float64) bool    { return now < c.burnUntil }
func (c *Combatant) IsSlowed(now float64) bool     { return now < c.slowUntil }
func (c *Combatant) IsInvincible(now float64) bool { return now < c.invincibleUntil }

func (c *Combatant) healthPct() float64 {
	if c.MaxHP <= 0 {
		return 0
	}
	return c.HP / c.MaxHP
}

// moveSpeedFactor folds the equipment speed bonus and any live slow together.
func (c *Combatant) moveSpeedFactor(now, slowFactor float64) float64 {
	factor := 1 + c.Bonuses.SpeedBonus
	if c.IsSlowed(now) {
		factor *= slowFactor
	}
	return factor
}

// applyDamage decrements HP, clamped at zero, and reports the resulting value.
func (c *Combatant) applyDamage(amount float64) float64 {
	c.HP -= amount
	if c.HP < 0 {
		c.HP = 0
	}
	return c.HP
}

// heal raises HP, capped at MaxHP.
func (c *Combatant) heal(amount float64) {
	c.HP += amount
	if c.HP > c.MaxHP {
		c.HP = c.MaxHP
	}
}

// gainSpecial accrues meter, clamped to the configured cap; SpecialReady flips
// true exactly when the meter reaches the cap.
func (c *Combatant) gainSpecial(amount, meterMax float64) {
	if c.SpecialReady {
		return
	}
	c.SpecialMeter += amount
	if c.SpecialMeter >= meterMax {
		c.SpecialMeter = meterMax
		c.SpecialReady = true
	}
	if c.SpecialMeter < 0 {
		c.SpecialMeter = 0
	}
}

// consumeSpecial clears the meter the instant a special fires.
func (c *Combatant) consumeSpecial() {
	c.SpecialMeter = 0
	c.SpecialReady = false
}

// recordHit advances the combo chain per the combo-window rule and stamps the
// hit time.
func (c *Combatant) recordHit(now float64) {
	if now-c.lastHitTime > c.comboWindow {
		c.Combo = 1
	} else {
		c.Combo++
	}
	if c.Combo > c.MaxCombo {
		c.MaxCombo = c.Combo
	}
	c.lastHitTime = now
	c.HitsLanded++
}

func (c *Combatant) summary() CombatantSummary {
	return CombatantSummary{
		ID:         c.ID,
		HP:         c.HP,
		MaxHP:      c.MaxHP,
		HitsLanded: c.HitsLanded,
		HitsTaken:  c.HitsTaken,
		CritHits:   c.CritHits,
		Dodges:     c.Dodges,
		MaxCombo:   c.MaxCombo,
		Score:      c.Score,
	}
}
