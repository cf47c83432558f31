package match

import (
	"context"
	"math"

	loggingcombat "duel-arena/engine/logging/combat"
	"duel-arena/engine/physics"
)

// weaponIdleDecay spins a weapon down once its swing window closes.
const weaponIdleDecay = 0.85

// aggression derives the per-tick aggression score from the fixed personality
// baseline plus situational bonuses, clamped to the configured band.
func (m *Match) aggression(c, opp *Combatant) float64 {
	ai := m.tuning.AI
	score := c.Personality.Aggression

	myPct := c.healthPct()
	oppPct := opp.healthPct()

	if myPct-oppPct > ai.PressAdvantageMargin {
		score += ai.PressAdvantageBonus
	}
	if oppPct-myPct > ai.DesperationMargin {
		bonus := ai.DesperationBonus
		if c.Bonuses.LowHPBonus > 0 {
			bonus *= ai.LowHPBonusAmp
		}
		score += bonus
	}
	if oppPct < ai.FinishThreshold {
		score += ai.FinishBonus
	}
	if c.SpecialReady {
		score += ai.SpecialReadyBonus
	}
	score += c.Momentum * ai.MomentumWeight

	if score < ai.AggressionFloor {
		score = ai.AggressionFloor
	}
	if score > ai.AggressionCeiling {
		score = ai.AggressionCeiling
	}
	return score
}

// runAI issues one combatant's steering forces and at most one
// attack/defend/dodge action for this tick. Stunned combatants skip entirely.
func (m *Match) runAI(c, opp *Combatant, dt float64) {
	if c.IsStunned(m.now) {
		return
	}
	if !c.IsAttacking(m.now) && c.weapon.AngularVel != 0 {
		c.weapon.SetAngularVelocity(c.weapon.AngularVel * weaponIdleDecay)
		c.currentSwing = attackNone
	}

	ai := m.tuning.AI
	aggr := m.aggression(c, opp)

	toOpp := opp.body.Position().Sub(c.body.Position())
	dist := toOpp.Len()
	dir := toOpp.Norm()
	force := m.tuning.Physics.MoveForce * c.moveSpeedFactor(m.now, m.tuning.Status.SlowFactor)

	actionTaken := false

	switch {
	case dist > ai.LongRange:
		// Approach with bounded heading noise so long closes never look scripted.
		heading := math.Atan2(dir.Y, dir.X) + (m.rng.Float64()*2-1)*ai.HeadingNoise
		c.body.ApplyForce(math.Cos(heading)*force, math.Sin(heading)*force)
	case dist > ai.CloseRange:
		// Flank with a phase-shifted oscillation so the pair circles instead of
		// mirroring each other.
		phase := ai.FlankFrequency*m.now + flankPhaseShift(c.ID)
		perp := physics.Vec2{X: -dir.Y, Y: dir.X}
		steer := dir.Scale(1 - ai.FlankAmplitude).Add(perp.Scale(ai.FlankAmplitude * math.Sin(phase))).Norm()
		c.body.ApplyForce(steer.X*force, steer.Y*force)
	default:
		if m.rng.Float64() < ai.RetreatChance*(1-aggr) {
			c.body.ApplyForce(-dir.X*force, -dir.Y*force)
		}
		if !actionTaken && m.rng.Float64() < ai.CloseDodgeChance {
			c.dodgeUntil = m.now + ai.DodgeDuration
			actionTaken = true
		}
	}

	// Continuous low-probability lateral strafe.
	if m.rng.Float64() < ai.StrafeChance {
		sign := 1.0
		if m.rng.Float64() < 0.5 {
			sign = -1
		}
		c.body.ApplyImpulse(-dir.Y*ai.StrafeImpulse*sign, dir.X*ai.StrafeImpulse*sign)
	}

	if !actionTaken && dist <= ai.AttackRange &&
		!c.IsDefending(m.now) && !c.IsAttacking(m.now) &&
		aggr < c.Personality.Defensiveness+ai.AggressionFloor &&
		m.rng.Float64() < ai.DefendChance {
		c.defendUntil = m.now + ai.DefendDuration
		actionTaken = true
	}

	if actionTaken || m.now < c.nextAttackAt || dist > ai.AttackRange {
		return
	}

	switch {
	case c.SpecialReady && m.rng.Float64() < ai.SpecialFireChance:
		m.startAttack(c, attackSpecial)
	case opp.healthPct() < ai.HeavyFinishThreshold:
		m.startAttack(c, attackHeavy)
	case m.rng.Float64() < aggr*ai.NormalAttackScale*c.Personality.MeleePreference:
		m.startAttack(c, attackNormal)
	case m.rng.Float64() < ai.HeavyAttackChance:
		m.startAttack(c, attackHeavy)
	}
}

// startAttack commits a swing: cooldown, attack window, and weapon spin. A
// special consumes the meter the instant it fires.
func (m *Match) startAttack(c *Combatant, kind attackKind) {
	ai := m.tuning.AI

	cooldown := ai.AttackCooldownBase * (1 - c.Bonuses.SpeedBonus)
	if cooldown < ai.AttackCooldownMin {
		cooldown = ai.AttackCooldownMin
	}
	c.nextAttackAt = m.now + cooldown
	c.attackUntil = m.now + ai.AttackDuration
	c.currentSwing = kind

	swing := ai.SwingSpeed
	switch kind {
	case attackHeavy:
		swing = ai.HeavySwingSpeed
	case attackSpecial:
		swing = ai.SpecialSwingSpeed
		spent := c.SpecialMeter
		c.consumeSpecial()
		loggingcombat.Special(context.Background(), m.publisher, m.tick, m.fighterRef(c), loggingcombat.SpecialPayload{
			MeterSpent: spent,
			SimTime:    m.now,
		})
		m.spawnEffect(VisualEffect{
			Type:  effectSpecial,
			X:     c.body.X,
			Y:     c.body.Y,
			Color: "#ffd700",
			Life:  0.6,
		})
	}
	if m.rng.Float64() < 0.5 {
		swing = -swing
	}
	c.weapon.SetAngularVelocity(swing)
}

// flankPhaseShift offsets each combatant's oscillation by half a cycle so the
// two orbit rather than collide head-on.
func flankPhaseShift(id string) float64 {
	if id == "2" {
		return math.Pi
	}
	return 0
}
