package match

import (
	"context"
	"math"

	"duel-arena/engine/logging"
	loggingcombat "duel-arena/engine/logging/combat"
)

// resolveContacts scans both ordered attacker/defender pairs. A pair resolves
// at most one contact per swing because every resolution path grants the
// defender an invincibility window.
func (m *Match) resolveContacts() {
	m.resolvePair(m.fighters[0], m.fighters[1])
	m.resolvePair(m.fighters[1], m.fighters[0])
}

func (m *Match) resolvePair(attacker, defender *Combatant) {
	combat := m.tuning.Combat

	tip := attacker.weapon.Tip()
	dist := tip.Sub(defender.body.Position()).Len()
	if dist > combat.ContactRadius {
		return
	}
	speed := attacker.weapon.TipSpeed()
	if speed < combat.MinWeaponSpeed {
		return
	}
	if defender.IsInvincible(m.now) {
		return
	}

	// Dodge: active dodge or a fresh roll against dodge chance negates fully.
	if defender.IsDodging(m.now) || m.rng.Float64() < defender.Bonuses.DodgeChance {
		defender.Dodges++
		defender.invincibleUntil = m.now + combat.InvincibilityWindow
		loggingcombat.Dodged(context.Background(), m.publisher, m.tick, m.fighterRef(attacker), m.fighterRef(defender), loggingcombat.DodgedPayload{SimTime: m.now})
		m.spawnEffect(VisualEffect{
			Type:  effectDodge,
			X:     defender.body.X,
			Y:     defender.body.Y,
			Color: "#9be9ff",
			Life:  0.3,
		})
		return
	}

	// Block: reduced chip damage, attacker stunned for swinging into a guard.
	if defender.IsDefending(m.now) {
		m.resolveBlock(attacker, defender, speed)
		return
	}

	m.resolveHit(attacker, defender, speed)
}

func (m *Match) resolveBlock(attacker, defender *Combatant, speed float64) {
	combat := m.tuning.Combat

	damage := int(math.Round(speed * combat.BlockDamageFraction))
	if damage < combat.MinDamage {
		damage = combat.MinDamage
	}
	remaining := defender.applyDamage(float64(damage))
	defender.invincibleUntil = m.now + combat.InvincibilityWindow
	attacker.stunUntil = m.now + combat.BlockStun

	reflected := 0
	if defender.Bonuses.Reflect > 0 {
		reflected = int(math.Round(float64(damage) * defender.Bonuses.Reflect))
		if reflected > 0 {
			attacker.applyDamage(float64(reflected))
		}
	}

	loggingcombat.Blocked(context.Background(), m.publisher, m.tick, m.fighterRef(attacker), m.fighterRef(defender), loggingcombat.BlockedPayload{
		Damage:       damage,
		Reflected:    reflected,
		TargetHealth: remaining,
		SimTime:      m.now,
	})
	m.spawnEffect(VisualEffect{
		Type:  effectBlock,
		X:     defender.body.X,
		Y:     defender.body.Y,
		Color: "#c0c0c0",
		Life:  0.3,
	})
}

func (m *Match) resolveHit(attacker, defender *Combatant, speed float64) {
	combat := m.tuning.Combat

	raw := combat.BaseDamage + speed*combat.SpeedDamageScale + m.rng.Float64()*combat.DamageJitter
	raw += attacker.Bonuses.BonusDamage

	if attacker.healthPct() < combat.BerserkerHPThreshold && attacker.Bonuses.LowHPBonus > 0 {
		raw *= 1 + attacker.Bonuses.LowHPBonus
	}
	raw *= 1 + attacker.Momentum*combat.MomentumDamageScale

	crit := m.rng.Float64() < attacker.Bonuses.CritChance
	if crit {
		raw *= attacker.Bonuses.CritDamage
		attacker.CritHits++
	}

	// Defense net of armor penetration reduces through a diminishing curve.
	defense := defender.Bonuses.Defense - attacker.Bonuses.ArmorPen
	if defense > 0 {
		raw *= 1 - defense/(defense+combat.DefenseCurveConstant)
	}

	damage := int(math.Round(raw))
	floor := combat.MinDamage
	if crit {
		floor = combat.MinCritDamage
	}
	if damage < floor {
		damage = floor
	}

	remaining := defender.applyDamage(float64(damage))
	defender.invincibleUntil = m.now + combat.InvincibilityWindow
	defender.HitsTaken++
	attacker.Score += damage
	attacker.recordHit(m.now)

	momentum := m.tuning.Momentum
	attacker.Momentum += momentum.HitGain
	if attacker.Momentum > momentum.Max {
		attacker.Momentum = momentum.Max
	}
	defender.Momentum -= momentum.LossOnHitTaken
	if defender.Momentum < 0 {
		defender.Momentum = 0
	}

	special := m.tuning.Special
	gain := special.GainPerHit
	if crit {
		gain += special.CritGainBonus
	}
	if attacker.Combo >= special.ComboGainAt {
		gain += special.ComboGainBonus
	}
	attacker.gainSpecial(gain, special.MeterMax)

	if attacker.Bonuses.Lifesteal > 0 {
		attacker.heal(float64(damage) * attacker.Bonuses.Lifesteal)
	}
	if defender.Bonuses.ThornDamage > 0 {
		attacker.applyDamage(defender.Bonuses.ThornDamage)
	}
	if attacker.Bonuses.BurnDamage > 0 {
		defender.burnUntil = m.now + m.tuning.Status.BurnDuration
	}
	if attacker.Bonuses.SlowEffect > 0 {
		defender.slowUntil = m.now + m.tuning.Status.SlowDuration
	}

	knock := combat.KnockbackImpulse
	if crit {
		knock *= combat.CritKnockbackScale
	}
	dir := defender.body.Position().Sub(attacker.body.Position()).Norm()
	defender.body.ApplyImpulse(dir.X*knock, dir.Y*knock)

	hit := HitEvent{
		Attacker: attacker.ID,
		Target:   defender.ID,
		Damage:   damage,
		TargetHP: remaining,
		Crit:     crit,
		Combo:    attacker.Combo,
		Time:     m.now,
	}
	m.pushEvent(Event{Kind: EventKindHit, Tick: m.tick, Time: m.now, Hit: &hit})
	if m.hooks.OnHit != nil {
		m.hooks.OnHit(hit)
	}
	loggingcombat.Hit(context.Background(), m.publisher, m.tick, m.fighterRef(attacker), m.fighterRef(defender), loggingcombat.HitPayload{
		Damage:       damage,
		TargetHealth: remaining,
		Crit:         crit,
		Combo:        attacker.Combo,
		SimTime:      m.now,
	})
	if remaining <= 0 {
		loggingcombat.Knockout(context.Background(), m.publisher, m.tick, m.fighterRef(attacker), m.fighterRef(defender), loggingcombat.KnockoutPayload{
			Damage:  damage,
			Round:   m.round,
			SimTime: m.now,
		})
	}

	effectType := effectSpark
	color := "#ff8844"
	life := 0.35
	if crit {
		effectType = effectCrit
		color = "#ff2d2d"
		life = 0.5
	}
	m.spawnEffect(VisualEffect{
		Type:  effectType,
		X:     defender.body.X,
		Y:     defender.body.Y,
		VX:    dir.X * 30,
		VY:    dir.Y * 30,
		Color: color,
		Life:  life,
	})
}

func (m *Match) fighterRef(c *Combatant) logging.EntityRef {
	return logging.EntityRef{ID: c.ID, Kind: logging.EntityKindCombatant}
}
