package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a tuning file and overlays it on the defaults, so a partial file
// only overrides the knobs it names. An empty path yields the defaults.
func Load(path string) (Tuning, error) {
	tuning := DefaultTuning()
	if path == "" {
		return tuning, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return tuning, fmt.Errorf("read tuning file: %w", err)
	}
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return tuning, fmt.Errorf("parse tuning file: %w", err)
	}
	tuning.Normalize()
	return tuning, nil
}

// Normalize clamps values that would break simulation invariants. Malformed
// configuration degrades to the defaults rather than failing construction.
func (t *Tuning) Normalize() {
	if t == nil {
		return
	}
	def := DefaultTuning()

	if t.Physics.BodyRadius <= 0 {
		t.Physics.BodyRadius = def.Physics.BodyRadius
	}
	if t.Physics.BodyMass <= 0 {
		t.Physics.BodyMass = def.Physics.BodyMass
	}
	if t.Physics.WeaponLength <= 0 {
		t.Physics.WeaponLength = def.Physics.WeaponLength
	}
	if t.Physics.WeaponRest <= 0 {
		t.Physics.WeaponRest = def.Physics.WeaponRest
	}
	if t.Physics.MoveForce <= 0 {
		t.Physics.MoveForce = def.Physics.MoveForce
	}
	if t.Physics.MaxSpeed <= 0 {
		t.Physics.MaxSpeed = def.Physics.MaxSpeed
	}

	clampChance(&t.AI.RetreatChance)
	clampChance(&t.AI.CloseDodgeChance)
	clampChance(&t.AI.DefendChance)
	clampChance(&t.AI.StrafeChance)
	clampChance(&t.AI.NormalAttackScale)
	clampChance(&t.AI.HeavyAttackChance)
	clampChance(&t.AI.SpecialFireChance)
	clampChance(&t.Status.BurnTickChance)
	if t.AI.AggressionCeiling <= t.AI.AggressionFloor {
		t.AI.AggressionFloor = def.AI.AggressionFloor
		t.AI.AggressionCeiling = def.AI.AggressionCeiling
	}
	if t.AI.AttackCooldownMin <= 0 {
		t.AI.AttackCooldownMin = def.AI.AttackCooldownMin
	}
	if t.AI.AttackCooldownBase < t.AI.AttackCooldownMin {
		t.AI.AttackCooldownBase = t.AI.AttackCooldownMin
	}

	if t.Combat.BaseMaxHP <= 0 {
		t.Combat.BaseMaxHP = def.Combat.BaseMaxHP
	}
	if t.Combat.ContactRadius <= 0 {
		t.Combat.ContactRadius = def.Combat.ContactRadius
	}
	if t.Combat.MinDamage < 1 {
		t.Combat.MinDamage = def.Combat.MinDamage
	}
	if t.Combat.MinCritDamage < t.Combat.MinDamage {
		t.Combat.MinCritDamage = t.Combat.MinDamage
	}
	if t.Combat.DefenseCurveConstant <= 0 {
		t.Combat.DefenseCurveConstant = def.Combat.DefenseCurveConstant
	}
	if t.Combat.InvincibilityWindow < 0 {
		t.Combat.InvincibilityWindow = def.Combat.InvincibilityWindow
	}
	if t.Combat.ComboWindow <= 0 {
		t.Combat.ComboWindow = def.Combat.ComboWindow
	}

	if t.Special.MeterMax <= 0 {
		t.Special.MeterMax = def.Special.MeterMax
	}
	if t.Special.RoundRefund < 0 {
		t.Special.RoundRefund = 0
	}

	if t.Momentum.Max <= 0 {
		t.Momentum.Max = def.Momentum.Max
	}
	if t.Momentum.DecayPerSecond < 0 {
		t.Momentum.DecayPerSecond = def.Momentum.DecayPerSecond
	}

	if t.Rounds.MaxRounds < 1 {
		t.Rounds.MaxRounds = def.Rounds.MaxRounds
	}
	if t.Rounds.RoundSeconds <= 0 {
		t.Rounds.RoundSeconds = def.Rounds.RoundSeconds
	}
	if t.Rounds.PauseSeconds < 0 {
		t.Rounds.PauseSeconds = def.Rounds.PauseSeconds
	}
	if t.Rounds.HPRestore < 0 {
		t.Rounds.HPRestore = 0
	}

	if t.Status.SlowFactor <= 0 || t.Status.SlowFactor > 1 {
		t.Status.SlowFactor = def.Status.SlowFactor
	}
}

func clampChance(v *float64) {
	if *v < 0 {
		*v = 0
	} else if *v > 1 {
		*v = 1
	}
}
