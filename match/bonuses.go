package match

// EquipmentBonuses is the equipment-derived modifier bundle supplied at match
// creation. Every field is optional; the zero value means "no equipment", and
// malformed values are clamped to neutral rather than rejected.
type EquipmentBonuses struct {
	BonusDamage float64 `json:"bonusDamage,omitempty" yaml:"bonusDamage"`
	Defense     float64 `json:"defense,omitempty" yaml:"defense"`
	SpeedBonus  float64 `json:"speedBonus,omitempty" yaml:"speedBonus"`
	CritChance  float64 `json:"critChance,omitempty" yaml:"critChance"`
	CritDamage  float64 `json:"critDamage,omitempty" yaml:"critDamage"`
	Lifesteal   float64 `json:"lifesteal,omitempty" yaml:"lifesteal"`
	DodgeChance float64 `json:"dodgeChance,omitempty" yaml:"dodgeChance"`
	BurnDamage  float64 `json:"burnDamage,omitempty" yaml:"burnDamage"`
	Reflect     float64 `json:"reflect,omitempty" yaml:"reflect"`
	ThornDamage float64 `json:"thornDamage,omitempty" yaml:"thornDamage"`
	SlowEffect  float64 `json:"slowEffect,omitempty" yaml:"slowEffect"`
	ArmorPen    float64 `json:"armorPen,omitempty" yaml:"armorPen"`
	LowHPBonus  float64 `json:"lowHpBonus,omitempty" yaml:"lowHpBonus"`
}

// critDamageNeutral is the multiplier used when equipment does not override it.
const critDamageNeutral = 1.5

// normalized clamps every modifier to its sane range. CritDamage below the
// neutral multiplier would make crits weaker than normal hits, so it floors
// there.
func (e EquipmentBonuses) normalized() EquipmentBonuses {
	clampMin := func(v *float64, min float64) {
		if *v < min {
			*v = min
		}
	}
	clampChance := func(v *float64) {
		if *v < 0 {
			*v = 0
		} else if *v > 1 {
			*v = 1
		}
	}

	clampMin(&e.BonusDamage, 0)
	clampMin(&e.Defense, 0)
	clampMin(&e.SpeedBonus, 0)
	clampChance(&e.CritChance)
	if e.CritDamage <= 0 {
		e.CritDamage = critDamageNeutral
	}
	clampMin(&e.CritDamage, 1)
	clampChance(&e.Lifesteal)
	clampChance(&e.DodgeChance)
	clampMin(&e.BurnDamage, 0)
	clampChance(&e.Reflect)
	clampMin(&e.ThornDamage, 0)
	clampMin(&e.SlowEffect, 0)
	clampMin(&e.ArmorPen, 0)
	clampMin(&e.LowHPBonus, 0)
	return e
}
