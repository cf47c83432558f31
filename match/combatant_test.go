package match

import (
	"testing"

	"duel-arena/engine/config"
)

func TestComboWindowRule(t *testing.T) {
	tuning := config.DefaultTuning()
	c := newCombatant("1", EquipmentBonuses{}, &tuning, newDeterministicRNG("combo", "test"))

	// The very first hit starts a chain even though no hit preceded it.
	c.recordHit(0)
	if c.Combo != 1 {
		t.Fatalf("expected combo 1 on first hit, got %d", c.Combo)
	}
	c.recordHit(1.5)
	if c.Combo != 2 {
		t.Fatalf("expected combo 2 within window, got %d", c.Combo)
	}
	// A gap of exactly the window still chains; anything past it resets.
	c.recordHit(1.5 + tuning.Combat.ComboWindow)
	if c.Combo != 3 {
		t.Fatalf("expected combo 3 at exact window boundary, got %d", c.Combo)
	}
	c.recordHit(10)
	if c.Combo != 1 {
		t.Fatalf("expected combo reset past window, got %d", c.Combo)
	}
	if c.MaxCombo != 3 {
		t.Fatalf("expected max combo 3, got %d", c.MaxCombo)
	}
	if c.HitsLanded != 4 {
		t.Fatalf("expected 4 landed hits, got %d", c.HitsLanded)
	}
}

func TestSpecialMeterReadyExactlyAtCap(t *testing.T) {
	tuning := config.DefaultTuning()
	c := newCombatant("1", EquipmentBonuses{}, &tuning, newDeterministicRNG("meter", "test"))

	c.gainSpecial(99.5, 100)
	if c.SpecialReady {
		t.Fatalf("expected not ready below cap")
	}
	c.gainSpecial(10, 100)
	if !c.SpecialReady || c.SpecialMeter != 100 {
		t.Fatalf("expected ready at clamped cap, got ready=%v meter=%v", c.SpecialReady, c.SpecialMeter)
	}

	// Further gain while ready is a no-op.
	c.gainSpecial(50, 100)
	if c.SpecialMeter != 100 {
		t.Fatalf("expected meter held at cap, got %v", c.SpecialMeter)
	}

	c.consumeSpecial()
	if c.SpecialReady || c.SpecialMeter != 0 {
		t.Fatalf("expected consumed meter, got ready=%v meter=%v", c.SpecialReady, c.SpecialMeter)
	}
}

func TestBonusNormalization(t *testing.T) {
	raw := EquipmentBonuses{
		BonusDamage: -5,
		CritChance:  2,
		CritDamage:  0,
		Lifesteal:   -0.5,
		DodgeChance: 1.5,
		Reflect:     3,
	}
	got := raw.normalized()
	if got.BonusDamage != 0 {
		t.Fatalf("expected negative bonus damage clamped, got %v", got.BonusDamage)
	}
	if got.CritChance != 1 {
		t.Fatalf("expected crit chance capped at 1, got %v", got.CritChance)
	}
	if got.CritDamage != critDamageNeutral {
		t.Fatalf("expected neutral crit multiplier, got %v", got.CritDamage)
	}
	if got.Lifesteal != 0 || got.DodgeChance != 1 || got.Reflect != 1 {
		t.Fatalf("expected chances clamped to [0,1], got %+v", got)
	}
}

func TestPersonalityRolledWithinConfiguredRanges(t *testing.T) {
	tuning := config.DefaultTuning()
	rng := newDeterministicRNG("personality", "test")
	for i := 0; i < 50; i++ {
		c := newCombatant("1", EquipmentBonuses{}, &tuning, rng)
		p := c.Personality
		if p.Aggression < tuning.AI.BaseAggressionMin || p.Aggression > tuning.AI.BaseAggressionMax {
			t.Fatalf("aggression out of range: %v", p.Aggression)
		}
		if p.MeleePreference < tuning.AI.MeleePreferenceMin || p.MeleePreference > tuning.AI.MeleePreferenceMax {
			t.Fatalf("melee preference out of range: %v", p.MeleePreference)
		}
		if p.Defensiveness < tuning.AI.DefensivenessMin || p.Defensiveness > tuning.AI.DefensivenessMax {
			t.Fatalf("defensiveness out of range: %v", p.Defensiveness)
		}
	}
}

func TestDeterministicSeedValue(t *testing.T) {
	a := deterministicSeedValue("root", "match")
	b := deterministicSeedValue("root", "match")
	if a != b {
		t.Fatalf("expected identical seeds for identical inputs")
	}
	if deterministicSeedValue("root", "other") == a {
		t.Fatalf("expected different labels to derive different seeds")
	}
	if deterministicSeedValue("other", "match") == a {
		t.Fatalf("expected different roots to derive different seeds")
	}
	if deterministicSeedValue("", "") == 0 {
		t.Fatalf("expected non-zero seed value")
	}
}
