package config

// Tuning collects every gameplay constant the simulation reads. Values are
// illustrative defaults; operators override them per deployment via YAML.
type Tuning struct {
	Physics  PhysicsTuning  `yaml:"physics" json:"physics"`
	AI       AITuning       `yaml:"ai" json:"ai"`
	Combat   CombatTuning   `yaml:"combat" json:"combat"`
	Status   StatusTuning   `yaml:"status" json:"status"`
	Special  SpecialTuning  `yaml:"special" json:"special"`
	Momentum MomentumTuning `yaml:"momentum" json:"momentum"`
	Rounds   RoundTuning    `yaml:"rounds" json:"rounds"`
}

type PhysicsTuning struct {
	BodyRadius   float64 `yaml:"bodyRadius" json:"bodyRadius"`
	BodyMass     float64 `yaml:"bodyMass" json:"bodyMass"`
	WeaponLength float64 `yaml:"weaponLength" json:"weaponLength"`
	WeaponRest   float64 `yaml:"weaponRest" json:"weaponRest"`
	MoveForce    float64 `yaml:"moveForce" json:"moveForce"`
	MaxSpeed     float64 `yaml:"maxSpeed" json:"maxSpeed"`
}

type AITuning struct {
	AggressionFloor   float64 `yaml:"aggressionFloor" json:"aggressionFloor"`
	AggressionCeiling float64 `yaml:"aggressionCeiling" json:"aggressionCeiling"`

	// Spawn-time personality ranges.
	BaseAggressionMin  float64 `yaml:"baseAggressionMin" json:"baseAggressionMin"`
	BaseAggressionMax  float64 `yaml:"baseAggressionMax" json:"baseAggressionMax"`
	MeleePreferenceMin float64 `yaml:"meleePreferenceMin" json:"meleePreferenceMin"`
	MeleePreferenceMax float64 `yaml:"meleePreferenceMax" json:"meleePreferenceMax"`
	DefensivenessMin   float64 `yaml:"defensivenessMin" json:"defensivenessMin"`
	DefensivenessMax   float64 `yaml:"defensivenessMax" json:"defensivenessMax"`

	PressAdvantageMargin float64 `yaml:"pressAdvantageMargin" json:"pressAdvantageMargin"`
	PressAdvantageBonus  float64 `yaml:"pressAdvantageBonus" json:"pressAdvantageBonus"`
	DesperationMargin    float64 `yaml:"desperationMargin" json:"desperationMargin"`
	DesperationBonus     float64 `yaml:"desperationBonus" json:"desperationBonus"`
	LowHPBonusAmp        float64 `yaml:"lowHpBonusAmp" json:"lowHpBonusAmp"`
	FinishThreshold      float64 `yaml:"finishThreshold" json:"finishThreshold"`
	FinishBonus          float64 `yaml:"finishBonus" json:"finishBonus"`
	SpecialReadyBonus    float64 `yaml:"specialReadyBonus" json:"specialReadyBonus"`
	MomentumWeight       float64 `yaml:"momentumWeight" json:"momentumWeight"`

	LongRange      float64 `yaml:"longRange" json:"longRange"`
	CloseRange     float64 `yaml:"closeRange" json:"closeRange"`
	HeadingNoise   float64 `yaml:"headingNoise" json:"headingNoise"`
	FlankAmplitude float64 `yaml:"flankAmplitude" json:"flankAmplitude"`
	FlankFrequency float64 `yaml:"flankFrequency" json:"flankFrequency"`
	RetreatChance  float64 `yaml:"retreatChance" json:"retreatChance"`

	CloseDodgeChance float64 `yaml:"closeDodgeChance" json:"closeDodgeChance"`
	DodgeDuration    float64 `yaml:"dodgeDuration" json:"dodgeDuration"`
	DefendChance     float64 `yaml:"defendChance" json:"defendChance"`
	DefendDuration   float64 `yaml:"defendDuration" json:"defendDuration"`
	StrafeChance     float64 `yaml:"strafeChance" json:"strafeChance"`
	StrafeImpulse    float64 `yaml:"strafeImpulse" json:"strafeImpulse"`

	AttackRange          float64 `yaml:"attackRange" json:"attackRange"`
	AttackCooldownBase   float64 `yaml:"attackCooldownBase" json:"attackCooldownBase"`
	AttackCooldownMin    float64 `yaml:"attackCooldownMin" json:"attackCooldownMin"`
	AttackDuration       float64 `yaml:"attackDuration" json:"attackDuration"`
	NormalAttackScale    float64 `yaml:"normalAttackScale" json:"normalAttackScale"`
	HeavyAttackChance    float64 `yaml:"heavyAttackChance" json:"heavyAttackChance"`
	HeavyFinishThreshold float64 `yaml:"heavyFinishThreshold" json:"heavyFinishThreshold"`
	SpecialFireChance    float64 `yaml:"specialFireChance" json:"specialFireChance"`

	SwingSpeed        float64 `yaml:"swingSpeed" json:"swingSpeed"`
	HeavySwingSpeed   float64 `yaml:"heavySwingSpeed" json:"heavySwingSpeed"`
	SpecialSwingSpeed float64 `yaml:"specialSwingSpeed" json:"specialSwingSpeed"`
}

type CombatTuning struct {
	BaseMaxHP float64 `yaml:"baseMaxHp" json:"baseMaxHp"`

	ContactRadius  float64 `yaml:"contactRadius" json:"contactRadius"`
	MinWeaponSpeed float64 `yaml:"minWeaponSpeed" json:"minWeaponSpeed"`

	BaseDamage       float64 `yaml:"baseDamage" json:"baseDamage"`
	SpeedDamageScale float64 `yaml:"speedDamageScale" json:"speedDamageScale"`
	DamageJitter     float64 `yaml:"damageJitter" json:"damageJitter"`
	MinDamage        int     `yaml:"minDamage" json:"minDamage"`
	MinCritDamage    int     `yaml:"minCritDamage" json:"minCritDamage"`

	BerserkerHPThreshold float64 `yaml:"berserkerHpThreshold" json:"berserkerHpThreshold"`
	MomentumDamageScale  float64 `yaml:"momentumDamageScale" json:"momentumDamageScale"`
	DefenseCurveConstant float64 `yaml:"defenseCurveConstant" json:"defenseCurveConstant"`

	BlockDamageFraction float64 `yaml:"blockDamageFraction" json:"blockDamageFraction"`
	BlockStun           float64 `yaml:"blockStun" json:"blockStun"`

	InvincibilityWindow float64 `yaml:"invincibilityWindow" json:"invincibilityWindow"`
	ComboWindow         float64 `yaml:"comboWindow" json:"comboWindow"`

	KnockbackImpulse   float64 `yaml:"knockbackImpulse" json:"knockbackImpulse"`
	CritKnockbackScale float64 `yaml:"critKnockbackScale" json:"critKnockbackScale"`
}

type StatusTuning struct {
	BurnDuration   float64 `yaml:"burnDuration" json:"burnDuration"`
	BurnTickChance float64 `yaml:"burnTickChance" json:"burnTickChance"`
	BurnTickDamage float64 `yaml:"burnTickDamage" json:"burnTickDamage"`
	SlowDuration   float64 `yaml:"slowDuration" json:"slowDuration"`
	SlowFactor     float64 `yaml:"slowFactor" json:"slowFactor"`
}

type SpecialTuning struct {
	MeterMax       float64 `yaml:"meterMax" json:"meterMax"`
	GainPerHit     float64 `yaml:"gainPerHit" json:"gainPerHit"`
	CritGainBonus  float64 `yaml:"critGainBonus" json:"critGainBonus"`
	ComboGainBonus float64 `yaml:"comboGainBonus" json:"comboGainBonus"`
	ComboGainAt    int     `yaml:"comboGainAt" json:"comboGainAt"`
	RoundRefund    float64 `yaml:"roundRefund" json:"roundRefund"`
}

type MomentumTuning struct {
	HitGain        float64 `yaml:"hitGain" json:"hitGain"`
	LossOnHitTaken float64 `yaml:"lossOnHitTaken" json:"lossOnHitTaken"`
	DecayPerSecond float64 `yaml:"decayPerSecond" json:"decayPerSecond"`
	Max            float64 `yaml:"max" json:"max"`
}

type RoundTuning struct {
	MaxRounds    int     `yaml:"maxRounds" json:"maxRounds"`
	RoundSeconds float64 `yaml:"roundSeconds" json:"roundSeconds"`
	PauseSeconds float64 `yaml:"pauseSeconds" json:"pauseSeconds"`
	HPRestore    float64 `yaml:"hpRestore" json:"hpRestore"`
}

// DefaultTuning returns the baseline constants every match starts from.
func DefaultTuning() Tuning {
	return Tuning{
		Physics: PhysicsTuning{
			BodyRadius:   20,
			BodyMass:     5,
			WeaponLength: 28,
			WeaponRest:   26,
			MoveForce:    300,
			MaxSpeed:     180,
		},
		AI: AITuning{
			AggressionFloor:   0.1,
			AggressionCeiling: 0.95,

			BaseAggressionMin:  0.3,
			BaseAggressionMax:  0.7,
			MeleePreferenceMin: 0.3,
			MeleePreferenceMax: 1.0,
			DefensivenessMin:   0.1,
			DefensivenessMax:   0.5,

			PressAdvantageMargin: 0.15,
			PressAdvantageBonus:  0.1,
			DesperationMargin:    0.15,
			DesperationBonus:     0.12,
			LowHPBonusAmp:        1.5,
			FinishThreshold:      0.2,
			FinishBonus:          0.2,
			SpecialReadyBonus:    0.1,
			MomentumWeight:       0.05,

			LongRange:      120,
			CloseRange:     45,
			HeadingNoise:   0.35,
			FlankAmplitude: 0.6,
			FlankFrequency: 1.5,
			RetreatChance:  0.3,

			CloseDodgeChance: 0.04,
			DodgeDuration:    0.4,
			DefendChance:     0.02,
			DefendDuration:   0.6,
			StrafeChance:     0.06,
			StrafeImpulse:    40,

			AttackRange:          70,
			AttackCooldownBase:   0.9,
			AttackCooldownMin:    0.35,
			AttackDuration:       0.25,
			NormalAttackScale:    0.55,
			HeavyAttackChance:    0.12,
			HeavyFinishThreshold: 0.15,
			SpecialFireChance:    0.5,

			SwingSpeed:        12,
			HeavySwingSpeed:   16,
			SpecialSwingSpeed: 22,
		},
		Combat: CombatTuning{
			BaseMaxHP: 160,

			ContactRadius:  30,
			MinWeaponSpeed: 60,

			BaseDamage:       4,
			SpeedDamageScale: 0.06,
			DamageJitter:     3,
			MinDamage:        1,
			MinCritDamage:    2,

			BerserkerHPThreshold: 0.3,
			MomentumDamageScale:  0.03,
			DefenseCurveConstant: 50,

			BlockDamageFraction: 0.15,
			BlockStun:           0.45,

			InvincibilityWindow: 0.35,
			ComboWindow:         2.0,

			KnockbackImpulse:   220,
			CritKnockbackScale: 1.5,
		},
		Status: StatusTuning{
			BurnDuration:   3.0,
			BurnTickChance: 0.12,
			BurnTickDamage: 2,
			SlowDuration:   2.5,
			SlowFactor:     0.5,
		},
		Special: SpecialTuning{
			MeterMax:       100,
			GainPerHit:     8,
			CritGainBonus:  4,
			ComboGainBonus: 5,
			ComboGainAt:    3,
			RoundRefund:    20,
		},
		Momentum: MomentumTuning{
			HitGain:        1.0,
			LossOnHitTaken: 0.5,
			DecayPerSecond: 0.4,
			Max:            5,
		},
		Rounds: RoundTuning{
			MaxRounds:    3,
			RoundSeconds: 60,
			PauseSeconds: 3,
			HPRestore:    25,
		},
	}
}
