package match

// advanceStatuses evaluates the expiry-based effects that act every tick:
// burn chip damage and momentum decay. Defend/dodge/stun/invincibility flags
// need no advancing because they are lazy "now < expiry" reads.
func (m *Match) advanceStatuses(dt float64) {
	status := m.tuning.Status

	for i, fighter := range m.fighters {
		if fighter.IsBurning(m.now) && m.rng.Float64() < status.BurnTickChance {
			// Burn chip ignores hit-invincibility; the chip amount comes from
			// the igniter's burn modifier when it carries one.
			chip := status.BurnTickDamage
			if source := m.fighters[1-i].Bonuses.BurnDamage; source > 0 {
				chip = source
			}
			fighter.applyDamage(chip)
		}

		fighter.Momentum -= m.tuning.Momentum.DecayPerSecond * dt
		if fighter.Momentum < 0 {
			fighter.Momentum = 0
		}
	}
}
