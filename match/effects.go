package match

// maxLiveEffects caps the transient descriptor list so per-tick cost stays
// bounded no matter how fast hits land.
const maxLiveEffects = 64

const (
	effectSpark   = "spark"
	effectCrit    = "crit"
	effectBlock   = "block"
	effectDodge   = "dodge"
	effectSpecial = "special"
)

// VisualEffect is a transient, non-authoritative descriptor surfaced in
// snapshots for external rendering. It never feeds back into simulation state.
type VisualEffect struct {
	Type  string  `json:"type"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx"`
	VY    float64 `json:"vy"`
	Color string  `json:"color"`
	Life  float64 `json:"life"`
}

func (m *Match) spawnEffect(effect VisualEffect) {
	if len(m.visuals) >= maxLiveEffects {
		m.visuals = m.visuals[1:]
	}
	m.visuals = append(m.visuals, effect)
}

// ageVisuals drifts and decays live descriptors, dropping the expired ones.
func (m *Match) ageVisuals(dt float64) {
	alive := m.visuals[:0]
	for _, effect := range m.visuals {
		effect.Life -= dt
		if effect.Life <= 0 {
			continue
		}
		effect.X += effect.VX * dt
		effect.Y += effect.VY * dt
		alive = append(alive, effect)
	}
	m.visuals = alive
}
