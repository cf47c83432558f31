package physics

import (
	"math"
	"testing"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	w, err := NewWorld(800, 600)
	if err != nil {
		t.Fatalf("failed to construct world: %v", err)
	}
	return w
}

func TestNewWorldRejectsBadDimensions(t *testing.T) {
	if _, err := NewWorld(0, 600); err == nil {
		t.Fatalf("expected error for zero width")
	}
	if _, err := NewWorld(800, -1); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestNewBodyRejectsBadParameters(t *testing.T) {
	w := newTestWorld(t)
	if _, err := w.NewBody(10, 10, 0, 5); err == nil {
		t.Fatalf("expected error for zero radius")
	}
	if _, err := w.NewBody(10, 10, 20, -1); err == nil {
		t.Fatalf("expected error for negative mass")
	}
}

func TestAttachBarRequiresOwner(t *testing.T) {
	w := newTestWorld(t)
	if _, err := w.AttachBar(nil, 28, 26); err == nil {
		t.Fatalf("expected error for missing owner")
	}
}

func TestForceIntegration(t *testing.T) {
	w := newTestWorld(t)
	body, err := w.NewBody(400, 300, 20, 5)
	if err != nil {
		t.Fatalf("failed to create body: %v", err)
	}

	dt := 1.0 / 30
	body.ApplyForce(300, 0)
	w.Step(dt)

	// v = f/m*dt through the damping divisor, then x += v*dt.
	wantV := (300.0 / 5 * dt) / body.DampingDiv
	if math.Abs(body.VX-wantV) > 1e-9 {
		t.Fatalf("expected vx %v, got %v", wantV, body.VX)
	}
	if math.Abs(body.X-(400+wantV*dt)) > 1e-9 {
		t.Fatalf("expected x %v, got %v", 400+wantV*dt, body.X)
	}

	// Forces are consumed by the step; coasting just damps.
	w.Step(dt)
	if body.VX >= wantV {
		t.Fatalf("expected velocity to damp while coasting, got %v", body.VX)
	}
}

func TestImpulseScalesByInverseMass(t *testing.T) {
	w := newTestWorld(t)
	body, _ := w.NewBody(400, 300, 20, 5)
	body.ApplyImpulse(50, 0)
	if body.VX != 10 {
		t.Fatalf("expected vx 10 from impulse, got %v", body.VX)
	}
}

func TestSpeedCap(t *testing.T) {
	w := newTestWorld(t)
	body, _ := w.NewBody(400, 300, 20, 5)
	body.MaxSpeed = 180
	body.ApplyImpulse(10000, 10000)
	w.Step(1.0 / 30)
	if body.Speed() > 180+1e-9 {
		t.Fatalf("expected speed capped at 180, got %v", body.Speed())
	}
}

func TestContainmentClampsAndKillsOutwardVelocity(t *testing.T) {
	w := newTestWorld(t)
	body, _ := w.NewBody(5, 300, 20, 5)
	body.VX = -100
	w.Step(1.0 / 30)
	if body.X != body.Radius {
		t.Fatalf("expected clamp at left wall, got %v", body.X)
	}
	if body.VX != 0 {
		t.Fatalf("expected outward velocity killed, got %v", body.VX)
	}

	body.X, body.Y = 790, 595
	body.VX, body.VY = 100, 100
	w.Step(1.0 / 30)
	if body.X != w.Width-body.Radius || body.Y != w.Height-body.Radius {
		t.Fatalf("expected clamp at far corner, got %v,%v", body.X, body.Y)
	}
}

func TestBarSettlesTowardAnchor(t *testing.T) {
	w := newTestWorld(t)
	owner, _ := w.NewBody(400, 300, 20, 5)
	bar, err := w.AttachBar(owner, 28, 26)
	if err != nil {
		t.Fatalf("failed to attach bar: %v", err)
	}
	bar.X, bar.Y = 500, 300

	anchor := Vec2{X: owner.X + 26, Y: owner.Y}
	before := anchor.Sub(Vec2{X: bar.X, Y: bar.Y}).Len()
	for i := 0; i < 300; i++ {
		w.Step(1.0 / 30)
	}
	after := anchor.Sub(Vec2{X: bar.X, Y: bar.Y}).Len()
	if after >= before {
		t.Fatalf("expected spring to pull bar toward anchor: %v -> %v", before, after)
	}
	if after > 10 {
		t.Fatalf("expected bar settled near anchor, still %v away", after)
	}
}

func TestTipGeometryAndSpeed(t *testing.T) {
	w := newTestWorld(t)
	owner, _ := w.NewBody(400, 300, 20, 5)
	bar, _ := w.AttachBar(owner, 28, 26)

	tip := bar.Tip()
	want := Vec2{X: bar.X + 14, Y: bar.Y}
	if math.Abs(tip.X-want.X) > 1e-9 || math.Abs(tip.Y-want.Y) > 1e-9 {
		t.Fatalf("expected tip %+v, got %+v", want, tip)
	}

	if bar.TipSpeed() != 0 {
		t.Fatalf("expected zero tip speed before any step, got %v", bar.TipSpeed())
	}
	bar.SetAngularVelocity(22)
	w.Step(1.0 / 30)
	if bar.TipSpeed() < 60 {
		t.Fatalf("expected swinging tip to exceed contact speeds, got %v", bar.TipSpeed())
	}
}

func TestDisposedWorldStepIsSafe(t *testing.T) {
	w := newTestWorld(t)
	_, _ = w.NewBody(400, 300, 20, 5)
	w.Dispose()
	w.Step(1.0 / 30)
}
