package physics

import "math"

// Body is a circular rigid body integrated by the owning World.
type Body struct {
	X, Y       float64
	VX, VY     float64
	Angle      float64
	AngularVel float64
	Radius     float64
	Mass       float64
	DampingDiv float64
	MaxSpeed   float64

	fx, fy float64
}

// ApplyForce accumulates a force consumed on the next Step.
func (b *Body) ApplyForce(fx, fy float64) {
	if b == nil {
		return
	}
	b.fx += fx
	b.fy += fy
}

// ApplyImpulse changes velocity immediately, scaled by inverse mass.
func (b *Body) ApplyImpulse(ix, iy float64) {
	if b == nil || b.Mass <= 0 {
		return
	}
	b.VX += ix / b.Mass
	b.VY += iy / b.Mass
}

func (b *Body) SetAngularVelocity(w float64) {
	if b == nil {
		return
	}
	b.AngularVel = w
}

func (b *Body) Position() Vec2 {
	if b == nil {
		return Vec2{}
	}
	return Vec2{X: b.X, Y: b.Y}
}

func (b *Body) Velocity() Vec2 {
	if b == nil {
		return Vec2{}
	}
	return Vec2{X: b.VX, Y: b.VY}
}

func (b *Body) Speed() float64 {
	if b == nil {
		return 0
	}
	return math.Hypot(b.VX, b.VY)
}

func (b *Body) integrate(dt float64) {
	if b.Mass > 0 {
		b.VX += b.fx / b.Mass * dt
		b.VY += b.fy / b.Mass * dt
	}
	b.fx = 0
	b.fy = 0

	if b.DampingDiv > 1 {
		b.VX /= b.DampingDiv
		b.VY /= b.DampingDiv
	}

	if b.MaxSpeed > 0 {
		speed := math.Hypot(b.VX, b.VY)
		if speed > b.MaxSpeed {
			scale := b.MaxSpeed / speed
			b.VX *= scale
			b.VY *= scale
		}
	}

	b.X += b.VX * dt
	b.Y += b.VY * dt
	b.Angle += b.AngularVel * dt
}
