package physics

import "math"

// Bar is a weapon bar tethered to its owner body by a damped spring. The bar
// orbits the owner at roughly RestLength and swings when the owner spins it
// via SetAngularVelocity; the resolver reads tip position and tip speed.
type Bar struct {
	Owner      *Body
	Length     float64
	RestLength float64
	K          float64
	DampingDiv float64

	X, Y       float64
	VX, VY     float64
	Angle      float64
	AngularVel float64

	tipSpeed float64
}

func (bar *Bar) SetAngularVelocity(w float64) {
	if bar == nil {
		return
	}
	bar.AngularVel = w
}

// Tip returns the far end of the bar, the point combat contact is measured from.
func (bar *Bar) Tip() Vec2 {
	if bar == nil {
		return Vec2{}
	}
	half := bar.Length / 2
	return Vec2{
		X: bar.X + math.Cos(bar.Angle)*half,
		Y: bar.Y + math.Sin(bar.Angle)*half,
	}
}

// TipSpeed is the linear speed of the tip measured over the last Step.
func (bar *Bar) TipSpeed() float64 {
	if bar == nil {
		return 0
	}
	return bar.tipSpeed
}

func (bar *Bar) integrate(dt float64) {
	if bar.Owner == nil {
		return
	}
	prevTip := bar.Tip()

	// Anchor sits at RestLength from the owner along the bar's current angle.
	anchor := Vec2{
		X: bar.Owner.X + math.Cos(bar.Angle)*bar.RestLength,
		Y: bar.Owner.Y + math.Sin(bar.Angle)*bar.RestLength,
	}
	stretch := anchor.Sub(Vec2{X: bar.X, Y: bar.Y})
	bar.VX += stretch.X * bar.K * dt
	bar.VY += stretch.Y * bar.K * dt

	if bar.DampingDiv > 1 {
		bar.VX /= bar.DampingDiv
		bar.VY /= bar.DampingDiv
	}

	bar.X += bar.VX * dt
	bar.Y += bar.VY * dt
	bar.Angle += bar.AngularVel * dt

	if dt > 0 {
		bar.tipSpeed = bar.Tip().Sub(prevTip).Len() / dt
	}
}
