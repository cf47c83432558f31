package physics

import "fmt"

const (
	defaultDampingDiv    = 1.1
	defaultBarDampingDiv = 1.05
	defaultBarStiffness  = 40.0
)

// World owns every body and bar of a single match and integrates them with a
// fixed explicit step. It has no internal clock; callers drive it tick by tick.
type World struct {
	Width  float64
	Height float64

	bodies []*Body
	bars   []*Bar
}

func NewWorld(width, height float64) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("physics: invalid arena dimensions %gx%g", width, height)
	}
	return &World{Width: width, Height: height}, nil
}

// NewBody registers a circular body. Radius and mass must be positive.
func (w *World) NewBody(x, y, radius, mass float64) (*Body, error) {
	if w == nil {
		return nil, fmt.Errorf("physics: world not constructed")
	}
	if radius <= 0 || mass <= 0 {
		return nil, fmt.Errorf("physics: invalid body radius=%g mass=%g", radius, mass)
	}
	body := &Body{
		X:          x,
		Y:          y,
		Radius:     radius,
		Mass:       mass,
		DampingDiv: defaultDampingDiv,
	}
	w.bodies = append(w.bodies, body)
	return body, nil
}

// AttachBar tethers a weapon bar to an owner body with a damped spring.
func (w *World) AttachBar(owner *Body, length, restLength float64) (*Bar, error) {
	if w == nil {
		return nil, fmt.Errorf("physics: world not constructed")
	}
	if owner == nil {
		return nil, fmt.Errorf("physics: bar requires an owner body")
	}
	if length <= 0 || restLength <= 0 {
		return nil, fmt.Errorf("physics: invalid bar length=%g rest=%g", length, restLength)
	}
	bar := &Bar{
		Owner:      owner,
		Length:     length,
		RestLength: restLength,
		K:          defaultBarStiffness,
		DampingDiv: defaultBarDampingDiv,
		X:          owner.X + restLength,
		Y:          owner.Y,
	}
	w.bars = append(w.bars, bar)
	return bar, nil
}

// Step integrates all bodies, then bars, then contains bodies in the arena.
func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	for _, body := range w.bodies {
		body.integrate(dt)
		w.contain(body)
	}
	for _, bar := range w.bars {
		bar.integrate(dt)
	}
}

// contain clamps a body inside the arena and kills outward velocity.
func (w *World) contain(body *Body) {
	minX, maxX := body.Radius, w.Width-body.Radius
	minY, maxY := body.Radius, w.Height-body.Radius
	if body.X < minX {
		body.X = minX
		if body.VX < 0 {
			body.VX = 0
		}
	} else if body.X > maxX {
		body.X = maxX
		if body.VX > 0 {
			body.VX = 0
		}
	}
	if body.Y < minY {
		body.Y = minY
		if body.VY < 0 {
			body.VY = 0
		}
	} else if body.Y > maxY {
		body.Y = maxY
		if body.VY > 0 {
			body.VY = 0
		}
	}
}

// Dispose releases every registered body and bar.
func (w *World) Dispose() {
	if w == nil {
		return
	}
	w.bodies = nil
	w.bars = nil
}
