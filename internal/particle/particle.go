// Package particle simulates and renders a field of drifting particles
// joined by distance-faded links.
package particle

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Particle is a point moving at constant speed until it hits a border.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  color.NRGBA
}

// Speed is the velocity magnitude. Reflection never changes it.
func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

func newParticle(opts config.Options, rng *rand.Rand, width, height float64) Particle {
	angle := rng.Float64() * 360
	rad := angle * math.Pi / 180
	speed := opts.DefaultSpeed + rng.Float64()*opts.VariantSpeed

	return Particle{
		X:      rng.Float64() * width,
		Y:      rng.Float64() * height,
		VX:     math.Cos(rad) * speed,
		VY:     math.Sin(rad) * speed,
		Radius: opts.DefaultRadius + rng.Float64()*opts.VariantRadius,
		Color:  opts.ParticleColor,
	}
}

// step advances p by one tick inside a width x height surface.
func step(p *Particle, width, height float64) {
	p.X += p.VX
	p.Y += p.VY
	p.X, p.VX = reflect(p.X, p.VX, width)
	p.Y, p.VY = reflect(p.Y, p.VY, height)
}

// reflect bounces a coordinate off [0,bound]: the velocity component is
// inverted on contact and the position clamped back inside.
func reflect(pos, vel, bound float64) (float64, float64) {
	if pos <= 0 || pos >= bound {
		vel = -vel
	}
	switch {
	case pos < 0:
		pos = 0
	case pos > bound:
		pos = bound
	}
	return pos, vel
}
