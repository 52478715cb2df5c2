package particle

import (
	"image/color"
	"math"
)

// Link joins two particles closer than the link radius.
type Link struct {
	X1, Y1, X2, Y2 float64
	Distance       float64
	// Opacity falls linearly from 1 at distance 0 to 0 at the link radius.
	Opacity float64
	// Alpha is Opacity scaled by the line colour's own alpha.
	Alpha float64
}

// Color is the link's stroke colour: base RGB with the link's alpha.
func (l Link) Color(base color.NRGBA) color.NRGBA {
	return color.NRGBA{R: base.R, G: base.G, B: base.B, A: uint8(math.Round(clamp01(l.Alpha) * 255))}
}

// linkOpacity is 1 - d/r inside the radius and 0 from the radius on.
func linkOpacity(distance, radius float64) float64 {
	if distance >= radius {
		return 0
	}
	return 1 - distance/radius
}

// findLinks checks every pair once, i < j.
func findLinks(ps []Particle, radius, baseAlpha float64, out []Link) []Link {
	out = out[:0]
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			a, b := ps[i], ps[j]
			d := math.Hypot(b.X-a.X, b.Y-a.Y)
			if d >= radius {
				continue
			}
			op := linkOpacity(d, radius)
			out = append(out, Link{
				X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y,
				Distance: d,
				Opacity:  op,
				Alpha:    op * baseAlpha,
			})
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
