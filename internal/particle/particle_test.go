package particle

import (
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/particle-field/internal/config"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestNewParticleRanges(t *testing.T) {
	opts := config.Default()
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 1000; i++ {
		p := newParticle(opts, rng, 800, 600)
		require.True(t, p.X >= 0 && p.X <= 800 && p.Y >= 0 && p.Y <= 600, "particle %d out of bounds: (%v,%v)", i, p.X, p.Y)
		require.GreaterOrEqual(t, p.Radius, opts.DefaultRadius)
		require.Less(t, p.Radius, opts.DefaultRadius+opts.VariantRadius)

		s := p.Speed()
		require.GreaterOrEqual(t, s, opts.DefaultSpeed-1e-9)
		require.Less(t, s, opts.DefaultSpeed+opts.VariantSpeed+1e-9)
		require.Equal(t, opts.ParticleColor, p.Color)
	}
}

func TestStepReflectsAtRightEdge(t *testing.T) {
	const w, h = 100.0, 100.0
	p := Particle{X: w - 0.5, Y: 50, VX: 2, VY: 0}
	step(&p, w, h)

	assert.Equal(t, -2.0, p.VX)
	assert.Equal(t, w, p.X, "clamped to width")
}

func TestStepReflectsEveryEdge(t *testing.T) {
	const w, h = 100.0, 50.0
	tests := []struct {
		name   string
		p      Particle
		flipVX bool
		flipVY bool
	}{
		{"left", Particle{X: 0.5, Y: 25, VX: -1, VY: 0.3}, true, false},
		{"right", Particle{X: 99.5, Y: 25, VX: 1, VY: 0.3}, true, false},
		{"top", Particle{X: 50, Y: 0.2, VX: 0.3, VY: -1}, false, true},
		{"bottom", Particle{X: 50, Y: 49.9, VX: 0.3, VY: 1}, false, true},
		{"corner", Particle{X: 99.9, Y: 49.9, VX: 1, VY: 1}, true, true},
		{"inside", Particle{X: 50, Y: 25, VX: 1, VY: 1}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			step(&p, w, h)
			assert.Equal(t, tt.flipVX, math.Signbit(p.VX) != math.Signbit(tt.p.VX), "VX flipped")
			assert.Equal(t, tt.flipVY, math.Signbit(p.VY) != math.Signbit(tt.p.VY), "VY flipped")
			assert.True(t, p.X >= 0 && p.X <= w && p.Y >= 0 && p.Y <= h, "out of bounds after step: (%v,%v)", p.X, p.Y)
		})
	}
}

func TestReflectionKeepsSpeed(t *testing.T) {
	p := Particle{X: 1, Y: 1, VX: -3, VY: -4}
	before := p.Speed()
	step(&p, 10, 10)
	assert.InDelta(t, before, p.Speed(), 1e-12)
}

func TestLinkOpacity(t *testing.T) {
	const r = 300.0
	assert.Equal(t, 1.0, linkOpacity(0, r))
	assert.Equal(t, 0.0, linkOpacity(r, r))

	prev := 2.0
	for d := 0.0; d < r; d += 7.5 {
		op := linkOpacity(d, r)
		require.Less(t, op, prev, "opacity not strictly decreasing at d=%v", d)
		prev = op
	}
}

func TestFindLinks(t *testing.T) {
	ps := []Particle{
		{X: 0, Y: 0},
		{X: 10, Y: 0},
		{X: 1000, Y: 1000},
	}
	links := findLinks(ps, 300, 0.2, nil)
	require.Len(t, links, 1)

	l := links[0]
	want := 1 - 10.0/300
	assert.InDelta(t, want, l.Opacity, 1e-12)
	assert.InDelta(t, want*0.2, l.Alpha, 1e-12)
	assert.Equal(t, 0.0, l.X1)
	assert.Equal(t, 10.0, l.X2)
}

func TestFindLinksExcludesRadius(t *testing.T) {
	ps := []Particle{{X: 0, Y: 0}, {X: 300, Y: 0}}
	assert.Empty(t, findLinks(ps, 300, 1, nil), "pair exactly at link radius linked")
}

func TestFindLinksAllPairs(t *testing.T) {
	ps := make([]Particle, 60)
	for i := range ps {
		ps[i] = Particle{X: float64(i), Y: 0}
	}
	assert.Len(t, findLinks(ps, 300, 1, nil), 60*59/2)
}
