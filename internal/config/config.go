package config

import (
	"image/color"

	"github.com/pkg/errors"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Particle Field - Space: Start/Stop, O: Soundtrack, P: Pause Soundtrack, H: Status, Esc/Q: Quit"

	VisualRingSize  = 8192
	SmoothingFactor = 0.6

	// Canvas is composited over the background at half opacity
	CanvasOpacity = 0.5
	// How far the soundtrack level may push canvas opacity above its base
	AudioPulse = 0.8

	// Field parameters
	ParticleAmount = 60
	DefaultRadius  = 1.0
	VariantRadius  = 1.0
	DefaultSpeed   = 1.0
	VariantSpeed   = 1.0
	LinkRadius     = 300.0
	LineWidth      = 1.0
)

var (
	ParticleColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 153}
	LineColor       = color.NRGBA{R: 0, G: 181, B: 255, A: 51}
	BackgroundColor = color.NRGBA{R: 9, G: 12, B: 24, A: 255}
)

// Options are the animator settings. They are fixed once a field is built.
type Options struct {
	ParticleColor  color.NRGBA
	LineColor      color.NRGBA
	ParticleAmount int
	DefaultRadius  float64
	VariantRadius  float64
	DefaultSpeed   float64
	VariantSpeed   float64
	LinkRadius     float64
	LineWidth      float64
}

func Default() Options {
	return Options{
		ParticleColor:  ParticleColor,
		LineColor:      LineColor,
		ParticleAmount: ParticleAmount,
		DefaultRadius:  DefaultRadius,
		VariantRadius:  VariantRadius,
		DefaultSpeed:   DefaultSpeed,
		VariantSpeed:   VariantSpeed,
		LinkRadius:     LinkRadius,
		LineWidth:      LineWidth,
	}
}

// Validate reports the first setting that cannot produce a usable field.
func (o Options) Validate() error {
	switch {
	case o.ParticleAmount <= 0:
		return errors.Errorf("particle amount must be positive, got %d", o.ParticleAmount)
	case o.LinkRadius <= 0:
		return errors.Errorf("link radius must be positive, got %v", o.LinkRadius)
	case o.DefaultRadius < 0 || o.VariantRadius < 0:
		return errors.Errorf("radius must not be negative, got %v+%v", o.DefaultRadius, o.VariantRadius)
	case o.DefaultSpeed < 0 || o.VariantSpeed < 0:
		return errors.Errorf("speed must not be negative, got %v+%v", o.DefaultSpeed, o.VariantSpeed)
	case o.LineWidth <= 0:
		return errors.Errorf("line width must be positive, got %v", o.LineWidth)
	}
	return nil
}

// BaseAlpha is the line colour's alpha in [0,1]; link opacity is scaled by it.
func (o Options) BaseAlpha() float64 {
	return float64(o.LineColor.A) / 255
}
