package hud

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{75*time.Minute + 3*time.Second, "75:03"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), "FormatDuration(%v)", tt.in)
	}
}

func TestFramesToDuration(t *testing.T) {
	assert.Equal(t, time.Second, FramesToDuration(60, 60))
	assert.Equal(t, 2500*time.Millisecond, FramesToDuration(150, 60))
	assert.Zero(t, FramesToDuration(100, 0), "non-positive TPS")
}

func TestCanvasAlpha(t *testing.T) {
	assert.InDelta(t, 0.5, CanvasAlpha(0.5, 0, 0.8), 1e-12, "silence keeps the base opacity")
	assert.InDelta(t, 0.7, CanvasAlpha(0.5, 0.5, 0.8), 1e-12)
	assert.Equal(t, 1.0, CanvasAlpha(0.9, 1, 0.8), "clamped to 1")
	assert.Equal(t, 0.0, CanvasAlpha(-1, 0, 0.8), "clamped to 0")

	quiet := CanvasAlpha(0.5, 0.1, 0.8)
	loud := CanvasAlpha(0.5, 0.6, 0.8)
	assert.Greater(t, loud, quiet)
}

func TestStatusString(t *testing.T) {
	s := Status{State: "running", Particles: 60, Links: 12, Elapsed: 90 * time.Second}
	assert.Equal(t, "running | particles 60 | links 12 | 01:30", s.String())

	s.Track = "rain.flac"
	assert.Equal(t, "running | particles 60 | links 12 | 01:30 | playing rain.flac", s.String())

	s.TrackPaused = true
	s.Err = errors.New("boom")
	assert.Equal(t, "running | particles 60 | links 12 | 01:30 | paused rain.flac | Error: boom", s.String())
}
