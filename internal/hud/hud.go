// Package hud formats what the host shows on top of the particle layer.
package hud

import (
	"fmt"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// FormatDuration formats a duration as MM:SS
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FramesToDuration converts a frame count at tps ticks per second.
func FramesToDuration(frames uint64, tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(tps)
}

// CanvasAlpha pulses the base layer opacity with the soundtrack level.
func CanvasAlpha(base, level, pulse float64) float64 {
	return clamp01(base * (1 + pulse*level))
}

// Status is one frame's worth of status line data.
type Status struct {
	State     string
	Particles int
	Links     int
	Elapsed   time.Duration

	Track       string
	TrackPaused bool
	Err         error
}

func (s Status) String() string {
	line := fmt.Sprintf("%s | particles %d | links %d | %s",
		s.State, s.Particles, s.Links, FormatDuration(s.Elapsed))
	if s.Track != "" {
		state := "playing"
		if s.TrackPaused {
			state = "paused"
		}
		line += fmt.Sprintf(" | %s %s", state, s.Track)
	}
	if s.Err != nil {
		line += " | Error: " + s.Err.Error()
	}
	return line
}
