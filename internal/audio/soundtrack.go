// Package audio plays an optional looping soundtrack and reports how loud
// it currently is.
package audio

import (
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"

	"github.com/iburimskiy/particle-field/internal/config"
)

var ErrUnsupported = errors.New("audio: unsupported file type")

// Patterns lists the file types Load understands, for file dialogs.
var Patterns = []string{"*.wav", "*.mp3", "*.flac"}

// levelWindow is how many recent samples feed one level reading.
const levelWindow = 2048

// Soundtrack loops one audio file through the speaker.
type Soundtrack struct {
	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *tap
	name        string

	level    float64
	paused   bool
	initDone bool
	err      error
}

func NewSoundtrack() *Soundtrack {
	return &Soundtrack{}
}

// decode opens path and picks a decoder from its extension.
func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, beep.Format{}, errors.Wrap(err, "audio: open")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, nil, beep.Format{}, errors.Wrap(ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, beep.Format{}, errors.Wrapf(err, "audio: decode %s", filepath.Base(path))
	}
	return f, streamer, format, nil
}

// Load replaces the current track with path and starts looping it. A
// failure is logged and kept until the next Load.
func (s *Soundtrack) Load(path string) error {
	s.err = s.load(path)
	if s.err != nil {
		log.Printf("audio: %v", s.err)
	}
	return s.err
}

// Err is the error of the last Load, or nil.
func (s *Soundtrack) Err() error {
	return s.err
}

func (s *Soundtrack) load(path string) error {
	f, streamer, format, err := decode(path)
	if err != nil {
		return err
	}

	// Prepare audio chain: streamer -> loop -> tap -> ctrl
	t := newTap(beep.Loop(-1, streamer), config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	// (Re)initialize speaker if needed
	bufferSize := format.SampleRate.N(time.Second / 20)
	if !s.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return errors.Wrap(err, "audio: speaker init")
		}
		s.initDone = true
	} else if s.format.SampleRate != format.SampleRate {
		// Re-init when sample rate changes
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return errors.Wrap(err, "audio: speaker reinit")
		}
	} else {
		speaker.Clear()
	}
	s.closeCurrent()

	s.currentFile = f
	s.streamer = streamer
	s.format = format
	s.ctrl = ctrl
	s.tap = t
	s.name = filepath.Base(path)
	s.paused = false
	s.level = 0

	speaker.Play(ctrl)
	log.Printf("audio: looping %s at %d Hz", s.name, format.SampleRate)
	return nil
}

// TogglePause pauses or resumes playback. It is a no-op without a track.
func (s *Soundtrack) TogglePause() {
	if s.ctrl == nil {
		return
	}
	speaker.Lock()
	s.paused = !s.paused
	s.ctrl.Paused = s.paused
	speaker.Unlock()
}

// Level is the smoothed playback loudness in [0,1]. Call it once per frame.
func (s *Soundtrack) Level() float64 {
	if s.tap == nil || s.paused {
		s.level *= config.SmoothingFactor
		return s.level
	}
	s.level = smooth(s.level, s.tap.rms(levelWindow))
	return s.level
}

// smooth blends a compressed rms reading into the previous level.
func smooth(prev, rms float64) float64 {
	mag := math.Pow(rms, 0.3)
	if mag > 1 {
		mag = 1
	}
	return config.SmoothingFactor*prev + (1-config.SmoothingFactor)*mag
}

func (s *Soundtrack) Playing() bool {
	return s.ctrl != nil && !s.paused
}

// Name is the base name of the loaded file, or "".
func (s *Soundtrack) Name() string {
	return s.name
}

// Close stops playback and releases the file.
func (s *Soundtrack) Close() {
	if s.initDone {
		speaker.Clear()
	}
	s.closeCurrent()
	s.ctrl = nil
	s.tap = nil
	s.name = ""
}

func (s *Soundtrack) closeCurrent() {
	if s.streamer != nil {
		_ = s.streamer.Close()
		s.streamer = nil
	}
	if s.currentFile != nil {
		_ = s.currentFile.Close()
		s.currentFile = nil
	}
}
