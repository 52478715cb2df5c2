// Package game hosts the particle field in an ebiten window.
package game

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/iburimskiy/particle-field/internal/audio"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/frame"
	"github.com/iburimskiy/particle-field/internal/hud"
	"github.com/iburimskiy/particle-field/internal/particle"
)

// Settings are the host options on top of the field's own.
type Settings struct {
	Field   config.Options
	Opacity float64
	Width   int
	Height  int
	// Seed makes particle placement repeatable; 0 seeds from the clock.
	Seed uint64
}

type Game struct {
	field  *particle.Field
	canvas *canvas
	loop   *frame.Loop
	resize *frame.ResizeNotifier
	track  *audio.Soundtrack

	opacity float64
	level   float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	showStatus bool
	lastErr    error
}

func New(s Settings) (*Game, error) {
	g := &Game{
		canvas:     newCanvas(s.Width, s.Height),
		loop:       frame.NewLoop(),
		resize:     frame.NewResizeNotifier(),
		track:      audio.NewSoundtrack(),
		opacity:    s.Opacity,
		prevKey:    map[ebiten.Key]bool{},
		showStatus: true,
	}

	// the canvas subscribes first so the field redraws into a resized image
	g.resize.OnResize(g.canvas.resize)

	var rng *rand.Rand
	if s.Seed != 0 {
		rng = rand.New(rand.NewPCG(s.Seed, s.Seed))
	}
	field, err := particle.New(s.Field, g.canvas, g.loop, g.resize, rng)
	if err != nil {
		return nil, err
	}
	g.field = field

	if err := g.field.Start(); err != nil {
		return nil, errors.Wrap(err, "start field")
	}
	return g, nil
}

// LoadTrack starts looping an audio file behind the animation. A failure
// stays on the status line; the animation carries on.
func (g *Game) LoadTrack(path string) error {
	g.lastErr = nil
	return g.track.Load(path)
}

// Close releases the soundtrack.
func (g *Game) Close() {
	g.field.Stop()
	g.track.Close()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.toggleField()
	}
	if justPressed(ebiten.KeyO) {
		g.openTrackDialog()
	}
	if justPressed(ebiten.KeyP) {
		g.track.TogglePause()
	}
	if justPressed(ebiten.KeyH) {
		g.showStatus = !g.showStatus
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.loop.Advance()
	g.level = g.track.Level()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(hud.CanvasAlpha(g.opacity, g.level, config.AudioPulse)))
	screen.DrawImage(g.canvas.img, op)

	if g.showStatus {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

// Layout follows the window: every size change resizes the canvas and
// reinitializes the field.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.resize.Notify(outsideWidth, outsideHeight) {
		log.Printf("game: layout %dx%d", outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) toggleField() {
	if g.field.State() == particle.Running {
		g.field.Stop()
		return
	}
	// the canvas may have been resized while the field was stopped
	if err := g.field.Start(); err != nil {
		log.Printf("game: restart field: %v", err)
		g.lastErr = err
	}
}

func (g *Game) status() string {
	return hud.Status{
		State:       g.field.State().String(),
		Particles:   len(g.field.Particles()),
		Links:       g.field.LinkCount(),
		Elapsed:     hud.FramesToDuration(g.field.Frames(), ebiten.TPS()),
		Track:       g.track.Name(),
		TrackPaused: !g.track.Playing(),
		Err:         g.err(),
	}.String()
}

func (g *Game) err() error {
	if g.lastErr != nil {
		return g.lastErr
	}
	return g.track.Err()
}

// openTrackDialog asks for a soundtrack file; cancelling changes nothing.
func (g *Game) openTrackDialog() {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Soundtrack"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return
		}
		err = errors.Wrap(err, "file dialog")
		log.Printf("game: soundtrack: %v", err)
		g.lastErr = err
		return
	}

	_ = g.LoadTrack(filename)
}
