package particle

import (
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/frame"
)

var (
	ErrNoSurface     = errors.New("particle: no drawable surface")
	ErrNoScheduler   = errors.New("particle: no frame scheduler")
	ErrNoNotifier    = errors.New("particle: no resize notifier")
	ErrInvalidBounds = errors.New("particle: invalid surface bounds")
	ErrStopped       = errors.New("particle: field is stopped")
)

// Surface is the rectangle the field draws on.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillCircle(x, y, radius float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// Scheduler runs a callback on the next display frame.
type Scheduler interface {
	RequestFrame(fn func()) frame.ID
	CancelFrame(id frame.ID)
}

// Notifier reports viewport size changes.
type Notifier interface {
	OnResize(fn func(width, height int)) (unsubscribe func())
}

type State int

const (
	Uninitialized State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Field owns the particles, the surface bounds and the animation loop.
// It is not safe for concurrent use; drive it from one goroutine.
type Field struct {
	opts      config.Options
	baseAlpha float64
	rng       *rand.Rand

	surface   Surface
	scheduler Scheduler
	notifier  Notifier

	width, height float64
	particles     []Particle
	links         []Link

	state       State
	pending     frame.ID
	unsubscribe func()
	frames      uint64
}

// New builds an uninitialized field. A nil rng seeds one from the clock.
func New(opts config.Options, surface Surface, scheduler Scheduler, notifier Notifier, rng *rand.Rand) (*Field, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if scheduler == nil {
		return nil, ErrNoScheduler
	}
	if notifier == nil {
		return nil, ErrNoNotifier
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "particle: options")
	}
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>32|1))
	}

	return &Field{
		opts:      opts,
		baseAlpha: opts.BaseAlpha(),
		rng:       rng,
		surface:   surface,
		scheduler: scheduler,
		notifier:  notifier,
	}, nil
}

// Initialize replaces every particle with a fresh random one inside
// width x height.
func (f *Field) Initialize(width, height float64) error {
	if width < 0 || height < 0 {
		return errors.Wrapf(ErrInvalidBounds, "%vx%v", width, height)
	}
	f.width, f.height = width, height

	ps := make([]Particle, f.opts.ParticleAmount)
	for i := range ps {
		ps[i] = newParticle(f.opts, f.rng, width, height)
	}
	f.particles = ps
	return nil
}

// Resize adopts new bounds and reinitializes. Positions are not carried over.
func (f *Field) Resize(width, height float64) error {
	if f.state == Stopped {
		return ErrStopped
	}
	log.Printf("particle: resize to %vx%v", width, height)
	return f.Initialize(width, height)
}

// Tick advances every particle one step.
func (f *Field) Tick() {
	for i := range f.particles {
		step(&f.particles[i], f.width, f.height)
	}
}

// Links returns the current links. The slice is reused by the next call.
func (f *Field) Links() []Link {
	f.links = findLinks(f.particles, f.opts.LinkRadius, f.baseAlpha, f.links)
	return f.links
}

// Render clears the surface, draws every particle, then every link.
func (f *Field) Render() {
	f.surface.Clear()
	for _, p := range f.particles {
		f.surface.FillCircle(p.X, p.Y, p.Radius, p.Color)
	}
	for _, l := range f.Links() {
		f.surface.StrokeLine(l.X1, l.Y1, l.X2, l.Y2, f.opts.LineWidth, l.Color(f.opts.LineColor))
	}
}

// Start sizes the field from the surface and begins the frame loop.
// Starting a running field is a no-op.
func (f *Field) Start() error {
	if f.state == Running {
		return nil
	}
	w, h := f.surface.Size()
	if err := f.Initialize(float64(w), float64(h)); err != nil {
		return err
	}

	f.state = Running
	f.frames = 0
	f.unsubscribe = f.notifier.OnResize(f.onResize)
	f.pending = f.scheduler.RequestFrame(f.loop)
	log.Printf("particle: started with %d particles on %dx%d", len(f.particles), w, h)
	return nil
}

// Stop cancels the pending frame and drops the resize subscription.
// It is idempotent; a later Start begins a new run.
func (f *Field) Stop() {
	if f.state != Running {
		return
	}
	f.state = Stopped
	if f.pending != 0 {
		f.scheduler.CancelFrame(f.pending)
		f.pending = 0
	}
	if f.unsubscribe != nil {
		f.unsubscribe()
		f.unsubscribe = nil
	}
	log.Printf("particle: stopped after %d frames", f.frames)
}

func (f *Field) loop() {
	f.pending = 0
	if f.state != Running {
		return
	}
	f.Tick()
	f.Render()
	f.frames++
	if f.state == Running {
		f.pending = f.scheduler.RequestFrame(f.loop)
	}
}

func (f *Field) onResize(width, height int) {
	if err := f.Resize(float64(width), float64(height)); err != nil {
		log.Printf("particle: resize ignored: %v", err)
	}
}

// LinkCount is the number of links found by the last Links or Render.
func (f *Field) LinkCount() int {
	return len(f.links)
}

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

func (f *Field) State() State {
	return f.state
}

func (f *Field) Bounds() (width, height float64) {
	return f.width, f.height
}

// Frames counts loop iterations since the last Start.
func (f *Field) Frames() uint64 {
	return f.frames
}
