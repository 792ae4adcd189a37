package loading

import (
	"log/slog"
	"time"

	"github.com/ytget/loadstatus/internal/model"
)

// Animator produces ticks for the controller between Start and Stop
type Animator interface {
	Start()
	Stop()
}

// Config holds the texts and timing of a loading button
type Config struct {
	DefaultText string
	LoadingText string
	Duration    time.Duration
}

// Controller applies the loading button transition policy and keeps the
// values the renderer paints. It is confined to the UI goroutine.
type Controller struct {
	log      *slog.Logger
	cfg      Config
	machine  *Machine
	animator Animator
	measure  TextMeasurer

	text     string
	width    float32
	height   float32
	radius   float32
	timeline Timeline
	fraction float32
	frame    Frame
	geometry *Geometry
	running  bool

	// Redraw is requested after every transition and every tick
	Redraw func()
	// OnInteractiveChanged reports input being disabled while the animation runs
	OnInteractiveChanged func(interactive bool)
}

// NewController creates a controller in the Completed state
func NewController(log *slog.Logger, cfg Config, animator Animator, measure TextMeasurer) *Controller {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if log == nil {
		log = slog.Default()
	}
	c := &Controller{
		log:      log,
		cfg:      cfg,
		animator: animator,
		measure:  measure,
		text:     cfg.DefaultText,
		timeline: NewTimeline(cfg.Duration, 0),
	}
	c.machine = NewMachine(c.onTransition)
	return c
}

// State returns the current button state
func (c *Controller) State() model.ButtonState {
	return c.machine.State()
}

// SetState injects a state. Unchanged states are ignored.
func (c *Controller) SetState(next model.ButtonState) {
	c.machine.SetState(next)
}

// Click handles a user click; it is accepted only from Completed
func (c *Controller) Click() bool {
	return c.machine.Click()
}

func (c *Controller) onTransition(prev, next model.ButtonState) {
	c.log.Debug("Button state changed", "from", prev.String(), "to", next.String())
	switch next {
	case model.ButtonLoading:
		c.text = c.cfg.LoadingText
		if c.geometry == nil {
			c.computeGeometry()
		}
		c.Start()
	default:
		c.text = c.cfg.DefaultText
		if prev == model.ButtonLoading && next == model.ButtonCompleted {
			c.Stop()
		}
	}
	c.requestRedraw()
}

// Start begins the looping animation. Calling it while running does nothing.
func (c *Controller) Start() {
	if c.running {
		return
	}
	c.running = true
	c.setInteractive(false)
	if c.animator != nil {
		c.animator.Start()
	}
}

// Stop halts the animation and keeps the last frame
func (c *Controller) Stop() {
	if !c.running {
		return
	}
	c.running = false
	if c.animator != nil {
		c.animator.Stop()
	}
	c.setInteractive(true)
}

// Running reports whether the animation is active
func (c *Controller) Running() bool {
	return c.running
}

// Interactive reports whether the control accepts input
func (c *Controller) Interactive() bool {
	return !c.running
}

// Tick advances the animation to cycle fraction f
func (c *Controller) Tick(f float32) {
	c.fraction = f
	c.frame = c.timeline.Sample(f)
	c.requestRedraw()
}

// Resize recomputes the size dependent values for a new control size
func (c *Controller) Resize(width, height float32) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	c.radius = ProgressRadius(width, height)
	c.timeline = NewTimeline(c.cfg.Duration, width)
	c.frame = c.timeline.Sample(c.fraction)
	if c.geometry != nil {
		c.computeGeometry()
	}
}

func (c *Controller) computeGeometry() {
	var metrics TextMetrics
	if c.measure != nil {
		metrics = c.measure(c.cfg.LoadingText)
	}
	g := ComputeGeometry(metrics, c.height, c.radius)
	c.geometry = &g
}

// Config returns the texts and timing the controller was built with
func (c *Controller) Config() Config {
	return c.cfg
}

// Text returns the text to display for the current state
func (c *Controller) Text() string {
	return c.text
}

// Frame returns the latest animation sample
func (c *Controller) Frame() Frame {
	return c.frame
}

// Timeline returns the timeline bound to the current width
func (c *Controller) Timeline() Timeline {
	return c.timeline
}

// Radius returns the progress circle radius for the current size
func (c *Controller) Radius() float32 {
	return c.radius
}

// Geometry returns the cached geometry, if the control has been Loading yet
func (c *Controller) Geometry() (Geometry, bool) {
	if c.geometry == nil {
		return Geometry{}, false
	}
	return *c.geometry, true
}

func (c *Controller) setInteractive(interactive bool) {
	if c.OnInteractiveChanged != nil {
		c.OnInteractiveChanged(interactive)
	}
}

func (c *Controller) requestRedraw() {
	if c.Redraw != nil {
		c.Redraw()
	}
}
