package ui

import (
	"image/color"
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/loadstatus/internal/loading"
	"github.com/ytget/loadstatus/internal/model"
)

// animatorFactory builds the frame source for a button; tests replace it
type animatorFactory func(duration time.Duration, tick func(fraction float32)) loading.Animator

// fyneAnimator loops a linear fyne.Animation until stopped
type fyneAnimator struct {
	duration time.Duration
	tick     func(float32)
	anim     *fyne.Animation
}

func newFyneAnimator(duration time.Duration, tick func(float32)) loading.Animator {
	return &fyneAnimator{duration: duration, tick: tick}
}

func (a *fyneAnimator) Start() {
	if a.anim != nil {
		return
	}
	a.anim = fyne.NewAnimation(a.duration, a.tick)
	a.anim.RepeatCount = fyne.AnimationRepeatForever
	a.anim.Curve = fyne.AnimationLinear
	a.anim.Start()
}

func (a *fyneAnimator) Stop() {
	if a.anim == nil {
		return
	}
	a.anim.Stop()
	a.anim = nil
}

// LoadingButton is a button that animates a fill sweep and a pie arc while a
// transfer is loading. Its state is driven from outside through ChangeState.
type LoadingButton struct {
	widget.DisableableWidget

	log        *slog.Logger
	controller *loading.Controller

	// OnTapped is called for taps accepted in the Completed state
	OnTapped func()
}

// NewLoadingButton creates a button in the Completed state
func NewLoadingButton(log *slog.Logger, cfg loading.Config) *LoadingButton {
	return newLoadingButton(log, cfg, newFyneAnimator)
}

func newLoadingButton(log *slog.Logger, cfg loading.Config, newAnimator animatorFactory) *LoadingButton {
	if cfg.Duration <= 0 {
		cfg.Duration = loading.DefaultDuration
	}
	b := &LoadingButton{log: log}
	b.ExtendBaseWidget(b)

	var ctrl *loading.Controller
	animator := newAnimator(cfg.Duration, func(f float32) { ctrl.Tick(f) })
	ctrl = loading.NewController(log, cfg, animator, measureButtonText)
	ctrl.Redraw = b.Refresh
	ctrl.OnInteractiveChanged = func(interactive bool) {
		if interactive {
			b.Enable()
		} else {
			b.Disable()
		}
	}
	b.controller = ctrl
	return b
}

// State returns the current button state
func (b *LoadingButton) State() model.ButtonState {
	return b.controller.State()
}

// ChangeState injects a state from the screen or the transfer watcher
func (b *LoadingButton) ChangeState(state model.ButtonState) {
	b.controller.SetState(state)
}

// Click moves the button to Clicked. It reports false outside Completed.
func (b *LoadingButton) Click() bool {
	return b.controller.Click()
}

// Tapped forwards taps while the button is idle
func (b *LoadingButton) Tapped(*fyne.PointEvent) {
	if b.Disabled() || b.controller.State() != model.ButtonCompleted {
		return
	}
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// Cursor shows a pointer while the button accepts input
func (b *LoadingButton) Cursor() desktop.Cursor {
	if b.Disabled() {
		return desktop.DefaultCursor
	}
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (b *LoadingButton) CreateRenderer() fyne.WidgetRenderer {
	b.ExtendBaseWidget(b)

	r := &loadingButtonRenderer{
		button:     b,
		background: canvas.NewRectangle(theme.Color(ColorNameLoadingDefault)),
		loaded:     canvas.NewRectangle(theme.Color(ColorNameLoadingFill)),
		remaining:  canvas.NewRectangle(theme.Color(ColorNameLoadingDefault)),
		text:       canvas.NewText(b.controller.Text(), theme.Color(ColorNameLoadingText)),
	}
	r.text.Alignment = fyne.TextAlignCenter
	r.text.TextSize = theme.TextSubHeadingSize()
	r.text.TextStyle = buttonTextStyle
	r.arc = canvas.NewRasterWithPixels(r.arcPixel)
	r.objects = []fyne.CanvasObject{r.background, r.loaded, r.remaining, r.text, r.arc}
	return r
}

var buttonTextStyle = fyne.TextStyle{Bold: true}

func measureButtonText(text string) loading.TextMetrics {
	size, baseline := fyne.CurrentApp().Driver().RenderedTextSize(text, theme.TextSubHeadingSize(), buttonTextStyle, nil)
	return loading.TextMetrics{
		Width:   size.Width,
		Ascent:  -baseline,
		Descent: size.Height - baseline,
	}
}

// loadingButtonRenderer paints background, fill, text and arc in that order
type loadingButtonRenderer struct {
	button     *LoadingButton
	background *canvas.Rectangle
	loaded     *canvas.Rectangle
	remaining  *canvas.Rectangle
	text       *canvas.Text
	arc        *canvas.Raster
	objects    []fyne.CanvasObject
}

func (r *loadingButtonRenderer) Layout(size fyne.Size) {
	r.button.controller.Resize(size.Width, size.Height)
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(size)
	r.place(size)
}

// MinSize fits the longer of the two texts
func (r *loadingButtonRenderer) MinSize() fyne.Size {
	c := r.button.controller
	width := LoadingButtonMinWidth
	for _, text := range []string{c.Text(), c.Config().DefaultText, c.Config().LoadingText} {
		if w := measureButtonText(text).Width + 2*LoadingButtonPadding; w > width {
			width = w
		}
	}
	return fyne.NewSize(width, LoadingButtonHeight)
}

func (r *loadingButtonRenderer) Refresh() {
	r.background.FillColor = theme.Color(ColorNameLoadingDefault)
	r.remaining.FillColor = theme.Color(ColorNameLoadingDefault)
	r.loaded.FillColor = theme.Color(ColorNameLoadingFill)
	r.text.Color = theme.Color(ColorNameLoadingText)
	r.text.Text = r.button.controller.Text()
	r.text.TextSize = theme.TextSubHeadingSize()

	r.place(r.button.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *loadingButtonRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *loadingButtonRenderer) Destroy() {
	r.button.controller.Stop()
}

func (r *loadingButtonRenderer) place(size fyne.Size) {
	c := r.button.controller
	isLoading := c.State() == model.ButtonLoading

	if isLoading {
		fill := c.Frame().FillOffset
		r.loaded.Move(fyne.NewPos(0, 0))
		r.loaded.Resize(fyne.NewSize(fill, size.Height))
		r.remaining.Move(fyne.NewPos(fill, 0))
		r.remaining.Resize(fyne.NewSize(size.Width-fill, size.Height))
		r.loaded.Show()
		r.remaining.Show()
	} else {
		r.loaded.Hide()
		r.remaining.Hide()
	}

	m := measureButtonText(c.Text())
	baseline := size.Height/2 + loading.TextOffset(m.Ascent, m.Descent)
	r.text.Move(fyne.NewPos(0, baseline+m.Ascent))
	r.text.Resize(fyne.NewSize(size.Width, m.Descent-m.Ascent))

	g, ok := c.Geometry()
	if !isLoading || !ok {
		r.arc.Hide()
		return
	}
	r.arc.Move(fyne.NewPos(g.Progress.Left, g.Progress.Top))
	r.arc.Resize(fyne.NewSize(g.Progress.Width(), g.Progress.Height()))
	r.arc.Show()
}

func (r *loadingButtonRenderer) arcPixel(x, y, w, h int) color.Color {
	g, ok := r.button.controller.Geometry()
	if !ok || w == 0 || h == 0 {
		return color.Transparent
	}
	pw, ph := g.Progress.Width(), g.Progress.Height()
	lx := (float32(x) + 0.5) / float32(w) * pw
	ly := (float32(y) + 0.5) / float32(h) * ph
	if loading.InArc(lx, ly, loading.Rect{Right: pw, Bottom: ph}, r.button.controller.Frame().SweepAngle) {
		return theme.Color(ColorNameLoadingCircle)
	}
	return color.Transparent
}
