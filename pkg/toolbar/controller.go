// Package toolbar positions and shows the floating formatting toolbar in
// response to editor events.
package toolbar

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/walteh/mdwrap/pkg/host"
)

const (
	// Offset is how far above the caret line the toolbar sits.
	Offset = 35

	// ParkedLeft moves a fully transparent toolbar out of the way so it
	// does not catch clicks.
	ParkedLeft = -99999

	DefaultShowDelay    = 100 * time.Millisecond
	DefaultHideInterval = 1000 * time.Millisecond
)

// Surface is the rendered toolbar state.
type Surface struct {
	Visible bool    `json:"visible"`
	Top     float64 `json:"top"`
	Left    float64 `json:"left"`
	// Hidden is the user toggle. A hidden toolbar keeps tracking position
	// but is not drawn.
	Hidden bool `json:"hidden"`
}

// Parked is the initial, offscreen surface.
var Parked = Surface{Top: 0, Left: ParkedLeft}

// Renderer draws a surface.
type Renderer interface {
	Render(ctx context.Context, s Surface) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(ctx context.Context, s Surface) error

func (f RendererFunc) Render(ctx context.Context, s Surface) error {
	return f(ctx, s)
}

// Selection is the live state of the tracked input.
type Selection struct {
	Start int `json:"start"`
	End   int `json:"end"`
	// Length is the length of the input's value.
	Length int `json:"length"`
	// Focused is false when focus is on something other than the tracked
	// input.
	Focused bool `json:"focused"`
	// Viewport is the width of the window, Width the toolbar's own width.
	Viewport float64 `json:"viewport"`
	Width    float64 `json:"width"`
}

func (s Selection) empty() bool {
	return s.Start == s.End
}

func (s Selection) full() bool {
	return s.Start == 0 && s.End == s.Length
}

type Option func(*Controller)

func WithClock(clock clockwork.Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

func WithShowDelay(d time.Duration) Option {
	return func(c *Controller) {
		c.showDelay = d
	}
}

func WithHideInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.hideInterval = d
	}
}

// Controller owns the toolbar surface. Event methods may be called from any
// goroutine; the scroll timers fire on their own.
type Controller struct {
	ctx      context.Context
	locator  host.CursorLocator
	renderer Renderer

	clock        clockwork.Clock
	showDelay    time.Duration
	hideInterval time.Duration

	show *Debouncer
	hide *Throttler

	mu        sync.Mutex
	surface   Surface
	rendered  Surface
	selection Selection
	tracking  bool
}

// NewController returns a controller with a parked surface. ctx carries the
// logger and is used for work the timers trigger.
func NewController(ctx context.Context, locator host.CursorLocator, renderer Renderer, opts ...Option) *Controller {
	c := &Controller{
		ctx:          ctx,
		locator:      locator,
		renderer:     renderer,
		clock:        clockwork.NewRealClock(),
		showDelay:    DefaultShowDelay,
		hideInterval: DefaultHideInterval,
		surface:      Parked,
		rendered:     Parked,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.show = NewDebouncer(c.clock, c.showDelay, c.settled)
	c.hide = NewThrottler(c.clock, c.hideInterval, c.scrolling)

	return c
}

// Surface returns the current surface.
func (me *Controller) Surface() Surface {
	me.mu.Lock()
	defer me.mu.Unlock()

	return me.surface
}

// SelectionChanged shows the toolbar over a non-empty selection and hides it
// when the selection collapses.
func (me *Controller) SelectionChanged(ctx context.Context, sel Selection) {
	me.mu.Lock()
	defer me.mu.Unlock()

	me.selection = sel
	me.tracking = true

	if !sel.Focused {
		return
	}

	if sel.empty() {
		me.fadeLocked(ctx)
		return
	}

	me.positionLocked(ctx)
}

// Scroll hides the toolbar at most once per hide interval and shows it again
// once scrolling settles.
func (me *Controller) Scroll(ctx context.Context) {
	me.hide.Call()
	me.show.Call()
}

// Blur hides the toolbar when focus left the tracked input.
func (me *Controller) Blur(ctx context.Context, stillFocused bool) {
	me.mu.Lock()
	defer me.mu.Unlock()

	me.selection.Focused = stillFocused
	if stillFocused {
		return
	}

	me.fadeLocked(ctx)
}

// KeyDown hides the toolbar when the whole value is about to be deleted;
// the editor sends no selection change in that case.
func (me *Controller) KeyDown(ctx context.Context, key string) {
	me.mu.Lock()
	defer me.mu.Unlock()

	if key != "Backspace" && key != "Delete" {
		return
	}
	if !me.selection.full() {
		return
	}

	me.fadeLocked(ctx)
}

// TransitionEnd parks a faded-out toolbar offscreen.
func (me *Controller) TransitionEnd(ctx context.Context) {
	me.mu.Lock()
	defer me.mu.Unlock()

	if me.surface.Visible {
		return
	}

	me.surface.Top = Parked.Top
	me.surface.Left = Parked.Left
	me.renderLocked(ctx)
}

// Toggle flips the user's hidden switch.
func (me *Controller) Toggle(ctx context.Context) {
	me.mu.Lock()
	defer me.mu.Unlock()

	me.surface.Hidden = !me.surface.Hidden
	me.renderLocked(ctx)
}

// Forget drops the tracked selection, for when the input goes away.
func (me *Controller) Forget(ctx context.Context) {
	me.show.Cancel()

	me.mu.Lock()
	defer me.mu.Unlock()

	me.tracking = false
	me.selection = Selection{}
	me.fadeLocked(ctx)
}

func (me *Controller) scrolling() {
	me.mu.Lock()
	defer me.mu.Unlock()

	me.fadeLocked(me.ctx)
}

func (me *Controller) settled() {
	me.mu.Lock()
	defer me.mu.Unlock()

	// re-read the live selection, it may have changed while scrolling
	if !me.tracking || me.selection.empty() {
		return
	}

	me.positionLocked(me.ctx)
}

func (me *Controller) fadeLocked(ctx context.Context) {
	if !me.surface.Visible {
		return
	}
	me.surface.Visible = false
	me.renderLocked(ctx)
}

func (me *Controller) positionLocked(ctx context.Context) {
	pos, err := me.locator.EditingCursorPosition(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("locating cursor")
		return
	}
	if pos == nil {
		return
	}

	me.surface.Top, me.surface.Left = Place(*pos, me.selection.Viewport, me.selection.Width)
	me.surface.Visible = true
	me.renderLocked(ctx)
}

func (me *Controller) renderLocked(ctx context.Context) {
	if me.surface == me.rendered {
		return
	}

	if err := me.renderer.Render(ctx, me.surface); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("rendering toolbar")
		return
	}
	me.rendered = me.surface
}

// Place computes the toolbar's top-left corner for a caret: Offset above the
// caret line, aligned with the caret unless that would overflow the
// viewport, in which case it hugs the right edge.
func Place(pos host.CursorPosition, viewport, width float64) (top, left float64) {
	top = pos.Top + pos.Rect.Y - Offset

	left = pos.Left + pos.Rect.X
	// a client that reports no viewport gets no clamping
	if viewport > 0 && left+width > viewport {
		left = viewport - width
	}

	return top, left
}
