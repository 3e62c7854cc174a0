// Package page wires key input, playback end and viewport changes to the
// navigation, playback, panel and layout logic of one loaded page.
//
// A Controller never navigates by itself: destinations are returned in an
// Effect and the host decides how to load them. Loading a destination
// produces a new page and therefore a new Controller.
package page

import (
	"errors"
	"fmt"

	"github.com/llehouerou/moo/internal/control"
	"github.com/llehouerou/moo/internal/dom"
	"github.com/llehouerou/moo/internal/keymap"
	"github.com/llehouerou/moo/internal/layout"
	"github.com/llehouerou/moo/internal/navigate"
	"github.com/llehouerou/moo/internal/panel"
	"github.com/llehouerou/moo/internal/playback"
)

// DarkClass is toggled on the body element by the dark mode action.
const DarkClass = "dark"

// Context is everything a handler may touch on the current page.
// Control and Audio are nil on pages without them.
type Context struct {
	Doc     *dom.Document
	Control *control.Descriptor
	Audio   playback.Audio
}

// NewContext builds the context of a parsed page. Pages without a control
// element get a nil descriptor. A malformed control element is reported as
// an error, but the context keeps the document and the well-formed part of
// the descriptor so unaffected keys keep working.
func NewContext(doc *dom.Document, audio playback.Audio) (Context, error) {
	ctx := Context{Doc: doc, Audio: audio}
	ctl, err := control.FromDocument(doc)
	if errors.Is(err, control.ErrNoControl) {
		return ctx, nil
	}
	ctx.Control = ctl
	return ctx, err
}

// Effect is the outcome of a handler the host must act on.
type Effect struct {
	Action         keymap.Action
	Navigate       string              // destination path, empty for none
	Glow           []playback.GlowStep // deferred glow steps to schedule
	PreventDefault bool
}

// Options configure a Controller.
type Options struct {
	Glow        bool
	Breakpoints layout.Breakpoints
	Bindings    []keymap.Binding
}

// Controller handles events for one page.
type Controller struct {
	ctx     Context
	nav     *navigate.Resolver
	keys    *keymap.Resolver
	toggler playback.Toggler
	bp      layout.Breakpoints
}

// New creates a controller for a page. Zero options use the default
// breakpoints and bindings.
func New(ctx Context, opts Options) *Controller {
	if opts.Breakpoints == (layout.Breakpoints{}) {
		opts.Breakpoints = layout.DefaultBreakpoints
	}
	if opts.Bindings == nil {
		opts.Bindings = keymap.Bindings
	}
	if ctx.Doc == nil {
		ctx.Doc = dom.NewDocument()
	}
	return &Controller{
		ctx:     ctx,
		nav:     navigate.New(ctx.Control),
		keys:    keymap.NewResolver(opts.Bindings),
		toggler: playback.Toggler{Glow: opts.Glow},
		bp:      opts.Breakpoints,
	}
}

// Context returns the page context.
func (c *Controller) Context() Context {
	return c.ctx
}

// HandleKey dispatches a KeyboardEvent.code. Unbound codes are no-ops.
func (c *Controller) HandleKey(code string) (Effect, error) {
	d := c.keys.Resolve(code)
	eff := Effect{Action: d.Action, PreventDefault: d.PreventDefault}

	switch d.Action {
	case keymap.ActionNone, keymap.ActionQuit, keymap.ActionSearch, keymap.ActionKeys:
		return eff, nil
	case keymap.ActionNext:
		c.navigateTo(&eff, c.nav.Next)
	case keymap.ActionPrev:
		c.navigateTo(&eff, c.nav.Prev)
	case keymap.ActionRandom:
		c.navigateTo(&eff, c.nav.Random)
	case keymap.ActionRandomTrack:
		c.navigateTo(&eff, c.nav.RandomTrack)
	case keymap.ActionRandomAlbum:
		c.navigateTo(&eff, c.nav.RandomAlbum)
	case keymap.ActionTrack:
		c.navigateTo(&eff, func() (string, bool) { return c.nav.Track(d.Track) })
	case keymap.ActionCovers:
		c.navigateTo(&eff, c.nav.Covers)
	case keymap.ActionIndex:
		c.navigateTo(&eff, c.nav.Index)
	case keymap.ActionRepeat:
		c.navigateTo(&eff, c.nav.Repeat)
	case keymap.ActionShuffle:
		c.navigateTo(&eff, c.nav.Shuffle)
	case keymap.ActionPlayPause:
		steps, err := c.toggler.Toggle(c.ctx.Audio)
		if err != nil {
			return eff, err
		}
		eff.Glow = c.glow(steps)
	case keymap.ActionTogglePanel:
		toggle := c.TogglePanel
		if d.Shown {
			toggle = c.ToggleShown
		}
		if err := toggle(d.Panel); err != nil {
			return eff, err
		}
	case keymap.ActionDark:
		c.ToggleDark()
	}
	return eff, nil
}

// Ended handles the end of playback by advancing to the next track.
func (c *Controller) Ended() Effect {
	eff := Effect{Action: keymap.ActionNext}
	c.navigateTo(&eff, func() (string, bool) { return playback.Ended(c.nav) })
	return eff
}

// TogglePanel flips a panel that starts hidden.
func (c *Controller) TogglePanel(id string) error {
	if err := panel.ToggleHidden(c.ctx.Doc.GetElementByID(id)); err != nil {
		return fmt.Errorf("toggle %s: %w", id, err)
	}
	return nil
}

// ToggleShown flips an element that starts visible, such as the album cover.
func (c *Controller) ToggleShown(id string) error {
	if err := panel.Toggle(c.ctx.Doc.GetElementByID(id)); err != nil {
		return fmt.Errorf("toggle %s: %w", id, err)
	}
	return nil
}

// ToggleDark flips dark mode on the body and reports whether it is on.
func (c *Controller) ToggleDark() bool {
	return c.ctx.Doc.Body().ToggleClass(DarkClass)
}

// Dark reports whether dark mode is on.
func (c *Controller) Dark() bool {
	return c.ctx.Doc.Body().HasClass(DarkClass)
}

// ApplyLayout classifies a viewport in pixels and applies the result.
func (c *Controller) ApplyLayout(width, height int) layout.Class {
	class := c.bp.Classify(width, height)
	layout.Apply(c.ctx.Doc, class)
	return class
}

// ApplyGlow performs a deferred glow step on this page.
func (c *Controller) ApplyGlow(s playback.GlowStep) {
	playback.Apply(c.ctx.Doc, s)
}

// navigateTo resolves a destination and, when there is one, clears the glow
// before leaving the page.
func (c *Controller) navigateTo(eff *Effect, resolve func() (string, bool)) {
	dest, ok := resolve()
	if !ok {
		return
	}
	for _, s := range playback.GlowOff() {
		playback.Apply(c.ctx.Doc, s)
	}
	eff.Navigate = dest
}

// glow applies immediate steps and returns the ones to schedule.
func (c *Controller) glow(steps []playback.GlowStep) []playback.GlowStep {
	var deferred []playback.GlowStep
	for _, s := range steps {
		if s.Delay <= 0 {
			playback.Apply(c.ctx.Doc, s)
			continue
		}
		deferred = append(deferred, s)
	}
	return deferred
}
