package canvas

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/observability"
	"github.com/matzehuels/mandala/pkg/zorder"
)

const (
	// DoubleClickDelay is how long a click waits for a second click before
	// it counts as a single click.
	DoubleClickDelay = 250 * time.Millisecond

	// DragDeadZone is the distance in screen pixels a pointer must travel
	// before a press becomes a drag.
	DragDeadZone = 3.0

	// DefaultSize is the edge length of the output image in pixels.
	DefaultSize = 800

	// Zoom bounds relative to the fitted view.
	MinZoom = 0.25
	MaxZoom = 8.0
)

// Interaction is the interaction state that gates viewport changes.
type Interaction struct {
	IsDragging   bool
	IsZoomLocked bool
}

// AllowsViewport reports whether zoom and pan requests are honored.
func (i Interaction) AllowsViewport() bool {
	return !i.IsDragging && !i.IsZoomLocked
}

// Canvas is an interactive view of one mandala.
type Canvas struct {
	doc      *mandala.Mandala
	frame    layout.Frame
	order    *zorder.Tracker
	expanded map[string]bool
	filter   mandala.Filter

	size   int
	zoom   float64
	pan    geometry.Point
	locked bool

	writer Writer
	logger *log.Logger
	hooks  observability.CanvasHooks

	presses map[int]*press
	pending *pendingClick
	editing string
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithSize sets the edge length of the output image in pixels.
func WithSize(px int) Option {
	return func(c *Canvas) {
		if px > 0 {
			c.size = px
		}
	}
}

// WithWriter sets the destination of position and content writes.
func WithWriter(w Writer) Option {
	return func(c *Canvas) {
		if w != nil {
			c.writer = w
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Canvas) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFilter hides notes and characters that do not match f.
func WithFilter(f mandala.Filter) Option {
	return func(c *Canvas) { c.filter = f }
}

// New returns a canvas showing a copy of m with every note collapsed.
func New(m *mandala.Mandala, opts ...Option) *Canvas {
	c := &Canvas{
		expanded: make(map[string]bool),
		presses:  make(map[int]*press),
		size:     DefaultSize,
		zoom:     1,
		writer:   nopWriter{},
		logger:   log.New(io.Discard),
		hooks:    observability.Canvas(),
		order:    &zorder.Tracker{},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.SetDocument(m)
	return c
}

// SetDocument replaces the working copy with a snapshot of m. Items keep
// their paint order; new items are painted on top. A drag in progress keeps
// its ephemeral position and is written on drop.
func (c *Canvas) SetDocument(m *mandala.Mandala) {
	c.doc = m.Clone()
	c.doc.Normalize()
	c.frame = layout.NewFrame(c.doc.Config)
	for _, e := range zorder.FromMandala(c.doc) {
		if !c.order.Contains(e) {
			c.order.BringToFront(e)
		}
	}
}

// Document returns a copy of the working document.
func (c *Canvas) Document() *mandala.Mandala {
	return c.doc.Clone()
}

// Frame returns the logical drawing space.
func (c *Canvas) Frame() layout.Frame {
	return c.frame
}

// Order returns the current paint order.
func (c *Canvas) Order() []zorder.Entry {
	return c.order.Order()
}

// Raise paints e and, for a note, its orbiting children on top. Pressing
// an item raises it as well.
func (c *Canvas) Raise(e zorder.Entry) {
	c.order.BringToFront(e)
}

// SetFilter replaces the filter.
func (c *Canvas) SetFilter(f mandala.Filter) {
	c.filter = f
}

// Expanded reports whether the note shows its children.
func (c *Canvas) Expanded(id string) bool {
	return c.expanded[id]
}

// SetExpanded expands or collapses a note.
func (c *Canvas) SetExpanded(id string, open bool) {
	if open {
		c.expanded[id] = true
	} else {
		delete(c.expanded, id)
	}
}

// ExpandedIDs returns the ids of expanded notes.
func (c *Canvas) ExpandedIDs() []string {
	ids := make([]string, 0, len(c.expanded))
	for id := range c.expanded {
		ids = append(ids, id)
	}
	return ids
}

// Editing returns the id of the note in text edit mode, or "".
func (c *Canvas) Editing() string {
	return c.editing
}

// StopEditing leaves text edit mode.
func (c *Canvas) StopEditing() {
	c.editing = ""
}

// Interaction returns the current interaction state. Text editing locks
// the zoom.
func (c *Canvas) Interaction() Interaction {
	return Interaction{
		IsDragging:   c.dragging(),
		IsZoomLocked: c.locked || c.editing != "",
	}
}

// LockZoom disables or enables zoom and pan.
func (c *Canvas) LockZoom(locked bool) {
	c.locked = locked
}

// Scene returns the scene currently displayed, including the ephemeral
// position of a dragged item.
func (c *Canvas) Scene() *layout.Scene {
	opts := []layout.Option{
		layout.WithFilter(c.filter),
		layout.WithOrder(c.order.Order()),
		layout.WithExpanded(func(n mandala.Note) bool { return c.expanded[n.ID] }),
	}
	overrides := make(map[zorder.Entry]geometry.Point)
	for _, p := range c.presses {
		if p.draggable && p.dragging {
			overrides[p.root] = geometry.TopLeftToCenter(p.topLeft, p.item.Width, p.item.Height)
		}
	}
	if len(overrides) > 0 {
		opts = append(opts, layout.WithOverrides(overrides))
	}
	return layout.Build(c.doc, opts...)
}

// dragging reports whether any captured pointer holds a draggable item.
func (c *Canvas) dragging() bool {
	for _, p := range c.presses {
		if p.draggable {
			return true
		}
	}
	return false
}

// SetContent replaces a note's text and writes the change.
func (c *Canvas) SetContent(ctx context.Context, id, text string) error {
	upd, ok := c.doc.SetContent(id, text)
	if !ok {
		return errors.New(errors.ErrCodeItemNotFound, "note %s not found", id)
	}
	err := c.writer.WriteContent(ctx, upd)
	c.hooks.OnWrite("content", err)
	if err != nil {
		c.logger.Error("content write failed", "note", id, "err", err)
		return errors.Wrap(errors.ErrCodeStorage, err, "write content of note %s", id)
	}
	c.logger.Debug("content written", "note", id, "chars", len(text))
	return nil
}
