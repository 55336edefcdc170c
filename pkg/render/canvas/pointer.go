package canvas

import (
	"context"
	"time"

	"github.com/matzehuels/mandala/pkg/errors"
	"github.com/matzehuels/mandala/pkg/geometry"
	"github.com/matzehuels/mandala/pkg/layout"
	"github.com/matzehuels/mandala/pkg/mandala"
	"github.com/matzehuels/mandala/pkg/zorder"
)

// press is the state of a captured pointer.
type press struct {
	pointer   int
	item      layout.Item
	root      zorder.Entry
	start     geometry.Point
	grab      geometry.Point
	topLeft   geometry.Point
	dragging  bool
	draggable bool
}

type pendingClick struct {
	id string
	at time.Time
}

// PointerDown starts a press at a screen point and raises the hit item. It
// reports whether an item was hit. Each pointer is tracked separately, so
// the item touched last is painted on top. An item already held by another
// pointer is raised but not dragged a second time.
func (c *Canvas) PointerDown(pointer int, pt geometry.Point, t time.Time) bool {
	c.Tick(t)
	if _, busy := c.presses[pointer]; busy {
		return false
	}

	fp := c.Viewport().ToFrame(pt)
	scene := c.Scene()
	it, ok := hitTest(scene, fp)
	if !ok {
		c.editing = ""
		return false
	}

	p := &press{
		pointer: pointer,
		item:    it,
		root:    rootEntry(scene, it),
		start:   pt,
	}
	c.order.BringToFront(p.root)
	if it.Draggable && !c.held(p.root) {
		p.draggable = true
		p.topLeft = it.TopLeft()
		p.grab = fp.Sub(p.topLeft)
		c.hooks.OnDragStart(string(it.Kind), it.ID)
	}
	c.presses[pointer] = p
	return true
}

// held reports whether a captured pointer drags e.
func (c *Canvas) held(e zorder.Entry) bool {
	for _, p := range c.presses {
		if p.draggable && p.root == e {
			return true
		}
	}
	return false
}

// PointerMove updates a captured press. It reports whether the dragged
// item moved.
func (c *Canvas) PointerMove(pointer int, pt geometry.Point) bool {
	p, ok := c.presses[pointer]
	if !ok {
		return false
	}
	if !p.dragging {
		if pt.Dist(p.start) <= DragDeadZone {
			return false
		}
		p.dragging = true
	}
	if !p.draggable {
		return false
	}
	c.dragTo(p, pt)
	return true
}

// dragTo moves the captured item so the pointer keeps its grab offset,
// constrained to the outer circle. The position is kept as a top-left
// corner and converted to a center for the constraint.
func (c *Canvas) dragTo(p *press, pt geometry.Point) {
	w, h := p.item.Width, p.item.Height
	candidate := c.Viewport().ToFrame(pt).Sub(p.grab)
	center := geometry.TopLeftToCenter(candidate, w, h)
	center = c.frame.Boundary(w, h).Clamp(c.frame.Center, center, 1)
	p.topLeft = geometry.CenterToTopLeft(center, w, h)
}

// PointerUp ends a press. A drag is dropped and written; a press that
// stayed inside the dead zone and ends over the same item is a click.
func (c *Canvas) PointerUp(ctx context.Context, pointer int, pt geometry.Point, t time.Time) error {
	c.Tick(t)
	p, ok := c.presses[pointer]
	if !ok {
		return nil
	}
	delete(c.presses, pointer)

	if !p.dragging && pt.Dist(p.start) > DragDeadZone {
		p.dragging = true
	}
	if p.dragging {
		if !p.draggable {
			return nil
		}
		c.dragTo(p, pt)
		return c.drop(ctx, p)
	}

	if p.draggable {
		c.hooks.OnDragEnd(string(p.item.Kind), p.item.ID, false)
	}
	if it, ok := hitTest(c.Scene(), c.Viewport().ToFrame(pt)); ok && it.Entry() == p.item.Entry() {
		c.click(it, t)
	}
	return nil
}

// LostCapture ends a press whose pointer capture was taken away. A drag is
// dropped at its last position exactly as on PointerUp; no click is
// registered.
func (c *Canvas) LostCapture(ctx context.Context, pointer int) error {
	p, ok := c.presses[pointer]
	if !ok {
		return nil
	}
	delete(c.presses, pointer)
	if p.dragging && p.draggable {
		return c.drop(ctx, p)
	}
	return nil
}

// drop commits a drag to the document and writes the position. An item
// removed by a collaborator during the drag is skipped.
func (c *Canvas) drop(ctx context.Context, p *press) error {
	center := geometry.TopLeftToCenter(p.topLeft, p.item.Width, p.item.Height)
	norm := c.frame.ToRelative(center)
	c.hooks.OnDragEnd(string(p.root.Kind), p.root.ID, true)

	upd, ok := c.doc.Move(p.root.Kind, p.root.ID, norm)
	if !ok {
		c.logger.Warn("dropped item no longer exists", "kind", p.root.Kind, "id", p.root.ID)
		return nil
	}
	c.logger.Debug("item dropped",
		"kind", upd.Kind, "id", upd.ItemID,
		"x", upd.Position.X, "y", upd.Position.Y,
		"dimension", upd.Dimension, "section", upd.Section)

	err := c.writer.WritePosition(ctx, upd)
	c.hooks.OnWrite("position", err)
	if err != nil {
		c.logger.Error("position write failed", "id", upd.ItemID, "err", err)
		return errors.Wrap(errors.ErrCodeStorage, err, "write position of %s %s", upd.Kind, upd.ItemID)
	}
	return nil
}

// click registers a click on a note. A second click on the same note
// within DoubleClickDelay enters text editing and cancels the toggle.
func (c *Canvas) click(it layout.Item, t time.Time) {
	if it.Kind != mandala.KindNote {
		return
	}
	if q := c.pending; q != nil && q.id == it.ID && t.Sub(q.at) < DoubleClickDelay {
		c.pending = nil
		c.editing = it.ID
		return
	}
	if c.pending != nil {
		c.toggle(c.pending.id)
	}
	c.pending = &pendingClick{id: it.ID, at: t}
}

// Tick resolves a pending click whose double-click window has passed by t,
// toggling the note's orbit. It reports whether a note was toggled.
func (c *Canvas) Tick(t time.Time) bool {
	q := c.pending
	if q == nil || t.Sub(q.at) < DoubleClickDelay {
		return false
	}
	c.pending = nil
	c.toggle(q.id)
	return true
}

func (c *Canvas) toggle(id string) {
	c.SetExpanded(id, !c.expanded[id])
	c.logger.Debug("orbit toggled", "note", id, "expanded", c.expanded[id])
}

// hitTest returns the topmost item containing p.
func hitTest(s *layout.Scene, p geometry.Point) (layout.Item, bool) {
	for i := len(s.Items) - 1; i >= 0; i-- {
		if s.Items[i].Contains(p) {
			return s.Items[i], true
		}
	}
	return layout.Item{}, false
}

// rootEntry returns the top-level entry an item belongs to.
func rootEntry(s *layout.Scene, it layout.Item) zorder.Entry {
	byID := make(map[string]layout.Item)
	for _, x := range s.Items {
		if x.Kind == mandala.KindNote {
			byID[x.ID] = x
		}
	}
	for it.ParentID != "" {
		parent, ok := byID[it.ParentID]
		if !ok {
			break
		}
		it = parent
	}
	return it.Entry()
}

// HitTest returns the topmost item under a screen point.
func (c *Canvas) HitTest(pt geometry.Point) (layout.Item, bool) {
	return hitTest(c.Scene(), c.Viewport().ToFrame(pt))
}
