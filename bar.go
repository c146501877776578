package tabstrip

import (
	"image"
	"time"

	"gioui.org/f32"

	"github.com/justyntemme/tabstrip/internal/debug"
)

// Callbacks produce the host's messages. The message type M is opaque to
// the bar; it only builds values through these functions. A nil Close
// disables the close button; a nil Reorder disables drag reordering.
type Callbacks[K comparable, M any] struct {
	Select  func(id K) M
	Close   func(id K) M
	Reorder func(from, to int) M
}

// Bar is the tab bar controller. It exclusively owns the tab sequence,
// the active selection, and the scroll/hover/drag state; sub-state
// machines receive copies or references and hand back results for the
// bar to apply. All methods must be called from a single goroutine —
// the widget is driven by the host's event loop and spawns nothing.
//
// Every event entry point returns at most one message.
type Bar[K comparable, M any] struct {
	cfg     Config
	cb      Callbacks[K, M]
	measure MeasureFunc
	meas    *Measurer

	tabs      []Tab[K]
	active    K
	hasActive bool

	scroll scroller
	drag   dragState
	tip    tooltipState

	frame Frame
	dirty bool

	pointer    f32.Point // last pointer position, viewport space
	hasPointer bool
}

// New builds a Bar with the given configuration, label measurer, and
// message constructors. Invalid config values are clamped, not rejected.
func New[K comparable, M any](cfg Config, measure MeasureFunc, cb Callbacks[K, M]) *Bar[K, M] {
	b := &Bar[K, M]{
		cfg:     cfg.sanitized(),
		cb:      cb,
		measure: measure,
		dirty:   true,
	}
	b.tip.hoverEnd()
	return b
}

// Push appends a tab. If a tab with the same ID is already present its
// label and tooltip are updated in place instead, preserving the
// unique-ID invariant.
func (b *Bar[K, M]) Push(t Tab[K]) {
	for i := range b.tabs {
		if b.tabs[i].ID == t.ID {
			b.tabs[i] = t
			b.invalidate()
			return
		}
	}
	b.tabs = append(b.tabs, t)
	b.invalidate()
}

// Remove deletes the tab with the given ID and reports whether it was
// present. Any in-flight drag or tooltip countdown is discarded, since
// their indices no longer mean anything.
func (b *Bar[K, M]) Remove(id K) bool {
	for i := range b.tabs {
		if b.tabs[i].ID == id {
			b.tabs = append(b.tabs[:i], b.tabs[i+1:]...)
			b.invalidate()
			return true
		}
	}
	return false
}

// Move relocates the tab at from to position to with a single
// remove+insert, preserving the relative order of every other tab.
func (b *Bar[K, M]) Move(from, to int) {
	n := len(b.tabs)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return
	}
	t := b.tabs[from]
	rest := append(b.tabs[:from], b.tabs[from+1:]...)
	b.tabs = append(rest[:to], append([]Tab[K]{t}, rest[to:]...)...)
	b.invalidate()
}

// Len returns the number of tabs.
func (b *Bar[K, M]) Len() int { return len(b.tabs) }

// Tabs returns a copy of the tab sequence in display order.
func (b *Bar[K, M]) Tabs() []Tab[K] {
	out := make([]Tab[K], len(b.tabs))
	copy(out, b.tabs)
	return out
}

// SetActive marks id as the active tab. The id need not match a present
// tab; a stale id simply renders with no tab active.
func (b *Bar[K, M]) SetActive(id K) {
	b.active = id
	b.hasActive = true
}

// ClearActive removes the active selection.
func (b *Bar[K, M]) ClearActive() {
	var zero K
	b.active = zero
	b.hasActive = false
}

// ActiveID returns the active tab id, if one is set.
func (b *Bar[K, M]) ActiveID() (K, bool) {
	return b.active, b.hasActive
}

// ActiveIndex returns the position of the active tab, or -1 when no
// present tab matches the selection.
func (b *Bar[K, M]) ActiveIndex() int {
	if !b.hasActive {
		return -1
	}
	for i := range b.tabs {
		if b.tabs[i].ID == b.active {
			return i
		}
	}
	return -1
}

// SetConfig replaces the configuration (clamped as in New).
func (b *Bar[K, M]) SetConfig(cfg Config) {
	b.cfg = cfg.sanitized()
	b.invalidate()
}

// Config returns the effective (sanitized) configuration.
func (b *Bar[K, M]) Config() Config { return b.cfg }

// Resize sets the viewport the bar is laid out into.
func (b *Bar[K, M]) Resize(viewport image.Point) {
	if b.frame.Viewport == viewport && !b.dirty {
		return
	}
	b.frame.Viewport = viewport
	b.dirty = true
}

// SetMeasurer replaces the label measurer.
func (b *Bar[K, M]) SetMeasurer(m MeasureFunc) {
	b.measure = m
	b.dirty = true
}

func (b *Bar[K, M]) invalidate() {
	b.dirty = true
	// Positional sub-state is meaningless across a tab-set change.
	b.drag.reset()
	b.tip.hoverEnd()
}

// Frame returns the current layout geometry, recomputing it when the
// tab set, config, or viewport changed since the last pass.
func (b *Bar[K, M]) Frame() *Frame {
	if b.dirty {
		viewport := b.frame.Viewport
		b.frame = layoutTabs(b.tabs, b.cfg, viewport, b.cb.Close != nil, b.measure)
		b.scroll.setBounds(b.frame.ContentWidth, viewport.X)
		b.dirty = false
		debug.Log(debug.GEO, "layout: %d tabs, content=%d viewport=%d", len(b.tabs), b.frame.ContentWidth, viewport.X)
	}
	return &b.frame
}

// Offset returns the current scroll offset in content pixels.
func (b *Bar[K, M]) Offset() float32 { return b.scroll.offset }

// Height returns the widget's total height: the bar itself plus the
// scrollbar strip when ScrollbarBelow is active and the tabs overflow.
func (b *Bar[K, M]) Height() int {
	f := b.Frame()
	h := f.BarHeight
	if b.cfg.ScrollMode == ScrollbarBelow && f.Overflow() {
		h += scrollbarGap + b.cfg.ScrollbarThickness
	}
	return h
}

// Dragging reports whether a drag-reorder is past the threshold.
func (b *Bar[K, M]) Dragging() bool { return b.drag.dragging() }

// contentPos translates a viewport-space pointer position into content
// space by adding the scroll offset.
func (b *Bar[K, M]) contentPos(p f32.Point) f32.Point {
	return f32.Pt(p.X+b.scroll.offset, p.Y)
}

func roundPt(p f32.Point) image.Point {
	return image.Pt(int(p.X+0.5), int(p.Y+0.5))
}

// thumbTrack returns the scrollbar track rectangle in viewport space,
// and whether a thumb should exist at all for the current mode and
// overflow state.
func (b *Bar[K, M]) thumbTrack() (image.Rectangle, bool) {
	f := b.Frame()
	if b.cfg.ScrollMode == ScrollbarNone || !f.Overflow() {
		return image.Rectangle{}, false
	}
	th := b.cfg.ScrollbarThickness
	switch b.cfg.ScrollMode {
	case ScrollbarBelow:
		return image.Rect(0, f.BarHeight+scrollbarGap, f.Viewport.X, f.BarHeight+scrollbarGap+th), true
	default: // ScrollbarFloating overlays the bottom edge of the tabs.
		return image.Rect(0, f.BarHeight-th, f.Viewport.X, f.BarHeight), true
	}
}

// PointerDown handles a primary-button press at a viewport-space
// position. A hit on the scrollbar thumb starts a thumb drag; a hit on
// an enabled close button emits the close message immediately (and never
// starts a drag); a hit anywhere else on a tab arms the drag machine.
func (b *Bar[K, M]) PointerDown(pos f32.Point, now time.Time) (msg M, ok bool) {
	b.pointer, b.hasPointer = pos, true
	f := b.Frame()

	if track, hasThumb := b.thumbTrack(); hasThumb {
		if roundPt(pos).In(b.scroll.thumbRect(track)) {
			b.scroll.thumbDrag = true
			return msg, false
		}
	}

	cp := b.contentPos(pos)
	i := f.TabAt(roundPt(cp))
	if i < 0 {
		return msg, false
	}

	if b.cb.Close != nil && f.CloseAt(roundPt(cp)) == i {
		debug.Log(debug.BAR, "close tab %d", i)
		return b.cb.Close(b.tabs[i].ID), true
	}

	b.drag.press(i, cp, now)
	debug.Log(debug.DRAG, "press tab %d", i)
	return msg, false
}

// PointerMove handles pointer motion. Moves never emit messages: they
// advance the thumb drag, the drag-reorder machine, or the hover
// tracking, whichever is armed.
func (b *Bar[K, M]) PointerMove(pos f32.Point, now time.Time) {
	prevX := b.pointer.X
	hadPointer := b.hasPointer
	b.pointer, b.hasPointer = pos, true

	if b.scroll.thumbDrag {
		if hadPointer {
			b.scroll.dragThumb(pos.X - prevX)
		}
		return
	}

	f := b.Frame()
	cp := b.contentPos(pos)

	if b.drag.phase != dragIdle {
		b.tip.hoverEnd()
		if b.cb.Reorder == nil {
			// Without a reorder callback a press can never become a
			// drag; the release will still report a click.
			return
		}
		wasDragging := b.drag.dragging()
		if b.drag.move(cp, b.cfg.DragThreshold, f) && !wasDragging {
			debug.Log(debug.DRAG, "threshold crossed, tab %d", b.drag.index)
		}
		return
	}

	if i := f.TabAt(roundPt(cp)); i >= 0 && b.tabs[i].Tooltip != "" {
		b.tip.hoverMove(i, now)
	} else {
		b.tip.hoverEnd()
	}
}

// PointerUp handles a primary-button release. A release from the
// pressed phase emits select; a release from the dragging phase with a
// moved target commits the reorder and emits the reorder message. An
// unmatched release (no prior press) is ignored.
func (b *Bar[K, M]) PointerUp(pos f32.Point, now time.Time) (msg M, ok bool) {
	b.pointer, b.hasPointer = pos, true

	if b.scroll.thumbDrag {
		b.scroll.thumbDrag = false
		return msg, false
	}

	phase, index, target := b.drag.release()
	switch phase {
	case dragPressed:
		if b.cb.Select != nil && index >= 0 && index < len(b.tabs) {
			debug.Log(debug.BAR, "select tab %d", index)
			return b.cb.Select(b.tabs[index].ID), true
		}
	case dragActive:
		if b.cb.Reorder != nil && target != index &&
			index >= 0 && index < len(b.tabs) &&
			target >= 0 && target < len(b.tabs) {
			b.Move(index, target)
			debug.Log(debug.DRAG, "reorder %d -> %d", index, target)
			return b.cb.Reorder(index, target), true
		}
	}
	return msg, false
}

// HoverEnd discards hover tracking, typically when the pointer leaves
// the bar. An in-flight drag keeps tracking; releases and cancels end it.
func (b *Bar[K, M]) HoverEnd() {
	b.tip.hoverEnd()
	if b.drag.phase == dragIdle {
		b.hasPointer = false
	}
}

// Cancel handles pointer-capture loss: every pressed sub-state returns
// to idle with no message and no mutation, from any prior state.
func (b *Bar[K, M]) Cancel() {
	if b.drag.phase != dragIdle {
		debug.Log(debug.DRAG, "cancel from phase %d", b.drag.phase)
	}
	b.drag.reset()
	b.scroll.thumbDrag = false
	b.tip.hoverEnd()
	b.hasPointer = false
}

// Wheel applies a wheel delta to the scroll offset. The offset is
// clamped after every update, in every scroll mode.
func (b *Bar[K, M]) Wheel(delta f32.Point) {
	b.Frame() // keep scroll bounds current
	b.scroll.wheel(delta.X, delta.Y)
}

// Tick advances the clock-driven state: the edge auto-scroll while a
// drag runs near a viewport edge, and the tooltip countdown. It returns
// the index of the tab whose tooltip is visible, if any.
func (b *Bar[K, M]) Tick(now time.Time) (tooltip int, visible bool) {
	if b.drag.dragging() && b.hasPointer {
		if b.scroll.edgeScroll(int(b.pointer.X+0.5), b.cfg.EdgeScrollMargin, b.cfg.EdgeScrollStep) {
			// The pointer's content position shifted under it.
			b.drag.move(b.contentPos(b.pointer), b.cfg.DragThreshold, b.Frame())
			debug.Log(debug.SCROLL, "edge auto-scroll, offset=%.0f", b.scroll.offset)
		}
	}
	return b.tip.tick(now, b.cfg.TooltipDelay)
}

// TooltipDeadline reports when a pending tooltip countdown will fire,
// for redraw scheduling.
func (b *Bar[K, M]) TooltipDeadline() (time.Time, bool) {
	return b.tip.deadline(b.cfg.TooltipDelay)
}

// hoverIndex returns the tab currently under the pointer, or -1.
func (b *Bar[K, M]) hoverIndex() int {
	if !b.hasPointer {
		return -1
	}
	return b.Frame().TabAt(roundPt(b.contentPos(b.pointer)))
}

// StatusOf derives the styling status for tab i this frame. Dragging
// wins over active, active over hovered.
func (b *Bar[K, M]) StatusOf(i int) Status {
	if b.drag.dragging() {
		if i == b.drag.index {
			return StatusDragging
		}
		return StatusInactive
	}
	if b.ActiveIndex() == i {
		return StatusActive
	}
	if b.hoverIndex() == i {
		return StatusHovered
	}
	return StatusInactive
}

// CloseHovered reports whether the pointer sits on tab i's close button.
func (b *Bar[K, M]) CloseHovered(i int) bool {
	if !b.hasPointer || b.drag.dragging() {
		return false
	}
	f := b.Frame()
	return i >= 0 && i < len(f.Close) && roundPt(b.contentPos(b.pointer)).In(f.Close[i])
}

// VisualRect returns tab i's rectangle for rendering, in content space.
// During a drag the dragged tab floats at its live offset, clamped to
// the visible window; everything else stays at its committed position.
func (b *Bar[K, M]) VisualRect(i int) image.Rectangle {
	f := b.Frame()
	r := f.Tabs[i]
	if !b.drag.dragging() || i != b.drag.index {
		return r
	}
	r = r.Add(image.Pt(int(b.drag.offset+0.5), 0))
	// Keep the floating tab inside the visible window.
	start, end := b.scroll.window()
	lo, hi := int(start+0.5), int(end+0.5)
	if w := r.Dx(); hi-lo >= w {
		if r.Min.X < lo {
			r = r.Add(image.Pt(lo-r.Min.X, 0))
		}
		if r.Max.X > hi {
			r = r.Add(image.Pt(hi-r.Max.X, 0))
		}
	}
	return r
}
