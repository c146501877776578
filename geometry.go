package tabstrip

import "image"

// MeasureFunc reports the natural size of a tab label's content. The
// renderer supplies a text-shaping implementation; tests supply fixed
// sizes. It must be pure: same label and config, same size.
type MeasureFunc func(label TabLabel, cfg Config) image.Point

// Frame is the geometry computed in one layout pass: one rectangle per
// tab in content space (scroll offset not applied), the close-button
// sub-rectangles, and the overall extents. A Frame is derived state and
// is recomputed whenever the tab set, config, or viewport changes.
type Frame struct {
	Tabs  []image.Rectangle
	Close []image.Rectangle // empty when the close button is disabled

	ContentWidth int
	Viewport     image.Point
	// BarHeight is the tab row plus outer padding. A ScrollbarBelow
	// strip, when shown, sits under this.
	BarHeight int
}

// layoutTabs packs tabs left to right with cfg.Spacing between them and
// cfg.Padding around the whole row. Tab width is cfg.TabWidth when set,
// otherwise the measured label width plus insets and the close
// allowance. Heights are uniform across the row.
func layoutTabs[K comparable](tabs []Tab[K], cfg Config, viewport image.Point, hasClose bool, measure MeasureFunc) Frame {
	closeW := 0
	if hasClose {
		closeW = int(float32(cfg.CloseSize)*closeHitScale + 0.5)
	}

	widths := make([]int, len(tabs))
	rowH := cfg.Height
	for i, t := range tabs {
		var sz image.Point
		if measure != nil {
			sz = measure(t.Label, cfg)
		}
		w := cfg.TabWidth
		if w <= 0 {
			w = sz.X + 2*tabInset + closeW
		}
		widths[i] = w
		if h := sz.Y + 2; h > rowH {
			rowH = h
		}
	}

	f := Frame{
		Tabs:      make([]image.Rectangle, len(tabs)),
		Viewport:  viewport,
		BarHeight: rowH + 2*cfg.Padding,
	}
	if hasClose {
		f.Close = make([]image.Rectangle, len(tabs))
	}

	x := cfg.Padding
	for i, w := range widths {
		if i > 0 {
			x += cfg.Spacing
		}
		r := image.Rect(x, cfg.Padding, x+w, cfg.Padding+rowH)
		f.Tabs[i] = r
		if hasClose {
			cy := (r.Min.Y + r.Max.Y) / 2
			f.Close[i] = image.Rect(r.Max.X-closeW, cy-closeW/2, r.Max.X, cy-closeW/2+closeW)
		}
		x += w
	}
	f.ContentWidth = x + cfg.Padding

	return f
}

// TabAt returns the index of the tab containing p, in content space, or
// -1. Rectangles are ordered and non-overlapping, so the first hit wins.
func (f *Frame) TabAt(p image.Point) int {
	for i, r := range f.Tabs {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// CloseAt returns the index of the tab whose close sub-rectangle
// contains p, or -1.
func (f *Frame) CloseAt(p image.Point) int {
	for i, r := range f.Close {
		if p.In(r) {
			return i
		}
	}
	return -1
}

// Overflow reports whether the content is wider than the viewport, in
// which case the scroll offset governs the visible window.
func (f *Frame) Overflow() bool {
	return f.ContentWidth > f.Viewport.X
}

// dropIndex computes the reorder target for a drag at content-space
// cursor position x: the slot before the first tab whose center lies
// right of the cursor. Scanning in index order makes the result
// deterministic when the cursor sits exactly between two centers.
func (f *Frame) dropIndex(x float32, dragged int) int {
	n := len(f.Tabs)
	if n == 0 {
		return 0
	}

	target := n
	for i, r := range f.Tabs {
		center := float32(r.Min.X+r.Max.X) / 2
		if x < center {
			target = i
			break
		}
	}

	// Removing the dragged tab shifts every slot to its right down by
	// one; adjust so dropping in place is a no-op.
	if target > dragged {
		target--
	}
	return target
}
