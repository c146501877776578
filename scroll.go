package tabstrip

import "image"

// minThumbWidth keeps the scrollbar thumb grabbable on long content.
const minThumbWidth = 16

// scroller owns the horizontal scroll offset. Every mutation re-clamps
// the offset into [0, max(0, content-viewport)]; clamping is idempotent,
// so callers never observe an out-of-range value.
type scroller struct {
	offset   float32
	content  int
	viewport int

	// thumbDrag is set while the scrollbar thumb is being dragged.
	thumbDrag bool
}

func (s *scroller) setBounds(content, viewport int) {
	s.content = content
	s.viewport = viewport
	s.clamp()
}

func (s *scroller) maxOffset() float32 {
	if m := s.content - s.viewport; m > 0 {
		return float32(m)
	}
	return 0
}

func (s *scroller) clamp() {
	if s.offset < 0 {
		s.offset = 0
	}
	if m := s.maxOffset(); s.offset > m {
		s.offset = m
	}
}

func (s *scroller) scrollBy(d float32) {
	s.offset += d
	s.clamp()
}

// wheel applies a wheel delta. A vertical-only wheel scrolls the bar
// horizontally, since the bar has no vertical axis to spend it on.
func (s *scroller) wheel(dx, dy float32) {
	d := dx
	if d == 0 {
		d = dy
	}
	s.scrollBy(d)
}

// dragThumb converts a thumb movement in viewport pixels into a content
// offset change.
func (s *scroller) dragThumb(dx float32) {
	if s.viewport <= 0 {
		return
	}
	s.scrollBy(dx * float32(s.content) / float32(s.viewport))
}

// window returns the visible content range [start, end).
func (s *scroller) window() (start, end float32) {
	return s.offset, s.offset + float32(s.viewport)
}

// thumbRect places the thumb within the given track, proportional to
// the visible fraction and the current offset. The zero rectangle means
// no thumb (content fits).
func (s *scroller) thumbRect(track image.Rectangle) image.Rectangle {
	if s.content <= s.viewport || s.viewport <= 0 {
		return image.Rectangle{}
	}
	trackW := track.Dx()
	thumbW := trackW * s.viewport / s.content
	if thumbW < minThumbWidth {
		thumbW = minThumbWidth
	}
	if thumbW > trackW {
		thumbW = trackW
	}
	x := 0
	if m := s.maxOffset(); m > 0 {
		x = int(s.offset/m*float32(trackW-thumbW) + 0.5)
	}
	return image.Rect(track.Min.X+x, track.Min.Y, track.Min.X+x+thumbW, track.Max.Y)
}

// edgeScroll nudges the offset toward whichever viewport edge px is
// within margin of, and reports whether it moved. Called once per frame
// tick while a drag is active so off-screen tabs become reachable.
func (s *scroller) edgeScroll(px, margin, step int) bool {
	if s.content <= s.viewport {
		return false
	}
	switch {
	case px < margin && s.offset > 0:
		s.scrollBy(float32(-step))
		return true
	case px > s.viewport-margin && s.offset < s.maxOffset():
		s.scrollBy(float32(step))
		return true
	}
	return false
}
