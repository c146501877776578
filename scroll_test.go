package tabstrip

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScroller_Clamp(t *testing.T) {
	var s scroller
	s.setBounds(1000, 400)

	s.scrollBy(-50)
	assert.Equal(t, float32(0), s.offset)

	s.scrollBy(250)
	assert.Equal(t, float32(250), s.offset)

	s.scrollBy(10000)
	assert.Equal(t, float32(600), s.offset)

	// clamping again changes nothing
	s.clamp()
	assert.Equal(t, float32(600), s.offset)
}

func TestScroller_ContentFits(t *testing.T) {
	var s scroller
	s.setBounds(300, 400)

	s.scrollBy(100)
	assert.Equal(t, float32(0), s.offset)
	assert.Equal(t, float32(0), s.maxOffset())
}

func TestScroller_ShrinkingContentReclamps(t *testing.T) {
	var s scroller
	s.setBounds(1000, 400)
	s.scrollBy(600)

	// content shrinks under the current offset
	s.setBounds(500, 400)
	assert.Equal(t, float32(100), s.offset)
}

func TestScroller_Wheel(t *testing.T) {
	var s scroller
	s.setBounds(1000, 400)

	// horizontal delta applies directly
	s.wheel(30, 0)
	assert.Equal(t, float32(30), s.offset)

	// vertical-only delta scrolls horizontally
	s.wheel(0, 40)
	assert.Equal(t, float32(70), s.offset)

	// horizontal wins when both are present
	s.wheel(-10, 99)
	assert.Equal(t, float32(60), s.offset)
}

func TestScroller_DragThumb(t *testing.T) {
	var s scroller
	s.setBounds(800, 400)

	// thumb movement scales by content/viewport
	s.dragThumb(10)
	assert.Equal(t, float32(20), s.offset)
}

func TestScroller_ThumbRect(t *testing.T) {
	var s scroller
	s.setBounds(800, 400)
	track := image.Rect(0, 30, 400, 38)

	r := s.thumbRect(track)
	assert.Equal(t, 200, r.Dx())
	assert.Equal(t, 0, r.Min.X)

	s.offset = s.maxOffset()
	r = s.thumbRect(track)
	assert.Equal(t, 400, r.Max.X)

	// no thumb when content fits
	s.setBounds(300, 400)
	assert.Equal(t, image.Rectangle{}, s.thumbRect(track))
}

func TestScroller_EdgeScroll(t *testing.T) {
	var s scroller
	s.setBounds(1000, 400)

	// near the right edge scrolls forward
	assert.True(t, s.edgeScroll(390, 24, 8))
	assert.Equal(t, float32(8), s.offset)

	// middle of the viewport does nothing
	assert.False(t, s.edgeScroll(200, 24, 8))
	assert.Equal(t, float32(8), s.offset)

	// near the left edge scrolls back
	assert.True(t, s.edgeScroll(10, 24, 8))
	assert.Equal(t, float32(0), s.offset)

	// already at the left bound
	assert.False(t, s.edgeScroll(10, 24, 8))
}
