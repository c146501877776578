package tabstrip

import (
	"fmt"
	"image"
	"testing"
	"time"

	"gioui.org/f32"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCallbacks() Callbacks[string, string] {
	return Callbacks[string, string]{
		Select:  func(id string) string { return "select:" + id },
		Close:   func(id string) string { return "close:" + id },
		Reorder: func(from, to int) string { return fmt.Sprintf("reorder:%d:%d", from, to) },
	}
}

// newTestBar builds a bar with four 100px tabs in a 400px viewport.
func newTestBar(t *testing.T) *Bar[string, string] {
	t.Helper()
	cfg := Config{
		TabWidth:     100,
		Spacing:      0,
		Padding:      0,
		TooltipDelay: 100 * time.Millisecond,
		ScrollMode:   ScrollbarNone,
	}
	b := New[string, string](cfg, fixedMeasure, testCallbacks())
	for _, id := range []string{"a", "b", "c", "d"} {
		b.Push(Tab[string]{ID: id, Label: TextLabel(id), Tooltip: "tip " + id})
	}
	b.Resize(image.Pt(400, 40))
	return b
}

func ids(tabs []Tab[string]) []string {
	out := make([]string, len(tabs))
	for i, t := range tabs {
		out[i] = t.ID
	}
	return out
}

func TestBar_SelectOnReleaseOnly(t *testing.T) {
	b := newTestBar(t)
	now := time.Now()

	_, emitted := b.PointerDown(f32.Pt(50, 16), now)
	assert.False(t, emitted, "press must not select")

	msg, emitted := b.PointerUp(f32.Pt(50, 16), now)
	require.True(t, emitted)
	assert.Equal(t, "select:a", msg)

	// a second release without a press emits nothing
	_, emitted = b.PointerUp(f32.Pt(50, 16), now)
	assert.False(t, emitted)
}

func TestBar_ClickWithJitterIsStillASelect(t *testing.T) {
	b := newTestBar(t)
	now := time.Now()

	b.PointerDown(f32.Pt(50, 16), now)
	b.PointerMove(f32.Pt(53, 18), now)

	msg, emitted := b.PointerUp(f32.Pt(53, 18), now)
	require.True(t, emitted)
	assert.Equal(t, "select:a", msg)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(b.Tabs()))
}

func TestBar_CloseOnPress(t *testing.T) {
	b := newTestBar(t)
	now := time.Now()

	// inside tab a's close hit area
	msg, emitted := b.PointerDown(f32.Pt(90, 16), now)
	require.True(t, emitted)
	assert.Equal(t, "close:a", msg)

	// the release after a close press emits nothing
	_, emitted = b.PointerUp(f32.Pt(90, 16), now)
	assert.False(t, emitted)
}

func TestBar_ClosePressNeverStartsADrag(t *testing.T) {
	b := newTestBar(t)
	now := time.Now()

	b.PointerDown(f32.Pt(90, 16), now)
	b.PointerMove(f32.Pt(300, 16), now)
	assert.False(t, b.Dragging())

	_, emitted := b.PointerUp(f32.Pt(300, 16), now)
	assert.False(t, emitted)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(b.Tabs()))
}

func TestBar_DragReorder(t *testing.T) {
	b := newTestBar(t)
	now := time.Now()

	b.PointerDown(f32.Pt(50, 16), now)
	b.PointerMove(f32.Pt(250, 16), now)
	require.True(t, b.Dragging())

	msg, emitted := b.PointerUp(f32.Pt(250, 16), now)
	require.True(t, emitted)
	assert.Equal(t, "reorder:0:2", msg)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(b.Tabs()))
}

func TestBar_DragBackHomeEmitsNothing(t *testing.T) {
	b := newTestBar(t)
	now := time.Now()

	b.PointerDown(f32.Pt(50, 16), now)
	b.PointerMove(f32.Pt(250, 16), now)
	b.PointerMove(f32.Pt(50, 16), now)

	_, emitted := b.PointerUp(f32.Pt(50, 16), now)
	assert.False(t, emitted, "dropping at the original slot is not a reorder")
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(b.Tabs()))
}

func TestBar_CancelDiscardsEverything(t *testing.T) {
	b := newTestBar(t)
	now := time.Now()

	b.PointerDown(f32.Pt(50, 16), now)
	b.PointerMove(f32.Pt(250, 16), now)
	require.True(t, b.Dragging())

	b.Cancel()
	assert.False(t, b.Dragging())
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(b.Tabs()))

	// cancelling again, and releasing after a cancel, are both no-ops
	b.Cancel()
	_, emitted := b.PointerUp(f32.Pt(250, 16), now)
	assert.False(t, emitted)
}

func TestBar_NoReorderCallbackMeansNoDrag(t *testing.T) {
	cfg := Config{TabWidth: 100, Spacing: 0, Padding: 0}
	b := New[string, string](cfg, fixedMeasure, Callbacks[string, string]{
		Select: func(id string) string { return "select:" + id },
	})
	b.Push(Tab[string]{ID: "a", Label: TextLabel("a")})
	b.Push(Tab[string]{ID: "b", Label: TextLabel("b")})
	b.Resize(image.Pt(400, 40))
	now := time.Now()

	b.PointerDown(f32.Pt(50, 16), now)
	b.PointerMove(f32.Pt(150, 16), now)
	assert.False(t, b.Dragging())

	msg, emitted := b.PointerUp(f32.Pt(150, 16), now)
	require.True(t, emitted)
	assert.Equal(t, "select:a", msg)
}

func TestBar_RemoveMidDragDiscardsTheDrag(t *testing.T) {
	b := newTestBar(t)
	now := time.Now()

	b.PointerDown(f32.Pt(50, 16), now)
	b.PointerMove(f32.Pt(250, 16), now)
	require.True(t, b.Dragging())

	require.True(t, b.Remove("b"))
	assert.False(t, b.Dragging())

	_, emitted := b.PointerUp(f32.Pt(250, 16), now)
	assert.False(t, emitted)
	assert.Equal(t, []string{"a", "c", "d"}, ids(b.Tabs()))
}

func TestBar_WheelClamps(t *testing.T) {
	b := newTestBar(t)

	b.Wheel(f32.Pt(0, 10000))
	assert.Equal(t, float32(0), b.Offset(), "four 100px tabs fit a 400px viewport")

	for _, id := range []string{"e", "f", "g", "h"} {
		b.Push(Tab[string]{ID: id, Label: TextLabel(id)})
	}
	b.Wheel(f32.Pt(0, 10000))
	assert.Equal(t, float32(400), b.Offset())

	b.Wheel(f32.Pt(-10000, 0))
	assert.Equal(t, float32(0), b.Offset())
}

func TestBar_EdgeAutoScrollWhileDragging(t *testing.T) {
	b := newTestBar(t)
	for _, id := range []string{"e", "f", "g", "h"} {
		b.Push(Tab[string]{ID: id, Label: TextLabel(id)})
	}
	now := time.Now()

	b.PointerDown(f32.Pt(50, 16), now)
	b.PointerMove(f32.Pt(390, 16), now)
	require.True(t, b.Dragging())

	step := float32(b.Config().EdgeScrollStep)
	b.Tick(now)
	assert.Equal(t, step, b.Offset())
	b.Tick(now)
	assert.Equal(t, 2*step, b.Offset())

	// no auto-scroll once the drag ends
	b.PointerUp(f32.Pt(390, 16), now)
	before := b.Offset()
	b.Tick(now)
	assert.Equal(t, before, b.Offset())
}

func TestBar_TooltipDebounce(t *testing.T) {
	b := newTestBar(t)
	t0 := time.Now()

	b.PointerMove(f32.Pt(50, 16), t0)

	_, visible := b.Tick(t0.Add(50 * time.Millisecond))
	assert.False(t, visible)

	idx, visible := b.Tick(t0.Add(100 * time.Millisecond))
	require.True(t, visible)
	assert.Equal(t, 0, idx)

	// moving to another tab restarts the countdown
	b.PointerMove(f32.Pt(150, 16), t0.Add(110*time.Millisecond))
	_, visible = b.Tick(t0.Add(150 * time.Millisecond))
	assert.False(t, visible)

	idx, visible = b.Tick(t0.Add(210 * time.Millisecond))
	require.True(t, visible)
	assert.Equal(t, 1, idx)

	b.HoverEnd()
	_, visible = b.Tick(t0.Add(300 * time.Millisecond))
	assert.False(t, visible)
}

func TestBar_ActiveTracking(t *testing.T) {
	b := newTestBar(t)

	b.SetActive("c")
	assert.Equal(t, 2, b.ActiveIndex())
	assert.Equal(t, StatusActive, b.StatusOf(2))
	assert.Equal(t, StatusInactive, b.StatusOf(0))

	// a stale id renders with no tab active
	b.SetActive("zzz")
	assert.Equal(t, -1, b.ActiveIndex())

	b.ClearActive()
	_, ok := b.ActiveID()
	assert.False(t, ok)
}

func TestBar_PushUpdatesInPlace(t *testing.T) {
	b := newTestBar(t)

	b.Push(Tab[string]{ID: "b", Label: TextLabel("renamed"), Tooltip: "new tip"})

	require.Equal(t, 4, b.Len())
	tabs := b.Tabs()
	assert.Equal(t, "renamed", tabs[1].Label.Text)
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(tabs))
}

func TestBar_Move(t *testing.T) {
	b := newTestBar(t)

	b.Move(0, 2)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(b.Tabs()))

	// out-of-range moves are ignored
	b.Move(-1, 2)
	b.Move(1, 99)
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(b.Tabs()))
}

func TestBar_HeightIncludesBelowStrip(t *testing.T) {
	cfg := Config{TabWidth: 100, Spacing: 0, Padding: 0, ScrollMode: ScrollbarBelow}
	b := New[string, string](cfg, fixedMeasure, testCallbacks())
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		b.Push(Tab[string]{ID: id, Label: TextLabel(id)})
	}
	b.Resize(image.Pt(400, 40))

	f := b.Frame()
	require.True(t, f.Overflow())
	assert.Equal(t, f.BarHeight+scrollbarGap+b.Config().ScrollbarThickness, b.Height())

	// the strip disappears when everything fits
	b.Resize(image.Pt(2000, 40))
	f = b.Frame()
	require.False(t, f.Overflow())
	assert.Equal(t, f.BarHeight, b.Height())
}
