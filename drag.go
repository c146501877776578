package tabstrip

import (
	"time"

	"gioui.org/f32"
)

type dragPhase uint8

const (
	dragIdle dragPhase = iota
	// dragPressed: pointer down over a tab, displacement still under the
	// threshold. Release from here is a plain click.
	dragPressed
	// dragActive: threshold crossed, the tab follows the pointer.
	dragActive
)

// dragState tracks one press from pointer-down to release. While
// dragging, offset and target are live read-only views of where the tab
// would land; the tab sequence itself is never mutated here. The
// controller commits the move in the release transition, which keeps the
// other tabs' rectangles stable for the whole drag.
type dragState struct {
	phase  dragPhase
	index  int
	origin f32.Point // content-space press position
	start  time.Time

	offset float32 // live x displacement of the dragged tab
	target int     // live drop slot, recomputed on every move
}

func (d *dragState) press(i int, pos f32.Point, now time.Time) {
	d.phase = dragPressed
	d.index = i
	d.origin = pos
	d.start = now
	d.offset = 0
	d.target = i
}

// move feeds a content-space pointer position into the machine and
// reports whether a drag is in progress afterwards. A press promotes to
// a drag once the squared displacement passes the squared threshold.
func (d *dragState) move(pos f32.Point, threshold float32, f *Frame) bool {
	switch d.phase {
	case dragIdle:
		return false
	case dragPressed:
		dx := pos.X - d.origin.X
		dy := pos.Y - d.origin.Y
		if dx*dx+dy*dy < threshold*threshold {
			return false
		}
		d.phase = dragActive
	}
	d.offset = pos.X - d.origin.X
	d.target = f.dropIndex(pos.X, d.index)
	return true
}

// release ends the press and reports what it was. The caller decides
// whether that means a select (from dragPressed) or a reorder (from
// dragActive with a moved target).
func (d *dragState) release() (phase dragPhase, index, target int) {
	phase, index, target = d.phase, d.index, d.target
	d.reset()
	return phase, index, target
}

// reset returns to idle with no message and no mutation. Safe to call
// from any phase, any number of times.
func (d *dragState) reset() {
	*d = dragState{}
}

func (d *dragState) dragging() bool {
	return d.phase == dragActive
}
