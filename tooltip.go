package tabstrip

import "time"

// tooltipState tracks the hover-delay countdown for at most one tab.
// A hover must survive the configured delay before the tooltip becomes
// visible; leaving the tab, or moving to a different tab, discards the
// countdown with no visibility carry-over.
type tooltipState struct {
	index   int // -1 when nothing is hovered
	since   time.Time
	visible bool
}

// hoverMove records that the pointer is over tab i. Moving to a
// different tab restarts the countdown.
func (t *tooltipState) hoverMove(i int, now time.Time) {
	if i == t.index {
		return
	}
	t.index = i
	t.since = now
	t.visible = false
}

// hoverEnd discards any pending countdown and hides a visible tooltip.
func (t *tooltipState) hoverEnd() {
	t.index = -1
	t.visible = false
}

// tick advances the countdown and returns the index of the tab whose
// tooltip is visible, if any.
func (t *tooltipState) tick(now time.Time, delay time.Duration) (int, bool) {
	if t.index < 0 {
		return -1, false
	}
	if !t.visible && now.Sub(t.since) >= delay {
		t.visible = true
	}
	if t.visible {
		return t.index, true
	}
	return -1, false
}

// deadline returns when a pending countdown will fire, so the renderer
// can schedule a redraw instead of polling.
func (t *tooltipState) deadline(delay time.Duration) (time.Time, bool) {
	if t.index < 0 || t.visible {
		return time.Time{}, false
	}
	return t.since.Add(delay), true
}
