package tabstrip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTooltip_ShowsAfterDelay(t *testing.T) {
	var tip tooltipState
	tip.hoverEnd()
	delay := 500 * time.Millisecond
	t0 := time.Now()

	tip.hoverMove(1, t0)

	_, visible := tip.tick(t0.Add(499*time.Millisecond), delay)
	assert.False(t, visible)

	idx, visible := tip.tick(t0.Add(delay), delay)
	assert.True(t, visible)
	assert.Equal(t, 1, idx)
}

func TestTooltip_MovingRestartsCountdown(t *testing.T) {
	var tip tooltipState
	tip.hoverEnd()
	delay := 500 * time.Millisecond
	t0 := time.Now()

	tip.hoverMove(1, t0)
	// switch tabs just before the deadline
	tip.hoverMove(2, t0.Add(400*time.Millisecond))

	_, visible := tip.tick(t0.Add(600*time.Millisecond), delay)
	assert.False(t, visible)

	idx, visible := tip.tick(t0.Add(900*time.Millisecond), delay)
	assert.True(t, visible)
	assert.Equal(t, 2, idx)
}

func TestTooltip_SameTabKeepsCountdown(t *testing.T) {
	var tip tooltipState
	tip.hoverEnd()
	delay := 500 * time.Millisecond
	t0 := time.Now()

	tip.hoverMove(1, t0)
	// pointer jitter within the same tab must not restart
	tip.hoverMove(1, t0.Add(400*time.Millisecond))

	_, visible := tip.tick(t0.Add(delay), delay)
	assert.True(t, visible)
}

func TestTooltip_HoverEndHides(t *testing.T) {
	var tip tooltipState
	tip.hoverEnd()
	delay := 100 * time.Millisecond
	t0 := time.Now()

	tip.hoverMove(1, t0)
	_, visible := tip.tick(t0.Add(delay), delay)
	assert.True(t, visible)

	tip.hoverEnd()
	_, visible = tip.tick(t0.Add(2*delay), delay)
	assert.False(t, visible)

	// ending again is harmless
	tip.hoverEnd()
	_, visible = tip.tick(t0.Add(3*delay), delay)
	assert.False(t, visible)
}

func TestTooltip_Deadline(t *testing.T) {
	var tip tooltipState
	tip.hoverEnd()
	delay := 500 * time.Millisecond

	_, pending := tip.deadline(delay)
	assert.False(t, pending)

	t0 := time.Now()
	tip.hoverMove(3, t0)
	at, pending := tip.deadline(delay)
	assert.True(t, pending)
	assert.Equal(t, t0.Add(delay), at)

	// once visible there is nothing left to schedule
	tip.tick(t0.Add(delay), delay)
	_, pending = tip.deadline(delay)
	assert.False(t, pending)
}
