package tabstrip

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMeasure sizes labels proportionally to their text so tests are
// deterministic without a text shaper.
func fixedMeasure(label TabLabel, cfg Config) image.Point {
	return image.Pt(len(label.Text)*7, 14)
}

func textTabs(titles ...string) []Tab[string] {
	tabs := make([]Tab[string], len(titles))
	for i, s := range titles {
		tabs[i] = Tab[string]{ID: s, Label: TextLabel(s)}
	}
	return tabs
}

func TestLayoutTabs_Deterministic(t *testing.T) {
	tabs := textTabs("alpha", "beta", "gamma")
	cfg := Config{TabWidth: 100, Spacing: 2, Padding: 4}.sanitized()

	a := layoutTabs(tabs, cfg, image.Pt(400, 40), true, fixedMeasure)
	b := layoutTabs(tabs, cfg, image.Pt(400, 40), true, fixedMeasure)

	assert.Equal(t, a, b)
}

func TestLayoutTabs_FixedWidth(t *testing.T) {
	tabs := textTabs("a", "b", "c")
	cfg := Config{TabWidth: 100, Spacing: 2, Padding: 4}.sanitized()

	f := layoutTabs(tabs, cfg, image.Pt(400, 40), false, fixedMeasure)

	require.Len(t, f.Tabs, 3)
	assert.Equal(t, image.Rect(4, 4, 104, 4+cfg.Height), f.Tabs[0])
	assert.Equal(t, image.Rect(106, 4, 206, 4+cfg.Height), f.Tabs[1])
	assert.Equal(t, image.Rect(208, 4, 308, 4+cfg.Height), f.Tabs[2])
	assert.Equal(t, 312, f.ContentWidth)
	assert.Empty(t, f.Close)
}

func TestLayoutTabs_ContentSized(t *testing.T) {
	tabs := textTabs("ab", "abcd")
	cfg := Config{}.sanitized()

	f := layoutTabs(tabs, cfg, image.Pt(400, 40), false, fixedMeasure)

	// measured width plus the inset on both sides
	assert.Equal(t, 2*7+2*tabInset, f.Tabs[0].Dx())
	assert.Equal(t, 4*7+2*tabInset, f.Tabs[1].Dx())
}

func TestLayoutTabs_CloseHitArea(t *testing.T) {
	tabs := textTabs("a")
	cfg := Config{TabWidth: 100, CloseSize: 16}.sanitized()

	f := layoutTabs(tabs, cfg, image.Pt(400, 40), true, fixedMeasure)

	require.Len(t, f.Close, 1)
	cs := float32(cfg.CloseSize)
	want := int(cs*closeHitScale + 0.5)
	assert.Equal(t, want, f.Close[0].Dx())
	assert.Equal(t, want, f.Close[0].Dy())
	// flush against the tab's right edge
	assert.Equal(t, f.Tabs[0].Max.X, f.Close[0].Max.X)
	assert.True(t, f.Close[0].In(f.Tabs[0]))
}

func TestFrame_TabAt(t *testing.T) {
	tabs := textTabs("a", "b")
	cfg := Config{TabWidth: 100, Spacing: 0, Padding: 0}.sanitized()
	f := layoutTabs(tabs, cfg, image.Pt(400, 40), false, fixedMeasure)

	assert.Equal(t, 0, f.TabAt(image.Pt(50, 16)))
	assert.Equal(t, 1, f.TabAt(image.Pt(150, 16)))
	assert.Equal(t, -1, f.TabAt(image.Pt(250, 16)))
	assert.Equal(t, -1, f.TabAt(image.Pt(50, 200)))
}

func TestFrame_Overflow(t *testing.T) {
	tabs := textTabs("a", "b", "c", "d", "e")
	cfg := Config{TabWidth: 100, Spacing: 0, Padding: 0}.sanitized()

	f := layoutTabs(tabs, cfg, image.Pt(400, 40), false, fixedMeasure)
	assert.True(t, f.Overflow())

	f = layoutTabs(tabs[:2], cfg, image.Pt(400, 40), false, fixedMeasure)
	assert.False(t, f.Overflow())
}

func TestFrame_DropIndex(t *testing.T) {
	// Four 100px tabs, centers at 50, 150, 250, 350.
	tabs := textTabs("a", "b", "c", "d")
	cfg := Config{TabWidth: 100, Spacing: 0, Padding: 0}.sanitized()
	f := layoutTabs(tabs, cfg, image.Pt(500, 40), false, fixedMeasure)

	testCases := []struct {
		name    string
		x       float32
		dragged int
		want    int
	}{
		{"home position", 50, 0, 0},
		{"just past own center", 60, 0, 0},
		{"over second tab", 160, 0, 1},
		{"over third tab", 260, 0, 2},
		{"past the end", 450, 0, 3},
		{"dragging last to front", 20, 3, 0},
		{"dragging last to middle", 160, 3, 2},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, f.dropIndex(tc.x, tc.dragged), tc.name)
	}
}

func TestConfig_Sanitized(t *testing.T) {
	cfg := Config{Spacing: -5, Padding: -1, TabWidth: -10, IconSpacing: -3}.sanitized()

	assert.Equal(t, 0, cfg.Spacing)
	assert.Equal(t, 0, cfg.Padding)
	assert.Equal(t, 0, cfg.TabWidth)
	assert.Equal(t, 0, cfg.IconSpacing)
	assert.Equal(t, DefaultIconSpacing, Config{}.sanitized().IconSpacing)
	assert.Equal(t, DefaultHeight, cfg.Height)
	assert.Equal(t, DefaultCloseSize, cfg.CloseSize)
	assert.Equal(t, float32(DefaultDragThreshold), cfg.DragThreshold)
	assert.Equal(t, DefaultTooltipDelay, cfg.TooltipDelay)
}
