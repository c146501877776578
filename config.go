package tabstrip

import "time"

// ScrollMode controls where the scrollbar thumb appears when the tabs
// overflow the viewport. The offset math is identical in every mode.
type ScrollMode uint8

const (
	// ScrollbarFloating overlays the thumb on the bottom edge of the tabs.
	ScrollbarFloating ScrollMode = iota
	// ScrollbarBelow places the thumb in its own strip under the tabs.
	ScrollbarBelow
	// ScrollbarNone hides the thumb entirely; wheel scrolling still works.
	ScrollbarNone
)

// Defaults for the zero Config. Sizes are in pixels.
const (
	DefaultTextSize      = 16
	DefaultIconSize      = 16
	DefaultCloseSize     = 16
	DefaultHeight        = 32
	DefaultIconSpacing   = 4
	DefaultDragThreshold = 5
	DefaultTooltipDelay  = 500 * time.Millisecond

	defaultEdgeScrollMargin   = 24
	defaultEdgeScrollStep     = 8
	defaultScrollbarThickness = 8

	// closeHitScale widens the close hit area beyond the glyph so the
	// button is easier to click.
	closeHitScale = 1.3

	// tabInset is the horizontal padding inside a content-sized tab.
	tabInset = 8

	// scrollbarGap separates the tabs from a ScrollbarBelow thumb strip.
	scrollbarGap = 4
)

// Config bundles every tuning knob of the bar. It is a plain value set
// once before use. The zero value is usable: zero sizes fall back to the
// defaults above and negative values clamp to zero.
type Config struct {
	// Spacing is the gap between adjacent tabs.
	Spacing int
	// Padding surrounds the whole tab row.
	Padding int

	TextSize  int
	IconSize  int
	CloseSize int
	// IconSpacing is the gap between icon and text in IconText labels.
	IconSpacing int

	// Height is the minimum tab height; taller content wins.
	Height int
	// TabWidth fixes every tab's width. Zero sizes each tab to its content.
	TabWidth int

	IconPosition Position

	// DragThreshold is the pointer displacement, in pixels, past which a
	// press becomes a drag.
	DragThreshold float32
	// TooltipDelay is how long a hover must last before the tooltip shows.
	TooltipDelay time.Duration

	ScrollMode ScrollMode
	// EdgeScrollMargin is the distance from a viewport edge within which
	// an active drag auto-scrolls the bar.
	EdgeScrollMargin int
	// EdgeScrollStep is how far auto-scroll moves per frame tick.
	EdgeScrollStep int

	ScrollbarThickness int
}

// sanitized clamps invalid values and fills in defaults. A degraded
// layout beats refusing to render, so negative inputs become zero
// rather than errors.
func (c Config) sanitized() Config {
	if c.Spacing < 0 {
		c.Spacing = 0
	}
	if c.Padding < 0 {
		c.Padding = 0
	}
	if c.TabWidth < 0 {
		c.TabWidth = 0
	}
	if c.IconSpacing < 0 {
		c.IconSpacing = 0
	} else if c.IconSpacing == 0 {
		c.IconSpacing = DefaultIconSpacing
	}
	if c.TextSize <= 0 {
		c.TextSize = DefaultTextSize
	}
	if c.IconSize <= 0 {
		c.IconSize = DefaultIconSize
	}
	if c.CloseSize <= 0 {
		c.CloseSize = DefaultCloseSize
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.DragThreshold <= 0 {
		c.DragThreshold = DefaultDragThreshold
	}
	if c.TooltipDelay <= 0 {
		c.TooltipDelay = DefaultTooltipDelay
	}
	if c.EdgeScrollMargin <= 0 {
		c.EdgeScrollMargin = defaultEdgeScrollMargin
	}
	if c.EdgeScrollStep <= 0 {
		c.EdgeScrollStep = defaultEdgeScrollStep
	}
	if c.ScrollbarThickness <= 0 {
		c.ScrollbarThickness = defaultScrollbarThickness
	}
	return c
}
