package tabstrip

import "image/color"

// Status is a tab's interaction state for one frame, derived from the
// active selection and the hover/drag state. It is the only input the
// styling function receives.
type Status uint8

const (
	// StatusInactive is a tab that is neither active, hovered, nor dragged.
	StatusInactive Status = iota
	// StatusActive is the tab matching the active selection.
	StatusActive
	// StatusHovered is a tab under the pointer while no drag is running.
	StatusHovered
	// StatusDragging is the tab currently being drag-reordered.
	StatusDragging
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusHovered:
		return "hovered"
	case StatusDragging:
		return "dragging"
	default:
		return "inactive"
	}
}

// TabStyle is the paint for a single tab at a given Status.
type TabStyle struct {
	Background   color.NRGBA
	Text         color.NRGBA
	Icon         color.NRGBA
	CloseHover   color.NRGBA // background behind a hovered close glyph
	CornerRadius int
}

// StyleFunc resolves a Status to a TabStyle. The bar computes which
// status applies; the embedding application decides how it looks.
type StyleFunc func(Status) TabStyle

// Styles holds the full paint configuration of the bar.
type Styles struct {
	Bar         color.NRGBA
	Thumb       color.NRGBA
	TooltipBG   color.NRGBA
	TooltipText color.NRGBA
	Tab         StyleFunc
}

// DefaultStyles returns a light palette in the material range.
func DefaultStyles() Styles {
	return Styles{
		Bar:         color.NRGBA{R: 240, G: 240, B: 240, A: 255},
		Thumb:       color.NRGBA{R: 140, G: 140, B: 140, A: 200},
		TooltipBG:   color.NRGBA{R: 60, G: 60, B: 60, A: 240},
		TooltipText: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Tab: func(s Status) TabStyle {
			st := TabStyle{
				Background:   color.NRGBA{R: 240, G: 240, B: 240, A: 255},
				Text:         color.NRGBA{R: 100, G: 100, B: 100, A: 255},
				Icon:         color.NRGBA{R: 100, G: 100, B: 100, A: 255},
				CloseHover:   color.NRGBA{R: 200, G: 200, B: 200, A: 255},
				CornerRadius: 4,
			}
			switch s {
			case StatusActive:
				st.Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
				st.Text = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
				st.Icon = st.Text
			case StatusHovered:
				st.Background = color.NRGBA{R: 228, G: 228, B: 228, A: 255}
				st.Text = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
			case StatusDragging:
				st.Background = color.NRGBA{R: 255, G: 255, B: 255, A: 240}
				st.Text = color.NRGBA{R: 33, G: 150, B: 243, A: 255}
				st.Icon = st.Text
			}
			return st
		},
	}
}
