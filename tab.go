// Package tabstrip implements a horizontal bar of selectable, closable,
// reorderable, scrollable tabs for Gio.
//
// The interaction logic (hit testing, scroll clamping, the drag-reorder
// state machine, the tooltip delay) lives in a plain controller, Bar,
// that consumes pointer/wheel/clock events and produces at most one
// host message per event. Bar.Layout renders the controller as a Gio
// widget on top of that.
package tabstrip

import "gioui.org/widget"

// LabelKind selects which payload of a TabLabel is populated.
type LabelKind uint8

const (
	// LabelText shows only the tab title.
	LabelText LabelKind = iota
	// LabelIcon shows only an icon.
	LabelIcon
	// LabelIconText shows an icon alongside the title.
	LabelIconText
)

// Position places the icon relative to the text. It only matters for
// LabelIconText labels.
type Position uint8

const (
	// PositionLeft puts the icon left of the text, the default.
	PositionLeft Position = iota
	// PositionTop puts the icon above the text.
	PositionTop
	// PositionRight puts the icon right of the text.
	PositionRight
	// PositionBottom puts the icon below the text.
	PositionBottom
)

// vertical reports whether icon and text stack vertically.
func (p Position) vertical() bool {
	return p == PositionTop || p == PositionBottom
}

// iconFirst reports whether the icon comes before the text in
// layout order.
func (p Position) iconFirst() bool {
	return p == PositionLeft || p == PositionTop
}

// TabLabel is the content displayed on a tab: text, an icon, or both.
type TabLabel struct {
	Kind LabelKind
	Text string
	Icon *widget.Icon
}

// TextLabel returns a text-only label.
func TextLabel(text string) TabLabel {
	return TabLabel{Kind: LabelText, Text: text}
}

// IconLabel returns an icon-only label.
func IconLabel(icon *widget.Icon) TabLabel {
	return TabLabel{Kind: LabelIcon, Icon: icon}
}

// IconTextLabel returns a label with an icon next to the text. The
// icon's placement comes from Config.IconPosition.
func IconTextLabel(icon *widget.Icon, text string) TabLabel {
	return TabLabel{Kind: LabelIconText, Icon: icon, Text: text}
}

// Tab is one selectable unit in the bar. IDs are caller-supplied and
// must be unique among the tabs currently present; a Tooltip of "" means
// the tab never shows a tooltip.
type Tab[K comparable] struct {
	ID      K
	Label   TabLabel
	Tooltip string
}
