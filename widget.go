package tabstrip

import (
	"image"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/justyntemme/tabstrip/internal/debug"
)

// Gio rendering and event plumbing on top of the Bar controller.

// Measurer sizes tab labels with a material theme's text shaper. One
// Measurer serves one Bar; its metric is refreshed from the frame
// context during Layout.
type Measurer struct {
	th     *material.Theme
	metric unit.Metric
	ops    op.Ops
}

// NewMeasurer builds a Measurer for th.
func NewMeasurer(th *material.Theme) *Measurer {
	return &Measurer{th: th, metric: unit.Metric{PxPerDp: 1, PxPerSp: 1}}
}

// Measure implements MeasureFunc using the theme's shaper. The text is
// shaped into a scratch op list that is never submitted.
func (m *Measurer) Measure(label TabLabel, cfg Config) image.Point {
	hasText := label.Kind != LabelIcon && label.Text != ""
	hasIcon := label.Kind != LabelText && label.Icon != nil

	var txt image.Point
	if hasText {
		m.ops.Reset()
		gtx := layout.Context{
			Ops:         &m.ops,
			Metric:      m.metric,
			Constraints: layout.Constraints{Max: image.Pt(1e6, 1e6)},
		}
		lbl := material.Label(m.th, pxToSp(m.metric, cfg.TextSize), label.Text)
		lbl.MaxLines = 1
		txt = lbl.Layout(gtx).Size
	}
	icon := image.Pt(cfg.IconSize, cfg.IconSize)
	return labelExtent(txt, icon, cfg.IconSpacing, cfg.IconPosition, hasText, hasIcon)
}

func pxToSp(m unit.Metric, px int) unit.Sp {
	if m.PxPerSp <= 0 {
		return unit.Sp(px)
	}
	return unit.Sp(float32(px) / m.PxPerSp)
}

// labelExtent combines text and icon sizes per the icon position.
func labelExtent(txt, icon image.Point, spacing int, pos Position, hasText, hasIcon bool) image.Point {
	switch {
	case hasText && hasIcon:
		if pos.vertical() {
			return image.Pt(max(txt.X, icon.X), txt.Y+spacing+icon.Y)
		}
		return image.Pt(txt.X+spacing+icon.X, max(txt.Y, icon.Y))
	case hasIcon:
		return icon
	default:
		return txt
	}
}

// Layout processes this frame's pointer events and draws the bar. It
// returns the widget dimensions and the messages the events produced,
// in order. The bar fills the available width.
func (b *Bar[K, M]) Layout(gtx layout.Context, th *material.Theme, st Styles) (layout.Dimensions, []M) {
	if b.measure == nil {
		b.meas = NewMeasurer(th)
		b.measure = b.meas.Measure
		b.dirty = true
	}
	if b.meas != nil && b.meas.metric != gtx.Metric {
		b.meas.metric = gtx.Metric
		b.dirty = true
	}

	b.Resize(image.Pt(gtx.Constraints.Max.X, gtx.Constraints.Max.Y))

	var msgs []M
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  b,
			Kinds:   pointer.Press | pointer.Drag | pointer.Move | pointer.Release | pointer.Cancel | pointer.Leave | pointer.Scroll,
			ScrollX: pointer.ScrollRange{Min: -500, Max: 500},
			ScrollY: pointer.ScrollRange{Min: -500, Max: 500},
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if e.Buttons.Contain(pointer.ButtonPrimary) {
				if m, emitted := b.PointerDown(e.Position, gtx.Now); emitted {
					msgs = append(msgs, m)
				}
			}
		case pointer.Drag:
			// Grab so the drag keeps tracking outside the bar's bounds.
			if (b.drag.phase != dragIdle || b.scroll.thumbDrag) && e.Priority < pointer.Grabbed {
				gtx.Execute(pointer.GrabCmd{Tag: b, ID: e.PointerID})
			}
			b.PointerMove(e.Position, gtx.Now)
		case pointer.Move:
			b.PointerMove(e.Position, gtx.Now)
		case pointer.Release:
			if m, emitted := b.PointerUp(e.Position, gtx.Now); emitted {
				msgs = append(msgs, m)
			}
		case pointer.Cancel:
			b.Cancel()
		case pointer.Leave:
			b.HoverEnd()
		case pointer.Scroll:
			b.Wheel(e.Scroll)
		}
	}

	tipIndex, tipVisible := b.Tick(gtx.Now)
	if b.Dragging() {
		// Edge auto-scroll runs on frame ticks.
		gtx.Execute(op.InvalidateCmd{})
	} else if at, pending := b.TooltipDeadline(); pending {
		gtx.Execute(op.InvalidateCmd{At: at})
	}

	f := b.Frame()
	size := image.Pt(gtx.Constraints.Max.X, b.Height())

	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, b)

	paint.FillShape(gtx.Ops, st.Bar, clip.Rect{Max: image.Pt(size.X, f.BarHeight)}.Op())

	off := op.Offset(image.Pt(-int(b.scroll.offset+0.5), 0)).Push(gtx.Ops)
	dragged := -1
	for i := range b.tabs {
		if b.drag.dragging() && i == b.drag.index {
			dragged = i
			continue
		}
		b.drawTab(gtx, th, st, i)
	}
	if dragged >= 0 {
		// Drawn last so the floating tab overlays its neighbors.
		b.drawTab(gtx, th, st, dragged)
	}
	off.Pop()

	if track, hasThumb := b.thumbTrack(); hasThumb {
		thumb := b.scroll.thumbRect(track)
		rr := thumb.Dy() / 2
		paint.FillShape(gtx.Ops, st.Thumb,
			clip.RRect{Rect: thumb, NW: rr, NE: rr, SW: rr, SE: rr}.Op(gtx.Ops))
	}

	if tipVisible && tipIndex >= 0 && tipIndex < len(b.tabs) && b.tabs[tipIndex].Tooltip != "" {
		b.drawTooltip(gtx, th, st, tipIndex)
		debug.Log(debug.TIP, "tooltip visible for tab %d", tipIndex)
	}

	return layout.Dimensions{Size: size}, msgs
}

func (b *Bar[K, M]) drawTab(gtx layout.Context, th *material.Theme, st Styles, i int) {
	r := b.VisualRect(i)
	style := st.Tab(b.StatusOf(i))

	stack := op.Offset(r.Min).Push(gtx.Ops)
	defer stack.Pop()

	sz := r.Size()
	rr := style.CornerRadius
	paint.FillShape(gtx.Ops, style.Background,
		clip.RRect{Rect: image.Rectangle{Max: sz}, NW: rr, NE: rr, SW: rr, SE: rr}.Op(gtx.Ops))

	closeW := 0
	if b.cb.Close != nil {
		closeW = int(float32(b.cfg.CloseSize)*closeHitScale + 0.5)
	}
	area := image.Rect(0, 0, sz.X-closeW, sz.Y)
	b.drawLabel(gtx, th, style, b.tabs[i].Label, area)

	if b.cb.Close != nil {
		f := b.Frame()
		cr := f.Close[i].Sub(f.Tabs[i].Min)
		b.drawClose(gtx, style, cr, b.CloseHovered(i))
	}
}

// drawLabel centers the tab's content in area, icon placed per
// Config.IconPosition.
func (b *Bar[K, M]) drawLabel(gtx layout.Context, th *material.Theme, style TabStyle, label TabLabel, area image.Rectangle) {
	cfg := b.cfg
	hasText := label.Kind != LabelIcon && label.Text != ""
	hasIcon := label.Kind != LabelText && label.Icon != nil
	if !hasText && !hasIcon {
		return
	}

	var (
		txtDims image.Point
		txtCall op.CallOp
	)
	if hasText {
		macro := op.Record(gtx.Ops)
		lbl := material.Label(th, pxToSp(gtx.Metric, cfg.TextSize), label.Text)
		lbl.Color = style.Text
		lbl.MaxLines = 1
		tg := gtx
		tg.Constraints = layout.Constraints{Max: image.Pt(1e6, 1e6)}
		txtDims = lbl.Layout(tg).Size
		txtCall = macro.Stop()
	}
	iconSz := image.Pt(cfg.IconSize, cfg.IconSize)

	total := labelExtent(txtDims, iconSz, cfg.IconSpacing, cfg.IconPosition, hasText, hasIcon)
	origin := image.Pt(
		area.Min.X+(area.Dx()-total.X)/2,
		area.Min.Y+(area.Dy()-total.Y)/2,
	)
	if origin.X < area.Min.X {
		origin.X = area.Min.X
	}

	var iconPos, textPos image.Point
	switch {
	case hasText && hasIcon && cfg.IconPosition.vertical():
		iconPos = image.Pt(origin.X+(total.X-iconSz.X)/2, origin.Y)
		textPos = image.Pt(origin.X+(total.X-txtDims.X)/2, origin.Y+iconSz.Y+cfg.IconSpacing)
		if !cfg.IconPosition.iconFirst() {
			textPos.Y = origin.Y
			iconPos.Y = origin.Y + txtDims.Y + cfg.IconSpacing
		}
	case hasText && hasIcon:
		iconPos = image.Pt(origin.X, origin.Y+(total.Y-iconSz.Y)/2)
		textPos = image.Pt(origin.X+iconSz.X+cfg.IconSpacing, origin.Y+(total.Y-txtDims.Y)/2)
		if !cfg.IconPosition.iconFirst() {
			textPos.X = origin.X
			iconPos.X = origin.X + txtDims.X + cfg.IconSpacing
		}
	case hasIcon:
		iconPos = origin
	default:
		textPos = origin
	}

	if hasIcon {
		ig := gtx
		ig.Constraints = layout.Exact(iconSz)
		s := op.Offset(iconPos).Push(gtx.Ops)
		label.Icon.Layout(ig, style.Icon)
		s.Pop()
	}
	if hasText {
		s := op.Offset(textPos).Push(gtx.Ops)
		txtCall.Add(gtx.Ops)
		s.Pop()
	}
}

// drawClose paints the X glyph inside r (tab-relative). A hovered close
// gets a circular highlight behind the glyph.
func (b *Bar[K, M]) drawClose(gtx layout.Context, style TabStyle, r image.Rectangle, hovered bool) {
	if hovered {
		paint.FillShape(gtx.Ops, style.CloseHover, clip.Ellipse(r).Op(gtx.Ops))
	}

	cx := float32(r.Min.X+r.Max.X) / 2
	cy := float32(r.Min.Y+r.Max.Y) / 2
	arm := float32(b.cfg.CloseSize) / 4

	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(f32.Pt(cx-arm, cy-arm))
	p.LineTo(f32.Pt(cx+arm, cy+arm))
	p.MoveTo(f32.Pt(cx+arm, cy-arm))
	p.LineTo(f32.Pt(cx-arm, cy+arm))
	paint.FillShape(gtx.Ops, style.Text, clip.Stroke{Path: p.End(), Width: 1.5}.Op())
}

// drawTooltip draws tab i's tooltip under the bar, deferred so it
// overlays whatever the host lays out after us.
func (b *Bar[K, M]) drawTooltip(gtx layout.Context, th *material.Theme, st Styles, i int) {
	f := b.Frame()

	tg := gtx
	tg.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := layout.Inset{
		Top: unit.Dp(4), Bottom: unit.Dp(4),
		Left: unit.Dp(8), Right: unit.Dp(8),
	}.Layout(tg, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Body2(th, b.tabs[i].Tooltip)
		lbl.Color = st.TooltipText
		return lbl.Layout(gtx)
	})
	text := macro.Stop()

	r := f.Tabs[i]
	x := (r.Min.X+r.Max.X)/2 - int(b.scroll.offset+0.5) - dims.Size.X/2
	if x+dims.Size.X > f.Viewport.X {
		x = f.Viewport.X - dims.Size.X
	}
	if x < 0 {
		x = 0
	}
	pos := image.Pt(x, f.BarHeight+gtx.Dp(4))

	rec := op.Record(gtx.Ops)
	stack := op.Offset(pos).Push(gtx.Ops)
	rr := gtx.Dp(4)
	paint.FillShape(gtx.Ops, st.TooltipBG,
		clip.RRect{Rect: image.Rectangle{Max: dims.Size}, NW: rr, NE: rr, SW: rr, SE: rr}.Op(gtx.Ops))
	text.Add(gtx.Ops)
	stack.Pop()
	op.Defer(gtx.Ops, rec.Stop())
}
