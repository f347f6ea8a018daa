// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/stepslider/stepslider/widget"
)

var (
	// DefaultTrackColor is the track colour of a new SliderStyle.
	DefaultTrackColor = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	// DefaultFillColor is the fill, thumb and hover ring colour of a
	// new SliderStyle.
	DefaultFillColor = color.NRGBA{R: 0x00, G: 0xa6, B: 0xf5, A: 0xff}
)

const (
	trackHeight   = unit.Dp(8)
	thumbDiameter = unit.Dp(20)
	hoverDiameter = unit.Dp(48)
	touchHeight   = unit.Dp(40)
	caretSize     = unit.Dp(10)
	tooltipHeight = unit.Dp(30)
	tooltipPad    = unit.Dp(6)
	// hoverAlpha is the hover ring opacity, 10%.
	hoverAlpha = 0x1a
)

// SliderStyle draws a widget.Steps as a track with a fill, a thumb,
// an optional hover ring and an optional tooltip.
type SliderStyle[T any] struct {
	TrackColor      color.NRGBA
	TrackFillColor  color.NRGBA
	ThumbColor      color.NRGBA
	ThumbHoverColor color.NRGBA
	// TrackWidth fixes the track width. Zero fills the available width.
	TrackWidth unit.Dp
	// ShowHover shows a ring around the thumb while dragging.
	ShowHover bool
	// ShowTooltip shows the selected entry above the thumb while
	// dragging.
	ShowTooltip bool
	// Tooltip styles the tooltip text. Its Text is replaced by the
	// selected entry.
	Tooltip material.LabelStyle

	Steps *widget.Steps[T]
}

// Slider returns a SliderStyle with the default colours.
func Slider[T any](th *material.Theme, steps *widget.Steps[T]) SliderStyle[T] {
	return SliderStyle[T]{
		TrackColor:      DefaultTrackColor,
		TrackFillColor:  DefaultFillColor,
		ThumbColor:      DefaultFillColor,
		ThumbHoverColor: DefaultFillColor,
		ShowHover:       true,
		Tooltip:         material.Label(th, th.TextSize, ""),
		Steps:           steps,
	}
}

// Layout lays out the slider. The widget is touchHeight high with the
// track centred vertically; the tooltip is drawn above those bounds.
func (s SliderStyle[T]) Layout(gtx layout.Context) layout.Dimensions {
	width := gtx.Constraints.Max.X
	if s.TrackWidth > 0 {
		if w := gtx.Dp(s.TrackWidth); w < width {
			width = w
		}
	}
	size := gtx.Constraints.Constrain(image.Pt(width, gtx.Dp(touchHeight)))

	wgtx := gtx
	wgtx.Constraints = layout.Exact(size)
	s.Steps.Layout(wgtx)

	trackColor, fillColor, thumbColor := s.TrackColor, s.TrackFillColor, s.ThumbColor
	if !gtx.Enabled() {
		trackColor = disabled(trackColor)
		fillColor = disabled(fillColor)
		thumbColor = disabled(thumbColor)
	}

	trackH := gtx.Dp(trackHeight)
	trackTop := (size.Y - trackH) / 2
	defer op.Offset(image.Pt(0, trackTop)).Push(gtx.Ops).Pop()

	// Track, then fill on top of it.
	paint.FillShape(gtx.Ops, trackColor,
		clip.UniformRRect(image.Rectangle{Max: image.Pt(size.X, trackH)}, trackH/2).Op(gtx.Ops))
	if fill := int(s.Steps.Fill(gtx.Now) + .5); fill > 0 {
		paint.FillShape(gtx.Ops, fillColor,
			clip.UniformRRect(image.Rectangle{Max: image.Pt(fill, trackH)}, trackH/2).Op(gtx.Ops))
	}

	// Thumb, anchored so that it never leaves the left end.
	d := gtx.Dp(thumbDiameter)
	left := int(s.Steps.Thumb(gtx.Now)+.5) - d/2
	if left < 0 {
		left = 0
	}
	thumb := image.Rectangle{
		Min: image.Pt(left, trackH/2-d/2),
		Max: image.Pt(left+d, trackH/2+d/2),
	}
	thumbCentre := thumb.Min.Add(image.Pt(d/2, d/2))

	if s.ShowHover && s.Steps.Dragging() {
		hd := gtx.Dp(hoverDiameter)
		ring := image.Rectangle{
			Min: thumbCentre.Sub(image.Pt(hd/2, hd/2)),
			Max: thumbCentre.Add(image.Pt(hd/2, hd/2)),
		}
		c := s.ThumbHoverColor
		c.A = uint8(uint32(c.A) * hoverAlpha / 0xff)
		paint.FillShape(gtx.Ops, c, clip.Ellipse(ring).Op(gtx.Ops))
	}
	paint.FillShape(gtx.Ops, thumbColor, clip.Ellipse(thumb).Op(gtx.Ops))

	if s.ShowTooltip {
		if alpha := s.Steps.TooltipOpacity(gtx.Now); alpha > 0 {
			s.layoutTooltip(gtx, image.Pt(thumbCentre.X, thumb.Min.Y), alpha, trackColor)
		}
	}
	return layout.Dimensions{Size: size}
}

// layoutTooltip draws the caret with its tip at anchor and the label
// box above it.
func (s SliderStyle[T]) layoutTooltip(gtx layout.Context, anchor image.Point, alpha float32, bg color.NRGBA) {
	v, ok := s.Steps.Value()
	if !ok {
		return
	}
	defer paint.PushOpacity(gtx.Ops, alpha).Pop()

	lbl := s.Tooltip
	lbl.Text = fmt.Sprint(v)
	lgtx := gtx
	lgtx.Constraints.Min = image.Point{}
	m := op.Record(gtx.Ops)
	dims := lbl.Layout(lgtx)
	call := m.Stop()

	cs := float32(gtx.Dp(caretSize))
	tip := f32.Pt(float32(anchor.X), float32(anchor.Y))
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(tip)
	p.LineTo(tip.Add(f32.Pt(-cs/2, -cs)))
	p.LineTo(tip.Add(f32.Pt(cs/2, -cs)))
	p.Close()
	paint.FillShape(gtx.Ops, bg, clip.Outline{Path: p.End()}.Op())

	pad := gtx.Dp(tooltipPad)
	h := gtx.Dp(tooltipHeight)
	w := dims.Size.X + 2*pad
	box := image.Rectangle{
		Min: image.Pt(anchor.X-w/2, anchor.Y-int(cs)-h),
		Max: image.Pt(anchor.X+w/2, anchor.Y-int(cs)),
	}
	paint.FillShape(gtx.Ops, bg, clip.Rect(box).Op())

	textPos := image.Pt(box.Min.X+pad, box.Min.Y+(h-dims.Size.Y)/2)
	defer op.Offset(textPos).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

func disabled(c color.NRGBA) color.NRGBA {
	c.A = uint8(uint32(c.A) * 150 / 0xff)
	return c
}
