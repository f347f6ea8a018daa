// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"

	"github.com/stepslider/stepslider/internal/track"
	"github.com/stepslider/stepslider/internal/tween"
)

// ThumbRadius is the margin kept free at both ends of the track so the
// thumb stays inside it when snapped.
const ThumbRadius = unit.Dp(10)

// State is the drag state of a Steps.
type State uint8

const (
	// Idle is the resting state.
	Idle State = iota
	// Dragging is reported while a pointer drags the thumb.
	Dragging
	// Settling is reported after release, while the thumb eases to
	// its snap position.
	Settling
)

// Steps is for selecting one entry of an ordered list by dragging
// along a horizontal track. The thumb follows the pointer while
// dragging and eases to the nearest entry on release.
//
// A Steps with fewer than two entries is disabled: it accepts no
// input and stays Idle.
type Steps[T any] struct {
	// Data is the list of entries. Replacing it resets the widget.
	Data []T

	drag   gesture.Drag
	geom   track.Layout
	state  State
	index  int
	lastX  float32
	change bool
	// stale is set when Data is replaced mid-drag; events of that drag
	// are ignored until the next press.
	stale bool

	fill    tween.Tween
	thumb   tween.Tween
	tooltip tween.Tween

	// Identity of Data as of the last sync.
	head *T
	size int
}

// Layout updates the widget and registers its input area. The area
// covers gtx.Constraints.Min; the track spans its full width.
func (s *Steps[T]) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Min
	s.SetGeometry(float32(size.X), 0, float32(gtx.Dp(ThumbRadius)))
	s.Update(gtx)

	if s.Animating(gtx.Now) {
		gtx.Execute(op.InvalidateCmd{})
	}
	if !s.Disabled() && gtx.Enabled() {
		defer clip.Rect(image.Rectangle{Max: size}).Push(gtx.Ops).Pop()
		pointer.CursorPointer.Add(gtx.Ops)
		s.drag.Add(gtx.Ops)
	}
	return layout.Dimensions{Size: size}
}

// Update processes pointer events and reports whether the selected
// entry changed since the last call to Update.
func (s *Steps[T]) Update(gtx layout.Context) bool {
	s.sync()
	for {
		e, ok := s.drag.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			break
		}
		if e.Kind == pointer.Press {
			s.stale = false
		}
		if s.stale {
			continue
		}
		switch e.Kind {
		case pointer.Press, pointer.Drag:
			s.Drag(e.Position.X, gtx.Now)
		case pointer.Release:
			s.Release(e.Position.X, gtx.Now)
		case pointer.Cancel:
			s.Release(s.lastX, gtx.Now)
		}
	}
	s.settle(gtx.Now)
	changed := s.change
	s.change = false
	return changed
}

// SetGeometry records the track width, the horizontal offset of its
// left edge in the coordinates passed to Drag and Release, and the
// thumb margin kept free at both ends. Layout calls it with an offset
// of zero, because pointer positions arrive in widget coordinates.
func (s *Steps[T]) SetGeometry(width, offset, margin float32) {
	s.geom = track.Layout{Width: width, Offset: offset, Margin: margin}
}

// Drag moves the thumb and fill directly to the pointer at x and
// selects the entry under it.
func (s *Steps[T]) Drag(x float32, now time.Time) {
	s.sync()
	if s.Disabled() {
		return
	}
	s.state = Dragging
	s.lastX = x
	s.setIndex(s.geom.Index(x, len(s.Data)))
	s.fill.Jump(s.geom.Clamp(x))
	s.thumb.Jump(s.geom.ThumbX(x))
	if s.tooltip.Target() != 1 {
		s.tooltip.Animate(now, 1, tween.Duration)
	}
}

// Release selects the entry under x and eases the thumb and fill to
// its snap position.
func (s *Steps[T]) Release(x float32, now time.Time) {
	s.sync()
	if s.Disabled() {
		return
	}
	s.lastX = x
	n := len(s.Data)
	i := s.geom.Index(x, n)
	s.setIndex(i)
	snap := s.geom.Snaps(n)[i]
	s.fill.Animate(now, snap, tween.Duration)
	s.thumb.Animate(now, snap, tween.Duration)
	s.tooltip.Animate(now, 0, tween.Duration)
	s.state = Settling
	s.settle(now)
}

// Disabled reports whether there are too few entries to choose from.
func (s *Steps[T]) Disabled() bool {
	return len(s.Data) <= 1
}

// State reports the drag state.
func (s *Steps[T]) State() State {
	return s.state
}

// Dragging reports whether a pointer is dragging the thumb.
func (s *Steps[T]) Dragging() bool {
	return s.state == Dragging
}

// Index returns the index of the selected entry.
func (s *Steps[T]) Index() int {
	return s.index
}

// Value returns the selected entry, or false if Data is empty.
func (s *Steps[T]) Value() (T, bool) {
	if s.index < 0 || s.index >= len(s.Data) {
		var zero T
		return zero, false
	}
	return s.Data[s.index], true
}

// Fill returns the width of the filled part of the track at now.
func (s *Steps[T]) Fill(now time.Time) float32 {
	return s.fill.Value(now)
}

// Thumb returns the horizontal centre of the thumb at now.
func (s *Steps[T]) Thumb(now time.Time) float32 {
	return s.thumb.Value(now)
}

// TooltipOpacity returns the tooltip opacity in [0, 1] at now.
func (s *Steps[T]) TooltipOpacity(now time.Time) float32 {
	return s.tooltip.Value(now)
}

// Animating reports whether any animated property is still moving.
func (s *Steps[T]) Animating(now time.Time) bool {
	return s.fill.Active(now) || s.thumb.Active(now) || s.tooltip.Active(now)
}

func (s *Steps[T]) setIndex(i int) {
	if i != s.index {
		s.index = i
		s.change = true
	}
}

func (s *Steps[T]) settle(now time.Time) {
	if s.state == Settling && !s.Animating(now) {
		s.state = Idle
	}
}

// sync resets the widget when Data was replaced since the last call.
func (s *Steps[T]) sync() {
	var head *T
	if len(s.Data) > 0 {
		head = &s.Data[0]
	}
	if head == s.head && len(s.Data) == s.size {
		return
	}
	seen := s.head != nil || s.size != 0
	s.head, s.size = head, len(s.Data)
	if !seen {
		return
	}
	if s.index != 0 {
		s.change = true
	}
	s.stale = s.state == Dragging
	s.state = Idle
	s.index = 0
	s.lastX = 0
	s.fill = tween.Tween{}
	s.thumb = tween.Tween{}
	s.tooltip = tween.Tween{}
}

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Dragging:
		return "Dragging"
	case Settling:
		return "Settling"
	default:
		panic("invalid State")
	}
}
