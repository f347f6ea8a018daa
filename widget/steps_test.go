// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"math"
	"testing"
	"time"

	"gioui.org/f32"
	"gioui.org/io/input"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"

	"github.com/stepslider/stepslider/widget"
)

const settle = 150 * time.Millisecond

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-2
}

type harness struct {
	r   input.Router
	gtx layout.Context
}

func newHarness(start time.Time) *harness {
	h := new(harness)
	h.gtx = layout.Context{
		Ops:         new(op.Ops),
		Source:      h.r.Source(),
		Constraints: layout.Exact(image.Pt(400, 40)),
		Now:         start,
	}
	return h
}

func (h *harness) frame(w interface {
	Layout(layout.Context) layout.Dimensions
}) {
	h.gtx.Ops.Reset()
	w.Layout(h.gtx)
	h.r.Frame(h.gtx.Ops)
}

func touch(kind pointer.Kind, x float32) pointer.Event {
	return pointer.Event{
		Source:   pointer.Touch,
		Kind:     kind,
		Position: f32.Pt(x, 20),
	}
}

func TestStepsDragAndSettle(t *testing.T) {
	start := time.Unix(1000, 0)
	h := newHarness(start)
	s := &widget.Steps[int]{Data: []int{222, 333, 4544, 555}}
	h.frame(s)

	h.r.Queue(touch(pointer.Press, 150))
	h.frame(s)
	if got := s.State(); got != widget.Dragging {
		t.Fatalf("state after press = %v, want Dragging", got)
	}
	if v, _ := s.Value(); v != 333 {
		t.Errorf("value after press at 150 = %d, want 333", v)
	}
	if got := s.Fill(h.gtx.Now); got != 150 {
		t.Errorf("fill while dragging = %v, want 150", got)
	}
	if got := s.Thumb(h.gtx.Now); got != 150 {
		t.Errorf("thumb while dragging = %v, want 150", got)
	}

	h.r.Queue(touch(pointer.Move, 399))
	h.frame(s)
	if v, _ := s.Value(); v != 555 {
		t.Errorf("value after drag to 399 = %d, want 555", v)
	}
	if got := s.Thumb(h.gtx.Now); got != 390 {
		t.Errorf("thumb near the right end = %v, want 390", got)
	}

	h.r.Queue(touch(pointer.Move, 150), touch(pointer.Release, 150))
	h.frame(s)
	if got := s.State(); got != widget.Settling {
		t.Fatalf("state after release = %v, want Settling", got)
	}
	if v, _ := s.Value(); v != 333 {
		t.Errorf("value after release at 150 = %d, want 333", v)
	}

	h.gtx.Now = start.Add(settle)
	h.frame(s)
	if got := s.State(); got != widget.Idle {
		t.Errorf("state after settling = %v, want Idle", got)
	}
	want := float32(1)/3*380 + 10
	if got := s.Thumb(h.gtx.Now); !near(got, want) {
		t.Errorf("settled thumb = %v, want %v", got, want)
	}
	if got := s.Fill(h.gtx.Now); !near(got, want) {
		t.Errorf("settled fill = %v, want %v", got, want)
	}
	if got := s.TooltipOpacity(h.gtx.Now); got != 0 {
		t.Errorf("settled tooltip opacity = %v, want 0", got)
	}
}

func TestStepsTooltipFadesIn(t *testing.T) {
	start := time.Unix(1000, 0)
	h := newHarness(start)
	s := &widget.Steps[string]{Data: []string{"a", "b", "c"}}
	h.frame(s)

	h.r.Queue(touch(pointer.Press, 10))
	h.frame(s)
	if got := s.TooltipOpacity(start); got != 0 {
		t.Errorf("tooltip opacity at press = %v, want 0", got)
	}
	if !s.Animating(start) {
		t.Error("tooltip not animating after press")
	}
	if got := s.TooltipOpacity(start.Add(settle)); got != 1 {
		t.Errorf("tooltip opacity after fade = %v, want 1", got)
	}
}

func TestStepsDisabled(t *testing.T) {
	for _, data := range [][]int{nil, {5}} {
		h := newHarness(time.Unix(1000, 0))
		s := &widget.Steps[int]{Data: data}
		h.frame(s)
		h.r.Queue(touch(pointer.Press, 150), touch(pointer.Release, 150))
		h.frame(s)
		if !s.Disabled() {
			t.Errorf("%v: not disabled", data)
		}
		if got := s.State(); got != widget.Idle {
			t.Errorf("%v: state = %v, want Idle", data, got)
		}
		if got := s.Fill(h.gtx.Now); got != 0 {
			t.Errorf("%v: fill = %v, want 0", data, got)
		}
		s.Drag(150, h.gtx.Now)
		if got := s.State(); got != widget.Idle {
			t.Errorf("%v: state after Drag = %v, want Idle", data, got)
		}
	}
	s := &widget.Steps[int]{Data: []int{5}}
	if v, ok := s.Value(); !ok || v != 5 {
		t.Errorf("Value() = %d, %v, want 5, true", v, ok)
	}
	var empty widget.Steps[int]
	if _, ok := empty.Value(); ok {
		t.Error("Value() on empty data reported ok")
	}
}

func TestStepsDataReplacedWhileDragging(t *testing.T) {
	h := newHarness(time.Unix(1000, 0))
	s := &widget.Steps[int]{Data: []int{1, 2, 3, 4}}
	h.frame(s)

	h.r.Queue(touch(pointer.Press, 350))
	h.frame(s)
	if got := s.Index(); got != 3 {
		t.Fatalf("index after press = %d, want 3", got)
	}

	s.Data = []int{10, 20, 30, 40}
	h.frame(s)
	if got := s.State(); got != widget.Idle {
		t.Errorf("state after data change = %v, want Idle", got)
	}
	if got := s.Index(); got != 0 {
		t.Errorf("index after data change = %d, want 0", got)
	}

	// The rest of the interrupted drag is ignored.
	h.r.Queue(touch(pointer.Move, 250), touch(pointer.Release, 250))
	h.frame(s)
	if got := s.State(); got != widget.Idle {
		t.Errorf("state after stale release = %v, want Idle", got)
	}
	if got := s.Index(); got != 0 {
		t.Errorf("index after stale release = %d, want 0", got)
	}

	h.r.Queue(touch(pointer.Press, 250))
	h.frame(s)
	if v, _ := s.Value(); v != 30 {
		t.Errorf("value after new press = %d, want 30", v)
	}
}

func TestStepsGeometryOffset(t *testing.T) {
	now := time.Unix(1000, 0)
	s := &widget.Steps[int]{Data: []int{222, 333, 4544, 555}}
	s.SetGeometry(400, 20, 10)

	s.Drag(170, now)
	if got := s.Index(); got != 1 {
		t.Errorf("index at 170 with offset 20 = %d, want 1", got)
	}
	if !s.Update(layout.Context{Now: now}) {
		t.Error("Update did not report the changed value")
	}
	if s.Update(layout.Context{Now: now}) {
		t.Error("Update reported a change twice")
	}

	s.Drag(-50, now)
	if got := s.Fill(now); got != 0 {
		t.Errorf("fill left of the track = %v, want 0", got)
	}
	s.Release(1000, now)
	if got := s.Index(); got != 3 {
		t.Errorf("index right of the track = %d, want 3", got)
	}
	if got := s.Thumb(now.Add(settle)); !near(got, 390) {
		t.Errorf("thumb settled at %v, want 390", got)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[widget.State]string{
		widget.Idle:     "Idle",
		widget.Dragging: "Dragging",
		widget.Settling: "Settling",
	} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", s, got, want)
		}
	}
}
