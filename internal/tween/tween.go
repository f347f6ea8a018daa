// SPDX-License-Identifier: Unlicense OR MIT

// Package tween animates scalar values over time. Values are sampled
// with the frame time of the caller; nothing here runs on its own.
package tween

import "time"

// Duration is the default length of an animation.
const Duration = 150 * time.Millisecond

// Tween is a scalar that eases from one value to another.
// The zero value is at rest at 0.
type Tween struct {
	from, to float32
	start    time.Time
	duration time.Duration
}

// Jump sets the value immediately, cancelling any animation.
func (t *Tween) Jump(v float32) {
	*t = Tween{from: v, to: v}
}

// Animate starts an animation towards to. The animation starts at the
// current value, so retargeting an animation in flight is smooth.
func (t *Tween) Animate(now time.Time, to float32, d time.Duration) {
	from := t.Value(now)
	if d <= 0 || from == to {
		t.Jump(to)
		return
	}
	*t = Tween{from: from, to: to, start: now, duration: d}
}

// Value samples the tween at now.
func (t *Tween) Value(now time.Time) float32 {
	p := t.progress(now)
	return t.from + (t.to-t.from)*easeInOutQuad(p)
}

// Target returns the value the tween settles at.
func (t *Tween) Target() float32 {
	return t.to
}

// Active reports whether the tween is still moving at now.
func (t *Tween) Active(now time.Time) bool {
	return t.progress(now) < 1
}

func (t *Tween) progress(now time.Time) float32 {
	if t.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(t.start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= t.duration {
		return 1
	}
	return float32(elapsed) / float32(t.duration)
}

func easeInOutQuad(p float32) float32 {
	if p < 0.5 {
		return 2 * p * p
	}
	p = 1 - p
	return 1 - 2*p*p
}
