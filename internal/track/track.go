// SPDX-License-Identifier: Unlicense OR MIT

// Package track maps pointer positions on a horizontal track to
// discrete indices and back to pixel positions.
package track

import "math"

// Layout is the geometry of a track as of the most recent layout pass.
type Layout struct {
	// Width of the track.
	Width float32
	// Offset is the horizontal position of the track's left edge in the
	// coordinate space of the pointer positions passed to Clamp and Index.
	Offset float32
	// Margin reserved at both ends for the thumb radius.
	Margin float32
}

// Step returns the width of one bucket when a track of the given width
// is divided among n entries. It is zero when n <= 1.
func Step(n int, width float32) float32 {
	if n <= 1 {
		return 0
	}
	return width / float32(n)
}

// Clamp converts x to track coordinates and limits it to [0, Width].
func (l Layout) Clamp(x float32) float32 {
	x -= l.Offset
	if x < 0 || l.Width <= 0 {
		return 0
	}
	if x > l.Width {
		return l.Width
	}
	return x
}

// Index returns the bucket under x for a track holding n entries.
func (l Layout) Index(x float32, n int) int {
	step := Step(n, l.Width)
	if step <= 0 {
		return 0
	}
	i := int(math.Floor(float64(l.Clamp(x) / step)))
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// ThumbX returns the thumb centre for a pointer at x while dragging.
func (l Layout) ThumbX(x float32) float32 {
	x = l.Clamp(x)
	if limit := l.Width - l.Margin; x > limit {
		x = limit
	}
	return x
}

// Snap returns the position entry i of n snaps to.
func (l Layout) Snap(i, n int) float32 {
	if n <= 1 {
		return 0
	}
	if i < 0 {
		i = 0
	} else if i > n-1 {
		i = n - 1
	}
	avail := l.Width - 2*l.Margin
	return float32(i)/float32(n-1)*avail + l.Margin
}

// Snaps returns the snap position of every entry of an n-entry track.
func (l Layout) Snaps(n int) []float32 {
	if n <= 1 {
		return []float32{0}
	}
	snaps := make([]float32, n)
	for i := range snaps {
		snaps[i] = l.Snap(i, n)
	}
	return snaps
}
