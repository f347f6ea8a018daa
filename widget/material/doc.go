// SPDX-License-Identifier: Unlicense OR MIT

// Package material draws a widget.Steps in the style of a Material
// slider.
//
// As in gioui.org/widget/material, the control is split into the
// stateful widget and the stateless drawing of it:
//
//	var steps = widget.Steps[int]{Data: []int{222, 333, 4544, 555}}
//
//	if steps.Update(gtx) {
//		v, _ := steps.Value()
//		fmt.Println("selected", v)
//	}
//	s := material.Slider(th, &steps)
//	s.ShowTooltip = true
//	s.Layout(gtx)
//
// Every option of SliderStyle has a default set by Slider; adjust the
// fields of the returned value to change the look of one slider.
package material
