// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the state of a stepped slider. Steps holds
// the entries, processes pointer events and animates the fill, thumb
// and tooltip; package widget/material draws it.
package widget
