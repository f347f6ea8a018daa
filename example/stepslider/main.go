// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program hosting a stepped slider. The entries and style come
// from a YAML file that is reloaded while the program runs.

import (
	"bytes"
	"context"
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"sync/atomic"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/gpu/headless"
	"gioui.org/io/input"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/stepslider/stepslider/config"
	"github.com/stepslider/stepslider/widget"
	stepmaterial "github.com/stepslider/stepslider/widget/material"
)

var (
	configFile = flag.String("config", "", "YAML file with the slider entries and style; reloaded on change")
	screenshot = flag.String("screenshot", "", "save a screenshot to a file and exit")
)

var background = color.NRGBA{R: 0xe1, G: 0xe7, B: 0xea, A: 0xff}

// host owns the slider and applies configurations handed over by the
// config watcher.
type host struct {
	th     *material.Theme
	steps  widget.Steps[string]
	slider stepmaterial.SliderStyle[string]
	// pending is written by the watcher goroutine and consumed by the
	// next frame.
	pending atomic.Pointer[config.Config]
}

func newHost(cfg *config.Config) *host {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	h := &host{th: th}
	h.slider = stepmaterial.Slider(th, &h.steps)
	cfg.Apply(&h.slider)
	return h
}

func main() {
	flag.Parse()
	cfg := config.Default()
	if *configFile != "" {
		c, err := config.Load(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		cfg = c
	}
	h := newHost(cfg)

	if *screenshot != "" {
		if err := saveScreenshot(h, *screenshot); err != nil {
			log.Fatalf("failed to save screenshot: %v", err)
		}
		os.Exit(0)
	}

	go func() {
		w := new(app.Window)
		w.Option(app.Title("Stepslider"), app.Size(unit.Dp(420), unit.Dp(320)))
		ctx, cancel := context.WithCancel(context.Background())
		if *configFile != "" {
			if _, err := h.watch(ctx, w, *configFile); err != nil {
				log.Fatal(err)
			}
		}
		err := h.loop(w)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// watch forwards reloaded configurations to the window until ctx is
// cancelled. The returned channel is closed when forwarding stops.
func (h *host) watch(ctx context.Context, w interface{ Invalidate() }, path string) (<-chan struct{}, error) {
	configs, errs, err := config.Watch(ctx, path)
	if err != nil {
		return nil, err
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for configs != nil || errs != nil {
			select {
			case cfg, ok := <-configs:
				if !ok {
					configs = nil
					continue
				}
				h.pending.Store(cfg)
				w.Invalidate()
			case err, ok := <-errs:
				if !ok {
					errs = nil
					continue
				}
				log.Printf("keeping previous configuration: %v", err)
			}
		}
	}()
	return done, nil
}

func (h *host) loop(w *app.Window) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			h.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (h *host) Layout(gtx layout.Context) layout.Dimensions {
	if cfg := h.pending.Swap(nil); cfg != nil {
		cfg.Apply(&h.slider)
	}
	paint.Fill(gtx.Ops, background)
	return layout.Inset{Left: 20, Right: 20}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(h.slider.Layout),
				layout.Rigid(layout.Spacer{Height: 24}.Layout),
				layout.Rigid(h.selection),
			)
		})
	})
}

func (h *host) selection(gtx layout.Context) layout.Dimensions {
	txt := "No entries"
	if v, ok := h.steps.Value(); ok {
		txt = "Selected: " + v
	}
	return material.Body1(h.th, txt).Layout(gtx)
}

func saveScreenshot(h *host, f string) error {
	const scale = 1.5
	sz := image.Point{X: 420 * scale, Y: 320 * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	defer w.Release()
	var r input.Router
	now := time.Now()
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
		Source:      r.Source(),
		Now:         now,
	}
	// Lay out once for the track geometry, then show the slider
	// mid-drag with its tooltip fully faded in.
	h.Layout(gtx)
	h.steps.Drag(float32(sz.X)/2, now)
	gtx.Ops.Reset()
	gtx.Now = now.Add(time.Second)
	h.Layout(gtx)
	if err := w.Frame(gtx.Ops); err != nil {
		return err
	}
	img := image.NewRGBA(image.Rectangle{Max: sz})
	if err := w.Screenshot(img); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return os.WriteFile(f, buf.Bytes(), 0o666)
}
