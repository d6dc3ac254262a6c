// Package present wires a system.System to a graphics.Backend: it runs the
// frame loop, translates the PPU's RGBA frame buffer into the backend's
// window, and maps InputEvent button events onto the two controller ports.
package present

import (
	"fmt"
	"time"

	"gones/internal/config"
	"gones/internal/graphics"
	"gones/internal/system"
)

// Runner drives one system.System against one graphics.Backend window until
// told to stop.
type Runner struct {
	sys     *system.System
	cfg     *config.Config
	backend graphics.Backend
	window  graphics.Window
	video   *graphics.VideoProcessor

	p1, p2 [8]bool
}

// NewRunner creates a backend of the configured type and opens its window.
func NewRunner(sys *system.System, cfg *config.Config) (*Runner, error) {
	backend, err := graphics.CreateBackend(graphics.BackendType(cfg.Window.Backend))
	if err != nil {
		return nil, fmt.Errorf("present: create backend: %w", err)
	}

	w, h := cfg.WindowResolution()
	gfxCfg := graphics.Config{
		WindowTitle:  "gones",
		WindowWidth:  w,
		WindowHeight: h,
		VSync:        cfg.Window.VSync,
		Filter:       "nearest",
		Headless:     cfg.Window.Backend == "headless",
	}
	if err := backend.Initialize(gfxCfg); err != nil {
		return nil, fmt.Errorf("present: init backend: %w", err)
	}

	window, err := backend.CreateWindow(gfxCfg.WindowTitle, w, h)
	if err != nil {
		backend.Cleanup()
		return nil, fmt.Errorf("present: create window: %w", err)
	}

	video := graphics.NewVideoProcessor(cfg.Video.Brightness, cfg.Video.Contrast, cfg.Video.Saturation)
	return &Runner{sys: sys, cfg: cfg, backend: backend, window: window, video: video}, nil
}

// Close tears down the window and backend.
func (r *Runner) Close() error {
	if err := r.window.Cleanup(); err != nil {
		return err
	}
	return r.backend.Cleanup()
}

// nativeLoop is implemented only by *graphics.EbitengineWindow: it owns its
// own windowing event loop and must be driven through it rather than
// polled manually, so Runner detects it as an optional interface instead
// of type-asserting the concrete type.
type nativeLoop interface {
	SetEmulatorUpdateFunc(func() error)
	Run() error
}

// Run drives frames until the window reports it should close. Backends
// that own a native event loop (ebitengine) are driven through it; all
// others are pumped manually at roughly 60Hz.
func (r *Runner) Run() error {
	if nl, ok := r.window.(nativeLoop); ok {
		nl.SetEmulatorUpdateFunc(func() error {
			r.pollInput()
			r.sys.RunFrame()
			r.present()
			return nil
		})
		return nl.Run()
	}
	return r.runManual()
}

// runManual pumps PollEvents/RunFrame/RenderFrame directly, for backends
// (headless) with no event loop of their own.
func (r *Runner) runManual() error {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for !r.window.ShouldClose() {
		r.pollInput()
		r.sys.RunFrame()
		r.present()
		<-ticker.C
	}
	return nil
}

// present pushes one completed frame into the window, after the
// configured brightness/contrast/saturation adjustment. The PPU's frame
// buffer is already packed RGBA, so it flows straight through to the
// backend with no intermediate conversion.
func (r *Runner) present() {
	processed := r.video.ProcessFrame(r.sys.FrameBuffer())
	r.window.RenderFrame(processed)
	r.window.SwapBuffers()
}

// pollInput drains the backend's queued events, updating the two controller
// button states tracked for this runner.
func (r *Runner) pollInput() {
	for _, ev := range r.window.PollEvents() {
		if ev.Type != graphics.InputEventTypeButton {
			continue
		}
		if idx, port, ok := buttonSlot(ev.Button); ok {
			if port == 0 {
				r.p1[idx] = ev.Pressed
			} else {
				r.p2[idx] = ev.Pressed
			}
		}
	}
	r.sys.SetControllerButtons(0, r.p1)
	r.sys.SetControllerButtons(1, r.p2)
}

// buttonSlot maps a graphics.Button onto (bit index into input.Ports'
// A,B,Select,Start,Up,Down,Left,Right order, controller port index 0 or 1).
func buttonSlot(b graphics.Button) (idx, port int, ok bool) {
	switch b {
	case graphics.ButtonA:
		return 0, 0, true
	case graphics.ButtonB:
		return 1, 0, true
	case graphics.ButtonSelect:
		return 2, 0, true
	case graphics.ButtonStart:
		return 3, 0, true
	case graphics.ButtonUp:
		return 4, 0, true
	case graphics.ButtonDown:
		return 5, 0, true
	case graphics.ButtonLeft:
		return 6, 0, true
	case graphics.ButtonRight:
		return 7, 0, true
	case graphics.Button2A:
		return 0, 1, true
	case graphics.Button2B:
		return 1, 1, true
	case graphics.Button2Select:
		return 2, 1, true
	case graphics.Button2Start:
		return 3, 1, true
	case graphics.Button2Up:
		return 4, 1, true
	case graphics.Button2Down:
		return 5, 1, true
	case graphics.Button2Left:
		return 6, 1, true
	case graphics.Button2Right:
		return 7, 1, true
	default:
		return 0, 0, false
	}
}
