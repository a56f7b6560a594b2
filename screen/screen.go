// Package screen wraps an SDL2 window and surface as a raytracer.PixelTarget.
package screen

import (
	"fmt"
	"image/color"

	"github.com/gorender/raytracer/colour"
	"github.com/veandco/go-sdl2/sdl"
)

// FPS is the target frame rate; MsPerFrame is the per-frame budget derived
// from it, used by the caller's main loop to pace sdl.Delay.
const (
	FPS        uint32 = 30
	MsPerFrame uint32 = 1000 / FPS
)

// Screen owns an SDL2 window and its backing surface, and implements
// raytracer.PixelTarget by writing directly into that surface.
type Screen struct {
	window  *sdl.Window
	surface *sdl.Surface
}

// Open initializes SDL2's video subsystem and creates a name-titled window
// of the given size, and switches the mouse into SDL2's relative motion
// mode. Mouse motion events are not read by input.Poll.
func Open(name string, width, height int) (*Screen, error) {
	complete := false

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, err
	}
	defer func() {
		if !complete {
			sdl.Quit()
		}
	}()

	window, err := sdl.CreateWindow(name, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, err
	}
	defer func() {
		if !complete {
			window.Destroy()
		}
	}()

	surface, err := window.GetSurface()
	if err != nil {
		return nil, err
	}

	if sdl.SetRelativeMouseMode(true) != 0 {
		return nil, fmt.Errorf("screen: relative mouse mode is not supported")
	}

	complete = true
	return &Screen{window: window, surface: surface}, nil
}

// Close destroys the window and shuts down SDL2.
func (s *Screen) Close() {
	s.window.Destroy()
	sdl.Quit()
}

// Width implements raytracer.PixelTarget.
func (s *Screen) Width() int { return int(s.surface.W) }

// Height implements raytracer.PixelTarget.
func (s *Screen) Height() int { return int(s.surface.H) }

// Set implements raytracer.PixelTarget. Out-of-range writes are silently
// dropped, per the pixel target contract.
func (s *Screen) Set(x, y int, c colour.RGBA8) {
	if x < 0 || y < 0 || x >= int(s.surface.W) || y >= int(s.surface.H) {
		return
	}
	s.surface.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// Present blits the surface onto the window.
func (s *Screen) Present() {
	s.window.UpdateSurface()
}
