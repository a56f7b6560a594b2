// Package input polls SDL2 keyboard/window events into the snapshot the
// demo's update loop and the renderer's checkerboard phase both consume.
package input

import "github.com/veandco/go-sdl2/sdl"

// Input tracks held keys (for continuous movement/rotation) and keys
// pressed this frame (for one-shot toggles), plus the monotonically
// increasing frame counter the renderer uses for checkerboard interlacing.
type Input struct {
	counter uint64
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool
	quit    bool
}

// New returns an empty Input ready for repeated Poll calls.
func New() *Input {
	return &Input{
		held:    make(map[sdl.Scancode]bool),
		pressed: make(map[sdl.Scancode]bool),
	}
}

// Counter implements raytracer.InputSnapshot.
func (in *Input) Counter() uint64 { return in.counter }

// Poll drains the SDL2 event queue, updating held/pressed key state and the
// frame counter, and reports whether the application should keep running.
func (in *Input) Poll() bool {
	for k := range in.pressed {
		delete(in.pressed, k)
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			in.quit = true
		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				if !in.held[e.Keysym.Scancode] {
					in.pressed[e.Keysym.Scancode] = true
				}
				in.held[e.Keysym.Scancode] = true
				if e.Keysym.Sym == sdl.K_ESCAPE {
					in.quit = true
				}
			case sdl.KEYUP:
				in.held[e.Keysym.Scancode] = false
			}
		}
	}

	in.counter++
	return !in.quit
}

// Held reports whether scancode is currently held down.
func (in *Input) Held(scancode sdl.Scancode) bool { return in.held[scancode] }

// Pressed reports whether scancode transitioned from up to down this frame.
func (in *Input) Pressed(scancode sdl.Scancode) bool { return in.pressed[scancode] }
