// Package pixel is the host adapter: it owns the pixelgl window, polls
// physical key state through the fixed CHIP-8 keypad mapping, and renders
// a VM's framebuffer as an immediate-mode grid of rectangles. None of the
// interpreter's core state lives here -- this package only ever reads a
// chip8.VM through its exported accessors (Framebuffer, SetKey), matching
// the "VM state is exclusively owned by the interpreter" rule.
package pixel

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/gochippy/chippy/internal/chip8"
	"golang.org/x/image/colornames"
)

const (
	gridWidth  float64 = chip8.DisplayWidth
	gridHeight float64 = chip8.DisplayHeight
)

// KeyMap maps the fixed CHIP-8 pad key (0x0-0xF) to the physical key that
// drives it:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
//
// X maps to pad key 0; see DESIGN.md for why this variant was chosen over
// the alternative seen in some source trees.
var KeyMap = map[byte]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Palette picks the foreground/background swatches used to draw a frame.
// The default mirrors a classic monochrome CRT; Amber approximates a phosphor
// display, a look several CHIP-8 emulators in the wild expose as an option.
type Palette struct {
	Background pixel.RGBA
	Foreground pixel.RGBA
}

// DefaultPalette renders on pixels as white on a black field.
var DefaultPalette = Palette{
	Background: pixel.ToRGBA(colornames.Black),
	Foreground: pixel.ToRGBA(colornames.White),
}

// AmberPalette renders on pixels in an amber-phosphor tone.
var AmberPalette = Palette{
	Background: pixel.ToRGBA(colornames.Black),
	Foreground: pixel.ToRGBA(colornames.Orange),
}

// Window wraps a pixelgl window at a given integer pixel scale and renders
// chip8 framebuffers into it.
type Window struct {
	*pixelgl.Window
	scale   float64
	palette Palette
	imDraw  *imdraw.IMDraw
}

// NewWindow creates and shows a pixelgl window sized to the CHIP-8 grid at
// the given per-pixel scale factor.
func NewWindow(title string, scale int, palette Palette) (*Window, error) {
	if scale <= 0 {
		scale = 16
	}
	cfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: pixel.R(0, 0, gridWidth*float64(scale), gridHeight*float64(scale)),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("pixel: error creating window: %w", err)
	}
	return &Window{
		Window:  w,
		scale:   float64(scale),
		palette: palette,
		imDraw:  imdraw.New(nil),
	}, nil
}

// DrawGraphics renders a 64x32 monochrome framebuffer, origin top-left, by
// pushing one rectangle per on pixel.
func (w *Window) DrawGraphics(fb [chip8.DisplayWidth * chip8.DisplayHeight]byte) {
	w.Clear(w.palette.Background)

	w.imDraw.Clear()
	w.imDraw.Color = w.palette.Foreground

	for row := 0; row < chip8.DisplayHeight; row++ {
		for col := 0; col < chip8.DisplayWidth; col++ {
			if fb[row*chip8.DisplayWidth+col] == 0 {
				continue
			}
			// Flip row order: CHIP-8's origin is top-left, pixelgl's is
			// bottom-left.
			screenRow := float64(chip8.DisplayHeight-1-row) * w.scale
			screenCol := float64(col) * w.scale
			w.imDraw.Push(pixel.V(screenCol, screenRow))
			w.imDraw.Push(pixel.V(screenCol+w.scale, screenRow+w.scale))
			w.imDraw.Rectangle(0)
		}
	}

	w.imDraw.Draw(w)
	w.Update()
}

// PollInput reads the current physical key state for every mapped key and
// forwards press/release transitions into vm's keypad. Unmapped physical
// keys are never observed because KeyMap only names the 16 pad keys.
func (w *Window) PollInput(vm *chip8.VM) {
	for pad, button := range KeyMap {
		switch {
		case w.JustPressed(button):
			vm.SetKey(pad, true)
		case w.JustReleased(button):
			vm.SetKey(pad, false)
		}
	}
}
