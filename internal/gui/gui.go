// Package gui renders the emulator display in a window and feeds keyboard
// state into the machine.
package gui

import (
	"context"
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/emulator"
)

// frameRate is the display refresh and key sampling rate.
const frameRate = 60

// keyMap maps keyboard keys to the hex keypad layout:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   q w e r
//	7 8 9 E        a s d f
//	A 0 B F        z x c v
var keyMap = map[pixelgl.Button]byte{
	pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5, pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
	pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8, pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
	pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0, pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,
}

// Run opens the window and drives the emulator until the window is closed
// or the context is done. It has to be called from the main thread, wrapped
// in pixelgl.Run.
func Run(ctx context.Context, emu *emulator.Emulator, scale int) error {
	cfg := pixelgl.WindowConfig{
		Title: "chip8emu",
		Bounds: pixel.R(0, 0,
			float64(display.Width*scale), float64(display.Height*scale)),
		VSync: true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}

	emu.StartTimers(ctx)

	imd := imdraw.New(nil)
	cyclesPerFrame := emu.CyclesPerFrame()
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	for !win.Closed() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		emu.SetKeys(readKeys(win))

		for i := 0; i < cyclesPerFrame; i++ {
			emu.StepCycle()
		}

		drawFrame(win, imd, emu.Frame(), scale)
		win.Update()

		<-ticker.C
	}
	return nil
}

// readKeys samples the keyboard into a key state vector.
func readKeys(win *pixelgl.Window) [chip8.KeyCount]bool {
	var keys [chip8.KeyCount]bool
	for key, pad := range keyMap {
		keys[pad] = win.Pressed(key)
	}
	return keys
}

// drawFrame renders the pixel grid as filled rectangles. The grid origin is
// the top left corner, the window origin the bottom left.
func drawFrame(win *pixelgl.Window, imd *imdraw.IMDraw,
	frame [display.Height][display.Width]bool, scale int) {

	win.Clear(colornames.Black)
	imd.Clear()

	for y := 0; y < display.Height; y++ {
		for x := 0; x < display.Width; x++ {
			if !frame[y][x] {
				continue
			}
			imd.Color = colornames.White
			imd.Push(
				pixel.V(float64(x*scale), float64((display.Height-1-y)*scale)),
				pixel.V(float64((x+1)*scale), float64((display.Height-y)*scale)),
			)
			imd.Rectangle(0)
		}
	}

	imd.Draw(win)
}
