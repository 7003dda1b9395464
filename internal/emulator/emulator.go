// Package emulator wires the CHIP-8 machine parts together and drives the
// interpreter at a fixed instruction rate.
package emulator

import (
	"context"
	"fmt"
	"time"

	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/memory"
	"github.com/retroenv/chip8emu/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

// DefaultCPUHz is the default instruction execution rate.
const DefaultCPUHz = 500

// Config contains the emulator settings.
type Config struct {
	CPUHz int          // instructions per second, DefaultCPUHz if zero
	Chip8 chip8.Config // interpreter quirk configuration
}

// Emulator owns the machine state for the lifetime of one loaded program:
// memory, display, interpreter, timers and the key vector.
type Emulator struct {
	mem    *memory.Memory
	disp   *display.Display
	timers *timer.Unit
	cpu    *chip8.CPU

	cfg       Config
	logger    *log.Logger
	keys      [chip8.KeyCount]bool
	romLoaded bool
}

// New creates an emulator with the default font loaded and no program.
func New(logger *log.Logger, cfg Config) *Emulator {
	if cfg.CPUHz <= 0 {
		cfg.CPUHz = DefaultCPUHz
	}

	mem := memory.New()
	disp := display.New()
	timers := timer.New()

	return &Emulator{
		mem:    mem,
		disp:   disp,
		timers: timers,
		cpu:    chip8.New(logger, cfg.Chip8, mem, disp, timers),
		cfg:    cfg,
		logger: logger,
	}
}

// Reset restores the machine to its power-on state: cleared memory with the
// default font, cleared display, zeroed timers and registers. The timer task
// observes the reset cleanly on its next tick.
func (e *Emulator) Reset() {
	e.mem.Clear()
	_ = e.mem.LoadFont(memory.DefaultFont[:])
	e.disp.Clear()
	e.timers.Reset()
	e.cpu.Reset()
	e.keys = [chip8.KeyCount]bool{}
	e.romLoaded = false
}

// LoadROM resets the machine and loads a program into the program region.
// On failure the machine is left in its reset state without a program.
func (e *Emulator) LoadROM(rom []byte) error {
	e.Reset()

	if err := e.mem.LoadProgram(rom); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	e.logger.Info("ROM loaded", log.Int("bytes", len(rom)))
	e.romLoaded = true
	return nil
}

// LoadFont replaces the built-in font table.
func (e *Emulator) LoadFont(font []byte) error {
	if err := e.mem.LoadFont(font); err != nil {
		return fmt.Errorf("loading font: %w", err)
	}
	return nil
}

// SetKeys replaces the key state vector. The state stays current until the
// next call.
func (e *Emulator) SetKeys(keys [chip8.KeyCount]bool) {
	e.keys = keys
}

// SetKey sets the pressed state of a single key.
func (e *Emulator) SetKey(key byte, pressed bool) {
	if int(key) < len(e.keys) {
		e.keys[key] = pressed
	}
}

// StepCycle executes one interpreter instruction against the current key
// state. It does nothing until a program is loaded.
func (e *Emulator) StepCycle() {
	if !e.romLoaded {
		return
	}
	e.cpu.Step(e.keys)
}

// Frame returns the current display contents.
func (e *Emulator) Frame() [display.Height][display.Width]bool {
	return e.disp.Frame()
}

// SoundActive reports whether the sound timer is running, meaning a tone
// should be audible.
func (e *Emulator) SoundActive() bool {
	return e.timers.Sound() > 0
}

// CyclesPerFrame returns how many instructions to execute per 60 Hz frame
// to reach the configured instruction rate.
func (e *Emulator) CyclesPerFrame() int {
	cycles := e.cfg.CPUHz / 60
	if cycles < 1 {
		cycles = 1
	}
	return cycles
}

// Run starts the timer task and executes instructions at the configured
// rate until the context is done. It is the headless counterpart of the
// windowed driver loop.
func (e *Emulator) Run(ctx context.Context) {
	go e.timers.Run(ctx)

	ticker := time.NewTicker(time.Second / time.Duration(e.cfg.CPUHz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.StepCycle()
		}
	}
}

// StartTimers runs the 60 Hz timer task in the background until the context
// is done. Used by drivers that own their own frame loop.
func (e *Emulator) StartTimers(ctx context.Context) {
	go e.timers.Run(ctx)
}
