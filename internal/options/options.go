// Package options contains the program options.
package options

// Program options of the emulator.
type Program struct {
	Input string // ROM file to run
	Font  string // optional font file replacing the built-in glyphs

	Scale    int // window scale factor
	CPUHz    int // instructions per second
	Headless bool

	Debug bool
	Quiet bool
	Trace bool

	// Quirk toggles, see the chip8 package for their semantics.
	ShiftCopy    bool
	JumpVX       bool
	IndexAdvance bool
}

// New returns options with default values.
func New() Program {
	return Program{
		Scale:     10,
		CPUHz:     500,
		ShiftCopy: true,
	}
}
