// Package loader handles ROM and font file loading operations.
package loader

import (
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/memory"
	"github.com/retroenv/chip8emu/internal/options"
)

// Loader reads ROM and font files from disk.
type Loader struct{}

// New creates a new file loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file and the optional font file named in the options.
// ROM files are raw byte streams without header or magic number. The font
// is nil if no font file was given, letting the machine keep its built-in
// glyph table.
func (l *Loader) Load(opts options.Program) (rom []byte, font []byte, err error) {
	rom, err = os.ReadFile(opts.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("reading ROM file %s: %w", opts.Input, err)
	}
	if len(rom)+memory.ProgramStart > memory.Size {
		return nil, nil, fmt.Errorf("ROM file %s has %d bytes: %w",
			opts.Input, len(rom), memory.ErrROMTooLarge)
	}

	if opts.Font == "" {
		return rom, nil, nil
	}

	font, err = os.ReadFile(opts.Font)
	if err != nil {
		return nil, nil, fmt.Errorf("reading font file %s: %w", opts.Font, err)
	}
	if len(font) != memory.FontSize {
		return nil, nil, fmt.Errorf("font file %s has %d bytes, expected %d",
			opts.Font, len(font), memory.FontSize)
	}

	return rom, font, nil
}
