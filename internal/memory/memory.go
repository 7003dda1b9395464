// Package memory implements the 4KB byte-addressable memory of the CHIP-8
// virtual machine, including the reserved font and program regions.
package memory

import (
	"errors"
	"fmt"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// Size is the total memory capacity in bytes.
	Size = 4096

	// FontStart is the address of the built-in font glyphs.
	FontStart = 0x050

	// FontSize is the size of the font region: 16 glyphs of 5 bytes each.
	FontSize = 80

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200
)

// ErrROMTooLarge is returned when a program does not fit into the program
// region. No memory is modified when it is returned.
var ErrROMTooLarge = errors.New("ROM size exceeds available memory")

// DefaultFont contains the standard glyphs for the hex digits 0-F,
// 5 bytes per glyph, one byte per row.
var DefaultFont = [FontSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Memory is the byte-addressable store of the virtual machine.
type Memory struct {
	data [Size]byte
}

// New returns a zeroed memory with the default font loaded.
func New() *Memory {
	m := &Memory{}
	_ = m.LoadFont(DefaultFont[:])
	return m
}

// Clear zeroes all bytes, including the font region. Callers that need the
// font afterwards have to reload it.
func (m *Memory) Clear() {
	m.data = [Size]byte{}
}

// LoadFont copies a font table into the font region. The table has to cover
// all 16 glyphs.
func (m *Memory) LoadFont(font []byte) error {
	if len(font) != FontSize {
		return fmt.Errorf("invalid font size %d, expected %d bytes", len(font), FontSize)
	}
	copy(m.data[FontStart:FontStart+FontSize], font)
	return nil
}

// LoadProgram copies a program into the program region. If the program does
// not fit, ErrROMTooLarge is returned and no bytes are written.
func (m *Memory) LoadProgram(rom []byte) error {
	if len(rom)+ProgramStart > Size {
		return fmt.Errorf("loading %d bytes at $%03X: %w", len(rom), ProgramStart, ErrROMTooLarge)
	}
	copy(m.data[ProgramStart:], rom)
	return nil
}

// Read returns the byte at the given address. Addresses are taken modulo the
// memory size, composite addresses like I+offset can exceed the address space.
func (m *Memory) Read(address uint16) byte {
	return m.data[int(address)%Size]
}

// Write sets the byte at the given address, modulo the memory size.
func (m *Memory) Write(address uint16, value byte) {
	m.data[int(address)%Size] = value
}
