package memory

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewLoadsDefaultFont(t *testing.T) {
	m := New()

	for i, b := range DefaultFont {
		assert.Equal(t, b, m.Read(uint16(FontStart+i)))
	}
	// glyph for 0xA starts at FontStart + 5*10
	assert.Equal(t, byte(0xF0), m.Read(FontStart+5*10))
}

func TestLoadFontInvalidSize(t *testing.T) {
	m := New()

	assert.Error(t, m.LoadFont(make([]byte, 79)))
	assert.Error(t, m.LoadFont(nil))
	assert.NoError(t, m.LoadFont(make([]byte, FontSize)))
}

func TestLoadProgram(t *testing.T) {
	m := New()
	rom := []byte{0x00, 0xE0, 0x12, 0x00}

	assert.NoError(t, m.LoadProgram(rom))
	for i, b := range rom {
		assert.Equal(t, b, m.Read(uint16(ProgramStart+i)))
	}
}

func TestLoadProgramTooLarge(t *testing.T) {
	m := New()
	m.Write(ProgramStart, 0xAA)

	rom := make([]byte, Size-ProgramStart+1)
	err := m.LoadProgram(rom)
	assert.True(t, errors.Is(err, ErrROMTooLarge))

	// prior content untouched
	assert.Equal(t, byte(0xAA), m.Read(ProgramStart))
}

func TestLoadProgramMaxSize(t *testing.T) {
	m := New()
	rom := make([]byte, Size-ProgramStart)
	rom[len(rom)-1] = 0x42

	assert.NoError(t, m.LoadProgram(rom))
	assert.Equal(t, byte(0x42), m.Read(Size-1))
}

func TestClear(t *testing.T) {
	m := New()
	m.Write(0x300, 0xFF)

	m.Clear()

	assert.Equal(t, byte(0), m.Read(0x300))
	assert.Equal(t, byte(0), m.Read(FontStart))
}

func TestReadWriteWrapAround(t *testing.T) {
	m := New()

	m.Write(Size+1, 0x55)
	assert.Equal(t, byte(0x55), m.Read(1))
	assert.Equal(t, byte(0x55), m.Read(Size+1))
}
