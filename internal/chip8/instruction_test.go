package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeOperands(t *testing.T) {
	in := decode(0xD2A5)

	assert.Equal(t, opDraw, in.op)
	assert.Equal(t, byte(0x2), in.x)
	assert.Equal(t, byte(0xA), in.y)
	assert.Equal(t, byte(0x5), in.n)
	assert.Equal(t, byte(0xA5), in.nn)
	assert.Equal(t, uint16(0x2A5), in.nnn)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode   uint16
		expected operation
	}{
		{0x00E0, opClearScreen},
		{0x00EE, opReturn},
		{0x0123, opUnknown}, // machine code routine, not supported
		{0x1234, opJump},
		{0x2234, opCall},
		{0x3344, opSkipEqualImm},
		{0x4344, opSkipNotEqualImm},
		{0x5120, opSkipEqualReg},
		{0x5121, opUnknown},
		{0x6344, opLoadImm},
		{0x7344, opAddImm},
		{0x8120, opCopyReg},
		{0x8121, opOr},
		{0x8122, opAnd},
		{0x8123, opXor},
		{0x8124, opAddReg},
		{0x8125, opSubReg},
		{0x8126, opShiftRight},
		{0x8127, opSubReverse},
		{0x812E, opShiftLeft},
		{0x812F, opUnknown},
		{0x9120, opSkipNotEqualReg},
		{0x9121, opUnknown},
		{0xA123, opSetIndex},
		{0xB123, opJumpOffset},
		{0xC1FF, opRandom},
		{0xD125, opDraw},
		{0xE19E, opSkipKeyPressed},
		{0xE1A1, opSkipKeyNotPressed},
		{0xE1FF, opUnknown},
		{0xF107, opReadDelay},
		{0xF10A, opWaitKey},
		{0xF115, opSetDelay},
		{0xF118, opSetSound},
		{0xF11E, opAddIndex},
		{0xF129, opFontChar},
		{0xF133, opBCD},
		{0xF155, opStoreRegs},
		{0xF165, opLoadRegs},
		{0xF1FF, opUnknown},
	}

	for _, tt := range tests {
		in := decode(tt.opcode)
		assert.Equal(t, tt.expected, in.op)
	}
}

func TestInstructionName(t *testing.T) {
	assert.Equal(t, chip8.Cls.Name, instructionName(0x00E0))
	assert.Equal(t, chip8.Drw.Name, instructionName(0xD015))
	assert.Equal(t, "???", instructionName(0xFFFF))
}
