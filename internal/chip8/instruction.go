package chip8

// operation identifies one instruction family of the CHIP-8 instruction set.
// Decoding produces a closed set of operations so that execution can use an
// exhaustive switch instead of matching raw opcode patterns a second time.
type operation uint8

const (
	opUnknown operation = iota
	opClearScreen
	opReturn
	opJump
	opCall
	opSkipEqualImm
	opSkipNotEqualImm
	opSkipEqualReg
	opSkipNotEqualReg
	opLoadImm
	opAddImm
	opCopyReg
	opOr
	opAnd
	opXor
	opAddReg
	opSubReg
	opSubReverse
	opShiftRight
	opShiftLeft
	opSetIndex
	opJumpOffset
	opRandom
	opDraw
	opSkipKeyPressed
	opSkipKeyNotPressed
	opReadDelay
	opWaitKey
	opSetDelay
	opSetSound
	opAddIndex
	opFontChar
	opBCD
	opStoreRegs
	opLoadRegs
)

// instruction is the decoded form of one 16-bit opcode. The operand fields
// are the conventional nibble interpretations: x and y select registers,
// n is the low nibble, nn the low byte and nnn the low 12 bits.
type instruction struct {
	op  operation
	x   byte
	y   byte
	n   byte
	nn  byte
	nnn uint16
}

// decode splits an opcode into its nibble fields and selects the operation.
// Opcodes that match no known pattern decode to opUnknown.
func decode(opcode uint16) instruction {
	in := instruction{
		x:   byte(opcode>>8) & 0x0F,
		y:   byte(opcode>>4) & 0x0F,
		n:   byte(opcode) & 0x0F,
		nn:  byte(opcode),
		nnn: opcode & 0x0FFF,
	}

	switch opcode & 0xF000 {
	case 0x0000:
		switch opcode {
		case 0x00E0:
			in.op = opClearScreen
		case 0x00EE:
			in.op = opReturn
		}

	case 0x1000:
		in.op = opJump

	case 0x2000:
		in.op = opCall

	case 0x3000:
		in.op = opSkipEqualImm

	case 0x4000:
		in.op = opSkipNotEqualImm

	case 0x5000:
		if in.n == 0 {
			in.op = opSkipEqualReg
		}

	case 0x6000:
		in.op = opLoadImm

	case 0x7000:
		in.op = opAddImm

	case 0x8000:
		switch in.n {
		case 0x0:
			in.op = opCopyReg
		case 0x1:
			in.op = opOr
		case 0x2:
			in.op = opAnd
		case 0x3:
			in.op = opXor
		case 0x4:
			in.op = opAddReg
		case 0x5:
			in.op = opSubReg
		case 0x6:
			in.op = opShiftRight
		case 0x7:
			in.op = opSubReverse
		case 0xE:
			in.op = opShiftLeft
		}

	case 0x9000:
		if in.n == 0 {
			in.op = opSkipNotEqualReg
		}

	case 0xA000:
		in.op = opSetIndex

	case 0xB000:
		in.op = opJumpOffset

	case 0xC000:
		in.op = opRandom

	case 0xD000:
		in.op = opDraw

	case 0xE000:
		switch in.nn {
		case 0x9E:
			in.op = opSkipKeyPressed
		case 0xA1:
			in.op = opSkipKeyNotPressed
		}

	case 0xF000:
		switch in.nn {
		case 0x07:
			in.op = opReadDelay
		case 0x0A:
			in.op = opWaitKey
		case 0x15:
			in.op = opSetDelay
		case 0x18:
			in.op = opSetSound
		case 0x1E:
			in.op = opAddIndex
		case 0x29:
			in.op = opFontChar
		case 0x33:
			in.op = opBCD
		case 0x55:
			in.op = opStoreRegs
		case 0x65:
			in.op = opLoadRegs
		}
	}

	return in
}
