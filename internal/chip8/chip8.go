// Package chip8 implements the CHIP-8 fetch-decode-execute core.
//
// The interpreter owns the program counter, the call stack, the 16 general
// registers and the index register. It pulls instructions from memory and
// mutates the display, the memory, the timers and itself. A single faulty
// instruction never aborts the run: unknown opcodes and malformed stack
// operations are logged and absorbed, keeping forward progress like the
// original hardware would.
package chip8

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroenv/chip8emu/internal/display"
	"github.com/retroenv/chip8emu/internal/memory"
	"github.com/retroenv/chip8emu/internal/timer"
	"github.com/retroenv/retrogolib/log"
)

const (
	// NumRegisters is the number of general purpose registers V0-VF.
	NumRegisters = 16

	// StackDepth is the maximum number of nested subroutine calls.
	StackDepth = 16

	// KeyCount is the number of keys of the hex keypad.
	KeyCount = 16

	// instructionSize is the size of one instruction in bytes.
	instructionSize = 2

	// flagRegister is VF, overloaded as carry/borrow/collision flag.
	flagRegister = 0xF

	// fontGlyphSize is the size of one font glyph in bytes.
	fontGlyphSize = 5
)

// Config contains the documented behavioral quirks of the interpreter.
// Each toggle is independent; the zero value selects the modern behavior
// for jumps and bulk transfers and has to be combined with DefaultConfig
// to get the original shift behavior.
type Config struct {
	// ShiftCopiesOperand makes 8XY6/8XYE copy VY into VX before shifting
	// instead of shifting VX in place.
	ShiftCopiesOperand bool

	// JumpUsesOperandRegister makes BNNN use VX instead of V0 as offset.
	JumpUsesOperandRegister bool

	// IndexAdvances leaves I advanced past the copied range after
	// FX55/FX65 bulk register transfers.
	IndexAdvances bool

	// Trace logs every executed instruction at debug level.
	Trace bool
}

// DefaultConfig returns the quirk configuration matching the reference
// interpreter: shifts copy the operand register, jumps with offset use V0
// and bulk transfers leave I unchanged.
func DefaultConfig() Config {
	return Config{
		ShiftCopiesOperand: true,
	}
}

// CPU is the interpreter state machine. It is strictly sequential, one
// instruction per Step call, with no internal concurrency.
type CPU struct {
	pc    uint16
	sp    uint8
	stack [StackDepth]uint16
	v     [NumRegisters]byte
	i     uint16

	mem    *memory.Memory
	disp   *display.Display
	timers *timer.Unit

	cfg    Config
	logger *log.Logger
	rand   *rand.Rand
}

// New returns an interpreter with the program counter seeded to the
// program region start.
func New(logger *log.Logger, cfg Config, mem *memory.Memory,
	disp *display.Display, timers *timer.Unit) *CPU {

	return &CPU{
		pc:     memory.ProgramStart,
		mem:    mem,
		disp:   disp,
		timers: timers,
		cfg:    cfg,
		logger: logger,
		rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Reset re-seeds the program counter to the program region start and zeroes
// the registers, the stack and the index register.
func (c *CPU) Reset() {
	c.pc = memory.ProgramStart
	c.sp = 0
	c.stack = [StackDepth]uint16{}
	c.v = [NumRegisters]byte{}
	c.i = 0
}

// Step executes one instruction against the given key state. It returns
// false if the program counter did not advance because a wait-for-key
// instruction found no pressed key; the same instruction executes again on
// the next call. Pacing is left to the caller.
func (c *CPU) Step(keys [KeyCount]bool) bool {
	opcode := uint16(c.mem.Read(c.pc))<<8 | uint16(c.mem.Read(c.pc+1))
	in := decode(opcode)

	if c.cfg.Trace {
		c.logger.Debug("executing instruction",
			log.String("name", instructionName(opcode)),
			log.String("opcode", fmt.Sprintf("0x%04X", opcode)),
			log.String("pc", fmt.Sprintf("0x%04X", c.pc)),
		)
	}

	return c.execute(in, opcode, keys)
}

// execute runs one decoded instruction. Control flow instructions set the
// program counter directly and return early, every other instruction falls
// through to the generic advance at the end.
func (c *CPU) execute(in instruction, opcode uint16, keys [KeyCount]bool) bool {
	switch in.op {
	case opJump:
		c.pc = in.nnn
		return true

	case opJumpOffset:
		offset := c.v[0]
		if c.cfg.JumpUsesOperandRegister {
			offset = c.v[in.x]
		}
		c.pc = in.nnn + uint16(offset)
		return true

	case opCall:
		if c.sp >= StackDepth {
			c.logger.Warn("stack overflow, call ignored",
				log.String("pc", fmt.Sprintf("0x%04X", c.pc)))
			break
		}
		c.stack[c.sp] = c.pc + instructionSize
		c.sp++
		c.pc = in.nnn
		return true

	case opReturn:
		if c.sp == 0 {
			c.logger.Warn("stack underflow, return ignored",
				log.String("pc", fmt.Sprintf("0x%04X", c.pc)))
			break
		}
		c.sp--
		c.pc = c.stack[c.sp]
		return true

	case opWaitKey:
		key, ok := lowestPressedKey(keys)
		if !ok {
			return false
		}
		c.v[in.x] = key

	case opClearScreen:
		c.disp.Clear()

	case opSkipEqualImm:
		if c.v[in.x] == in.nn {
			c.pc += instructionSize
		}

	case opSkipNotEqualImm:
		if c.v[in.x] != in.nn {
			c.pc += instructionSize
		}

	case opSkipEqualReg:
		if c.v[in.x] == c.v[in.y] {
			c.pc += instructionSize
		}

	case opSkipNotEqualReg:
		if c.v[in.x] != c.v[in.y] {
			c.pc += instructionSize
		}

	case opLoadImm:
		c.v[in.x] = in.nn

	case opAddImm:
		c.v[in.x] += in.nn

	case opCopyReg:
		c.v[in.x] = c.v[in.y]

	case opOr:
		c.v[in.x] |= c.v[in.y]

	case opAnd:
		c.v[in.x] &= c.v[in.y]

	case opXor:
		c.v[in.x] ^= c.v[in.y]

	case opAddReg:
		sum := uint16(c.v[in.x]) + uint16(c.v[in.y])
		c.v[in.x] = byte(sum)
		c.v[flagRegister] = 0
		if sum > 0xFF {
			c.v[flagRegister] = 1
		}

	case opSubReg:
		noBorrow := c.v[in.x] >= c.v[in.y]
		c.v[in.x] -= c.v[in.y]
		c.v[flagRegister] = 0
		if noBorrow {
			c.v[flagRegister] = 1
		}

	case opSubReverse:
		noBorrow := c.v[in.y] >= c.v[in.x]
		c.v[in.x] = c.v[in.y] - c.v[in.x]
		c.v[flagRegister] = 0
		if noBorrow {
			c.v[flagRegister] = 1
		}

	case opShiftRight:
		value := c.v[in.x]
		if c.cfg.ShiftCopiesOperand {
			value = c.v[in.y]
		}
		c.v[in.x] = value >> 1
		c.v[flagRegister] = value & 0x01

	case opShiftLeft:
		value := c.v[in.x]
		if c.cfg.ShiftCopiesOperand {
			value = c.v[in.y]
		}
		c.v[in.x] = value << 1
		c.v[flagRegister] = value >> 7

	case opSetIndex:
		c.i = in.nnn

	case opRandom:
		c.v[in.x] = byte(c.rand.Intn(256)) & in.nn

	case opDraw:
		sprite := make([]byte, in.n)
		for k := range sprite {
			sprite[k] = c.mem.Read(c.i + uint16(k))
		}
		c.v[flagRegister] = 0
		if c.disp.DrawSprite(c.v[in.x], c.v[in.y], sprite) {
			c.v[flagRegister] = 1
		}

	case opSkipKeyPressed:
		if keys[c.v[in.x]&0x0F] {
			c.pc += instructionSize
		}

	case opSkipKeyNotPressed:
		if !keys[c.v[in.x]&0x0F] {
			c.pc += instructionSize
		}

	case opReadDelay:
		c.v[in.x] = c.timers.Delay()

	case opSetDelay:
		c.timers.SetDelay(c.v[in.x])

	case opSetSound:
		c.timers.SetSound(c.v[in.x])

	case opAddIndex:
		c.i += uint16(c.v[in.x])

	case opFontChar:
		c.i = memory.FontStart + fontGlyphSize*uint16(c.v[in.x])

	case opBCD:
		value := c.v[in.x]
		c.mem.Write(c.i, value/100)
		c.mem.Write(c.i+1, (value/10)%10)
		c.mem.Write(c.i+2, value%10)

	case opStoreRegs:
		for k := uint16(0); k <= uint16(in.x); k++ {
			c.mem.Write(c.i+k, c.v[k])
		}
		if c.cfg.IndexAdvances {
			c.i += uint16(in.x) + 1
		}

	case opLoadRegs:
		for k := uint16(0); k <= uint16(in.x); k++ {
			c.v[k] = c.mem.Read(c.i + k)
		}
		if c.cfg.IndexAdvances {
			c.i += uint16(in.x) + 1
		}

	case opUnknown:
		c.logger.Warn("unknown opcode",
			log.String("opcode", fmt.Sprintf("0x%04X", opcode)),
			log.String("pc", fmt.Sprintf("0x%04X", c.pc)),
		)
	}

	c.pc += instructionSize
	return true
}

// lowestPressedKey returns the lowest-indexed pressed key.
func lowestPressedKey(keys [KeyCount]bool) (byte, bool) {
	for i, pressed := range keys {
		if pressed {
			return byte(i), true
		}
	}
	return 0, false
}
