package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// instructionName resolves the assembly mnemonic for an opcode using the
// canonical CHIP-8 instruction table, for diagnostic output.
func instructionName(opcode uint16) string {
	firstNibble := (opcode & 0xF000) >> 12
	for _, op := range chip8.Opcodes[int(firstNibble)] {
		if op.Info.Mask&opcode == op.Info.Value {
			if op.Instruction == nil {
				break
			}
			return op.Instruction.Name
		}
	}
	return "???"
}
