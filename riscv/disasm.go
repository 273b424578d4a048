package riscv

import (
	"encoding/binary"
	"fmt"

	"github.com/colorfulnotion/jit/emitter"
	"golang.org/x/arch/riscv64/riscv64asm"
)

// Disassemble decodes code loaded at pc. Words the decoder rejects are
// listed as .word/.half so the listing stays aligned.
func Disassemble(code []byte, pc uint64) []emitter.Line {
	var lines []emitter.Line
	for len(code) >= 2 {
		size := 4
		if code[0]&3 != 3 {
			size = 2
		}
		if len(code) < size {
			break
		}
		var text string
		inst, err := riscv64asm.Decode(code[:size])
		switch {
		case err == nil && inst.Len == size:
			text = riscv64asm.GNUSyntax(inst)
		case size == 4:
			text = fmt.Sprintf(".word %#08x", binary.LittleEndian.Uint32(code))
		default:
			text = fmt.Sprintf(".half %#04x", binary.LittleEndian.Uint16(code))
		}
		lines = append(lines, emitter.Line{Addr: pc, Bytes: code[:size], Text: text})
		code = code[size:]
		pc += uint64(size)
	}
	return lines
}

// Disassemble lists everything written so far.
func (e *Emitter) Disassemble() []emitter.Line {
	return Disassemble(e.Code(), uint64(e.Region().ExecAddr()))
}
