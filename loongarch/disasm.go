package loongarch

import (
	"encoding/binary"
	"fmt"

	"github.com/colorfulnotion/jit/emitter"
	"golang.org/x/arch/loong64/loong64asm"
)

// Disassemble decodes code loaded at pc, one word per line. Words the
// decoder rejects are listed as .word.
func Disassemble(code []byte, pc uint64) []emitter.Line {
	var lines []emitter.Line
	for ; len(code) >= 4; code, pc = code[4:], pc+4 {
		text := fmt.Sprintf(".word %#08x", binary.LittleEndian.Uint32(code))
		if inst, err := loong64asm.Decode(code[:4]); err == nil {
			text = loong64asm.GNUSyntax(inst)
		}
		lines = append(lines, emitter.Line{Addr: pc, Bytes: code[:4], Text: text})
	}
	return lines
}

func (e *Emitter) Disassemble() []emitter.Line {
	return Disassemble(e.Code(), uint64(e.Region().ExecAddr()))
}
