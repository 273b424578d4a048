package main

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/colorfulnotion/jit/emitter"
	"github.com/colorfulnotion/jit/loongarch"
	"github.com/colorfulnotion/jit/riscv"
	"github.com/spf13/cobra"
)

func newDisasmCmd(o *options) *cobra.Command {
	var words bool
	cmd := &cobra.Command{
		Use:   "disasm <file | word...>",
		Short: "Disassemble a raw code file or hex instruction words",
		Example: `  jitasm disasm code.bin
  jitasm disasm --words 00150513 0505 00008067`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var code []byte
			if words {
				var err error
				if code, err = decodeWords(args); err != nil {
					return err
				}
			} else {
				if len(args) != 1 {
					return fmt.Errorf("disasm takes one file; use --words for hex")
				}
				var err error
				if code, err = os.ReadFile(args[0]); err != nil {
					return err
				}
			}
			isa, err := o.isa()
			if err != nil {
				return err
			}
			base, err := o.baseAddr()
			if err != nil {
				return err
			}
			return emitter.WriteListing(cmd.OutOrStdout(), disassemble(isa, code, uint64(base)))
		},
	}
	cmd.Flags().BoolVar(&words, "words", false, "arguments are hex words (8 digits) or halfwords (4 digits)")
	return cmd
}

func disassemble(isa string, code []byte, pc uint64) []emitter.Line {
	if strings.HasPrefix(strings.ToLower(isa), "la") {
		return loongarch.Disassemble(code, pc)
	}
	return riscv.Disassemble(code, pc)
}

// decodeWords turns hex words, as printed by listings, into little-endian
// code bytes.
func decodeWords(args []string) ([]byte, error) {
	var code []byte
	for _, s := range args {
		s = strings.TrimPrefix(strings.ToLower(s), "0x")
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("bad word %q", s)
		}
		switch len(raw) {
		case 4:
			code = binary.LittleEndian.AppendUint32(code, binary.BigEndian.Uint32(raw))
		case 2:
			code = binary.LittleEndian.AppendUint16(code, binary.BigEndian.Uint16(raw))
		default:
			return nil, fmt.Errorf("word %q: want 4 or 8 hex digits", s)
		}
	}
	return code, nil
}
