package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/colorfulnotion/jit/asm"
	"github.com/colorfulnotion/jit/emitter"
	"github.com/spf13/cobra"
)

func newEncodeCmd(o *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "encode <instruction>...",
		Short: "Encode instructions given on the command line, one per argument",
		Example: `  jitasm encode "addi a0, a0, 1" ret
  jitasm --caps la464 encode "add.d a0, a1, a2"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := o.newAssembler()
			if err != nil {
				return err
			}
			if err := a.AssembleString(strings.Join(args, "\n")); err != nil {
				return err
			}
			return writeCode(cmd.OutOrStdout(), a, format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "listing", "output format: listing, hex or bin")
	return cmd
}

func newLICmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "li <reg> <value>...",
		Short: "Show the sequence that materializes each value",
		Example: `  jitasm li a0 0x12345678 -1
  jitasm --arch loongarch li t0 0xdeadbeefcafe`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, s := range args[1:] {
				v, err := parseValue(s)
				if err != nil {
					return err
				}
				a, err := o.newAssembler()
				if err != nil {
					return err
				}
				if err := a.LI(args[0], v); err != nil {
					return err
				}
				lines := a.Disassemble()
				fmt.Fprintf(out, "# li %s, %#x  (%d instructions, %d bytes)\n", args[0], uint64(v), len(lines), len(a.Code()))
				if err := emitter.WriteListing(out, lines); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// writeCode prints the assembled code as a listing, as little-endian hex
// words or as raw bytes.
func writeCode(w io.Writer, a *asm.Assembler, format string) error {
	switch format {
	case "listing":
		return emitter.WriteListing(w, a.Disassemble())
	case "hex":
		for _, l := range a.Disassemble() {
			if _, err := fmt.Fprintln(w, l.Word()); err != nil {
				return err
			}
		}
		return nil
	case "bin":
		_, err := w.Write(a.Code())
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}
