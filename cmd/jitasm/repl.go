package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/colorfulnotion/jit/asm"
	"github.com/colorfulnotion/jit/emitter"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const replHelp = `Type instructions or labels one line at a time. Commands:
  :list     listing of everything assembled
  :labels   defined labels
  :reset    start over at --base
  :quit     leave (also Ctrl-D)`

func newReplCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Assemble interactively, one line at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			isa, err := o.isa()
			if err != nil {
				return err
			}
			s, err := newReplSession(o)
			if err != nil {
				return err
			}
			var items []readline.PrefixCompleterInterface
			for _, mn := range mnemonics(isa) {
				items = append(items, readline.PcItem(mn))
			}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:          isa + "> ",
				HistoryFile:     filepath.Join(os.TempDir(), "jitasm_history.txt"),
				AutoComplete:    readline.NewPrefixCompleter(items...),
				InterruptPrompt: "^C",
				EOFPrompt:       ":quit",
			})
			if err != nil {
				return err
			}
			defer rl.Close()

			out := rl.Stdout()
			fmt.Fprintln(out, replHelp)
			for {
				line, err := rl.Readline()
				if err == readline.ErrInterrupt {
					continue
				}
				if err != nil {
					break
				}
				if s.exec(line, out) {
					break
				}
			}
			if err := s.a.Finish(); err != nil {
				fmt.Fprintln(out, "warning:", err)
			}
			return nil
		},
	}
}

// replSession holds the assembler behind an interactive session.
type replSession struct {
	o *options
	a *asm.Assembler
}

func newReplSession(o *options) (*replSession, error) {
	a, err := o.newAssembler()
	if err != nil {
		return nil, err
	}
	return &replSession{o: o, a: a}, nil
}

// exec runs one input line and reports whether the session should end.
func (s *replSession) exec(line string, out io.Writer) bool {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return false
	case ":quit", ":q", "exit":
		return true
	case ":help":
		fmt.Fprintln(out, replHelp)
		return false
	case ":list":
		emitter.WriteListing(out, s.a.Disassemble())
		return false
	case ":labels":
		labels := s.a.Labels()
		names := maps.Keys(labels)
		slices.Sort(names)
		for _, n := range names {
			fmt.Fprintf(out, "%-16s %#x\n", n, labels[n])
		}
		return false
	case ":reset":
		a, err := s.o.newAssembler()
		if err != nil {
			fmt.Fprintln(out, "error:", err)
			return false
		}
		s.a = a
		return false
	}

	c := s.a.Cursor()
	before := c.Offset()
	if err := s.a.Line(line); err != nil {
		fmt.Fprintln(out, "error:", err)
		return false
	}
	// Show only what this line added; patched forward branches appear
	// through :list.
	code := c.Code()[before:]
	pc := uint64(c.CodePtrFromWritableOffset(before))
	emitter.WriteListing(out, disassemble(s.a.ISA(), code, pc))
	return false
}
