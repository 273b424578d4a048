package main

import (
	"fmt"
	"io"
	"os"

	"github.com/colorfulnotion/jit/asm"
	"github.com/dop251/goja"
	"github.com/spf13/cobra"
)

func newScriptCmd(o *options) *cobra.Command {
	var (
		expr   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "script [file.js]",
		Short: "Generate code from JavaScript",
		Long: `Run a JavaScript program that drives the assembler. Globals:
  emit(line)        assemble one line, e.g. emit("addi a0, a0, 1")
  li(reg, value)    load a constant; value is a number or a numeric string
  label(name)       define a label at the current pc
  pc()              current exec address
  print(...)        write to stdout
The code is printed once the script returns.`,
		Example: `  jitasm script gen.js
  jitasm script -e 'for (var i = 0; i < 4; i++) emit("addi a0, a0, " + i); emit("ret")'`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, src := "<expr>", expr
			switch {
			case len(args) == 1 && expr != "":
				return fmt.Errorf("give a file or -e, not both")
			case len(args) == 1:
				b, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				name, src = args[0], string(b)
			case expr == "":
				return fmt.Errorf("nothing to run")
			}
			a, err := o.newAssembler()
			if err != nil {
				return err
			}
			if err := runScript(a, name, src, cmd.OutOrStdout()); err != nil {
				return err
			}
			if err := a.Finish(); err != nil {
				return err
			}
			return writeCode(cmd.OutOrStdout(), a, format)
		},
	}
	cmd.Flags().StringVarP(&expr, "expr", "e", "", "script text")
	cmd.Flags().StringVarP(&format, "format", "f", "listing", "output format: listing, hex or bin")
	return cmd
}

// runScript executes src with the assembler bound to its globals. Assembly
// errors surface as JavaScript exceptions, so a script may catch them.
func runScript(a *asm.Assembler, name, src string, out io.Writer) error {
	vm := goja.New()
	check := func(err error) {
		if err != nil {
			panic(vm.NewGoError(err))
		}
	}
	vm.Set("emit", func(line string) { check(a.Line(line)) })
	vm.Set("label", func(name string) { check(a.Label(name)) })
	vm.Set("pc", func() int64 { return int64(a.PC()) })
	vm.Set("li", func(reg string, v goja.Value) {
		var n int64
		if s, ok := v.Export().(string); ok {
			var err error
			n, err = parseValue(s)
			check(err)
		} else {
			n = v.ToInteger()
		}
		check(a.LI(reg, n))
	})
	vm.Set("print", func(args ...goja.Value) {
		for i, arg := range args {
			if i > 0 {
				fmt.Fprint(out, " ")
			}
			fmt.Fprint(out, arg.String())
		}
		fmt.Fprintln(out)
	})
	if _, err := vm.RunScript(name, src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}
