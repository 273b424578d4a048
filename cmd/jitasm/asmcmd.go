package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/colorfulnotion/jit/asm"
	"github.com/colorfulnotion/jit/execmem"
	"github.com/colorfulnotion/jit/log"
	"github.com/docker/go-units"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

type asmFlags struct {
	format string
	output string
	watch  bool
	exec   bool
}

func newAsmCmd(o *options) *cobra.Command {
	var fl asmFlags
	cmd := &cobra.Command{
		Use:   "asm <file.s>",
		Short: "Assemble a source file",
		Long: `Assemble a source file with one instruction per line. Lines may start
with "name:" labels and carry '#' or ';' comments. Directives: .word, .half,
.align, .space and .option rvc|norvc.`,
		Example: `  jitasm asm loop.s
  jitasm asm -f bin -o loop.bin loop.s
  jitasm asm --watch loop.s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			run := func() error { return assembleFile(cmd, o, fl, path) }
			if !fl.watch {
				return run()
			}
			return watchFile(cmd.Context(), path, run, cmd.ErrOrStderr())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&fl.format, "format", "f", "listing", "output format: listing, hex or bin")
	f.StringVarP(&fl.output, "output", "o", "", "write output to this file instead of stdout")
	f.BoolVarP(&fl.watch, "watch", "w", false, "re-assemble whenever the file changes")
	f.BoolVar(&fl.exec, "exec", false, "assemble into a sealed executable mapping instead of a buffer")
	return cmd
}

func assembleFile(cmd *cobra.Command, o *options, fl asmFlags, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var (
		a *asm.Assembler
		r *execmem.Region
	)
	if fl.exec {
		size, err := o.regionSize()
		if err != nil {
			return err
		}
		if r, err = execmem.New(size, execmem.Options{Name: "jitasm"}); err != nil {
			return err
		}
		defer r.Close()
		if a, err = o.assemblerIn(r); err != nil {
			return err
		}
	} else if a, err = o.newAssembler(); err != nil {
		return err
	}

	if err := a.Assemble(bytes.NewReader(src)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := a.Finish(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Info(log.JitAsm, "assembled", "file", path, "bytes", len(a.Code()), "labels", len(a.Labels()))
	if r != nil {
		a.Cursor().Flush()
		if err := r.Seal(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "# mapped %s at %#x (dual=%v, sealed=%v)\n",
			units.BytesSize(float64(r.Size())), r.ExecAddr(), r.Dual(), r.Sealed())
	}

	w := cmd.OutOrStdout()
	if fl.output != "" {
		f, err := os.Create(fl.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return writeCode(w, a, fl.format)
}

// watchFile runs run once and again after every write to path, until ctx
// is done. The directory is watched so editors that replace the file are
// still seen.
func watchFile(ctx context.Context, path string, run func() error, errOut io.Writer) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	report := func() {
		if err := run(); err != nil {
			fmt.Fprintln(errOut, "jitasm:", err)
		}
	}
	report()
	want := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != want || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			drainEvents(w.Events)
			log.Debug(log.JitAsm, "source changed", "file", path, "op", ev.Op.String())
			report()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn(log.JitAsm, "watch error", "err", err)
		}
	}
}

// drainEvents swallows the burst of events one save produces.
func drainEvents(ch <-chan fsnotify.Event) {
	for {
		time.Sleep(10 * time.Millisecond)
		select {
		case <-ch:
		default:
			return
		}
	}
}
