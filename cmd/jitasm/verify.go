package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colorfulnotion/jit/asm"
	"github.com/colorfulnotion/jit/log"
	"github.com/spf13/cobra"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Vector is one expected encoding: the source lines assembled at base
// under isa, and either the words they produce (listing hex, 8 digits per
// 32-bit word and 4 per compressed one) or an error substring.
type Vector struct {
	Name  string   `json:"name,omitempty"`
	ISA   string   `json:"isa,omitempty"`
	Base  string   `json:"base,omitempty"`
	Src   []string `json:"src"`
	Words []string `json:"words,omitempty"`
	Error string   `json:"error,omitempty"`
}

func newVerifyCmd(o *options) *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "verify <vectors.json>...",
		Short: "Check encodings against JSON vector files and diff mismatches",
		Long: `Each file holds an array of vectors:
  [{"name": "addi", "isa": "rv64gc", "src": ["addi a0, a0, 1"], "words": ["00150513"]}]
isa and base default to the global flags. A vector with "error" expects
assembly to fail with a message containing it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			total, failed := 0, 0
			for _, path := range args {
				vecs, err := readVectors(path)
				if err != nil {
					return err
				}
				for i, v := range vecs {
					total++
					got := o.runVector(v)
					ok, diff, err := compareVectors(v, got, color)
					if err != nil {
						return fmt.Errorf("%s[%d]: %w", path, i, err)
					}
					if ok {
						continue
					}
					failed++
					fmt.Fprintf(out, "FAIL %s[%d] %s\n%s\n", path, i, v.Name, diff)
				}
			}
			log.Info(log.JitAsm, "verify done", "vectors", total, "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d vectors differ", failed, total)
			}
			fmt.Fprintf(out, "ok %d vectors\n", total)
			return nil
		},
	}
	cmd.Flags().BoolVar(&color, "diff-color", false, "color the diff output")
	return cmd
}

func readVectors(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeVectors(f)
}

func decodeVectors(r io.Reader) ([]Vector, error) {
	var vecs []Vector
	if err := json.NewDecoder(r).Decode(&vecs); err != nil {
		return nil, fmt.Errorf("vectors: %w", err)
	}
	return vecs, nil
}

// runVector assembles v and returns what was actually produced, in the same
// shape as v.
func (o *options) runVector(v Vector) Vector {
	got := Vector{Name: v.Name, ISA: v.ISA, Base: v.Base, Src: v.Src}
	vo := *o
	if v.ISA != "" {
		vo.caps = v.ISA
	}
	if v.Base != "" {
		vo.base = v.Base
	}
	a, err := vo.newAssembler()
	if err == nil {
		err = a.AssembleString(strings.Join(v.Src, "\n"))
	}
	if err != nil {
		got.Error = err.Error()
		return got
	}
	got.Words = listingWords(a)
	return got
}

func listingWords(a *asm.Assembler) []string {
	var words []string
	for _, l := range a.Disassemble() {
		words = append(words, l.Word())
	}
	return words
}

// compareVectors diffs want against got. An expected error matches any
// produced error that contains it.
func compareVectors(want, got Vector, color bool) (bool, string, error) {
	if want.Error != "" && strings.Contains(got.Error, want.Error) {
		got.Error = want.Error
	}
	for i := range want.Words {
		want.Words[i] = strings.TrimPrefix(strings.ToLower(want.Words[i]), "0x")
	}
	left, err := json.Marshal(want)
	if err != nil {
		return false, "", err
	}
	right, err := json.Marshal(got)
	if err != nil {
		return false, "", err
	}
	delta, err := gojsondiff.New().Compare(left, right)
	if err != nil {
		return false, "", err
	}
	if !delta.Modified() {
		return true, "", nil
	}
	var leftObj interface{}
	if err := json.Unmarshal(left, &leftObj); err != nil {
		return false, "", err
	}
	f := formatter.NewAsciiFormatter(leftObj, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	diff, err := f.Format(delta)
	return false, diff, err
}
