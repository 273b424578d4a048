package main

import (
	"fmt"
	"strings"

	"github.com/colorfulnotion/jit/loongarch"
	"github.com/colorfulnotion/jit/riscv"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// familyView is one descriptor family flattened for printing.
type familyView struct {
	name      string
	supported bool
	shapes    map[string][]string
}

func newTableCmd(o *options) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "table [family...]",
		Short: "Print the instruction table as family > shape > mnemonics",
		Example: `  jitasm table
  jitasm --caps rv64gcv table V
  jitasm --arch loongarch table --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			isa, err := o.isa()
			if err != nil {
				return err
			}
			fams, err := families(isa)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), instructionTree(isa, fams, args, all).String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include families the capability string does not enable")
	return cmd
}

func instructionTree(isa string, fams []familyView, only []string, all bool) treeprint.Tree {
	tree := treeprint.NewWithRoot(isa)
	for _, f := range fams {
		if len(only) > 0 && !slices.ContainsFunc(only, func(s string) bool { return strings.EqualFold(s, f.name) }) {
			continue
		}
		if !f.supported && !all {
			continue
		}
		label := f.name
		if !f.supported {
			label += " (disabled)"
		}
		branch := tree.AddBranch(label)
		shapes := maps.Keys(f.shapes)
		slices.Sort(shapes)
		for _, shape := range shapes {
			branch.AddMetaNode(shape, strings.Join(f.shapes[shape], " "))
		}
	}
	return tree
}

func families(isa string) ([]familyView, error) {
	if strings.HasPrefix(strings.ToLower(isa), "la") {
		caps, err := loongarch.ParseCapabilities(isa)
		if err != nil {
			return nil, err
		}
		var out []familyView
		for _, f := range loongarch.Families() {
			v := familyView{name: f.Name, supported: f.Supported(caps), shapes: map[string][]string{}}
			for _, in := range f.Insts {
				v.shapes[in.Shape.String()] = append(v.shapes[in.Shape.String()], in.Name)
			}
			out = append(out, v)
		}
		return out, nil
	}
	caps, err := riscv.ParseCapabilities(isa)
	if err != nil {
		return nil, err
	}
	var out []familyView
	for _, f := range riscv.Families() {
		v := familyView{name: f.Name, supported: f.Supported(caps), shapes: map[string][]string{}}
		for _, in := range f.Insts {
			v.shapes[in.Shape.String()] = append(v.shapes[in.Shape.String()], in.Name)
		}
		out = append(out, v)
	}
	return out, nil
}

// mnemonics lists the mnemonics isa accepts, for completion.
func mnemonics(isa string) []string {
	fams, err := families(isa)
	if err != nil {
		return nil
	}
	var names []string
	for _, f := range fams {
		if !f.supported {
			continue
		}
		for _, ns := range f.shapes {
			names = append(names, ns...)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
