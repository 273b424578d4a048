package main

import (
	"fmt"
	"io"
	"math"
	"math/bits"
	"os"

	"github.com/colorfulnotion/jit/asm"
	"github.com/colorfulnotion/jit/emitter"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
)

// liStats is the materializer cost for one ISA, indexed by significant bits.
type liStats struct {
	isa  string
	max  [65]int
	mean [65]float64
}

func newChartCmd(o *options) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "chart [isa...]",
		Short: "Chart li sequence length against constant width as HTML",
		Example: `  jitasm chart
  jitasm chart -o li.html rv64gc rv64gc_zba_zbb la464`,
		RunE: func(cmd *cobra.Command, isas []string) error {
			if len(isas) == 0 {
				isas = []string{"rv64gc", "la464"}
			}
			var all []liStats
			for _, isa := range isas {
				st, err := measureLI(isa)
				if err != nil {
					return err
				}
				all = append(all, st)
			}
			writeLISummary(cmd.OutOrStdout(), all)

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()
			page := components.NewPage()
			page.PageTitle = "jitasm li"
			page.AddCharts(liChart(all))
			if err := page.Render(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "li.html", "HTML file to write")
	return cmd
}

// liSamples returns constants of every significant width, both signs.
func liSamples() []int64 {
	var vs []int64
	for k := 0; k < 64; k++ {
		p := uint64(1) << k
		for _, u := range []uint64{p, p - 1, p | 1, p | p>>1, p | 0x5555555555555555&(p-1)} {
			vs = append(vs, int64(u), -int64(u))
		}
	}
	return vs
}

// sigBits is the width of v as a two's complement number.
func sigBits(v int64) int {
	if v < 0 {
		v = ^v
	}
	return bits.Len64(uint64(v)) + 1
}

func measureLI(isa string) (liStats, error) {
	st := liStats{isa: isa}
	var count [65]int
	reg := "a0"
	for _, v := range liSamples() {
		a, err := asm.New(emitter.NewSliceRegion(0x10000, 256), isa)
		if err != nil {
			return st, err
		}
		if err := a.LI(reg, v); err != nil {
			return st, fmt.Errorf("li %#x: %w", uint64(v), err)
		}
		n := len(a.Disassemble())
		w := sigBits(v)
		if w > 64 {
			w = 64
		}
		if n > st.max[w] {
			st.max[w] = n
		}
		st.mean[w] += float64(n)
		count[w]++
	}
	for w := range st.mean {
		if count[w] > 0 {
			st.mean[w] /= float64(count[w])
		}
	}
	return st, nil
}

func liChart(all []liStats) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Constant materialization",
			Subtitle: "instructions per li, by significant bits",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "bits"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "instructions"}),
	)
	xs := make([]int, 0, 64)
	for w := 1; w <= 64; w++ {
		xs = append(xs, w)
	}
	line.SetXAxis(xs)
	for _, st := range all {
		maxData := make([]opts.LineData, 0, 64)
		meanData := make([]opts.LineData, 0, 64)
		for w := 1; w <= 64; w++ {
			maxData = append(maxData, opts.LineData{Value: st.max[w]})
			meanData = append(meanData, opts.LineData{Value: math.Round(st.mean[w]*100) / 100})
		}
		line.AddSeries(st.isa+" max", maxData)
		line.AddSeries(st.isa+" mean", meanData)
	}
	return line
}

func writeLISummary(w io.Writer, all []liStats) {
	fmt.Fprintf(w, "%-6s", "bits")
	for _, st := range all {
		fmt.Fprintf(w, " %16s", st.isa)
	}
	fmt.Fprintln(w)
	for _, b := range []int{8, 12, 13, 20, 32, 33, 44, 52, 64} {
		fmt.Fprintf(w, "%-6d", b)
		for _, st := range all {
			fmt.Fprintf(w, " %10d (%.1f)", st.max[b], st.mean[b])
		}
		fmt.Fprintln(w)
	}
}
