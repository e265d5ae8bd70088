package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/jsb/model"
	"github.com/jsphweid/jsb/scale"
	"github.com/spf13/cobra"
)

var scaleDegree int

func init() {
	scaleCmd.Flags().IntVar(&scaleDegree, "degree", 0, "also print the nth (1-indexed) interval")
	rootCmd.AddCommand(scaleCmd)
}

var scaleCmd = &cobra.Command{
	Use:   "scale <name|0bMASK>",
	Short: "Decodes a scale pattern",
	Long: `Decodes a scale pattern into its intervals, steps and quality.

The scale is one of major, natural-minor, harmonic-minor, melodic-minor or a
raw 12 bit mask such as 0b1101_0101_1010.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := lookupScale(args[0])
		if err != nil {
			return err
		}
		report, err := scaleReport(p, scaleDegree)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), report, func(w io.Writer) error {
			return writeScaleText(w, report, scaleDegree)
		})
	},
}

func lookupScale(name string) (scale.Pattern, error) {
	p, ok := scale.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("unknown scale %q: expected one of %v or a 0b mask", name, scale.Names())
	}
	return p, nil
}

// scaleReport checks n itself so an out of range degree is reported as an
// error instead of reaching the panic in Pattern.Degree.
func scaleReport(p scale.Pattern, n int) (model.ScaleReport, error) {
	report := model.ScaleReport{
		Name:      p.Name(),
		Pattern:   p.String(),
		Bits:      p.Pattern(),
		Intervals: toInts(p.Intervals()),
		Steps:     toInts(p.Steps()),
		IsMajor:   p.IsMajor(),
		IsMinor:   p.IsMinor(),
	}
	if n == 0 {
		return report, nil
	}
	if n < 1 || n > p.Len() {
		return report, fmt.Errorf("scale %v has %d degrees, asked for degree %d", p, p.Len(), n)
	}
	d := p.Degree(n)
	report.Degree = &d
	return report, nil
}

func writeScaleText(w io.Writer, r model.ScaleReport, n int) error {
	fmt.Fprintf(w, "name:      %s\n", displayName(r.Name))
	fmt.Fprintf(w, "pattern:   %s\n", r.Pattern)
	fmt.Fprintf(w, "intervals: %v\n", r.Intervals)
	fmt.Fprintf(w, "steps:     %v\n", r.Steps)
	fmt.Fprintf(w, "major:     %v\n", r.IsMajor)
	_, err := fmt.Fprintf(w, "minor:     %v\n", r.IsMinor)
	if r.Degree != nil {
		_, err = fmt.Fprintf(w, "degree %d:  %d\n", n, *r.Degree)
	}
	return err
}
