package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/jsb/degree"
	"github.com/jsphweid/jsb/model"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(degreeCmd)
}

var degreeCmd = &cobra.Command{
	Use:   "degree <code>",
	Short: "Decodes a degree code",
	Long: `Decodes a degree with its accidental, written like b3, #5, bb7 or 9, into
the packed byte and its flags.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := degree.Parse(args[0])
		if err != nil {
			return err
		}
		report := degreeReport(c)
		return writeReport(cmd.OutOrStdout(), report, func(w io.Writer) error {
			return writeDegreeText(w, report)
		})
	},
}

func degreeReport(c degree.Code) model.DegreeReport {
	return model.DegreeReport{
		Code:          c.String(),
		Bits:          c.Bits(),
		Degree:        c.Degree(),
		IsSharp:       c.IsSharp(),
		IsDoubleSharp: c.IsDoubleSharp(),
		IsFlat:        c.IsFlat(),
		IsDoubleFlat:  c.IsDoubleFlat(),
	}
}

func writeDegreeText(w io.Writer, r model.DegreeReport) error {
	fmt.Fprintf(w, "code:         %s\n", r.Code)
	fmt.Fprintf(w, "bits:         %04b %04b\n", r.Bits>>4, r.Bits&0b1111)
	fmt.Fprintf(w, "degree:       %d\n", r.Degree)
	fmt.Fprintf(w, "sharp:        %v\n", r.IsSharp)
	fmt.Fprintf(w, "double sharp: %v\n", r.IsDoubleSharp)
	fmt.Fprintf(w, "flat:         %v\n", r.IsFlat)
	_, err := fmt.Fprintf(w, "double flat:  %v\n", r.IsDoubleFlat)
	return err
}
