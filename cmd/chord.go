package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/jsb/chord"
	"github.com/jsphweid/jsb/model"
	"github.com/spf13/cobra"
)

var chordRoot int

func init() {
	chordCmd.Flags().IntVar(&chordRoot, "root", -1, "midi note to build on (default: root from config)")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <quality>",
	Short: "Spells a chord",
	Long:  `Spells a chord quality such as minor7 or diminished as midi notes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := lookupQuality(args[0])
		if err != nil {
			return err
		}
		root, err := resolveRoot(chordRoot)
		if err != nil {
			return err
		}
		report, err := chordReport(q, root)
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), report, func(w io.Writer) error {
			return writeChordText(w, report)
		})
	},
}

func lookupQuality(name string) (chord.Quality, error) {
	q, ok := chord.QualityByName(name)
	if !ok {
		var names []string
		for _, known := range chord.Qualities() {
			names = append(names, known.Name)
		}
		return q, fmt.Errorf("unknown chord quality %q: expected one of %v", name, names)
	}
	return q, nil
}

// resolveRoot falls back to the configured root when the flag is unset.
func resolveRoot(flag int) (uint8, error) {
	if flag < 0 {
		return cfg.Root, nil
	}
	if flag > 127 {
		return 0, fmt.Errorf("root %d is not a midi note", flag)
	}
	return uint8(flag), nil
}

func chordReport(q chord.Quality, root uint8) (model.ChordReport, error) {
	notes, err := chord.Spell(root, q)
	if err != nil {
		return model.ChordReport{}, err
	}

	var degrees []string
	for _, d := range q.Degrees {
		degrees = append(degrees, d.String())
	}

	return model.ChordReport{
		Quality: q.Name,
		Symbol:  q.Symbol,
		Degrees: degrees,
		Root:    root,
		Notes:   toInts(notes),
		Key:     chord.CreateChordKey(notes),
	}, nil
}

func writeChordText(w io.Writer, r model.ChordReport) error {
	fmt.Fprintf(w, "quality: %s\n", displayName(r.Quality))
	fmt.Fprintf(w, "symbol:  %q\n", r.Symbol)
	fmt.Fprintf(w, "degrees: %v\n", r.Degrees)
	fmt.Fprintf(w, "notes:   %v\n", r.Notes)
	_, err := fmt.Fprintf(w, "key:     %s\n", r.Key)
	return err
}
