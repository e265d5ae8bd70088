package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/jsb/chord"
	"github.com/jsphweid/jsb/midi"
	"github.com/jsphweid/jsb/model"
	"github.com/jsphweid/jsb/scale"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(identifyCmd)
}

var identifyCmd = &cobra.Command{
	Use:   "identify <file.mid>",
	Short: "Names the chords and scale of a midi file",
	Long: `Lists every chord sounding in a midi file with its quality, then the scale
pattern formed by all its pitch classes above the lowest note.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := identify(args[0])
		if err != nil {
			return err
		}
		return writeReport(cmd.OutOrStdout(), report, func(w io.Writer) error {
			return writeIdentifyText(w, report)
		})
	},
}

func identify(path string) (model.IdentifyReport, error) {
	var report model.IdentifyReport

	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return report, err
	}
	chords, err := chord.GetChords(s)
	if err != nil {
		return report, err
	}

	for _, c := range chords {
		report.Chords = append(report.Chords, model.IdentifiedChord{
			Offset:  c.Offset,
			Notes:   toInts(c.Notes),
			Key:     chord.CreateChordKey(c.Notes),
			Quality: c.Quality,
		})
	}

	p := scaleOf(midi.NoteOns(s))
	report.Scale, err = scaleReport(p, 0)
	return report, err
}

// scaleOf folds notes into one octave above the lowest of them. The octave
// itself is always included so a full diatonic set matches the named
// scales.
func scaleOf(notes []uint8) scale.Pattern {
	if len(notes) == 0 {
		return scale.New(0)
	}
	lowest := notes[0]
	for _, n := range notes[1:] {
		if n < lowest {
			lowest = n
		}
	}

	intervals := []uint8{12}
	for _, n := range notes {
		if pc := (n - lowest) % 12; pc != 0 {
			intervals = append(intervals, pc)
		}
	}
	return scale.FromIntervals(intervals...)
}

func writeIdentifyText(w io.Writer, r model.IdentifyReport) error {
	for _, c := range r.Chords {
		quality := c.Quality
		if quality == "" {
			quality = "-"
		}
		fmt.Fprintf(w, "%6dms  %-16s %s\n", c.Offset, c.Key, quality)
	}
	_, err := fmt.Fprintf(w, "scale: %s (%s)\n", r.Scale.Pattern, displayName(r.Scale.Name))
	return err
}
