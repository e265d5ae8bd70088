package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/jsb/chord"
	"github.com/jsphweid/jsb/midi"
	"github.com/jsphweid/jsb/scale"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	exportOut  string
	exportRoot int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "file to write (default: <out_dir>/<uuid>.mid)")
	exportCmd.Flags().IntVar(&exportRoot, "root", -1, "midi note to start on (default: root from config)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <scale|chord-quality>",
	Short: "Writes a scale or chord as a midi file",
	Long: `Writes a scale, played up from the root to the octave, or a chord, played
as a block, to a standard midi file.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRoot(exportRoot)
		if err != nil {
			return err
		}
		s, err := render(args[0], root)
		if err != nil {
			return err
		}

		path := exportOut
		if path == "" {
			path = filepath.Join(cfg.OutDir, uuid.New().String()+".mid")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		if err := midi.WriteMidiFile(path, s); err != nil {
			return err
		}

		slog.Info("wrote midi file", "path", path, "name", args[0], "root", root)
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

// render builds the midi for a scale name, or failing that a chord quality.
func render(name string, root uint8) (*smf.SMF, error) {
	opts := cfg.MidiOptions()

	if p, ok := scale.Lookup(name); ok {
		notes := []uint8{root}
		for _, interval := range p.Intervals() {
			note := int(root) + int(interval)
			if note > 127 {
				return nil, fmt.Errorf("scale %v on %d: %w", p, root, chord.ErrOutOfRange)
			}
			notes = append(notes, uint8(note))
		}
		slog.Debug("rendering scale", "pattern", p.String(), "notes", notes)
		return midi.Sequence(notes, opts)
	}

	q, err := lookupQuality(name)
	if err != nil {
		return nil, fmt.Errorf("%q is neither a scale nor a chord quality", name)
	}
	notes, err := chord.Spell(root, q)
	if err != nil {
		return nil, err
	}
	slog.Debug("rendering chord", "quality", q.Name, "notes", notes)
	return midi.Block(notes, opts)
}
