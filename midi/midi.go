package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type Options struct {
	Channel         uint8
	Velocity        uint8
	Tempo           float64
	TicksPerQuarter uint16
	// how long each note (or block chord) sounds
	NoteTicks uint32
}

func DefaultOptions() Options {
	return Options{
		Velocity:        100,
		Tempo:           120,
		TicksPerQuarter: 480,
		NoteTicks:       480,
	}
}

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s = &blank
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("reading midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("parsing midi file: %w", err)
	}

	return res, nil
}

func newFile(opts Options, build func(tr *smf.Track)) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(opts.TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(opts.Tempo))
	build(&tr)
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, fmt.Errorf("adding track: %w", err)
	}
	return s, nil
}

// Sequence plays notes one after another, e.g. a scale going up.
func Sequence(notes []uint8, opts Options) (*smf.SMF, error) {
	return newFile(opts, func(tr *smf.Track) {
		for _, note := range notes {
			tr.Add(0, gomidi.NoteOn(opts.Channel, note, opts.Velocity))
			tr.Add(opts.NoteTicks, gomidi.NoteOff(opts.Channel, note))
		}
	})
}

// Block plays notes all at once, e.g. a chord.
func Block(notes []uint8, opts Options) (*smf.SMF, error) {
	return newFile(opts, func(tr *smf.Track) {
		for _, note := range notes {
			tr.Add(0, gomidi.NoteOn(opts.Channel, note, opts.Velocity))
		}
		for i, note := range notes {
			var delta uint32
			if i == 0 {
				delta = opts.NoteTicks
			}
			tr.Add(delta, gomidi.NoteOff(opts.Channel, note))
		}
	})
}

func Write(w io.Writer, s *smf.SMF) error {
	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("writing midi: %w", err)
	}
	return nil
}

func WriteMidiFile(path string, s *smf.SMF) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating midi file: %w", err)
	}
	defer f.Close()

	return Write(f, s)
}

// NoteOns returns the key of every sounding note-on in s, track by track.
func NoteOns(s *smf.SMF) []uint8 {
	var res []uint8
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = append(res, key)
			}
		}
	}
	return res
}
