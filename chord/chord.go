package chord

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jsphweid/jsb/degree"
	"github.com/jsphweid/jsb/model"
	"github.com/jsphweid/jsb/scale"
	"github.com/jsphweid/jsb/util"
	"gitlab.com/gomidi/midi/v2/smf"
)

var ErrOutOfRange = errors.New("note outside midi range")

type Quality struct {
	Name    string
	Symbol  string
	Degrees []degree.Code
}

// Qualities lists the chords this package knows how to spell, triads first.
func Qualities() []Quality {
	return []Quality{
		{"major", "", []degree.Code{degree.Root, degree.Third, degree.Fifth}},
		{"minor", "m", []degree.Code{degree.Root, degree.ThirdFlat, degree.Fifth}},
		{"diminished", "dim", []degree.Code{degree.Root, degree.ThirdFlat, degree.FifthFlat}},
		{"augmented", "aug", []degree.Code{degree.Root, degree.Third, degree.FifthSharp}},
		{"major7", "maj7", []degree.Code{degree.Root, degree.Third, degree.Fifth, degree.Seventh}},
		{"dominant7", "7", []degree.Code{degree.Root, degree.Third, degree.Fifth, degree.SeventhFlat}},
		{"minor7", "m7", []degree.Code{degree.Root, degree.ThirdFlat, degree.Fifth, degree.SeventhFlat}},
		{"half-diminished7", "m7b5", []degree.Code{degree.Root, degree.ThirdFlat, degree.FifthFlat, degree.SeventhFlat}},
		{"diminished7", "dim7", []degree.Code{degree.Root, degree.ThirdFlat, degree.FifthFlat, degree.SeventhDoubleFlat}},
	}
}

func QualityByName(name string) (Quality, bool) {
	for _, q := range Qualities() {
		if q.Name == name {
			return q, true
		}
	}
	return Quality{}, false
}

// Offset is the number of semitones c sits above the root of p. Degrees
// past the last note of p continue into the next octave, so a 9th of the
// major scale is 14. Panics if p has no notes and c is above the root.
func Offset(p scale.Pattern, c degree.Code) int {
	var semis int
	if d := int(c.Degree()); d > 1 {
		n := p.Len()
		top := int(p.Degree(n))
		steps := d - 1
		semis = (steps-1)/n*top + int(p.Degree((steps-1)%n+1))
	}
	return semis + c.Accidental().Semitones()
}

// Spell returns the midi notes of q built on root. Degrees are read
// against the major scale, the way chord symbols are.
func Spell(root uint8, q Quality) ([]uint8, error) {
	res := make([]uint8, 0, len(q.Degrees))
	for _, d := range q.Degrees {
		note := int(root) + Offset(scale.Major, d)
		if note < 0 || note > 127 {
			return nil, fmt.Errorf("%v of %v on %d: %w", d, q.Name, root, ErrOutOfRange)
		}
		res = append(res, uint8(note))
	}
	return res, nil
}

func pitchClasses(offsets []int) []int {
	res := make([]int, 0, len(offsets))
	for _, o := range offsets {
		res = append(res, (o%12+12)%12)
	}
	return util.Unique(res)
}

// Identify names the chord formed by notes, taking the lowest note as the
// root. Inversions are not recognized.
func Identify(notes []uint8) (Quality, bool) {
	if len(notes) == 0 {
		return Quality{}, false
	}
	lowest := notes[0]
	for _, n := range notes[1:] {
		lowest = util.Min(lowest, n)
	}

	var offsets []int
	for _, n := range notes {
		offsets = append(offsets, int(n-lowest))
	}
	played := pitchClasses(offsets)

	for _, q := range Qualities() {
		offsets = offsets[:0]
		for _, d := range q.Degrees {
			offsets = append(offsets, Offset(scale.Major, d))
		}
		if equal(played, pitchClasses(offsets)) {
			return q, true
		}
	}
	return Quality{}, false
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, note := range notes {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

type reducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}

func getChord(offset int64, pressed map[uint8]bool) model.Chord {
	var c model.Chord

	// storing it in millis for space savings (32 vs. 64)
	c.Offset = uint32(offset / 1000)
	c.Notes = util.GetKeys(pressed)
	if q, ok := Identify(c.Notes); ok {
		c.Quality = q.Name
	}
	return c
}

// GetChords returns every set of notes sounding together in s, ordered by
// the time it started.
func GetChords(s *smf.SMF) ([]model.Chord, error) {
	var chords []model.Chord

	var reducedEvents []reducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			absTime := s.TimeAt(absTicks)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					Offset:    absTime,
					IsNoteOff: velocity == 0,
					Note:      key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, reducedEvent{
					Offset:    absTime,
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})

	timestampToChords := make(map[int64]model.Chord)
	pressed := make(map[uint8]bool)
	for _, evt := range reducedEvents {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = true
		}
		timestampToChords[evt.Offset] = getChord(evt.Offset, pressed)
	}

	for _, k := range util.GetKeys(timestampToChords) {
		c := timestampToChords[k]
		if len(c.Notes) > 0 {
			chords = append(chords, c)
		}
	}
	return chords, nil
}
