// Package scale encodes a scale as a 12 bit mask over the chromatic steps
// above its root and decodes the mask back into intervals, steps and
// quality.
//
// Bit i set means the scale contains the note i+1 semitones above the
// root, so a seven note scale ending on the octave always has bit 11 set.
package scale

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

type Pattern uint16

const (
	// W-W-H-W-W-W-H
	Major Pattern = 0b0000_1101_0101_1010
	// W-H-W-W-H-W-W
	NaturalMinor Pattern = 0b0000_1010_1101_0110
	// W-H-W-W-H-WH-H
	HarmonicMinor Pattern = 0b0000_1100_1101_0110
	// ascending form, W-H-W-W-W-W-H
	MelodicMinor Pattern = 0b0000_1101_0101_0110
)

const patternMask uint16 = 0b0000_1111_1111_1111

var stepMasks = [12]uint16{
	0b0000_0000_0000_0001,
	0b0000_0000_0000_0010,
	0b0000_0000_0000_0100,
	0b0000_0000_0000_1000,
	0b0000_0000_0001_0000,
	0b0000_0000_0010_0000,
	0b0000_0000_0100_0000,
	0b0000_0000_1000_0000,
	0b0000_0001_0000_0000,
	0b0000_0010_0000_0000,
	0b0000_0100_0000_0000,
	0b0000_1000_0000_0000,
}

// New accepts any bit pattern. Bits above the 12th are kept but ignored by
// every query.
func New(bits uint16) Pattern {
	return Pattern(bits)
}

// FromIntervals sets the bit for each interval in 1..12 and ignores the rest.
func FromIntervals(intervals ...uint8) Pattern {
	var p Pattern
	for _, i := range intervals {
		if i >= 1 && i <= 12 {
			p |= Pattern(stepMasks[i-1])
		}
	}
	return p
}

// Pattern returns the low 12 bits.
func (p Pattern) Pattern() uint16 {
	return uint16(p) & patternMask
}

// Len is the number of notes in the scale, not counting the root.
func (p Pattern) Len() int {
	return bits.OnesCount16(p.Pattern())
}

// Intervals returns the semitone distance from the root of every note in
// the scale, ascending. The slice is rebuilt on every call.
func (p Pattern) Intervals() []uint8 {
	pattern := p.Pattern()
	res := make([]uint8, 0, 12)
	for i, mask := range stepMasks {
		if pattern&mask != 0 {
			res = append(res, uint8(i+1))
		}
	}
	return res
}

// Steps returns the distance between each note and the one below it,
// starting from the root. They add up to the last interval.
func (p Pattern) Steps() []uint8 {
	intervals := p.Intervals()
	var last uint8
	for i, interval := range intervals {
		intervals[i] = interval - last
		last = interval
	}
	return intervals
}

// IsMajor only looks at the first four bits. Masks that open like a major
// scale report true whatever follows.
func (p Pattern) IsMajor() bool {
	low := p.Pattern() & 0b1111
	return low == 0b1010 || low == 0b1001
}

// IsMinor only looks at the first three bits.
func (p Pattern) IsMinor() bool {
	low := p.Pattern() & 0b111
	return low == 0b110 || low == 0b101
}

// Degree returns the nth (1-indexed) interval. Asking for a degree the scale
// does not have is a programming error and panics.
func (p Pattern) Degree(n int) uint8 {
	intervals := p.Intervals()
	if n < 1 || n > len(intervals) {
		panic(fmt.Sprintf("scale %v has %d degrees, asked for degree %d", p, len(intervals), n))
	}
	return intervals[n-1]
}

// String prints the 12 bits most significant first, grouped by nibble.
func (p Pattern) String() string {
	s := fmt.Sprintf("%012b", p.Pattern())
	return s[0:4] + " " + s[4:8] + " " + s[8:12]
}

// Name is the canonical name of p, or "" for a custom pattern.
func (p Pattern) Name() string {
	switch p.Pattern() {
	case Major.Pattern():
		return "major"
	case NaturalMinor.Pattern():
		return "natural-minor"
	case HarmonicMinor.Pattern():
		return "harmonic-minor"
	case MelodicMinor.Pattern():
		return "melodic-minor"
	}
	return ""
}

func Names() []string {
	return []string{"major", "natural-minor", "harmonic-minor", "melodic-minor"}
}

// Lookup resolves a scale by canonical name, a few common aliases, or a raw
// binary mask written as "0b1101_0101_1010".
func Lookup(name string) (Pattern, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "major", "ionian":
		return Major, true
	case "natural-minor", "minor", "aeolian":
		return NaturalMinor, true
	case "harmonic-minor":
		return HarmonicMinor, true
	case "melodic-minor":
		return MelodicMinor, true
	}

	if !strings.HasPrefix(name, "0b") {
		return 0, false
	}
	digits := strings.NewReplacer("_", "", " ", "").Replace(name[2:])
	v, err := strconv.ParseUint(digits, 2, 16)
	if err != nil {
		return 0, false
	}
	return New(uint16(v)), true
}
