package scale

import (
	"fmt"
	"testing"

	"github.com/jsphweid/jsb/util"
	"github.com/stretchr/testify/assert"
)

func TestNamedScales(t *testing.T) {
	cases := []struct {
		name      string
		pattern   Pattern
		intervals []uint8
		steps     []uint8
		major     bool
		minor     bool
	}{
		{"major", Major, []uint8{2, 4, 5, 7, 9, 11, 12}, []uint8{2, 2, 1, 2, 2, 2, 1}, true, false},
		{"natural-minor", NaturalMinor, []uint8{2, 3, 5, 7, 8, 10, 12}, []uint8{2, 1, 2, 2, 1, 2, 2}, false, true},
		{"harmonic-minor", HarmonicMinor, []uint8{2, 3, 5, 7, 8, 11, 12}, []uint8{2, 1, 2, 2, 1, 3, 1}, false, true},
		{"melodic-minor", MelodicMinor, []uint8{2, 3, 5, 7, 9, 11, 12}, []uint8{2, 1, 2, 2, 2, 2, 1}, false, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(c.intervals, c.pattern.Intervals())
			assert.Equal(c.steps, c.pattern.Steps())
			assert.Equal(c.major, c.pattern.IsMajor())
			assert.Equal(c.minor, c.pattern.IsMinor())
			assert.Equal(7, c.pattern.Len())
			assert.Equal(c.name, c.pattern.Name())

			looked, ok := Lookup(c.name)
			assert.True(ok)
			assert.Equal(c.pattern, looked)
		})
	}
}

func TestDegree(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(5), Major.Degree(3))
	assert.Equal(uint8(9), Major.Degree(5))
	assert.Equal(uint8(8), NaturalMinor.Degree(5))
	assert.Equal(uint8(2), HarmonicMinor.Degree(1))
	assert.Equal(uint8(12), MelodicMinor.Degree(7))
}

func TestDegreePastScaleLengthPanics(t *testing.T) {
	p := New(0b1000_1000_1000)
	assert.Equal(t, uint8(12), p.Degree(3))
	assert.Panics(t, func() { p.Degree(4) })
	assert.Panics(t, func() { p.Degree(0) })
	assert.Panics(t, func() { Major.Degree(8) })
	assert.Panics(t, func() { New(0).Degree(1) })
}

func TestPatternMasksHighBits(t *testing.T) {
	p := New(0b1111_1101_0101_1010)
	assert := assert.New(t)
	assert.Equal(Major.Pattern(), p.Pattern())
	assert.Equal(p.Pattern(), New(p.Pattern()).Pattern())
	assert.Equal(Major.Intervals(), p.Intervals())
	assert.Equal("major", p.Name())
}

func TestIntervalsAreRebuiltEachCall(t *testing.T) {
	first := Major.Intervals()
	first[0] = 99
	assert.Equal(t, uint8(2), Major.Intervals()[0])

	steps := Major.Steps()
	assert.Equal(t, steps, Major.Steps())
}

func TestStepsTelescopeForEveryMask(t *testing.T) {
	for bits := 0; bits < 1<<12; bits++ {
		p := New(uint16(bits))
		intervals := p.Intervals()
		steps := p.Steps()
		if !assert.Len(t, steps, len(intervals)) {
			return
		}
		assert.Equal(t, p.Len(), len(intervals))

		for i := 1; i < len(intervals); i++ {
			if intervals[i] <= intervals[i-1] {
				t.Fatalf("intervals of %v not strictly increasing: %v", p, intervals)
			}
		}

		if len(intervals) == 0 {
			continue
		}
		if util.Sum(steps) != uint64(intervals[len(intervals)-1]) {
			t.Fatalf("steps of %v sum to %d, want %d", p, util.Sum(steps), intervals[len(intervals)-1])
		}
	}
}

func TestQualityHeuristicsOnlyReadLowBits(t *testing.T) {
	cases := []struct {
		bits  uint16
		major bool
		minor bool
	}{
		{0b0000_0000_1010, true, false},
		{0b0000_0000_1001, true, false},
		{0b1111_1111_1010, true, false},
		{0b0000_0000_0110, false, true},
		{0b0000_0000_0101, false, true},
		{0b0000_0000_1101, false, true},
		{0b0000_0000_0000, false, false},
		{0b1111_1111_1111, false, false},
	}

	for _, c := range cases {
		name := fmt.Sprintf("quality of %012b", c.bits)
		t.Run(name, func(t *testing.T) {
			p := New(c.bits)
			assert.Equal(t, c.major, p.IsMajor())
			assert.Equal(t, c.minor, p.IsMinor())
		})
	}
}

func TestFromIntervals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Major, FromIntervals(2, 4, 5, 7, 9, 11, 12))
	assert.Equal(HarmonicMinor, FromIntervals(HarmonicMinor.Intervals()...))
	assert.Equal(New(0b0000_0000_0001), FromIntervals(0, 1, 13, 200))
}

func TestString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("1101 0101 1010", Major.String())
	assert.Equal("1010 1101 0110", NaturalMinor.String())
	assert.Equal("1100 1101 0110", HarmonicMinor.String())
	assert.Equal("1101 0101 0110", MelodicMinor.String())
	assert.Equal("0000 0000 0000", New(0).String())
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	p, ok := Lookup("Minor")
	assert.True(ok)
	assert.Equal(NaturalMinor, p)

	p, ok = Lookup("0b1101_0101_1010")
	assert.True(ok)
	assert.Equal(Major, p)

	p, ok = Lookup("0b1000_1001_0000")
	assert.True(ok)
	assert.Equal("", p.Name())
	assert.Equal([]uint8{5, 8, 12}, p.Intervals())

	_, ok = Lookup("dorian")
	assert.False(ok)
	_, ok = Lookup("0b102")
	assert.False(ok)
	_, ok = Lookup("0b")
	assert.False(ok)

	assert.Len(Names(), 4)
	for _, name := range Names() {
		_, ok := Lookup(name)
		assert.True(ok, name)
	}
}
