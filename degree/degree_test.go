package degree

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootIsNaturalZero(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Root, Natural(0))
	assert.Equal(Root, Code{})
	assert.Equal(uint8(0), Root.Bits())
}

func TestThird(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(3), Third.Bits())
	assert.Equal(uint8(3), Natural(3).Degree())

	assert.Equal(uint8(3), ThirdFlat.Degree())
	assert.True(ThirdFlat.IsFlat())
	assert.False(ThirdFlat.IsSharp())
	assert.Equal(WithFlat(3), ThirdFlat)
}

func TestFifth(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(5), Fifth.Bits())

	assert.Equal(uint8(5), FifthFlat.Degree())
	assert.True(FifthFlat.IsFlat())
	assert.False(FifthFlat.IsSharp())

	assert.Equal(uint8(5), FifthSharp.Degree())
	assert.False(FifthSharp.IsFlat())
	assert.True(FifthSharp.IsSharp())
}

func TestSeventh(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(7), Seventh.Bits())

	assert.Equal(uint8(7), SeventhFlat.Degree())
	assert.True(SeventhFlat.IsFlat())
	assert.False(SeventhFlat.IsSharp())

	assert.Equal(uint8(7), SeventhDoubleFlat.Degree())
	assert.True(SeventhDoubleFlat.IsDoubleFlat())
	assert.False(SeventhDoubleFlat.IsFlat())
	assert.False(SeventhDoubleFlat.IsSharp())
	assert.Equal(WithDoubleFlat(7), SeventhDoubleFlat)
}

func TestPackedBits(t *testing.T) {
	cases := []struct {
		code Code
		bits uint8
	}{
		{Natural(9), 0b0000_1001},
		{WithSharp(4), 0b0001_0100},
		{WithDoubleSharp(2), 0b0010_0010},
		{WithFlat(3), 0b0100_0011},
		{WithDoubleFlat(7), 0b1000_0111},
		{FifthSharp, 0b0001_0101},
	}

	for _, c := range cases {
		name := fmt.Sprintf("bits of %v", c.code)
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(c.bits, c.code.Bits())

			decoded, err := FromBits(c.bits)
			assert.NoError(err)
			assert.Equal(c.code, decoded)
		})
	}
}

func TestOnlyOneAccidentalQueryHolds(t *testing.T) {
	for _, c := range []Code{Natural(5), WithSharp(5), WithDoubleSharp(5), WithFlat(5), WithDoubleFlat(5)} {
		held := 0
		for _, q := range []bool{c.IsSharp(), c.IsDoubleSharp(), c.IsFlat(), c.IsDoubleFlat()} {
			if q {
				held++
			}
		}
		if c.IsNatural() {
			assert.Equal(t, 0, held, c.String())
		} else {
			assert.Equal(t, 1, held, c.String())
		}
	}
}

func TestDegreeIsMaskedToLowNibble(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint8(0x0F), Natural(0xFF).Degree())
	assert.Equal(uint8(3), WithFlat(0x13).Degree())
	assert.True(WithFlat(0x13).IsFlat())
	assert.Equal(uint8(0b0100_0011), WithFlat(0x13).Bits())
}

func TestFromBitsRejectsTwoAccidentals(t *testing.T) {
	_, err := FromBits(0b0101_0011)
	assert.ErrorIs(t, err, ErrAmbiguousAccidental)

	_, err = FromBits(0b1111_0111)
	assert.ErrorIs(t, err, ErrAmbiguousAccidental)
}

func TestAccidentalSemitones(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, None.Semitones())
	assert.Equal(1, Sharp.Semitones())
	assert.Equal(2, DoubleSharp.Semitones())
	assert.Equal(-1, Flat.Semitones())
	assert.Equal(-2, DoubleFlat.Semitones())
}

func TestStringParse(t *testing.T) {
	named := map[string]Code{
		"1":   Root,
		"3":   Third,
		"b3":  ThirdFlat,
		"5":   Fifth,
		"b5":  FifthFlat,
		"#5":  FifthSharp,
		"7":   Seventh,
		"b7":  SeventhFlat,
		"bb7": SeventhDoubleFlat,
		"##9": WithDoubleSharp(9),
	}

	for s, code := range named {
		t.Run(s, func(t *testing.T) {
			assert.Equal(t, s, code.String())

			parsed, err := Parse(s)
			require.NoError(t, err)
			assert.Equal(t, code, parsed)
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "b", "x3", "#b3", "bbb7", "16", "3b", "-1"} {
		t.Run(fmt.Sprintf("parse %q", s), func(t *testing.T) {
			_, err := Parse(s)
			assert.ErrorIs(t, err, ErrInvalidDegree)
		})
	}
}
