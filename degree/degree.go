// Package degree encodes a scale degree together with its chromatic
// alteration, e.g. the flat seventh of a dominant chord.
package degree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Accidental uint8

const (
	None Accidental = iota
	Sharp
	DoubleSharp
	Flat
	DoubleFlat
)

// bit positions of the packed encoding, above the 4 bit degree field
const (
	flagSharp       uint8 = 0b0001_0000
	flagDoubleSharp uint8 = 0b0010_0000
	flagFlat        uint8 = 0b0100_0000
	flagDoubleFlat  uint8 = 0b1000_0000
	degreeMask      uint8 = 0b0000_1111
	accidentalMask  uint8 = 0b1111_0000
)

var (
	ErrInvalidDegree       = errors.New("invalid degree")
	ErrAmbiguousAccidental = errors.New("more than one accidental bit set")
)

func (a Accidental) String() string {
	switch a {
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	case Flat:
		return "b"
	case DoubleFlat:
		return "bb"
	}
	return ""
}

// Semitones is the chromatic shift the accidental applies.
func (a Accidental) Semitones() int {
	switch a {
	case Sharp:
		return 1
	case DoubleSharp:
		return 2
	case Flat:
		return -1
	case DoubleFlat:
		return -2
	}
	return 0
}

// Bit returns the flag used for a in the packed encoding, 0 for None.
func (a Accidental) Bit() uint8 {
	switch a {
	case Sharp:
		return flagSharp
	case DoubleSharp:
		return flagDoubleSharp
	case Flat:
		return flagFlat
	case DoubleFlat:
		return flagDoubleFlat
	}
	return 0
}

// Code is a degree number (0 for the root, 3, 5, 7, ...) plus at most one
// accidental. The zero value is Root.
type Code struct {
	degree     uint8
	accidental Accidental
}

var (
	Root = Natural(0)

	Third     = Natural(3)
	ThirdFlat = WithFlat(3)

	Fifth      = Natural(5)
	FifthFlat  = WithFlat(5)
	FifthSharp = WithSharp(5)

	Seventh           = Natural(7)
	SeventhFlat       = WithFlat(7)
	SeventhDoubleFlat = WithDoubleFlat(7)
)

// Natural keeps only the low 4 bits of d; larger values are truncated.
func Natural(d uint8) Code {
	return Code{degree: d & degreeMask}
}

func WithSharp(d uint8) Code {
	return with(d, Sharp)
}

func WithDoubleSharp(d uint8) Code {
	return with(d, DoubleSharp)
}

func WithFlat(d uint8) Code {
	return with(d, Flat)
}

func WithDoubleFlat(d uint8) Code {
	return with(d, DoubleFlat)
}

func with(d uint8, a Accidental) Code {
	c := Natural(d)
	c.accidental = a
	return c
}

func (c Code) Degree() uint8 {
	return c.degree
}

func (c Code) Accidental() Accidental {
	return c.accidental
}

func (c Code) IsNatural() bool {
	return c.accidental == None
}

func (c Code) IsSharp() bool {
	return c.accidental == Sharp
}

func (c Code) IsDoubleSharp() bool {
	return c.accidental == DoubleSharp
}

func (c Code) IsFlat() bool {
	return c.accidental == Flat
}

func (c Code) IsDoubleFlat() bool {
	return c.accidental == DoubleFlat
}

// Bits packs c into a single byte: the degree in the low nibble and the
// accidental as one of bits 4-7.
func (c Code) Bits() uint8 {
	return c.degree | c.accidental.Bit()
}

// FromBits decodes the packed byte produced by Bits. A byte carrying more
// than one accidental flag cannot be represented and is rejected.
func FromBits(b uint8) (Code, error) {
	c := Natural(b)
	switch b & accidentalMask {
	case 0:
	case flagSharp:
		c.accidental = Sharp
	case flagDoubleSharp:
		c.accidental = DoubleSharp
	case flagFlat:
		c.accidental = Flat
	case flagDoubleFlat:
		c.accidental = DoubleFlat
	default:
		return Code{}, fmt.Errorf("decoding %08b: %w", b, ErrAmbiguousAccidental)
	}
	return c, nil
}

// String renders c the way chord symbols do: "b3", "#5", "bb7". The root
// prints as "1".
func (c Code) String() string {
	d := c.degree
	if d == 0 {
		d = 1
	}
	return c.accidental.String() + strconv.Itoa(int(d))
}

// Parse reads the notation written by String. "1" and "0" both mean the root.
func Parse(s string) (Code, error) {
	num := strings.TrimLeft(s, "#b")
	prefix := s[:len(s)-len(num)]

	var a Accidental
	switch prefix {
	case "":
		a = None
	case "#":
		a = Sharp
	case "##":
		a = DoubleSharp
	case "b":
		a = Flat
	case "bb":
		a = DoubleFlat
	default:
		return Code{}, fmt.Errorf("%q has unknown accidental %q: %w", s, prefix, ErrInvalidDegree)
	}

	d, err := strconv.ParseUint(num, 10, 8)
	if err != nil || d > uint64(degreeMask) {
		return Code{}, fmt.Errorf("%q has no degree number in 0..15: %w", s, ErrInvalidDegree)
	}
	if d == 1 {
		d = 0
	}
	return with(uint8(d), a), nil
}
