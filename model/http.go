package model

// NOTE: []int rather than []uint8 so json and yaml print numbers, not base64
type ScaleReport struct {
	Name      string `json:"name" yaml:"name"`
	Pattern   string `json:"pattern" yaml:"pattern"`
	Bits      uint16 `json:"bits" yaml:"bits"`
	Intervals []int  `json:"intervals" yaml:"intervals,flow"`
	Steps     []int  `json:"steps" yaml:"steps,flow"`
	IsMajor   bool   `json:"is_major" yaml:"is_major"`
	IsMinor   bool   `json:"is_minor" yaml:"is_minor"`

	// only set when a degree was asked for
	Degree *uint8 `json:"degree,omitempty" yaml:"degree,omitempty"`
}

type DegreeReport struct {
	Code          string `json:"code" yaml:"code"`
	Bits          uint8  `json:"bits" yaml:"bits"`
	Degree        uint8  `json:"degree" yaml:"degree"`
	IsSharp       bool   `json:"is_sharp" yaml:"is_sharp"`
	IsDoubleSharp bool   `json:"is_double_sharp" yaml:"is_double_sharp"`
	IsFlat        bool   `json:"is_flat" yaml:"is_flat"`
	IsDoubleFlat  bool   `json:"is_double_flat" yaml:"is_double_flat"`
}

type ChordReport struct {
	Quality string   `json:"quality" yaml:"quality"`
	Symbol  string   `json:"symbol" yaml:"symbol"`
	Degrees []string `json:"degrees" yaml:"degrees,flow"`
	Root    uint8    `json:"root" yaml:"root"`
	Notes   []int    `json:"notes" yaml:"notes,flow"`
	Key     string   `json:"key" yaml:"key"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
