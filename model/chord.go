package model

type Notes = []uint8

type Chord struct {
	// millis from the start of the file
	Offset  uint32
	Notes   Notes
	Quality string
}

type IdentifiedChord struct {
	Offset  uint32 `json:"offset_ms" yaml:"offset_ms"`
	Notes   []int  `json:"notes" yaml:"notes,flow"`
	Key     string `json:"key" yaml:"key"`
	Quality string `json:"quality,omitempty" yaml:"quality,omitempty"`
}

type IdentifyReport struct {
	Chords []IdentifiedChord `json:"chords" yaml:"chords"`
	Scale  ScaleReport       `json:"scale" yaml:"scale"`
}
