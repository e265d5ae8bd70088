// Package config loads the settings the jsb command uses to render and
// serve scales and chords.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jsphweid/jsb/constants"
	"github.com/jsphweid/jsb/midi"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	// midi note the rendered scales and chords start on
	Root            uint8   `toml:"root"`
	Velocity        uint8   `toml:"velocity"`
	Tempo           float64 `toml:"tempo"`
	TicksPerQuarter uint16  `toml:"ticks_per_quarter"`
	NoteTicks       uint32  `toml:"note_ticks"`
	OutDir          string  `toml:"out_dir"`
	Addr            string  `toml:"addr"`
}

func Default() Config {
	opts := midi.DefaultOptions()
	return Config{
		Root:            60,
		Velocity:        opts.Velocity,
		Tempo:           opts.Tempo,
		TicksPerQuarter: opts.TicksPerQuarter,
		NoteTicks:       opts.NoteTicks,
		OutDir:          constants.DefaultOutDir,
		Addr:            constants.DefaultAddr,
	}
}

// Parse decodes TOML on top of the defaults, so a file only needs the keys
// it changes.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing TOML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads the config at path, falling back to JSB_CONFIG and then to
// the defaults. JSB_OUT_DIR overrides out_dir.
func Load(path string) (Config, error) {
	if path == "" {
		path = constants.GetConfigPath()
	}

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		cfg, err = Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	if dir := constants.GetOutDir(); dir != "" {
		cfg.OutDir = dir
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Root > 127:
		return fmt.Errorf("%w: root %d is not a midi note", ErrInvalid, c.Root)
	case c.Velocity == 0 || c.Velocity > 127:
		return fmt.Errorf("%w: velocity %d outside 1..127", ErrInvalid, c.Velocity)
	case c.Tempo <= 0:
		return fmt.Errorf("%w: tempo must be positive", ErrInvalid)
	case c.TicksPerQuarter == 0 || c.TicksPerQuarter > 0x7FFF:
		return fmt.Errorf("%w: ticks_per_quarter %d outside 1..32767", ErrInvalid, c.TicksPerQuarter)
	case c.NoteTicks == 0:
		return fmt.Errorf("%w: note_ticks must be positive", ErrInvalid)
	case c.OutDir == "":
		return fmt.Errorf("%w: out_dir is empty", ErrInvalid)
	}
	return nil
}

// MidiOptions is the rendering part of c.
func (c Config) MidiOptions() midi.Options {
	return midi.Options{
		Velocity:        c.Velocity,
		Tempo:           c.Tempo,
		TicksPerQuarter: c.TicksPerQuarter,
		NoteTicks:       c.NoteTicks,
	}
}
