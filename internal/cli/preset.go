package cli

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/e-001/marquee"
)

// Preset is a marquee configuration loaded from a TOML file, e.g.
//
//	duration = "8s"
//	delay = "500ms"
//	autoreverses = true
//	direction = "ltr"
//	align = "center"
//	boundary = "outer"
//	loops = 3
type Preset struct {
	Duration       duration `toml:"duration"`
	Delay          duration `toml:"delay"`
	Autoreverses   bool     `toml:"autoreverses"`
	Direction      string   `toml:"direction"`
	StopWhenNotFit bool     `toml:"stop_when_not_fit"`
	Align          string   `toml:"align"`
	Boundary       string   `toml:"boundary"`
	Loops          int      `toml:"loops"`
}

type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	*d = duration(v)
	return err
}

// LoadPreset reads and validates a preset file.
func LoadPreset(path string) (*Preset, error) {
	var p Preset
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("loading preset %s: %w", path, err)
	}
	return &p, nil
}

// Config resolves the preset into a marquee configuration. Empty enum
// fields keep their defaults.
func (p *Preset) Config() (marquee.Config, error) {
	cfg := marquee.DefaultConfig()
	cfg.Duration = time.Duration(p.Duration)
	cfg.Delay = time.Duration(p.Delay)
	cfg.Autoreverses = p.Autoreverses
	cfg.StopWhenNotFit = p.StopWhenNotFit
	cfg.LoopCount = p.Loops

	var err error
	if p.Direction != "" {
		if cfg.Direction, err = ParseDirection(p.Direction); err != nil {
			return cfg, err
		}
	}
	if p.Align != "" {
		if cfg.IdleAlignment, err = ParseAlignment(p.Align); err != nil {
			return cfg, err
		}
	}
	if p.Boundary != "" {
		if cfg.Boundary, err = ParseBoundary(p.Boundary); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
