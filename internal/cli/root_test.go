package cli

import (
	"testing"
	"time"

	"github.com/e-001/marquee"
)

func defaultFlags() flagValues {
	return flagValues{
		duration: 6 * time.Second,
		dir:      "rtl",
		align:    "left",
		boundary: "inner",
		loops:    marquee.LoopForever,
	}
}

func TestMergeAppliesFlagDefaults(t *testing.T) {
	cfg, err := defaultFlags().merge(marquee.DefaultConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// without a preset the flag defaults must land in the config, so a
	// plain invocation actually scrolls
	if cfg.Duration != 6*time.Second {
		t.Errorf("want 6s, got %v", cfg.Duration)
	}
	if cfg.LoopCount != marquee.LoopForever {
		t.Errorf("want %d, got %d", marquee.LoopForever, cfg.LoopCount)
	}
	if cfg.Direction != marquee.RightToLeft {
		t.Errorf("want %v, got %v", marquee.RightToLeft, cfg.Direction)
	}
}

func TestMergeChangedFlagsWinOverPreset(t *testing.T) {
	preset := marquee.Config{
		Duration:      8 * time.Second,
		Direction:     marquee.LeftToRight,
		IdleAlignment: marquee.AlignCenter,
		LoopCount:     3,
	}
	f := defaultFlags()
	f.loops = 5

	changed := func(name string) bool { return name == "loops" }
	cfg, err := f.merge(preset, changed)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LoopCount != 5 {
		t.Errorf("want 5, got %d", cfg.LoopCount)
	}
	// untouched flags must not clobber the preset with their defaults
	if cfg.Duration != 8*time.Second {
		t.Errorf("want 8s, got %v", cfg.Duration)
	}
	if cfg.Direction != marquee.LeftToRight {
		t.Errorf("want %v, got %v", marquee.LeftToRight, cfg.Direction)
	}
	if cfg.IdleAlignment != marquee.AlignCenter {
		t.Errorf("want %v, got %v", marquee.AlignCenter, cfg.IdleAlignment)
	}
}

func TestMergeRejectsUnknownEnums(t *testing.T) {
	f := defaultFlags()
	f.dir = "sideways"
	if _, err := f.merge(marquee.DefaultConfig(), nil); err == nil {
		t.Error("want error for unknown direction")
	}
}
