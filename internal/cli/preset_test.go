package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/e-001/marquee"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPreset(t *testing.T) {
	path := writePreset(t, `
duration = "8s"
delay = "500ms"
autoreverses = true
direction = "ltr"
align = "center"
boundary = "outer"
loops = 3
stop_when_not_fit = true
`)
	p, err := LoadPreset(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}

	want := marquee.Config{
		Duration:       8 * time.Second,
		Delay:          500 * time.Millisecond,
		Autoreverses:   true,
		Direction:      marquee.LeftToRight,
		StopWhenNotFit: true,
		IdleAlignment:  marquee.AlignCenter,
		Boundary:       marquee.BoundaryOuter,
		LoopCount:      3,
	}
	if cfg != want {
		t.Errorf("want %+v, got %+v", want, cfg)
	}
}

func TestLoadPresetEmptyEnumsKeepDefaults(t *testing.T) {
	path := writePreset(t, `duration = "2s"`)
	p, err := LoadPreset(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Direction != marquee.RightToLeft {
		t.Errorf("want %v, got %v", marquee.RightToLeft, cfg.Direction)
	}
	if cfg.IdleAlignment != marquee.AlignLeft {
		t.Errorf("want %v, got %v", marquee.AlignLeft, cfg.IdleAlignment)
	}
	if cfg.Boundary != marquee.BoundaryInner {
		t.Errorf("want %v, got %v", marquee.BoundaryInner, cfg.Boundary)
	}
	if cfg.Duration != 2*time.Second {
		t.Errorf("want 2s, got %v", cfg.Duration)
	}
}

func TestLoadPresetErrors(t *testing.T) {
	if _, err := LoadPreset(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("want error for missing file")
	}

	path := writePreset(t, `direction = "sideways"`)
	p, err := LoadPreset(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Config(); err == nil {
		t.Error("want error for unknown direction")
	}
}
