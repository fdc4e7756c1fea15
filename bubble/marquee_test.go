package bubble

import (
	"testing"
	"time"

	"github.com/e-001/marquee"
)

func animatingModel(t *testing.T, text string, cfg marquee.Config) Model {
	t.Helper()
	m, cmd := New(text, cfg).SetWidth(10)
	if m.State() != marquee.StateReady {
		t.Fatalf("want %v, got %v", marquee.StateReady, m.State())
	}
	if cmd == nil {
		t.Fatal("want a frame command")
	}
	m, cmd = m.Update(FrameMsg{id: m.id, tag: m.tag})
	if m.State() != marquee.StateAnimating {
		t.Fatalf("want %v, got %v", marquee.StateAnimating, m.State())
	}
	if cmd == nil {
		t.Fatal("want a frame command")
	}
	return m
}

func TestModelReadyPrecedesAnimating(t *testing.T) {
	cfg := marquee.DefaultConfig()
	cfg.Duration = time.Second

	m, cmd := New("content wider than the window", cfg).SetWidth(10)
	if m.State() != marquee.StateReady {
		t.Fatalf("want %v, got %v", marquee.StateReady, m.State())
	}
	if cmd == nil {
		t.Fatal("want a frame command")
	}

	m, _ = m.Update(FrameMsg{id: m.id, tag: m.tag})
	if m.State() != marquee.StateAnimating {
		t.Errorf("want %v, got %v", marquee.StateAnimating, m.State())
	}
}

func TestModelLifecycle(t *testing.T) {
	cfg := marquee.DefaultConfig()
	cfg.Duration = 40 * time.Millisecond

	m, cmd := New("content wider than the window", cfg).SetWidth(10)
	if m.State() != marquee.StateReady {
		t.Fatalf("want %v, got %v", marquee.StateReady, m.State())
	}

	// drive the tick loop to completion, as a tea.Program would
	for i := 0; cmd != nil; i++ {
		if i > 100 {
			t.Fatal("animation did not finish")
		}
		m, cmd = m.Update(cmd())
	}
	if m.State() != marquee.StateIdle {
		t.Errorf("want %v, got %v", marquee.StateIdle, m.State())
	}
}

func TestModelZeroDuration(t *testing.T) {
	cfg := marquee.DefaultConfig()
	cfg.Duration = 0

	m, cmd := New("hello", cfg).SetWidth(10)
	if m.State() != marquee.StateIdle {
		t.Errorf("want %v, got %v", marquee.StateIdle, m.State())
	}
	if cmd != nil {
		t.Error("want no frame command for zero duration")
	}
}

func TestModelStopWhenNotFit(t *testing.T) {
	cfg := marquee.DefaultConfig()
	cfg.Duration = time.Second
	cfg.StopWhenNotFit = true

	m, cmd := New("hi", cfg).SetWidth(10)
	if m.State() != marquee.StateIdle {
		t.Errorf("want %v, got %v", marquee.StateIdle, m.State())
	}
	if cmd != nil {
		t.Error("want no frame command for fitting content")
	}
}

func TestModelStaleFrameDropped(t *testing.T) {
	cfg := marquee.DefaultConfig()
	cfg.Duration = time.Second
	m := animatingModel(t, "content wider than the window", cfg)

	stale := FrameMsg{id: m.id, tag: m.tag}
	m, _ = m.Restart()

	next, cmd := m.Update(stale)
	if cmd != nil {
		t.Error("stale frame produced a command")
	}
	if next.State() != marquee.StateReady {
		t.Errorf("want %v, got %v", marquee.StateReady, next.State())
	}

	fresh := FrameMsg{id: m.id, tag: m.tag}
	if _, cmd = m.Update(fresh); cmd == nil {
		t.Error("fresh frame produced no command")
	}
}

func TestModelViewWidth(t *testing.T) {
	cfg := marquee.DefaultConfig()
	cfg.Duration = time.Second
	m := animatingModel(t, "content wider than the window", cfg)

	if got := m.View(); len(got) != 10 {
		t.Errorf("want a 10 column frame, got %q", got)
	}
	if got := m.Width(); got != 10 {
		t.Errorf("want 10, got %d", got)
	}
}
