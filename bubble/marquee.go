// Package bubble provides a Bubble Tea model for the marquee widget, for
// embedding auto scrolling lines in bubbletea programs. The model is a
// value: unmounting is simply dropping it, and a frame message addressed to
// a stale model generation is ignored.
package bubble

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/e-001/marquee"
)

// DefaultFPS is the frame rate used when Model.FPS is left zero.
const DefaultFPS = 30

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances the marquee animation. It carries the model id and a
// generation tag, so frames scheduled before a restart are dropped.
type FrameMsg struct {
	id  int
	tag int
}

// Model holds the marquee animation state for a bubbletea program.
type Model struct {
	// Config is the scrolling configuration. Mutate it and call Restart
	// for changes to take effect.
	Config marquee.Config
	// Style is applied to the rendered window.
	Style lipgloss.Style
	// FPS is the frame rate of the animation, DefaultFPS when zero.
	FPS int

	id      int
	tag     int
	content marquee.Content
	width   int
	state   marquee.State
	start   time.Time
}

// New returns a marquee model with the given content and configuration. The
// window width starts at zero; feed the model a tea.WindowSizeMsg or call
// SetWidth before the first View.
func New(text string, cfg marquee.Config) Model {
	return Model{
		Config:  cfg,
		id:      nextID(),
		content: marquee.ParseContent(text),
	}
}

// Init does nothing. Animation starts once a width is known.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update is the Tea update function. Route tea.WindowSizeMsg and FrameMsg
// values here.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetWidth(msg.Width)
	case FrameMsg:
		if msg.id != m.id || msg.tag != m.tag {
			return m, nil
		}
		switch m.state {
		case marquee.StateReady:
			m.state = marquee.StateAnimating
			m.start = time.Now()
			return m, m.frame()
		case marquee.StateAnimating:
			loops := m.Config.Loops()
			if loops != marquee.LoopForever &&
				time.Since(m.start) >= time.Duration(loops)*m.Config.Duration {
				m.state = marquee.StateIdle
				return m, nil
			}
			return m, m.frame()
		}
	}
	return m, nil
}

// View renders the current frame.
func (m Model) View() string {
	window := m.content.Frame(m.state, m.Config, m.width, time.Since(m.start))
	return m.Style.Render(window)
}

// SetWidth sets the scroll window width and restarts the animation if the
// width changed.
func (m Model) SetWidth(width int) (Model, tea.Cmd) {
	if width < 0 {
		width = 0
	}
	if width == m.width {
		return m, nil
	}
	m.width = width
	return m.Restart()
}

// SetContent replaces the scrolled content, restarting the animation if the
// measured width changed.
func (m Model) SetContent(text string) (Model, tea.Cmd) {
	next := marquee.ParseContent(text)
	changed := next.Width() != m.content.Width()
	m.content = next
	if !changed {
		return m, nil
	}
	return m.Restart()
}

// Restart re-triggers the animation with the current configuration and
// geometry. The model moves to the ready state, rendering the pre scroll
// position, and the next frame message starts the scroll. Frame messages from
// before the restart are void.
func (m Model) Restart() (Model, tea.Cmd) {
	m.tag++
	if m.Config.Duration <= 0 {
		m.state = marquee.StateIdle
		return m, nil
	}
	if m.Config.StopWhenNotFit && m.content.Width() < m.width {
		m.state = marquee.StateIdle
		return m, nil
	}
	m.state = marquee.StateReady
	return m, m.frame()
}

// State returns the current animation state.
func (m Model) State() marquee.State {
	return m.state
}

// Width returns the current scroll window width.
func (m Model) Width() int {
	return m.width
}

func (m Model) frame() tea.Cmd {
	fps := m.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	id, tag := m.id, m.tag
	return tea.Tick(time.Second/time.Duration(fps), func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}
