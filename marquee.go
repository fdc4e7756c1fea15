// Package marquee renders horizontally auto scrolling lines of text in a
// terminal. A Container orchestrates rendering of Marquee widgets at a
// refresh rate, each widget owning its own animation state machine.
package marquee

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// StateChange describes a single state transition of a marquee widget.
type StateChange struct {
	ID   int
	From State
	To   State
}

// Marquee represents a single auto scrolling line of content.
type Marquee struct {
	container *Container
	// shutdown channel to request m.serve to quit
	shutdown chan struct{}
	// done channel is receiveable after m.serve has quit
	done         chan struct{}
	operateState chan func(*mState)

	// following is used after m.done is receiveable
	cacheState *mState
}

type mState struct {
	id  int
	cfg Config

	content Content
	// window width override, zero means track the container width
	reqWidth int
	// measured container width, zero until first render
	viewport int

	state     State
	animStart time.Time

	// pending return to idle transition
	resetTimer *time.Timer
	resetGen   uint64

	prefix string
	suffix string
	meta   func(string) string

	removeOnIdle bool
	toDrop       bool

	onState []func(StateChange)
	logger  *log.Logger
}

type frame struct {
	rows   []string
	toDrop bool
}

func newMarquee(container *Container, wg *sync.WaitGroup, id int, logger *log.Logger, content string, options ...MarqueeOption) *Marquee {
	s := &mState{
		id:      id,
		cfg:     DefaultConfig(),
		content: ParseContent(content),
		logger:  logger,
	}

	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	m := &Marquee{
		container:    container,
		shutdown:     make(chan struct{}),
		done:         make(chan struct{}),
		operateState: make(chan func(*mState)),
	}

	s.resetAnimation(m)

	go m.serve(s, wg)
	return m
}

// ID returns the id of the marquee.
func (m *Marquee) ID() int {
	result := make(chan int, 1)
	select {
	case m.operateState <- func(s *mState) { result <- s.id }:
		return <-result
	case <-m.done:
		return m.cacheState.id
	}
}

// State returns the current animation state.
func (m *Marquee) State() State {
	result := make(chan State, 1)
	select {
	case m.operateState <- func(s *mState) { result <- s.state }:
		return <-result
	case <-m.done:
		return m.cacheState.state
	}
}

// SetContent replaces the scrolled content. The animation restarts only if
// the measured width actually changes.
func (m *Marquee) SetContent(content string) {
	m.operate(func(s *mState) {
		next := ParseContent(content)
		changed := next.Width() != s.content.Width()
		s.content = next
		if changed {
			s.resetAnimation(m)
		}
	})
}

// SetDuration sets the animation cycle length. Non positive duration stops
// the animation. The animation restarts with the new value.
func (m *Marquee) SetDuration(d time.Duration) {
	m.operate(func(s *mState) {
		if s.cfg.Duration == d {
			return
		}
		s.cfg.Duration = d
		s.resetAnimation(m)
	})
}

// SetDelay sets the per cycle start delay. The animation restarts.
func (m *Marquee) SetDelay(d time.Duration) {
	m.operate(func(s *mState) {
		if s.cfg.Delay == d {
			return
		}
		s.cfg.Delay = d
		s.resetAnimation(m)
	})
}

// SetAutoreverses toggles direction reversal per repetition. The animation
// restarts.
func (m *Marquee) SetAutoreverses(autoreverses bool) {
	m.operate(func(s *mState) {
		if s.cfg.Autoreverses == autoreverses {
			return
		}
		s.cfg.Autoreverses = autoreverses
		s.resetAnimation(m)
	})
}

// SetDirection sets the direction of travel. The animation restarts.
func (m *Marquee) SetDirection(direction Direction) {
	m.operate(func(s *mState) {
		if s.cfg.Direction == direction {
			return
		}
		s.cfg.Direction = direction
		s.resetAnimation(m)
	})
}

// SetStopWhenNotFit suppresses scrolling of content which already fits the
// window. Takes effect on the next animation trigger.
func (m *Marquee) SetStopWhenNotFit(stop bool) {
	m.operate(func(s *mState) { s.cfg.StopWhenNotFit = stop })
}

// SetIdleAlignment sets the rest position used while idle.
func (m *Marquee) SetIdleAlignment(alignment Alignment) {
	m.operate(func(s *mState) { s.cfg.IdleAlignment = alignment })
}

// SetBoundary selects the inner or outer scroll path. Takes effect on the
// next animation trigger.
func (m *Marquee) SetBoundary(boundary Boundary) {
	m.operate(func(s *mState) { s.cfg.Boundary = boundary })
}

// SetLoopCount sets the repetition count, LoopForever for no limit. Takes
// effect on the next animation trigger.
func (m *Marquee) SetLoopCount(n int) {
	m.operate(func(s *mState) { s.cfg.LoopCount = n })
}

// IsRunning reports whether the marquee is still mounted.
func (m *Marquee) IsRunning() bool {
	select {
	case <-m.done:
		return false
	default:
		return true
	}
}

// Abort unmounts the marquee: its row is removed on the next flush and no
// state transition, including any pending return to idle, happens afterwards.
func (m *Marquee) Abort() {
	select {
	case m.container.operateState <- func(s *cState) {
		s.remove(m)
	}:
	case <-m.container.done:
	}
}

// Wait blocks until the marquee is unmounted.
func (m *Marquee) Wait() {
	<-m.done
}

func (m *Marquee) operate(op func(*mState)) {
	select {
	case m.operateState <- op:
	case <-m.done:
	}
}

func (m *Marquee) serve(s *mState, wg *sync.WaitGroup) {
	defer func() {
		s.cancelReset()
		// unmount resets to idle, with no observable notification
		s.state = StateIdle
		m.cacheState = s
		close(m.done)
		wg.Done()
	}()

	for {
		select {
		case op := <-m.operateState:
			op(s)
		case <-m.shutdown:
			return
		}
	}
}

// render produces the current frame. Called from the container's render
// loop with the terminal width measured for this cycle.
func (m *Marquee) render(tw int) *frame {
	result := make(chan *frame, 1)
	select {
	case m.operateState <- func(s *mState) {
		if s.reqWidth == 0 && tw > 0 && s.viewport != tw {
			s.viewport = tw
			s.resetAnimation(m)
		}
		result <- s.draw()
	}:
		return <-result
	case <-m.done:
		return m.cacheState.draw()
	}
}

// resetAnimation implements the animation trigger protocol. It runs on
// initial mount and whenever duration, delay, autoreverses, direction or the
// measured geometry changes. Any pending return to idle is voided first.
func (s *mState) resetAnimation(m *Marquee) {
	s.cancelReset()

	if s.cfg.Duration <= 0 {
		s.setState(StateIdle)
		return
	}
	if s.cfg.StopWhenNotFit && s.content.Width() < s.window() {
		s.setState(StateIdle)
		return
	}

	s.setState(StateReady)
	s.setState(StateAnimating)
	s.animStart = time.Now()

	loops := s.cfg.Loops()
	if loops == LoopForever {
		return
	}
	gen := s.resetGen
	s.resetTimer = time.AfterFunc(time.Duration(loops)*s.cfg.Duration, func() {
		m.backToIdle(gen)
	})
}

// cancelReset voids any scheduled return to idle. Bumping the generation
// also neutralizes a timer which has fired but whose op is still in flight.
func (s *mState) cancelReset() {
	s.resetGen++
	if s.resetTimer != nil {
		s.resetTimer.Stop()
		s.resetTimer = nil
	}
}

// backToIdle is the deferred end of animation transition. It is void if the
// marquee was unmounted or reconfigured after it was scheduled.
func (m *Marquee) backToIdle(gen uint64) {
	select {
	case m.operateState <- func(s *mState) {
		if s.resetGen != gen {
			return
		}
		s.resetTimer = nil
		s.setState(StateIdle)
		if s.removeOnIdle {
			s.toDrop = true
		}
	}:
	case <-m.done:
	}
}

func (s *mState) setState(to State) {
	if s.state == to {
		return
	}
	change := StateChange{ID: s.id, From: s.state, To: to}
	s.state = to
	s.logger.Debug("marquee state change", "id", change.ID, "from", change.From, "to", change.To)
	for _, f := range s.onState {
		f(change)
	}
}

// window is the scroll window width in columns: the requested or measured
// viewport minus any prefix and suffix columns.
func (s *mState) window() int {
	w := s.viewport
	if s.reqWidth > 0 {
		w = s.reqWidth
	}
	w -= displayWidth(s.prefix) + displayWidth(s.suffix)
	if w < 0 {
		return 0
	}
	return w
}

func (s *mState) draw() *frame {
	window := s.content.Frame(s.state, s.cfg, s.window(), time.Since(s.animStart))
	if s.meta != nil {
		window = s.meta(window)
	}
	var sb strings.Builder
	sb.WriteString(s.prefix)
	sb.WriteString(window)
	sb.WriteString(s.suffix)
	sb.WriteByte('\n')
	return &frame{
		rows:   []string{sb.String()},
		toDrop: s.toDrop,
	}
}

// displayWidth reports the number of terminal columns s occupies, ignoring
// any ANSI styling.
func displayWidth(s string) int {
	return ParseContent(s).Width()
}
