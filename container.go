package marquee

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/VividCortex/ewma"
	"github.com/charmbracelet/log"

	"github.com/e-001/marquee/cwriter"
)

const (
	// default refresh rate
	crr = 120 * time.Millisecond
	// fallback width when the output is not a terminal
	cwidth = 80
)

// Container orchestrates the rendering of marquee widgets.
type Container struct {
	ctx          context.Context
	uwg          *sync.WaitGroup
	mwg          *sync.WaitGroup
	operateState chan func(*cState)
	done         chan struct{}
}

// container state, which may hold several marquees
type cState struct {
	rows      []*Marquee
	idCounter int
	zeroWait  bool
	reqWidth  int
	rr        time.Duration
	cw        *cwriter.Writer
	renderAvg ewma.MovingAverage
	overrun   bool

	// following are provided by user
	uwg              *sync.WaitGroup
	shutdownNotifier chan struct{}
	debugOut         io.Writer
	logger           *log.Logger
}

// New creates a new Container instance, which orchestrates the marquee
// rendering process. Accepts marquee.ContainerOption funcs for
// customization.
func New(options ...ContainerOption) *Container {
	return NewWithContext(context.Background(), options...)
}

// NewWithContext creates a new Container instance with the provided context.
// Cancelling the context unmounts every marquee and shuts the rendering
// goroutine down.
func NewWithContext(ctx context.Context, options ...ContainerOption) *Container {
	if ctx == nil {
		ctx = context.Background()
	}
	s := &cState{
		rr:        crr,
		cw:        cwriter.New(os.Stdout),
		renderAvg: ewma.NewMovingAverage(),
		debugOut:  io.Discard,
		logger:    log.New(io.Discard),
	}

	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	c := &Container{
		ctx:          ctx,
		uwg:          s.uwg,
		mwg:          new(sync.WaitGroup),
		operateState: make(chan func(*cState)),
		done:         make(chan struct{}),
	}
	go c.serve(s)
	return c
}

// Add creates a new marquee with the provided content and mounts it below
// any previously added rows. Returns nil after the container has shut down.
func (c *Container) Add(content string, options ...MarqueeOption) *Marquee {
	c.mwg.Add(1)
	result := make(chan *Marquee)
	select {
	case c.operateState <- func(s *cState) {
		m := newMarquee(c, c.mwg, s.idCounter, s.logger, content, options...)
		s.rows = append(s.rows, m)
		s.idCounter++
		result <- m
	}:
		return <-result
	case <-c.done:
		c.mwg.Done()
		return nil
	}
}

// Count returns the number of mounted marquees.
func (c *Container) Count() int {
	result := make(chan int, 1)
	select {
	case c.operateState <- func(s *cState) { result <- len(s.rows) }:
		return <-result
	case <-c.done:
		return 0
	}
}

// Wait first waits for the user provided *sync.WaitGroup, if any, then for
// all marquees to unmount and finally shuts the rendering goroutine down.
// There is no way to reuse a *Container after Wait has returned.
func (c *Container) Wait() {
	if c.uwg != nil {
		c.uwg.Wait()
	}

	c.mwg.Wait()

	select {
	case c.operateState <- func(s *cState) { s.zeroWait = true }:
		<-c.done
	case <-c.done:
	}
}

func (c *Container) serve(s *cState) {
	defer close(c.done)

	ticker := time.NewTicker(s.rr)
	defer ticker.Stop()

	for {
		select {
		case op := <-c.operateState:
			op(s)
			if s.zeroWait {
				s.shutdown()
				return
			}
		case <-ticker.C:
			s.render()
		case <-c.ctx.Done():
			for _, m := range s.rows {
				close(m.shutdown)
			}
			s.rows = nil
			s.shutdown()
			return
		}
	}
}

func (s *cState) shutdown() {
	if s.shutdownNotifier != nil {
		close(s.shutdownNotifier)
	}
}

// remove unmounts m: its row disappears on the next flush.
func (s *cState) remove(m *Marquee) {
	for i, row := range s.rows {
		if row == m {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			break
		}
	}
	select {
	case <-m.shutdown:
	default:
		close(m.shutdown)
	}
}

func (s *cState) render() {
	// leave the last flushed frame on screen once every row is gone
	if len(s.rows) == 0 {
		return
	}

	start := time.Now()

	tw := s.reqWidth
	if tw <= 0 {
		var err error
		if tw, _, err = s.cw.GetTermSize(); err != nil {
			tw = cwidth
		}
	}

	if err := s.flush(tw); err != nil {
		fmt.Fprintln(s.debugOut, err)
	}

	s.observeRenderTime(time.Since(start))
}

func (s *cState) flush(tw int) error {
	var lines int
	var dropped []*Marquee
	for _, m := range s.rows {
		f := m.render(tw)
		if f.toDrop {
			dropped = append(dropped, m)
			continue
		}
		for _, row := range f.rows {
			if _, err := s.cw.WriteString(row); err != nil {
				return err
			}
			lines++
		}
	}
	for _, m := range dropped {
		s.remove(m)
	}
	return s.cw.Flush(lines)
}

// observeRenderTime feeds the moving average used to detect render cycles
// which persistently overrun the refresh rate.
func (s *cState) observeRenderTime(d time.Duration) {
	s.renderAvg.Add(float64(d))
	if avg := time.Duration(s.renderAvg.Value()); avg > s.rr {
		if !s.overrun {
			s.overrun = true
			s.logger.Warn("render overruns refresh rate", "avg", avg, "rate", s.rr)
		}
	} else {
		s.overrun = false
	}
}
