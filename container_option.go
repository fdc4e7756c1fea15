package marquee

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/e-001/marquee/cwriter"
)

// ContainerOption is a function option which changes the default behavior of
// the container, if passed to marquee.New(...ContainerOption).
type ContainerOption func(*cState)

// WithWaitGroup provides means to have a single joint point. If
// *sync.WaitGroup is provided, you can safely call just c.Wait() without
// calling Wait() on the provided *sync.WaitGroup.
func WithWaitGroup(wg *sync.WaitGroup) ContainerOption {
	return func(s *cState) {
		s.uwg = wg
	}
}

// WithWidth overrides the terminal width for every marquee the container
// renders.
func WithWidth(width int) ContainerOption {
	return func(s *cState) {
		if width > 0 {
			s.reqWidth = width
		}
	}
}

// WithRefreshRate overrides the default 120ms refresh rate.
func WithRefreshRate(d time.Duration) ContainerOption {
	return func(s *cState) {
		if d > 0 {
			s.rr = d
		}
	}
}

// WithOutput overrides the default output os.Stdout.
func WithOutput(w io.Writer) ContainerOption {
	return func(s *cState) {
		if w == nil {
			w = io.Discard
		}
		s.cw = cwriter.New(w)
	}
}

// WithShutdownNotifier provided channel will be closed after the rendering
// goroutine has shut down.
func WithShutdownNotifier(done chan struct{}) ContainerOption {
	return func(s *cState) {
		s.shutdownNotifier = done
	}
}

// WithDebugOutput sets the writer render errors are reported on.
func WithDebugOutput(w io.Writer) ContainerOption {
	return func(s *cState) {
		if w == nil {
			w = io.Discard
		}
		s.debugOut = w
	}
}

// WithLogger sets the logger state transitions and render diagnostics are
// reported on. The default logger discards everything.
func WithLogger(logger *log.Logger) ContainerOption {
	return func(s *cState) {
		if logger != nil {
			s.logger = logger
		}
	}
}
