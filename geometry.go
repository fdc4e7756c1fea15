package marquee

import "time"

//go:generate stringer -type=State -trimprefix=State
//go:generate stringer -type=Direction
//go:generate stringer -type=Alignment -trimprefix=Align
//go:generate stringer -type=Boundary -trimprefix=Boundary

// State is the animation phase of a marquee widget.
type State int32

const (
	// StateIdle means content rests at its idle alignment.
	StateIdle State = iota
	// StateReady means content sits at its pre scroll position.
	StateReady
	// StateAnimating means content travels towards its end position.
	StateAnimating
)

// Direction is the direction of travel.
type Direction int

const (
	// RightToLeft scrolls content towards the left edge.
	RightToLeft Direction = iota
	// LeftToRight scrolls content towards the right edge.
	LeftToRight
)

// Alignment is the resting position of content while not animating.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Boundary controls whether the scroll path starts and ends within or
// beyond the visible window edges.
type Boundary int

const (
	// BoundaryInner keeps content within the window bounds at rest.
	BoundaryInner Boundary = iota
	// BoundaryOuter starts and ends the scroll with content fully
	// outside the window bounds.
	BoundaryOuter
)

// LoopForever as a Config.LoopCount repeats the animation indefinitely.
const LoopForever = 0

// Config is the complete configuration surface of a marquee widget.
// The zero value disables scrolling: content rests left aligned.
type Config struct {
	// Duration is the animation cycle length. Non positive duration
	// disables scrolling.
	Duration time.Duration
	// Delay is the start delay applied to each cycle.
	Delay time.Duration
	// Autoreverses alternates the direction of travel each repetition.
	Autoreverses bool
	// Direction of travel, RightToLeft by default.
	Direction Direction
	// StopWhenNotFit suppresses the animation when content is narrower
	// than the window, i.e. when it already fits.
	StopWhenNotFit bool
	// IdleAlignment is the rest position when not animating.
	IdleAlignment Alignment
	// Boundary selects the inner or outer scroll path.
	Boundary Boundary
	// LoopCount is the number of repetitions, LoopForever for no limit.
	// Values below LoopForever are treated as a single repetition.
	LoopCount int
}

// DefaultConfig returns the documented defaults: scrolling disabled until a
// positive duration is set, right to left travel, left idle alignment, inner
// boundary, a single repetition.
func DefaultConfig() Config {
	return Config{LoopCount: 1}
}

// Loops reports the effective repetition count: LoopCount with values below
// LoopForever clamped to a single repetition.
func (cfg Config) Loops() int {
	if cfg.LoopCount < LoopForever {
		return 1
	}
	return cfg.LoopCount
}

// OffsetX is the horizontal offset of content relative to the window's
// left edge, for the given animation state. Degenerate geometry is fine:
// zero widths simply produce zero or negative offsets.
func OffsetX(state State, cfg Config, containerWidth, contentWidth float64) float64 {
	switch state {
	case StateReady:
		if cfg.Direction == LeftToRight {
			return -contentWidth
		}
		if cfg.Boundary == BoundaryOuter {
			return containerWidth
		}
		return 0
	case StateAnimating:
		if cfg.Direction == LeftToRight {
			return containerWidth
		}
		if cfg.Boundary == BoundaryOuter {
			return -contentWidth
		}
		return containerWidth - contentWidth
	default:
		switch cfg.IdleAlignment {
		case AlignCenter:
			return 0.5 * (containerWidth - contentWidth)
		case AlignRight:
			return containerWidth - contentWidth
		default:
			return 0
		}
	}
}

// progressAt is the linear interpolation fraction between the ready and the
// animating offsets after elapsed animation time. Each cycle holds the ready
// offset for cfg.Delay, then travels for cfg.Duration. Odd cycles run in
// reverse when cfg.Autoreverses is set. Once a finite repetition count is
// exhausted the fraction freezes at the final cycle's end position.
func progressAt(elapsed time.Duration, cfg Config) float64 {
	if cfg.Duration <= 0 || elapsed < 0 {
		return 0
	}
	delay := cfg.Delay
	if delay < 0 {
		delay = 0
	}
	cycle := delay + cfg.Duration
	n := int(elapsed / cycle)
	if loops := cfg.Loops(); loops != LoopForever && n >= loops {
		if cfg.Autoreverses && loops%2 == 0 {
			return 0
		}
		return 1
	}
	var frac float64
	if t := elapsed - time.Duration(n)*cycle; t > delay {
		frac = float64(t-delay) / float64(cfg.Duration)
	}
	if frac > 1 {
		frac = 1
	}
	if cfg.Autoreverses && n%2 == 1 {
		frac = 1 - frac
	}
	return frac
}

// renderOffset is the offset content is drawn at: the plain OffsetX value
// while idle or ready, an interpolated position while animating.
func renderOffset(state State, cfg Config, containerWidth, contentWidth float64, elapsed time.Duration) float64 {
	if state != StateAnimating {
		return OffsetX(state, cfg, containerWidth, contentWidth)
	}
	from := OffsetX(StateReady, cfg, containerWidth, contentWidth)
	to := OffsetX(StateAnimating, cfg, containerWidth, contentWidth)
	return from + (to-from)*progressAt(elapsed, cfg)
}
