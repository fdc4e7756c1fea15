package marquee

import "time"

// MarqueeOption is a function option which changes the default behavior of a
// marquee, if passed to Container.Add.
type MarqueeOption func(*mState)

// MarqueeID overrides the container assigned id.
func MarqueeID(id int) MarqueeOption {
	return func(s *mState) {
		s.id = id
	}
}

// MarqueeWidth fixes the scroll window width, independent of the container.
func MarqueeWidth(width int) MarqueeOption {
	return func(s *mState) {
		if width > 0 {
			s.reqWidth = width
		}
	}
}

// MarqueeDuration sets the animation cycle length. The default zero duration
// leaves the content resting at its idle alignment.
func MarqueeDuration(d time.Duration) MarqueeOption {
	return func(s *mState) {
		s.cfg.Duration = d
	}
}

// MarqueeDelay sets the start delay applied to each cycle.
func MarqueeDelay(d time.Duration) MarqueeOption {
	return func(s *mState) {
		s.cfg.Delay = d
	}
}

// MarqueeAutoreverses alternates the direction of travel each repetition.
func MarqueeAutoreverses() MarqueeOption {
	return func(s *mState) {
		s.cfg.Autoreverses = true
	}
}

// MarqueeDirection sets the direction of travel, RightToLeft by default.
func MarqueeDirection(direction Direction) MarqueeOption {
	return func(s *mState) {
		s.cfg.Direction = direction
	}
}

// MarqueeStopWhenNotFit suppresses scrolling of content which already fits
// the window.
func MarqueeStopWhenNotFit() MarqueeOption {
	return func(s *mState) {
		s.cfg.StopWhenNotFit = true
	}
}

// MarqueeIdleAlignment sets the rest position used while not animating.
func MarqueeIdleAlignment(alignment Alignment) MarqueeOption {
	return func(s *mState) {
		s.cfg.IdleAlignment = alignment
	}
}

// MarqueeBoundary selects the inner or outer scroll path.
func MarqueeBoundary(boundary Boundary) MarqueeOption {
	return func(s *mState) {
		s.cfg.Boundary = boundary
	}
}

// MarqueeLoopCount sets the repetition count, LoopForever for no limit.
func MarqueeLoopCount(n int) MarqueeOption {
	return func(s *mState) {
		s.cfg.LoopCount = n
	}
}

// MarqueeConfig replaces the whole configuration surface at once.
func MarqueeConfig(cfg Config) MarqueeOption {
	return func(s *mState) {
		s.cfg = cfg
	}
}

// MarqueePrefix renders static text to the left of the scroll window. The
// window shrinks by the prefix width.
func MarqueePrefix(prefix string) MarqueeOption {
	return func(s *mState) {
		s.prefix = prefix
	}
}

// MarqueeSuffix renders static text to the right of the scroll window. The
// window shrinks by the suffix width.
func MarqueeSuffix(suffix string) MarqueeOption {
	return func(s *mState) {
		s.suffix = suffix
	}
}

// MarqueeMeta applies fn to the rendered scroll window, after clipping.
// Useful for ANSI styling which must not affect width measurement.
func MarqueeMeta(fn func(string) string) MarqueeOption {
	return func(s *mState) {
		if fn != nil {
			s.meta = fn
		}
	}
}

// MarqueeRemoveOnIdle unmounts the marquee once a finite animation has
// returned to idle.
func MarqueeRemoveOnIdle() MarqueeOption {
	return func(s *mState) {
		s.removeOnIdle = true
	}
}

// MarqueeOnStateChange registers fn to be notified of every state
// transition. It is called synchronously while the marquee state is held, so
// it must not block.
func MarqueeOnStateChange(fn func(StateChange)) MarqueeOption {
	return func(s *mState) {
		if fn != nil {
			s.onState = append(s.onState, fn)
		}
	}
}

// MarqueeOptOn returns option when condition evaluates to true.
func MarqueeOptOn(option MarqueeOption, condition func() bool) MarqueeOption {
	if condition() {
		return option
	}
	return nil
}
