package cli

import (
	"fmt"
	"strings"

	"github.com/e-001/marquee"
)

// ParseDirection maps a flag or preset value to a scroll direction.
func ParseDirection(s string) (marquee.Direction, error) {
	switch strings.ToLower(s) {
	case "rtl", "right-to-left":
		return marquee.RightToLeft, nil
	case "ltr", "left-to-right":
		return marquee.LeftToRight, nil
	}
	return 0, fmt.Errorf("unknown direction %q (want rtl or ltr)", s)
}

// ParseAlignment maps a flag or preset value to an idle alignment.
func ParseAlignment(s string) (marquee.Alignment, error) {
	switch strings.ToLower(s) {
	case "left":
		return marquee.AlignLeft, nil
	case "center":
		return marquee.AlignCenter, nil
	case "right":
		return marquee.AlignRight, nil
	}
	return 0, fmt.Errorf("unknown alignment %q (want left, center or right)", s)
}

// ParseBoundary maps a flag or preset value to a boundary mode.
func ParseBoundary(s string) (marquee.Boundary, error) {
	switch strings.ToLower(s) {
	case "inner":
		return marquee.BoundaryInner, nil
	case "outer":
		return marquee.BoundaryOuter, nil
	}
	return 0, fmt.Errorf("unknown boundary %q (want inner or outer)", s)
}
