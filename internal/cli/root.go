// Package cli implements the marquee command-line interface: a small
// renderer which scrolls the given text lines across the terminal until the
// configured repetitions complete or the process is interrupted.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/e-001/marquee"
)

var (
	version string // semantic version
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// flagValues carries the config flags of the root command.
type flagValues struct {
	duration time.Duration
	delay    time.Duration
	reverses bool
	dir      string
	align    string
	boundary string
	loops    int
	stopFit  bool
}

// merge overlays the flag values onto cfg. A nil changed func applies every
// value; otherwise only flags it reports as changed apply, so explicit flags
// win over a preset without clobbering it with flag defaults.
func (f flagValues) merge(cfg marquee.Config, changed func(string) bool) (marquee.Config, error) {
	if changed == nil {
		changed = func(string) bool { return true }
	}
	if changed("duration") {
		cfg.Duration = f.duration
	}
	if changed("delay") {
		cfg.Delay = f.delay
	}
	if changed("autoreverse") {
		cfg.Autoreverses = f.reverses
	}
	if changed("stop-when-not-fit") {
		cfg.StopWhenNotFit = f.stopFit
	}
	if changed("loops") {
		cfg.LoopCount = f.loops
	}
	var err error
	if changed("direction") {
		if cfg.Direction, err = ParseDirection(f.dir); err != nil {
			return cfg, err
		}
	}
	if changed("align") {
		if cfg.IdleAlignment, err = ParseAlignment(f.align); err != nil {
			return cfg, err
		}
	}
	if changed("boundary") {
		if cfg.Boundary, err = ParseBoundary(f.boundary); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Execute runs the marquee CLI and returns an error if the command fails.
func Execute() error {
	var (
		f          flagValues
		verbose    bool
		presetPath string
		width      int
		fps        int
	)

	root := &cobra.Command{
		Use:   "marquee [text...]",
		Short: "Scroll text across the terminal",
		Long: `Marquee renders one auto scrolling line per text argument. With no
arguments, lines are read from standard input. A finite --loops count exits
once every line has returned to rest; otherwise scroll until interrupted.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)

			cfg := marquee.DefaultConfig()
			var changed func(string) bool
			if presetPath != "" {
				p, err := LoadPreset(presetPath)
				if err != nil {
					return err
				}
				if cfg, err = p.Config(); err != nil {
					return err
				}
				logger.Debug("loaded preset", "path", presetPath)
				changed = cmd.Flags().Changed
			}

			cfg, err := f.merge(cfg, changed)
			if err != nil {
				return err
			}

			lines := args
			if len(lines) == 0 {
				if lines, err = readLines(os.Stdin); err != nil {
					return err
				}
			}

			return run(cmd.Context(), logger, cfg, lines, width, fps)
		},
	}

	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().StringVar(&presetPath, "preset", "", "TOML preset file")
	root.Flags().DurationVar(&f.duration, "duration", 6*time.Second, "animation cycle length")
	root.Flags().DurationVar(&f.delay, "delay", 0, "start delay per cycle")
	root.Flags().BoolVar(&f.reverses, "autoreverse", false, "alternate direction each repetition")
	root.Flags().StringVar(&f.dir, "direction", "rtl", "scroll direction (rtl or ltr)")
	root.Flags().StringVar(&f.align, "align", "left", "idle alignment (left, center or right)")
	root.Flags().StringVar(&f.boundary, "boundary", "inner", "scroll path (inner or outer)")
	root.Flags().IntVar(&f.loops, "loops", marquee.LoopForever, "repetition count, 0 for forever")
	root.Flags().BoolVar(&f.stopFit, "stop-when-not-fit", false, "do not scroll content which already fits")
	root.Flags().IntVar(&width, "width", 0, "window width, 0 for the terminal width")
	root.Flags().IntVar(&fps, "fps", 0, "refresh rate in frames per second")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return root.ExecuteContext(ctx)
}

func run(ctx context.Context, logger *charmlog.Logger, cfg marquee.Config, lines []string, width, fps int) error {
	copts := []marquee.ContainerOption{
		marquee.WithLogger(logger),
		marquee.WithDebugOutput(os.Stderr),
	}
	if width > 0 {
		copts = append(copts, marquee.WithWidth(width))
	}
	if fps > 0 {
		copts = append(copts, marquee.WithRefreshRate(time.Second/time.Duration(fps)))
	}

	c := marquee.NewWithContext(ctx, copts...)
	for _, line := range lines {
		mopts := []marquee.MarqueeOption{marquee.MarqueeConfig(cfg)}
		if cfg.Loops() != marquee.LoopForever {
			mopts = append(mopts, marquee.MarqueeRemoveOnIdle())
		}
		c.Add(line, mopts...)
	}
	c.Wait()
	return nil
}

func readLines(f *os.File) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	if len(lines) == 0 {
		return nil, errors.New("no text to scroll")
	}
	return lines, nil
}
