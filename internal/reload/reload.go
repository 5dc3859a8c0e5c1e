// Package reload asks a running status bar to re-read its stylesheet.
package reload

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// ErrSignalFailure is returned when the signal could not be delivered.
var ErrSignalFailure = errors.New("reload signal failed")

const (
	DefaultProcess = "waybar"
	DefaultSignal  = "USR2"
)

// CommandRunner runs an external command and waits for it.
type CommandRunner func(ctx context.Context, name string, args ...string) error

func execRunner(ctx context.Context, name string, args ...string) error {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// Signaler sends Signal to every process named Process using pkill.
type Signaler struct {
	Process string
	Signal  string
	run     CommandRunner
	logger  zerolog.Logger
}

// Option configures a Signaler.
type Option func(*Signaler)

// WithRunner replaces the command runner.
func WithRunner(run CommandRunner) Option {
	return func(s *Signaler) {
		if run != nil {
			s.run = run
		}
	}
}

// New returns a Signaler; empty process or signal names use the defaults.
func New(process, signal string, logger zerolog.Logger, opts ...Option) *Signaler {
	if process == "" {
		process = DefaultProcess
	}
	if signal == "" {
		signal = DefaultSignal
	}
	s := &Signaler{
		Process: process,
		Signal:  strings.TrimPrefix(strings.ToUpper(signal), "SIG"),
		run:     execRunner,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reload delivers the signal. pkill exits non-zero when no process matched,
// which is reported as ErrSignalFailure too.
func (s *Signaler) Reload(ctx context.Context) error {
	if err := s.run(ctx, "pkill", "-"+s.Signal, s.Process); err != nil {
		return fmt.Errorf("%w: signal %s to %s: %v", ErrSignalFailure, s.Signal, s.Process, err)
	}
	s.logger.Debug().Str("process", s.Process).Str("signal", s.Signal).Msg("reload signal sent")
	return nil
}
