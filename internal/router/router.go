// Package router provides navigation targets for activated notifications.
package router

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/cristianoliveira/inbox/internal/logging"
)

const (
	// KindPrint prints the navigation target.
	KindPrint = "print"
	// KindOpen hands the navigation target to the platform opener.
	KindOpen = "open"

	// DefaultTimeout bounds the opener command.
	DefaultTimeout = 5 * time.Second
)

// Resolve joins a relative notification URL onto baseURL. Absolute URLs and
// an empty baseURL leave target unchanged.
func Resolve(baseURL, target string) string {
	if baseURL == "" {
		return target
	}
	ref, err := url.Parse(target)
	if err != nil || ref.IsAbs() {
		return target
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return target
	}
	return base.ResolveReference(ref).String()
}

// Printer writes each navigation target as a line to w.
type Printer struct {
	w       io.Writer
	baseURL string
}

// NewPrinter creates a Printer.
func NewPrinter(w io.Writer, baseURL string) *Printer {
	return &Printer{w: w, baseURL: baseURL}
}

// NavigateTo prints the resolved target.
func (p *Printer) NavigateTo(target string) {
	fmt.Fprintf(p.w, "Navigate to: %s\n", Resolve(p.baseURL, target))
}

// CommandRunner runs an external command.
type CommandRunner func(ctx context.Context, name string, args ...string) (stderr string, err error)

func execRunner(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stderr.String(), err
}

// OpenerOption configures an Opener.
type OpenerOption func(*Opener)

// WithRunner replaces the command runner.
func WithRunner(run CommandRunner) OpenerOption {
	return func(o *Opener) {
		o.run = run
	}
}

// WithTimeout sets how long the opener command may run.
func WithTimeout(d time.Duration) OpenerOption {
	return func(o *Opener) {
		o.timeout = d
	}
}

// Opener launches the platform URL opener (xdg-open, open, or start).
// Failures are logged; navigation never reports back to the caller.
type Opener struct {
	baseURL string
	command []string
	run     CommandRunner
	timeout time.Duration
	logger  logging.Logger
}

// NewOpener creates an Opener for the current platform.
func NewOpener(baseURL string, opts ...OpenerOption) *Opener {
	o := &Opener{
		baseURL: baseURL,
		command: openerCommand(runtime.GOOS),
		run:     execRunner,
		timeout: DefaultTimeout,
		logger:  logging.GetGlobal(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func openerCommand(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// NavigateTo opens the resolved target.
func (o *Opener) NavigateTo(target string) {
	resolved := Resolve(o.baseURL, target)
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	args := append(append([]string{}, o.command[1:]...), resolved)
	start := time.Now()
	stderr, err := o.run(ctx, o.command[0], args...)
	if err != nil {
		o.logger.Warn("open url failed", "url", resolved, "error", err, "stderr", strings.TrimSpace(stderr))
		return
	}
	o.logger.Debug("opened url", "url", resolved, "duration_seconds", time.Since(start).Seconds())
}

// Navigator is the interface every router satisfies.
type Navigator interface {
	NavigateTo(target string)
}

// New returns the router selected by kind. Unknown kinds fall back to the printer.
func New(kind string, w io.Writer, baseURL string) Navigator {
	if strings.ToLower(kind) == KindOpen {
		return NewOpener(baseURL)
	}
	return NewPrinter(w, baseURL)
}
