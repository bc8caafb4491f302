// Package xdg invokes the bundled xdg-utils scripts. Each operation
// provisions a usable copy of the script on demand, runs it as a
// subprocess, and returns its captured output together with the
// script's exit status.
//
// Errors cover provisioning only (missing resource, extraction
// failure, no usable location). Everything the script itself reports
// arrives as Result.Status, with StatusWrapperError marking failures
// of the invocation layer.
package xdg

import (
	"context"

	"github.com/charmbracelet/log"

	"xdgkit/internal/provision"
	"xdgkit/internal/runner"
	"xdgkit/internal/scripts"
)

// Exit statuses shared by all xdg-utils scripts.
const (
	StatusSuccess          = runner.StatusSuccess
	StatusSyntaxError      = runner.StatusSyntaxError
	StatusFileNotExist     = runner.StatusFileNotExist
	StatusToolMissing      = runner.StatusToolMissing
	StatusActionFailed     = runner.StatusActionFailed
	StatusPermissionDenied = runner.StatusPermissionDenied
	StatusWrapperError     = runner.StatusWrapperError
)

// Installation modes accepted by the (un)install subcommands. The
// scripts default to system mode for root and user mode otherwise.
const (
	ModeUser   = "user"
	ModeSystem = "system"
)

// Result carries one invocation's captured standard output and exit
// status.
type Result struct {
	Output string
	Status int
}

// Options configures a Client.
type Options struct {
	// ScriptDir points at a directory of pre-extracted scripts. When
	// set it is authoritative and extraction is bypassed entirely.
	ScriptDir string

	// SearchDir is checked for pre-installed scripts when no cache
	// location is usable.
	SearchDir string

	// DiscardOutput skips stdout capture; Result.Output stays empty.
	DiscardOutput bool

	Logger *log.Logger
}

// Client resolves and runs the bundled scripts.
type Client struct {
	locator *provision.Locator
	runner  runner.Runner
	capture bool
}

// New builds a Client over the scripts compiled into this binary.
func New(opts Options) *Client {
	loc := provision.NewLocator(scripts.Bundled, provision.Options{
		ScriptDir: opts.ScriptDir,
		SearchDir: opts.SearchDir,
		Version:   scripts.Version,
		VendorTag: scripts.VendorTag,
		Logger:    opts.Logger,
	})
	return &Client{
		locator: loc,
		runner:  runner.CmdRunner{},
		capture: !opts.DiscardOutput,
	}
}

// Preload extracts every bundled script up front, the counterpart of
// resolving lazily on first use.
func (c *Client) Preload() error {
	return c.locator.Preload(scripts.Names()...)
}

// Resolve returns the on-disk path the named script would run from.
func (c *Client) Resolve(name string) (string, error) {
	return c.locator.Resolve(name)
}

// Help runs the named script with --help.
func (c *Client) Help(ctx context.Context, script string) (Result, error) {
	return c.run(ctx, script, "--help")
}

// Manual runs the named script with --manual.
func (c *Client) Manual(ctx context.Context, script string) (Result, error) {
	return c.run(ctx, script, "--manual")
}

// Version runs the named script with --version.
func (c *Client) Version(ctx context.Context, script string) (Result, error) {
	return c.run(ctx, script, "--version")
}

func (c *Client) run(ctx context.Context, script string, args ...string) (Result, error) {
	path, err := c.locator.Resolve(script)
	if err != nil {
		return Result{Status: StatusWrapperError}, err
	}
	argv := append([]string{path}, args...)
	out, status := c.runner.Run(ctx, argv, c.capture)
	return Result{Output: out, Status: status}, nil
}

// args builds an argument list, dropping the empty optional values
// the flag helpers produce. The runner itself forwards whatever it is
// given verbatim; deciding that an empty optional flag means "omit"
// is this layer's job.
type args []string

func (a args) flag(name, value string) args {
	if value == "" {
		return a
	}
	return append(a, name, value)
}

func (a args) swtch(name string, on bool) args {
	if !on {
		return a
	}
	return append(a, name)
}

func (a args) values(vals ...string) args {
	return append(a, vals...)
}
