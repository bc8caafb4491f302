// Package provision resolves a logical script name to a usable
// executable on disk. It walks a fixed priority order of candidate
// locations, extracts the embedded resource when the chosen location
// is empty or stale, and falls back to a pre-installed copy on the
// configured search directory when no location accepts writes.
package provision

import (
	"errors"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
)

// ErrNoUsableLocation reports that every candidate directory refused
// write/execute access and no pre-installed copy exists on the search
// directory.
var ErrNoUsableLocation = errors.New("no usable script location")

// Source supplies embedded resource content and digests. A read or
// digest failure means the resource set is broken and resolution must
// stop.
type Source interface {
	Read(name string) ([]byte, error)
	Digest(name string) (string, error)
}

// Options configures a Locator. Resolution behaviour is fully
// determined by these values; nothing is read from process-global
// state at resolve time.
type Options struct {
	// ScriptDir, when set, is authoritative: scripts are expected
	// pre-extracted there and no extraction or digest checking runs.
	ScriptDir string

	// SearchDir is the final fallback checked for a pre-installed
	// copy when no candidate tier is usable.
	SearchDir string

	// Version and VendorTag namespace every extraction directory.
	Version   string
	VendorTag string

	// TempDir, HomeDir, WorkDir and User default from the environment
	// when empty. Tests point them at scratch directories.
	TempDir string
	HomeDir string
	WorkDir string
	User    string

	Logger *log.Logger
}

// Locator resolves script names against one fixed set of Options.
type Locator struct {
	src  Source
	opts Options
	log  *log.Logger
}

// NewLocator builds a Locator for the given resource source, filling
// unset directory options from the environment.
func NewLocator(src Source, opts Options) *Locator {
	if opts.TempDir == "" {
		opts.TempDir = os.TempDir()
	}
	if opts.HomeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			opts.HomeDir = home
		}
	}
	if opts.WorkDir == "" {
		opts.WorkDir = "."
	}
	if opts.User == "" {
		opts.User = currentUser()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Locator{src: src, opts: opts, log: logger}
}

func currentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "unknown"
}
