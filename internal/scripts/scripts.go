// Package scripts carries the bundled xdg-utils shell scripts as
// embedded resources and hands out their content and digests to the
// provisioning layer.
package scripts

import (
	"embed"
	"errors"
	"fmt"
	"sync"

	"xdgkit/internal/digest"
)

//go:embed files
var files embed.FS

const (
	// Version is the xdg-utils release the bundled scripts were built
	// from. It namespaces every extraction directory, so parallel
	// installs of different builds never share files.
	Version = "1.1.3"

	// VendorTag names the extraction directories owned by this module.
	VendorTag = "xdgkit"
)

// Logical script names, equal to the embedded file names.
const (
	DesktopIcon  = "xdg-desktop-icon"
	DesktopMenu  = "xdg-desktop-menu"
	Email        = "xdg-email"
	IconResource = "xdg-icon-resource"
	Mime         = "xdg-mime"
	Open         = "xdg-open"
	ScreenSaver  = "xdg-screensaver"
	Settings     = "xdg-settings"
)

// ErrMissing reports a script name with no embedded resource. Hitting
// it means the binary was packaged without the script, so callers
// should treat it as fatal rather than retry.
var ErrMissing = errors.New("bundled script missing")

// Set provides read access to one collection of embedded scripts.
// Digests are memoized since the embedded content is immutable for
// the lifetime of the process.
type Set struct {
	mu      sync.Mutex
	digests map[string]string
}

// Bundled is the script set compiled into this binary.
var Bundled = &Set{}

// Names returns the logical script names in stable order.
func Names() []string {
	return []string{
		DesktopIcon,
		DesktopMenu,
		Email,
		IconResource,
		Mime,
		Open,
		ScreenSaver,
		Settings,
	}
}

// Read returns the embedded content for name.
func (s *Set) Read(name string) ([]byte, error) {
	data, err := files.ReadFile("files/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	return data, nil
}

// Digest returns the content digest for name, computing it at most
// once per process.
func (s *Set) Digest(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sum, ok := s.digests[name]; ok {
		return sum, nil
	}

	data, err := s.Read(name)
	if err != nil {
		return "", err
	}
	sum := digest.Bytes(data)
	if s.digests == nil {
		s.digests = make(map[string]string, len(Names()))
	}
	s.digests[name] = sum
	return sum, nil
}
