package provision

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"xdgkit/internal/digest"
)

// Resolve returns a usable on-disk path for the named script.
//
// With ScriptDir set the path below it is validated and returned
// as-is; the caller asserts its content is correct. Otherwise the
// candidate tiers are tried in priority order, the first usable one
// is extracted to (or refreshed when its digest has drifted), and a
// pre-installed copy on SearchDir is accepted when no tier is usable
// or provisioning the chosen tier fails. Resolve never returns a
// path it could not validate.
func (l *Locator) Resolve(name string) (string, error) {
	if l.opts.ScriptDir != "" {
		target := filepath.Join(l.opts.ScriptDir, name)
		if usable(target) {
			l.log.Debug("resolved script from override dir", "script", name, "path", target)
			return target, nil
		}
		if path, ok := l.preinstalled(name); ok {
			return path, nil
		}
		return "", fmt.Errorf("script dir %s: %w", l.opts.ScriptDir, ErrNoUsableLocation)
	}

	target := ""
	for _, candidate := range l.candidates(name) {
		if usable(candidate) {
			target = candidate
			break
		}
	}
	if target == "" {
		if path, ok := l.preinstalled(name); ok {
			l.log.Debug("resolved pre-installed script", "script", name, "path", path)
			return path, nil
		}
		return "", fmt.Errorf("script %s: %w", name, ErrNoUsableLocation)
	}

	if err := l.ensureCurrent(name, target); err != nil {
		if path, ok := l.preinstalled(name); ok {
			l.log.Debug("provisioning failed, using pre-installed script",
				"script", name, "path", path, "error", err)
			return path, nil
		}
		return "", err
	}
	return target, nil
}

// Preload resolves every named script up front, mirroring callers
// that want all extraction cost paid at startup.
func (l *Locator) Preload(names ...string) error {
	for _, name := range names {
		if _, err := l.Resolve(name); err != nil {
			return err
		}
	}
	return nil
}

// Candidates exposes the tier paths tried for name, highest priority
// first. Status reporting uses it; Resolve owns the real walk.
func (l *Locator) Candidates(name string) []string {
	return l.candidates(name)
}

func (l *Locator) candidates(name string) []string {
	tiers := make([]string, 0, 3)
	tiers = append(tiers, filepath.Join(l.opts.TempDir, l.opts.VendorTag, l.opts.User, l.opts.Version, name))
	if l.opts.HomeDir != "" {
		tiers = append(tiers, filepath.Join(l.opts.HomeDir, "."+l.opts.VendorTag, l.opts.Version, name))
	}
	tiers = append(tiers, filepath.Join(l.opts.WorkDir, ".tmp", l.opts.VendorTag, l.opts.Version, name))
	return tiers
}

// preinstalled checks the search directory for a copy not owned by
// this module. It is returned untouched: no extraction, no digest.
func (l *Locator) preinstalled(name string) (string, bool) {
	if l.opts.SearchDir == "" {
		return "", false
	}
	path := filepath.Join(l.opts.SearchDir, name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}

// ensureCurrent extracts the resource to target when absent and
// re-extracts when the on-disk digest no longer matches the embedded
// one. Writability is re-checked before an overwrite since the
// earlier validation may have gone stale.
func (l *Locator) ensureCurrent(name, target string) error {
	want, err := l.src.Digest(name)
	if err != nil {
		return err
	}

	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		l.log.Debug("extracting script", "script", name, "path", target)
		return l.extractResource(name, target)
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: not a regular file", target)
	}

	got, err := digest.File(target)
	if err != nil {
		return err
	}
	if got == want {
		return nil
	}

	l.log.Debug("script digest drifted, refreshing", "script", name, "path", target)
	if !usable(target) {
		return fmt.Errorf("refresh %s: %w", target, ErrNoUsableLocation)
	}
	return l.extractResource(name, target)
}

func (l *Locator) extractResource(name, target string) error {
	data, err := l.src.Read(name)
	if err != nil {
		return err
	}
	if err := extract(bytes.NewReader(data), target); err != nil {
		return fmt.Errorf("extract %s: %w", name, err)
	}
	return nil
}
