package provision

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ownerWX covers the owner write and execute bits a script target
// must carry before it can be extracted to and run.
const ownerWX = 0o300

// usable reports whether path is, or can be made, both writable and
// executable. A missing target is judged through its parent
// directory: the parent is created if absent and a throwaway probe
// file is exercised in it, since directory metadata alone cannot
// prove that a write will succeed.
func usable(path string) bool {
	info, err := os.Lstat(path)
	if err == nil {
		return info.Mode().IsRegular() && ensureOwnerWX(path, info.Mode())
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	dirInfo, err := os.Stat(dir)
	if err != nil || !dirInfo.IsDir() {
		return false
	}

	return probeDir(dir)
}

// probeDir creates a uniquely named file in dir, runs the same
// upgrade-and-check sequence a real target would get, and removes the
// probe again on every path.
func probeDir(dir string) bool {
	probe := filepath.Join(dir, uuid.NewString())
	f, err := os.OpenFile(probe, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return false
	}
	defer func() { _ = os.Remove(probe) }()

	if err := f.Close(); err != nil {
		return false
	}
	return ensureOwnerWX(probe, 0o600)
}

// ensureOwnerWX checks the owner write/execute bits, attempting a
// chmod upgrade before giving up.
func ensureOwnerWX(path string, mode fs.FileMode) bool {
	if mode.Perm()&ownerWX == ownerWX {
		return true
	}
	if err := os.Chmod(path, mode.Perm()|ownerWX); err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().Perm()&ownerWX == ownerWX
}
