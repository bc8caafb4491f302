package provision

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// copyBufferSize bounds the intermediate buffer used while copying
// resource bytes to disk.
const copyBufferSize = 4096

// extractMu serializes every extraction in the process. Extraction is
// rare and small, so one coarse lock is enough to keep concurrent
// resolves from interleaving writes to the same target.
var extractMu sync.Mutex

// extract copies src to target, replacing any existing content. The
// bytes are staged in a temp file beside the target and renamed into
// place, so a failed copy never leaves a truncated script at the
// target path.
func extract(src io.Reader, target string) error {
	extractMu.Lock()
	defer extractMu.Unlock()

	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".extract-*")
	if err != nil {
		return fmt.Errorf("stage script file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := copyBounded(tmp, src); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write script file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close script file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o755); err != nil {
		return fmt.Errorf("chmod script file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("commit script file: %w", err)
	}
	return nil
}

func copyBounded(dst io.Writer, src io.Reader) error {
	buf := make([]byte, copyBufferSize)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
