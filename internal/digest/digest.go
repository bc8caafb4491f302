// Package digest computes fixed-width content fingerprints used to
// decide whether an extracted script still matches its bundled
// original. The digests detect drift, they are not a security
// boundary.
package digest

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// Width is the length in hex characters of every digest returned by
// this package.
const Width = sha512.Size * 2

// Sum consumes r fully and returns its SHA-512 digest as lowercase
// hex, zero-padded to Width characters.
func Sum(r io.Reader) (string, error) {
	h := sha512.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", fmt.Errorf("hash stream: %w", err)
	}
	return normalize(hex.EncodeToString(h.Sum(nil))), nil
}

// Bytes returns the digest of an in-memory resource.
func Bytes(b []byte) string {
	sum := sha512.Sum512(b)
	return normalize(hex.EncodeToString(sum[:]))
}

// File returns the digest of the file at path.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open for digest: %w", err)
	}
	defer f.Close()

	sum, err := Sum(f)
	if err != nil {
		return "", fmt.Errorf("digest %s: %w", path, err)
	}
	return sum, nil
}

func normalize(s string) string {
	if len(s) >= Width {
		return s
	}
	return strings.Repeat("0", Width-len(s)) + s
}
