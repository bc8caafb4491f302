// Package runner executes resolved scripts as subprocesses and maps
// their termination to the shared exit-status contract. Launch and
// wait failures are folded into StatusWrapperError so callers always
// branch on a single integer, exactly like the wrapped tools' own
// documented codes.
package runner

import (
	"bufio"
	"context"
	"errors"
	"io"
	"math"
	"os/exec"
	"strings"
)

// Exit statuses defined by the xdg-utils scripts themselves. They are
// passed through unmodified; only StatusWrapperError originates here.
const (
	StatusSuccess          = 0
	StatusSyntaxError      = 1
	StatusFileNotExist     = 2
	StatusToolMissing      = 3
	StatusActionFailed     = 4
	StatusPermissionDenied = 5

	// StatusWrapperError is reserved for failures of this layer:
	// the subprocess could not be launched, waited on, or read from.
	// math.MinInt32 keeps the value identical on every platform and
	// far outside the range a shell can exit with.
	StatusWrapperError = math.MinInt32
)

// Runner executes an argument vector. The vector is passed through
// literally, empty strings included; the first element is the
// executable path.
type Runner interface {
	Run(ctx context.Context, argv []string, capture bool) (string, int)
}

// CmdRunner runs subprocesses with os/exec.
type CmdRunner struct{}

var _ Runner = CmdRunner{}

// Run launches argv and blocks until the subprocess exits. With
// capture set, standard output is read line by line and joined with
// single line feeds, so multi-line output carries no trailing blank
// line.
func (CmdRunner) Run(ctx context.Context, argv []string, capture bool) (string, int) {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(argv) == 0 {
		return "", StatusWrapperError
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if !capture {
		return "", exitStatus(cmd.Run())
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", StatusWrapperError
	}
	if err := cmd.Start(); err != nil {
		return "", StatusWrapperError
	}

	lines, readErr := readLines(stdout)

	waitErr := cmd.Wait()
	output := strings.Join(lines, "\n")
	if readErr != nil {
		return output, StatusWrapperError
	}
	return output, exitStatus(waitErr)
}

// readLines collects stdout line by line. Lines can be arbitrarily
// long, so this reads with bufio.Reader rather than a Scanner and its
// fixed token limit.
func readLines(r io.Reader) ([]string, error) {
	br := bufio.NewReader(r)
	var lines []string
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, strings.TrimSuffix(line, "\n"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}

func exitStatus(err error) int {
	if err == nil {
		return StatusSuccess
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return StatusWrapperError
}
