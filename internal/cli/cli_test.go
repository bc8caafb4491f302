package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"xdgkit/internal/provision"
	"xdgkit/internal/scripts"
	"xdgkit/pkg/xdg"
)

func TestProcessCode(t *testing.T) {
	cases := []struct {
		status int
		want   int
	}{
		{status: 1, want: 1},
		{status: 4, want: 4},
		{status: 125, want: 125},
		{status: 126, want: 1},
		{status: 200, want: 1},
		{status: xdg.StatusWrapperError, want: 1},
	}
	for _, tc := range cases {
		e := &statusError{tool: scripts.Open, status: tc.status}
		if got := e.processCode(); got != tc.want {
			t.Errorf("processCode(%d) = %d, want %d", tc.status, got, tc.want)
		}
	}
}

func TestEmitResultPrintsOutput(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	res := xdg.Result{Output: "text/plain", Status: xdg.StatusSuccess}
	if err := emitResult(cmd, scripts.Mime, res); err != nil {
		t.Fatalf("emitResult: %v", err)
	}
	if got := buf.String(); got != "text/plain\n" {
		t.Errorf("output = %q, want %q", got, "text/plain\n")
	}
}

func TestEmitResultNonZeroStatus(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	res := xdg.Result{Status: xdg.StatusActionFailed}
	err := emitResult(cmd, scripts.Open, res)
	if err == nil {
		t.Fatal("expected an error for a non-zero status")
	}
	var statusErr *statusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error %T is not a statusError", err)
	}
	if statusErr.status != xdg.StatusActionFailed {
		t.Errorf("status = %d, want %d", statusErr.status, xdg.StatusActionFailed)
	}
}

func newTestLocator(t *testing.T) (*provision.Locator, provision.Options) {
	t.Helper()
	opts := provision.Options{
		Version:   scripts.Version,
		VendorTag: scripts.VendorTag,
		TempDir:   t.TempDir(),
		HomeDir:   t.TempDir(),
		WorkDir:   t.TempDir(),
		User:      "tester",
	}
	return provision.NewLocator(scripts.Bundled, opts), opts
}

func TestInspectScriptPending(t *testing.T) {
	loc, _ := newTestLocator(t)

	st := inspectScript(loc, "", scripts.Open)
	if st.State != "pending" {
		t.Errorf("state = %q, want pending", st.State)
	}
	if st.Path != "" {
		t.Errorf("path = %q, want empty", st.Path)
	}
}

func TestInspectScriptCached(t *testing.T) {
	loc, opts := newTestLocator(t)

	data, err := scripts.Bundled.Read(scripts.Open)
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	path := filepath.Join(opts.TempDir, opts.VendorTag, opts.User, opts.Version, scripts.Open)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}

	st := inspectScript(loc, "", scripts.Open)
	if st.State != "cached" {
		t.Errorf("state = %q, want cached", st.State)
	}
	if st.Path != path {
		t.Errorf("path = %q, want %q", st.Path, path)
	}
}

func TestInspectScriptStale(t *testing.T) {
	loc, opts := newTestLocator(t)

	path := filepath.Join(opts.TempDir, opts.VendorTag, opts.User, opts.Version, scripts.Open)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 1\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}

	st := inspectScript(loc, "", scripts.Open)
	if st.State != "stale" {
		t.Errorf("state = %q, want stale", st.State)
	}
}

func TestInspectScriptOverride(t *testing.T) {
	loc, _ := newTestLocator(t)

	dir := t.TempDir()
	path := filepath.Join(dir, scripts.Open)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write: %v", err)
	}

	st := inspectScript(loc, dir, scripts.Open)
	if st.State != "override" {
		t.Errorf("state = %q, want override", st.State)
	}
	if st.Path != path {
		t.Errorf("path = %q, want %q", st.Path, path)
	}

	st = inspectScript(loc, t.TempDir(), scripts.Open)
	if st.State != "missing" {
		t.Errorf("empty override dir: state = %q, want missing", st.State)
	}
}

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{
		"open", "mime", "email", "settings", "screensaver",
		"menu", "icon", "icon-resource", "scripts",
	} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root {
			t.Errorf("command %q not registered", name)
		}
	}
}
