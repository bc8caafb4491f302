package xdg

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"xdgkit/internal/provision"
	"xdgkit/internal/scripts"
)

type fakeRunner struct {
	argv   []string
	output string
	status int
}

func (f *fakeRunner) Run(_ context.Context, argv []string, _ bool) (string, int) {
	f.argv = argv
	return f.output, f.status
}

// newTestClient resolves every script from a pre-extracted override
// dir and records invocations instead of launching subprocesses.
func newTestClient(t *testing.T) (*Client, *fakeRunner, string) {
	t.Helper()

	dir := t.TempDir()
	for _, name := range scripts.Names() {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatalf("seed script %s: %v", name, err)
		}
	}

	fake := &fakeRunner{}
	client := &Client{
		locator: provision.NewLocator(scripts.Bundled, provision.Options{
			ScriptDir: dir,
			Version:   scripts.Version,
			VendorTag: scripts.VendorTag,
		}),
		runner:  fake,
		capture: true,
	}
	return client, fake, dir
}

func wantArgv(t *testing.T, fake *fakeRunner, dir, script string, rest ...string) {
	t.Helper()
	want := append([]string{filepath.Join(dir, script)}, rest...)
	if !reflect.DeepEqual(fake.argv, want) {
		t.Fatalf("argv mismatch:\n got  %q\n want %q", fake.argv, want)
	}
}

func TestOpen(t *testing.T) {
	client, fake, dir := newTestClient(t)
	fake.output = "opened"

	res, err := client.Open(context.Background(), "https://example.org")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	wantArgv(t, fake, dir, scripts.Open, "https://example.org")
	if res.Output != "opened" || res.Status != StatusSuccess {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestMimeQueryFiletype(t *testing.T) {
	client, fake, dir := newTestClient(t)

	if _, err := client.MimeQueryFiletype(context.Background(), "/tmp/report.pdf"); err != nil {
		t.Fatalf("query: %v", err)
	}
	wantArgv(t, fake, dir, scripts.Mime, "query", "filetype", "/tmp/report.pdf")
}

func TestMimeSetDefault(t *testing.T) {
	client, fake, dir := newTestClient(t)

	if _, err := client.MimeSetDefault(context.Background(), "vendor-app.desktop", "image/png", "image/jpeg"); err != nil {
		t.Fatalf("default: %v", err)
	}
	wantArgv(t, fake, dir, scripts.Mime, "default", "vendor-app.desktop", "image/png", "image/jpeg")
}

func TestMimeInstallOmitsEmptyOptions(t *testing.T) {
	client, fake, dir := newTestClient(t)

	if _, err := client.MimeInstall(context.Background(), MimeInstallOptions{}, "types.xml"); err != nil {
		t.Fatalf("install: %v", err)
	}
	wantArgv(t, fake, dir, scripts.Mime, "install", "types.xml")
}

func TestMimeInstallFullOptions(t *testing.T) {
	client, fake, dir := newTestClient(t)

	opts := MimeInstallOptions{Mode: ModeSystem, NoVendor: true}
	if _, err := client.MimeInstall(context.Background(), opts, "types.xml"); err != nil {
		t.Fatalf("install: %v", err)
	}
	wantArgv(t, fake, dir, scripts.Mime, "install", "--novendor", "--mode", "system", "types.xml")
}

func TestComposeEmail(t *testing.T) {
	client, fake, dir := newTestClient(t)

	msg := Email{
		UTF8:       true,
		CC:         "cc@example.org",
		Subject:    "hello",
		Recipients: []string{"to@example.org"},
	}
	if _, err := client.ComposeEmail(context.Background(), msg); err != nil {
		t.Fatalf("compose: %v", err)
	}
	wantArgv(t, fake, dir, scripts.Email,
		"--utf8", "--cc", "cc@example.org", "--subject", "hello", "to@example.org")
}

func TestSettingsSet(t *testing.T) {
	client, fake, dir := newTestClient(t)

	if _, err := client.SettingsSet(context.Background(), "default-web-browser", "", "firefox.desktop"); err != nil {
		t.Fatalf("set: %v", err)
	}
	wantArgv(t, fake, dir, scripts.Settings, "set", "default-web-browser", "firefox.desktop")
}

func TestScreenSaverSuspend(t *testing.T) {
	client, fake, dir := newTestClient(t)

	if _, err := client.ScreenSaverSuspend(context.Background(), 0x3200001); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	wantArgv(t, fake, dir, scripts.ScreenSaver, "suspend", "52428801")
}

func TestDesktopMenuInstall(t *testing.T) {
	client, fake, dir := newTestClient(t)

	opts := DesktopMenuInstallOptions{NoUpdate: true, Mode: ModeUser}
	if _, err := client.DesktopMenuInstall(context.Background(), opts, "vendor-app.directory", "vendor-app.desktop"); err != nil {
		t.Fatalf("install: %v", err)
	}
	wantArgv(t, fake, dir, scripts.DesktopMenu,
		"install", "--noupdate", "--mode", "user", "vendor-app.directory", "vendor-app.desktop")
}

func TestIconResourceInstall(t *testing.T) {
	client, fake, dir := newTestClient(t)

	opts := IconResourceOptions{Theme: "hicolor", Size: 48}
	if _, err := client.IconResourceInstall(context.Background(), opts, "app.png", "vendor-app"); err != nil {
		t.Fatalf("install: %v", err)
	}
	wantArgv(t, fake, dir, scripts.IconResource,
		"install", "--theme", "hicolor", "--size", "48", "app.png", "vendor-app")
}

func TestStatusPassesThrough(t *testing.T) {
	client, fake, _ := newTestClient(t)
	fake.status = StatusToolMissing

	res, err := client.Open(context.Background(), "file.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if res.Status != StatusToolMissing {
		t.Fatalf("expected status %d, got %d", StatusToolMissing, res.Status)
	}
}

func TestResolveUnknownScript(t *testing.T) {
	client := &Client{
		locator: provision.NewLocator(scripts.Bundled, provision.Options{
			Version:   scripts.Version,
			VendorTag: scripts.VendorTag,
			TempDir:   t.TempDir(),
			HomeDir:   t.TempDir(),
			WorkDir:   t.TempDir(),
			User:      "tester",
		}),
		runner:  &fakeRunner{},
		capture: true,
	}
	if _, err := client.Resolve("xdg-nonesuch"); err == nil {
		t.Fatal("expected error for unknown script name")
	}
}

func TestHelpSwitch(t *testing.T) {
	client, fake, dir := newTestClient(t)

	if _, err := client.Help(context.Background(), scripts.Open); err != nil {
		t.Fatalf("help: %v", err)
	}
	wantArgv(t, fake, dir, scripts.Open, "--help")
}
