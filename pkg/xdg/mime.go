package xdg

import (
	"context"

	"xdgkit/internal/scripts"
)

// MimeQueryFiletype returns the MIME type of the given file.
func (c *Client) MimeQueryFiletype(ctx context.Context, file string) (Result, error) {
	return c.run(ctx, scripts.Mime, "query", "filetype", file)
}

// MimeQueryDefault returns the desktop file id of the application the
// desktop environment opens files of the given MIME type with.
func (c *Client) MimeQueryDefault(ctx context.Context, mimetype string) (Result, error) {
	return c.run(ctx, scripts.Mime, "query", "default", mimetype)
}

// MimeSetDefault asks the desktop environment to make application
// (a vendor-name.desktop id) the default handler for the given MIME
// types.
func (c *Client) MimeSetDefault(ctx context.Context, application string, mimetypes ...string) (Result, error) {
	a := args{}.values("default", application).values(mimetypes...)
	return c.run(ctx, scripts.Mime, a...)
}

// MimeInstallOptions tunes MimeInstall.
type MimeInstallOptions struct {
	// Mode is ModeUser or ModeSystem; empty lets the script pick.
	Mode string
	// NoVendor drops the vendor-prefix requirement on the file name.
	NoVendor bool
}

// MimeInstall adds the file type descriptions in mimetypesFile (a
// Shared MIME-info Database XML file) to the desktop environment.
func (c *Client) MimeInstall(ctx context.Context, opts MimeInstallOptions, mimetypesFile string) (Result, error) {
	a := args{}.values("install").swtch("--novendor", opts.NoVendor).flag("--mode", opts.Mode).values(mimetypesFile)
	return c.run(ctx, scripts.Mime, a...)
}

// MimeUninstall removes file type descriptions previously added with
// MimeInstall.
func (c *Client) MimeUninstall(ctx context.Context, mode, mimetypesFile string) (Result, error) {
	a := args{}.values("uninstall").flag("--mode", mode).values(mimetypesFile)
	return c.run(ctx, scripts.Mime, a...)
}
