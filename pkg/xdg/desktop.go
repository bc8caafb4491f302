package xdg

import (
	"context"

	"xdgkit/internal/scripts"
)

// DesktopMenuInstallOptions tunes DesktopMenuInstall.
type DesktopMenuInstallOptions struct {
	// NoUpdate skips the desktop database refresh after the change;
	// pair with a final DesktopMenuForceUpdate when batching.
	NoUpdate bool
	// NoVendor drops the vendor-prefix requirement on file names.
	NoVendor bool
	// Mode is ModeUser or ModeSystem; empty lets the script pick.
	Mode string
}

// DesktopMenuInstall installs directory and desktop files into the
// desktop menu.
func (c *Client) DesktopMenuInstall(ctx context.Context, opts DesktopMenuInstallOptions, files ...string) (Result, error) {
	a := args{}.
		values("install").
		swtch("--noupdate", opts.NoUpdate).
		swtch("--novendor", opts.NoVendor).
		flag("--mode", opts.Mode).
		values(files...)
	return c.run(ctx, scripts.DesktopMenu, a...)
}

// DesktopMenuUninstall removes previously installed directory and
// desktop files from the desktop menu.
func (c *Client) DesktopMenuUninstall(ctx context.Context, noUpdate bool, mode string, files ...string) (Result, error) {
	a := args{}.
		values("uninstall").
		swtch("--noupdate", noUpdate).
		flag("--mode", mode).
		values(files...)
	return c.run(ctx, scripts.DesktopMenu, a...)
}

// DesktopMenuForceUpdate forces a refresh of the desktop menu
// databases, normally only needed after batched --noupdate changes.
func (c *Client) DesktopMenuForceUpdate(ctx context.Context, mode string) (Result, error) {
	a := args{}.values("forceupdate").flag("--mode", mode)
	return c.run(ctx, scripts.DesktopMenu, a...)
}

// DesktopIconInstall places a file on the user's desktop.
func (c *Client) DesktopIconInstall(ctx context.Context, noVendor bool, file string) (Result, error) {
	a := args{}.values("install").swtch("--novendor", noVendor).values(file)
	return c.run(ctx, scripts.DesktopIcon, a...)
}

// DesktopIconUninstall removes a file previously placed on the
// desktop with DesktopIconInstall.
func (c *Client) DesktopIconUninstall(ctx context.Context, file string) (Result, error) {
	return c.run(ctx, scripts.DesktopIcon, "uninstall", file)
}
