package xdg

import (
	"context"
	"strconv"

	"xdgkit/internal/scripts"
)

// IconResourceOptions tunes icon resource (un)installation.
type IconResourceOptions struct {
	// NoUpdate skips the icon cache refresh after the change.
	NoUpdate bool
	// NoVendor drops the vendor-prefix requirement (install only).
	NoVendor bool
	// Theme selects the icon theme; the scripts default to hicolor.
	Theme string
	// Context is the icon context, e.g. apps or mimetypes.
	Context string
	// Mode is ModeUser or ModeSystem; empty lets the script pick.
	Mode string
	// Size is the icon size in pixels and is always passed.
	Size int
}

// IconResourceInstall installs an icon file into the desktop icon
// system under iconName (or the file's base name when empty).
func (c *Client) IconResourceInstall(ctx context.Context, opts IconResourceOptions, iconFile, iconName string) (Result, error) {
	a := args{}.
		values("install").
		swtch("--noupdate", opts.NoUpdate).
		swtch("--novendor", opts.NoVendor).
		flag("--theme", opts.Theme).
		flag("--context", opts.Context).
		flag("--mode", opts.Mode).
		values("--size", strconv.Itoa(opts.Size), iconFile)
	if iconName != "" {
		a = a.values(iconName)
	}
	return c.run(ctx, scripts.IconResource, a...)
}

// IconResourceUninstall removes the named icon from the desktop icon
// system. Icon names carry no extension.
func (c *Client) IconResourceUninstall(ctx context.Context, opts IconResourceOptions, iconName string) (Result, error) {
	a := args{}.
		values("uninstall").
		swtch("--noupdate", opts.NoUpdate).
		flag("--theme", opts.Theme).
		flag("--context", opts.Context).
		flag("--mode", opts.Mode).
		values("--size", strconv.Itoa(opts.Size), iconName)
	return c.run(ctx, scripts.IconResource, a...)
}

// IconResourceForceUpdate forces a refresh of the icon caches.
func (c *Client) IconResourceForceUpdate(ctx context.Context, theme, mode string) (Result, error) {
	a := args{}.values("forceupdate").flag("--theme", theme).flag("--mode", mode)
	return c.run(ctx, scripts.IconResource, a...)
}
