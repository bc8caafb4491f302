package xdg

import (
	"context"
	"strconv"

	"xdgkit/internal/scripts"
)

// ScreenSaverSuspend inhibits the screensaver on behalf of the window
// with the given X window id, typically while that window plays
// video.
func (c *Client) ScreenSaverSuspend(ctx context.Context, windowID uint64) (Result, error) {
	return c.run(ctx, scripts.ScreenSaver, "suspend", strconv.FormatUint(windowID, 10))
}

// ScreenSaverResume lifts a suspension previously requested for the
// window with the given X window id.
func (c *Client) ScreenSaverResume(ctx context.Context, windowID uint64) (Result, error) {
	return c.run(ctx, scripts.ScreenSaver, "resume", strconv.FormatUint(windowID, 10))
}

// ScreenSaverActivate turns the screensaver on immediately.
func (c *Client) ScreenSaverActivate(ctx context.Context) (Result, error) {
	return c.run(ctx, scripts.ScreenSaver, "activate")
}

// ScreenSaverLock locks the screen immediately.
func (c *Client) ScreenSaverLock(ctx context.Context) (Result, error) {
	return c.run(ctx, scripts.ScreenSaver, "lock")
}

// ScreenSaverReset turns the screensaver off, prompting for a
// password when the screen was locked.
func (c *Client) ScreenSaverReset(ctx context.Context) (Result, error) {
	return c.run(ctx, scripts.ScreenSaver, "reset")
}

// ScreenSaverStatus reports whether the screensaver is enabled.
func (c *Client) ScreenSaverStatus(ctx context.Context) (Result, error) {
	return c.run(ctx, scripts.ScreenSaver, "status")
}
