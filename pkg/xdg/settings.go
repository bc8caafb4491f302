package xdg

import (
	"context"

	"xdgkit/internal/scripts"
)

// SettingsGet reads a desktop environment setting such as
// default-web-browser.
func (c *Client) SettingsGet(ctx context.Context, property string) (Result, error) {
	return c.run(ctx, scripts.Settings, "get", property)
}

// SettingsCheck reports whether the given value is the current one
// for property/subproperty. The script prints "yes" or "no".
func (c *Client) SettingsCheck(ctx context.Context, property, subproperty, value string) (Result, error) {
	a := args{}.values("check", property)
	if subproperty != "" {
		a = a.values(subproperty)
	}
	a = a.values(value)
	return c.run(ctx, scripts.Settings, a...)
}

// SettingsSet changes a desktop environment setting.
func (c *Client) SettingsSet(ctx context.Context, property, subproperty, value string) (Result, error) {
	a := args{}.values("set", property)
	if subproperty != "" {
		a = a.values(subproperty)
	}
	a = a.values(value)
	return c.run(ctx, scripts.Settings, a...)
}

// SettingsList lists the properties xdg-settings knows about.
func (c *Client) SettingsList(ctx context.Context) (Result, error) {
	return c.run(ctx, scripts.Settings, "--list")
}
