package xdg

import (
	"context"

	"xdgkit/internal/scripts"
)

// Open opens a file or URL in the user's preferred application.
// file, ftp, http and https URLs are supported; plain paths open in
// the preferred application for the file's type.
func (c *Client) Open(ctx context.Context, fileOrURL string) (Result, error) {
	return c.run(ctx, scripts.Open, fileOrURL)
}
