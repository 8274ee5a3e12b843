package checkhtml

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the body as HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// Reader retrieves HTML from local files.
type Reader interface {
	// Read returns the full contents of the file at path.
	Read(ctx context.Context, path string) (html string, err error)
}
