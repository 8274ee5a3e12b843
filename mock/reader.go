package mock

import (
	"context"

	"github.com/fwojciec/checkhtml"
)

var _ checkhtml.Reader = (*Reader)(nil)

// Reader is a mock implementation of checkhtml.Reader.
type Reader struct {
	ReadFn func(ctx context.Context, path string) (string, error)
}

func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	return r.ReadFn(ctx, path)
}
