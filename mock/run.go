package mock

import (
	"context"

	"github.com/fwojciec/checkhtml"
)

var _ checkhtml.RunService = (*RunService)(nil)

// RunService is a mock implementation of checkhtml.RunService.
type RunService struct {
	CreateRunFn     func(ctx context.Context, run *checkhtml.Run) error
	FindLatestRunFn func(ctx context.Context, source string) (*checkhtml.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *checkhtml.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindLatestRun(ctx context.Context, source string) (*checkhtml.Run, error) {
	return s.FindLatestRunFn(ctx, source)
}
