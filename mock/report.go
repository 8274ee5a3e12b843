package mock

import "github.com/fwojciec/checkhtml"

var _ checkhtml.ReportStore = (*ReportStore)(nil)

// ReportStore is a mock implementation of checkhtml.ReportStore.
type ReportStore struct {
	SaveFn func(report *checkhtml.Report) error
}

func (s *ReportStore) Save(report *checkhtml.Report) error {
	return s.SaveFn(report)
}
