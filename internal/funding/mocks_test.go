package funding

import (
	"context"
	"lab-funding/internal/models"
)

type MockReporter struct {
	ReportFunc func(ctx context.Context, decision models.FundingDecision) error
}

func (m *MockReporter) Report(ctx context.Context, decision models.FundingDecision) error {
	return m.ReportFunc(ctx, decision)
}
