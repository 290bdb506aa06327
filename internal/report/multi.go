package report

import (
	"context"
	"errors"
	"lab-funding/internal/funding"
	"lab-funding/internal/models"
)

// Multi fans a decision out to every reporter and joins their errors.
type Multi []funding.Reporter

func (m Multi) Report(ctx context.Context, decision models.FundingDecision) error {
	var errs []error
	for _, r := range m {
		if err := r.Report(ctx, decision); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
