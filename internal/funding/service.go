package funding

import (
	"context"
	"errors"
	"fmt"
	"lab-funding/internal/models"
	"log/slog"
)

type Service struct {
	reporter Reporter
	logger   *slog.Logger
}

func NewService(reporter Reporter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		reporter: reporter,
		logger:   logger,
	}
}

// Assign applies a funding source to the roster and reports the outcome.
// Unknown sources are returned untouched so callers can match on
// ErrUnknownFundingSource; nothing is reported for them.
func (s *Service) Assign(ctx context.Context, roster *Roster, source, accountNumber string) (models.FundingDecision, error) {
	if roster == nil {
		return models.FundingDecision{}, fmt.Errorf("roster cannot be nil")
	}

	previous := roster.Status()
	decision, err := roster.Funding(source, accountNumber)
	if err != nil {
		if errors.Is(err, ErrUnknownFundingSource) {
			s.logger.Warn("funding source rejected",
				"source", source,
				"status", previous,
			)
		}
		return models.FundingDecision{}, err
	}

	s.logger.Debug("funding status changed",
		"source", decision.Source,
		"from", previous,
		"to", decision.Status,
	)

	if s.reporter != nil {
		if err := s.reporter.Report(ctx, decision); err != nil {
			return decision, fmt.Errorf("report funding decision: %w", err)
		}
	}

	return decision, nil
}
