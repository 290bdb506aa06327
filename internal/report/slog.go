package report

import (
	"context"
	"lab-funding/internal/models"
	"log/slog"
)

// SlogReporter emits each decision as a single structured log record.
type SlogReporter struct {
	Logger *slog.Logger
}

func (s *SlogReporter) Report(ctx context.Context, decision models.FundingDecision) error {
	s.Logger.LogAttrs(ctx, slog.LevelInfo, "funding decision",
		slog.String("source", string(decision.Source)),
		slog.String("account_number", decision.AccountNumber),
		slog.String("status", string(decision.Status)),
		slog.Bool("funded", decision.Funded()),
	)
	return nil
}
