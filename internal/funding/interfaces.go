package funding

import (
	"context"
	"lab-funding/internal/models"
)

// Reporter renders an accepted funding decision, e.g. to a console or log.
type Reporter interface {
	Report(ctx context.Context, decision models.FundingDecision) error
}
