package report

import (
	"context"
	"fmt"
	"io"
	"lab-funding/internal/models"
	"os"
)

// ConsoleReporter prints a decision's notice lines, one per line.
// A nil W writes to os.Stdout.
type ConsoleReporter struct {
	W io.Writer
}

func (c *ConsoleReporter) Report(_ context.Context, decision models.FundingDecision) error {
	w := c.W
	if w == nil {
		w = os.Stdout
	}
	for _, line := range decision.Notices() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
