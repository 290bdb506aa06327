package models

import "fmt"

type FundingStatus string

const (
	StatusUnfunded  FundingStatus = "unfunded"
	StatusFunded    FundingStatus = "funded"
	StatusNotFunded FundingStatus = "not funded"
)

type FundingSource string

const (
	SourceNSERC FundingSource = "NSERC"
	SourceCIHR  FundingSource = "CIHR"
	SourceNone  FundingSource = "None"
)

// FundingDecision records an accepted funding call and the status it left behind.
type FundingDecision struct {
	Source        FundingSource `json:"source"`
	AccountNumber string        `json:"account_number"`
	Status        FundingStatus `json:"status"`
}

// Funded reports whether the decision attached a grant to the roster.
func (d FundingDecision) Funded() bool {
	return d.Status == StatusFunded
}

// Notices returns the human-readable lines announcing the decision.
func (d FundingDecision) Notices() []string {
	if d.Source == SourceNone {
		return []string{"No funding available."}
	}
	return []string{
		fmt.Sprintf("%s funding.", d.Source),
		fmt.Sprintf("Account number: %s", d.AccountNumber),
	}
}
