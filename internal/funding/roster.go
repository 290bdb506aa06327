package funding

import "lab-funding/internal/models"

// Roster is one lab's funding ledger for a period. Entries are append-only
// and kept in the order they were added. A Roster is not safe for concurrent
// use; callers sharing one must synchronise access themselves.
type Roster struct {
	year    int
	entries []models.Entry
	status  models.FundingStatus
}

// NewRoster returns an empty, unfunded roster. year is a label only; pass 0
// when the roster is not tied to a period.
func NewRoster(year int) *Roster {
	return &Roster{
		year:    year,
		entries: []models.Entry{},
		status:  models.StatusUnfunded,
	}
}

func (r *Roster) AddStudent(name string, fundingPerYear, yearsNeeded float64) {
	r.entries = append(r.entries, models.Entry{
		Name:           name,
		FundingPerYear: fundingPerYear,
		YearsNeeded:    yearsNeeded,
	})
}

// TotalCost sums funding per year times years needed over every entry.
func (r *Roster) TotalCost() float64 {
	var total float64
	for _, e := range r.entries {
		total += e.Cost()
	}
	return total
}

// Funding records a funding source for the roster. NSERC and CIHR mark the
// roster funded, None marks it not funded. Any other source returns an
// *UnknownFundingSourceError and leaves the status as it was.
func (r *Roster) Funding(source, accountNumber string) (models.FundingDecision, error) {
	var next models.FundingStatus
	switch models.FundingSource(source) {
	case models.SourceNSERC, models.SourceCIHR:
		next = models.StatusFunded
	case models.SourceNone:
		next = models.StatusNotFunded
	default:
		return models.FundingDecision{}, &UnknownFundingSourceError{Source: source}
	}

	r.status = next
	return models.FundingDecision{
		Source:        models.FundingSource(source),
		AccountNumber: accountNumber,
		Status:        next,
	}, nil
}

// Entries returns a copy of the roster's entries in insertion order.
func (r *Roster) Entries() []models.Entry {
	out := make([]models.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Roster) Len() int {
	return len(r.entries)
}

func (r *Roster) Status() models.FundingStatus {
	return r.status
}

func (r *Roster) Year() int {
	return r.year
}
