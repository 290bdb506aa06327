package models

// Entry is one student's line in a lab roster.
type Entry struct {
	Name           string  `json:"name" yaml:"name"`
	FundingPerYear float64 `json:"funding_per_year" yaml:"funding_per_year"`
	YearsNeeded    float64 `json:"years_needed" yaml:"years_needed"`
}

// Cost is the funding the student needs across all remaining years.
func (e Entry) Cost() float64 {
	return e.FundingPerYear * e.YearsNeeded
}
