package funding

import (
	"errors"
	"fmt"
)

// ErrUnknownFundingSource matches any UnknownFundingSourceError via errors.Is.
var ErrUnknownFundingSource = errors.New("unknown funding source")

// UnknownFundingSourceError is returned when a funding call names a source
// the roster does not recognise.
type UnknownFundingSourceError struct {
	Source string
}

func (e *UnknownFundingSourceError) Error() string {
	return fmt.Sprintf("unknown funding source: %s", e.Source)
}

func (e *UnknownFundingSourceError) Is(target error) bool {
	return target == ErrUnknownFundingSource
}
