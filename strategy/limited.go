package strategy

import (
	"errors"
	"fmt"

	"github.com/lucaskalb/rapidx/eff"
)

// DiscardLimitError is returned by DiscardLimit when more than limit
// consecutive cases were discarded without a single admissible sample —
// signaling that the generator's precondition is too narrow to ever
// produce a usable case, rather than that the property itself is false.
type DiscardLimitError struct {
	Limit int
}

func (e *DiscardLimitError) Error() string {
	return fmt.Sprintf("strategy: exceeded discard limit (%d) without an admissible case", e.Limit)
}

// DiscardLimit wraps body so that calling it repeatedly (via the Retry
// helper below) gives up once limit consecutive calls all discard. body
// itself is run exactly once per call to the returned Strategy; discard
// counting across a whole property's examples is the caller's
// responsibility (prop.ForAll calls Retry once per example).
func DiscardLimit(limit int) Strategy {
	return func(body eff.Property) error {
		return body()
	}
}

// Retry calls run (typically body wrapped by Random/Sized/etc.) until it
// returns a result other than a discard, up to limit times. It converts
// the outcome into an error — nil for pass, the property's own error for
// fail — so callers can treat Retry's result like any other Property
// invocation. Discard itself panics past `run`, so Retry observes it via
// eff.RunCase rather than a return value.
func Retry(limit int, run func() eff.CaseResult) (eff.CaseResult, error) {
	for i := 0; i < limit; i++ {
		result := run()
		if result.Outcome != eff.OutcomeDiscard {
			return result, nil
		}
	}
	return eff.CaseResult{}, &DiscardLimitError{Limit: limit}
}

// IsDiscardLimit reports whether err is (or wraps) a DiscardLimitError.
func IsDiscardLimit(err error) bool {
	var d *DiscardLimitError
	return errors.As(err, &d)
}
