package payment

import (
	"fmt"

	"kayakoyan/internal/pkg/errs"
)

// Status of a proof-of-payment. Payments start Pending and move to exactly
// one of the terminal values, once.
type Status int

const (
	UnknownStatus Status = iota
	Pending
	Verified
	Rejected
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Verified:
		return "Verified"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

func (s Status) Validate() error {
	if s < Pending || s > Rejected {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s Status) IsTerminal() bool {
	return s == Verified || s == Rejected
}
