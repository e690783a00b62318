package payment

import (
	"fmt"

	"kayakoyan/internal/pkg/errs"
)

// Method is how the customer sent the money. Payments are manual; the
// method only tells the worker where to look.
type Method int

const (
	UnknownMethod Method = iota
	GCash
	Maya
	BankTransfer
)

func methodStrings() map[Method]string {
	//nolint:exhaustive // UnknownMethod has no token
	return map[Method]string{
		GCash:        "gcash",
		Maya:         "maya",
		BankTransfer: "bank_transfer",
	}
}

func (m Method) String() string {
	if s, ok := methodStrings()[m]; ok {
		return s
	}
	return "unknown"
}

func ParseMethod(s string) (Method, error) {
	for m, token := range methodStrings() {
		if token == s {
			return m, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%q is not a payment method", s))
}

func (m Method) Validate() error {
	if _, ok := methodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}
