package listing

import (
	"fmt"

	"kayakoyan/internal/pkg/errs"
)

// Type tells what an order buys: work delivered by the worker, or a file
// the customer downloads once paid.
type Type int

const (
	UnknownType Type = iota
	Service
	DigitalProduct
)

func (t Type) String() string {
	switch t {
	case Service:
		return "service"
	case DigitalProduct:
		return "digital_product"
	default:
		return "unknown"
	}
}

func ParseType(s string) (Type, error) {
	for _, t := range []Type{Service, DigitalProduct} {
		if t.String() == s {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("listing type", fmt.Errorf("%q is not a listing type", s))
}

func (t Type) Validate() error {
	if t != Service && t != DigitalProduct {
		return errs.NewValueIsInvalidErrorWithCause("listing type", fmt.Errorf("%d is not a valid listing type", t))
	}
	return nil
}
