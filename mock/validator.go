package mock

import "github.com/fwojciec/cmdref"

var _ cmdref.Validator = (*Validator)(nil)

// Validator is a mock implementation of cmdref.Validator.
type Validator struct {
	ValidateFn func(data []byte) error
}

func (v *Validator) Validate(data []byte) error {
	return v.ValidateFn(data)
}
