package TVD

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSchemeCombination = errors.New("tvd: invalid scheme and limiter combination")
	ErrDimensionMismatch        = errors.New("tvd: field is not a 1D array of sufficient length")
	ErrUnknownScheme            = errors.New("tvd: unknown scheme")
	ErrUnknownLimiter           = errors.New("tvd: unknown limiter")
)

// InvalidSchemeCombinationError names a limiter the scheme does not accept
type InvalidSchemeCombinationError struct {
	Scheme  SchemeType
	Limiter LimiterType
	Valid   []LimiterType
}

func (e *InvalidSchemeCombinationError) Error() string {
	return fmt.Sprintf("scheme [%s] does not accept limiter [%s], valid limiters are %v",
		e.Scheme, e.Limiter, e.Valid)
}

func (e *InvalidSchemeCombinationError) Unwrap() error { return ErrInvalidSchemeCombination }

// DimensionMismatchError reports a field shape the scalar 1D stepper can't use
type DimensionMismatchError struct {
	Rows, Cols int
	Min        int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("field has dimensions [%d,%d], need a single row or column of length >= %d",
		e.Rows, e.Cols, e.Min)
}

func (e *DimensionMismatchError) Unwrap() error { return ErrDimensionMismatch }
