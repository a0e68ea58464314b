package stock

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownVariant = errors.New("unknown variant")
	ErrUnknownSize    = errors.New("unknown size")
	ErrUnknownAction  = errors.New("unknown tag action")
	ErrInvalidAmount  = errors.New("amount must be a positive integer")
	ErrNoSnapshot     = errors.New("no snapshot")
)

func unknownVariant(s string) error { return fmt.Errorf("%w %q", ErrUnknownVariant, s) }
func unknownSize(s string) error    { return fmt.Errorf("%w %q", ErrUnknownSize, s) }
