package service

import (
	"errors"
	"fmt"

	"github.com/vibast-solutions/node-go-pinelabs/app/pinelabs"
)

var ErrOperationNotSupported = errors.New("operation is not supported")

// ItemError is the host-facing failure envelope: a message plus the index of
// the input item it belongs to. Validation and client errors are wrapped here
// at the dispatcher boundary, keeping the inner layers free of host concerns.
type ItemError struct {
	Err       error
	ItemIndex int
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("%s (item %d)", e.Err.Error(), e.ItemIndex)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

func wrapItemError(err error, itemIndex int) error {
	var reqErr *pinelabs.RequestError
	if errors.As(err, &reqErr) {
		// Already carries its item index.
		return err
	}
	var itemErr *ItemError
	if errors.As(err, &itemErr) {
		return err
	}
	return &ItemError{Err: err, ItemIndex: itemIndex}
}
