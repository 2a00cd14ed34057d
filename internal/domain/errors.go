package domain

import "errors"

// ErrRejected marks an operation that refused to apply and left state unchanged.
var ErrRejected = errors.New("rejected")

// ReasonMinimumOneItem is the rejection reason for removing the last line item.
const ReasonMinimumOneItem = "minimum one item"

// RejectedError describes a guarded operation that refused to apply.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string { return "rejected: " + e.Reason }

func (e *RejectedError) Unwrap() error { return ErrRejected }
