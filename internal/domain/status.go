package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned for a stored status label outside the enum
var ErrUnknownStatus = errors.New("unknown order status")

// Status is the lifecycle state of an order
type Status int

const (
	StatusPending Status = iota
	StatusDone
	StatusCancelled
	StatusRejected
)

// Label returns the label shown to users and stored in the database
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "قيد المراجعة"
	case StatusDone:
		return "تم"
	case StatusCancelled:
		return "ملغي"
	case StatusRejected:
		return "مرفوض"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// String implements fmt.Stringer
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	case StatusRejected:
		return "rejected"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Closed reports whether the order no longer counts as booked
func (s Status) Closed() bool {
	return s == StatusDone || s == StatusCancelled || s == StatusRejected
}

// ClosedStatuses lists statuses excluded from the upcoming orders list
var ClosedStatuses = []Status{StatusDone, StatusCancelled, StatusRejected}

// ParseStatus maps a stored label back to a Status
func ParseStatus(label string) (Status, error) {
	switch strings.TrimSpace(label) {
	case StatusPending.Label():
		return StatusPending, nil
	case StatusDone.Label():
		return StatusDone, nil
	case StatusCancelled.Label():
		return StatusCancelled, nil
	case StatusRejected.Label():
		return StatusRejected, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, label)
}
