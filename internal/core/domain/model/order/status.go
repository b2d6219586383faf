package order

import (
	"fmt"

	"requisitions/internal/pkg/errs"
)

// Status represents the lifecycle state of a requisition order.
// It implements a forward-only state machine:
//
//	Created ──> DestinationReceived ──> Picking ──> Shipped ──> OriginReceived
//	└──────────────── advanced by the destination ──────────┘   └ confirmed by the origin
//
// Status is persisted as its upper-snake code (see String) and every
// transition is decided by an exhaustive switch, so adding a state
// without wiring its transitions fails loudly in tests.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of a submitted order.
	Created

	// DestinationReceived means the destination branch acknowledged the order.
	DestinationReceived

	// Picking means the destination branch is preparing the items.
	Picking

	// Shipped means the items left the destination branch. The destination
	// can do nothing further; only the origin may confirm receipt.
	Shipped

	// OriginReceived is the final state: the origin branch received the items.
	OriginReceived
)

const (
	ActionAdvance = "advance"
	ActionConfirm = "confirm receipt"
)

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Created, DestinationReceived, Picking, Shipped, OriginReceived}
}

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:             "UNKNOWN",
		Created:             "CREATED",
		DestinationReceived: "DESTINATION_RECEIVED",
		Picking:             "PICKING",
		Shipped:             "SHIPPED",
		OriginReceived:      "ORIGIN_RECEIVED",
	}
}

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		Created:             "Created",
		DestinationReceived: "Received at destination",
		Picking:             "Picking",
		Shipped:             "Shipped",
		OriginReceived:      "Received at origin",
	}
}

// ParseStatus converts a persisted code back to a Status.
func ParseStatus(code string) (Status, error) {
	for _, s := range Statuses() {
		if getStatusCodes()[s] == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status code", code))
}

// Validate checks if the Status value is one of the lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	switch s {
	case Created, DestinationReceived, Picking, Shipped, OriginReceived:
		return nil
	case Unknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
}

// String returns the persisted code of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusCodes()[s]; ok {
		return str
	}
	return getStatusCodes()[Unknown]
}

// Label returns the display name of the status.
func (s Status) Label() string {
	if str, ok := getStatusLabels()[s]; ok {
		return str
	}
	return getStatusLabels()[Unknown]
}

// IsFinal reports whether the lifecycle has ended.
func (s Status) IsFinal() bool {
	return s == OriginReceived
}

// Advance returns the status the destination branch moves the order to.
//
// Valid transitions:
//   - Created -> DestinationReceived
//   - DestinationReceived -> Picking
//   - Picking -> Shipped
//
// Shipped and OriginReceived yield an AlreadyFinalError: nothing is left
// for the destination to do. Unknown yields an InvalidTransitionError.
func (s Status) Advance() (Status, error) {
	switch s {
	case Created:
		return DestinationReceived, nil
	case DestinationReceived:
		return Picking, nil
	case Picking:
		return Shipped, nil
	case Shipped, OriginReceived:
		return Unknown, errs.NewAlreadyFinalError(s.String(), ActionAdvance)
	case Unknown:
	}
	return Unknown, errs.NewInvalidTransitionError(s.String(), ActionAdvance)
}

// ConfirmReceipt returns OriginReceived when the order has been shipped.
// A second confirmation yields an AlreadyFinalError; confirming any other
// status yields an InvalidTransitionError.
func (s Status) ConfirmReceipt() (Status, error) {
	switch s {
	case Shipped:
		return OriginReceived, nil
	case OriginReceived:
		return Unknown, errs.NewAlreadyFinalError(s.String(), ActionConfirm)
	case Unknown, Created, DestinationReceived, Picking:
	}
	return Unknown, errs.NewInvalidTransitionError(s.String(), ActionConfirm)
}
