package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a forward
// only state machine:
//
//	Initiated ──> Sent ──> Delivered
//
// Delivered is terminal. Status is a value object; the canonical transition
// rule is Next.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Initiated is the initial status assigned at creation.
	Initiated

	// Sent indicates the order is on its way to the client.
	Sent

	// Delivered indicates the order reached the client. Terminal: no
	// transition is defined from it, and reaching it removes the order
	// from the active record set.
	Delivered
)

// getStatusStrings returns the string representation of every Status value,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Initiated: "initiated",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns only the valid Status values, to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Initiated: "initiated",
		Sent:      "sent",
		Delivered: "delivered",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for anything outside the three valid values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the three valid values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. The same form is persisted and serialized over HTTP.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Next returns the status that follows s in the lifecycle. The second return
// value is false when no transition is defined, which is the case for
// Delivered (terminal) and for invalid values.
func (s Status) Next() (Status, bool) {
	switch s {
	case Initiated:
		return Sent, true
	case Sent:
		return Delivered, true
	default:
		return Unknown, false
	}
}
