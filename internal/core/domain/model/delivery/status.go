package delivery

import (
	"fmt"

	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery job.
// It implements a state machine with defined transitions to ensure
// jobs follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──┬──> Delivered
//	   │            │            │            │
//	   │            │            │            └──> Failed
//	   └────────────┴────────────┴──> Cancelled
//
// Delivered, Cancelled, and Failed are terminal: no outgoing edges.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a job is first created.
	// Jobs in this status are waiting to be assigned to a partner.
	Pending

	// Assigned indicates the job has been assigned to a partner.
	Assigned

	// PickedUp indicates the partner has collected the package.
	PickedUp

	// InTransit indicates the package is on its way to the dropoff point.
	InTransit

	// Delivered indicates the package reached its destination. Terminal.
	Delivered

	// Cancelled indicates the job was cancelled before completion. Terminal.
	Cancelled

	// Failed indicates delivery was attempted but did not succeed. Terminal.
	Failed
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
		Failed:    "failed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Assigned:  "assigned",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
		Failed:    "failed",
	}
}

// transitions returns the legal edges of the state machine.
// A status absent from a target list cannot be reached from that source.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Assigned, Cancelled},
		Assigned:  {PickedUp, Cancelled},
		PickedUp:  {InTransit, Cancelled},
		InTransit: {Delivered, Failed},
		Delivered: {},
		Cancelled: {},
		Failed:    {},
	}
}

// StatusFromString parses a status from its wire representation
// (e.g. "picked_up"). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-format name of the status, e.g. "in_transit".
// Safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Jobs in a terminal status permit no further status or partner mutation.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Failed
}

// IsActive reports whether the status represents a job a partner is
// currently working on. A partner holding an active job is busy and
// ineligible for new assignment.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp || s == InTransit
}

// CanTransitionTo reports whether the edge from s to target is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions()[s] {
		if t == target {
			return true
		}
	}
	return false
}

// TransitionTo moves the status along a legal edge of the state machine.
//
// A request for the current status is a no-op retry and succeeds without
// a state change. Any other edge absent from the transition table is
// rejected with an InvalidStatusTransitionError naming the source and
// target pair.
//
// Returns:
//   - (target, nil) on a valid transition or no-op retry
//   - (Unknown, error) if the edge is illegal or either status is invalid
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if s == target {
		return s, nil
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStatusTransitionError(s.String(), target.String())
	}

	return target, nil
}

// ValidateAssign checks if the status allows partner assignment without
// performing the transition. Only Pending jobs may be assigned; assigning
// an already-assigned or terminal job is rejected.
func (s Status) ValidateAssign() error {
	if s != Pending {
		return errs.NewInvalidStatusTransitionError(s.String(), Assigned.String())
	}
	return nil
}

// ValidateCanHavePartner validates the consistency between job status and
// partner assignment. A partner reference is only legal while the job is
// active or delivered; Pending and the cancelled/failed terminals carry none.
func (s Status) ValidateCanHavePartner(hasPartner bool) error {
	allowed := s.IsActive() || s == Delivered

	if hasPartner && !allowed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a partner", s.String()),
		)
	}

	if !hasPartner && allowed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no partner", s.String()),
		)
	}

	return nil
}
