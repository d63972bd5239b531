package delivery

import (
	"errors"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrDeliveryJobIsNotConstructed is returned when a DeliveryJob instance was
	// not created through the NewDeliveryJob factory method. This ensures all
	// jobs are properly validated.
	ErrDeliveryJobIsNotConstructed = errors.New(
		"DeliveryJob must be created via NewDeliveryJob constructor")
)

// DeliveryJob represents one transport request in the system. It is the
// aggregate root that manages the job lifecycle from creation through partner
// assignment to completion.
//
// DeliveryJob follows these invariants:
//   - Must have valid identifiers for itself and its customer
//   - Pickup and dropoff addresses must be non-empty
//   - A partner reference exists only while status is assigned, picked_up,
//     in_transit, or delivered
//   - Once the status reaches a terminal value no further status or partner
//     mutation is permitted
//   - Coordinates, when present, always form a complete lat/lng pair
//     (guaranteed by the kernel.GeoPoint value object)
//
// The struct uses private fields to ensure encapsulation; all status
// mutation flows through Assign and TransitionTo.
type DeliveryJob struct {
	id         kernel.UUID
	customerID kernel.UUID
	partnerID  *kernel.UUID

	pickupAddress  string
	dropoffAddress string
	pickup         *kernel.GeoPoint
	dropoff        *kernel.GeoPoint

	customerName  string
	customerPhone string
	deliveryNotes string

	status Status

	estimatedDistanceKm  *decimal.Decimal
	estimatedDurationMin *int
	actualDistanceKm     *decimal.Decimal
	actualDurationMin    *int

	isSynced bool
	localID  string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewDeliveryJob creates a new DeliveryJob in Pending status with validation.
// This is the only way to create a valid job, ensuring all business
// invariants are maintained.
//
// Parameters:
//   - id: unique identifier for the job (must be valid UUID)
//   - customerID: identity of the customer who requested the transport
//   - pickupAddress, dropoffAddress: free-text addresses (required)
//   - customerName, customerPhone: contact fields (required)
//   - now: creation timestamp recorded as createdAt/updatedAt
//
// Optional attributes (coordinates, notes, local ID, estimates) are attached
// afterwards through their setters.
func NewDeliveryJob(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	dropoffAddress string,
	customerName string,
	customerPhone string,
	now time.Time,
) (*DeliveryJob, error) {
	job := &DeliveryJob{
		status:        Pending,
		isSynced:      true,
		createdAt:     now.UTC(),
		updatedAt:     now.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		job.setID(id),
		job.setCustomerID(customerID),
		job.setPickupAddress(pickupAddress),
		job.setDropoffAddress(dropoffAddress),
		job.setCustomerName(customerName),
		job.setCustomerPhone(customerPhone),
	); err != nil {
		return nil, err
	}

	return job, nil
}

// RestoreDeliveryJobParams carries the persisted state of a job for
// reconstruction from storage.
type RestoreDeliveryJobParams struct {
	ID                   kernel.UUID
	CustomerID           kernel.UUID
	PartnerID            *kernel.UUID
	PickupAddress        string
	DropoffAddress       string
	Pickup               *kernel.GeoPoint
	Dropoff              *kernel.GeoPoint
	CustomerName         string
	CustomerPhone        string
	DeliveryNotes        string
	Status               Status
	EstimatedDistanceKm  *decimal.Decimal
	EstimatedDurationMin *int
	ActualDistanceKm     *decimal.Decimal
	ActualDurationMin    *int
	IsSynced             bool
	LocalID              string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// RestoreDeliveryJob reconstructs a job from persistence.
// It re-validates identifiers, the status value, and the status/partner
// consistency rule so corrupted rows cannot enter the domain.
func RestoreDeliveryJob(params RestoreDeliveryJobParams) (*DeliveryJob, error) {
	job, err := NewDeliveryJob(
		params.ID,
		params.CustomerID,
		params.PickupAddress,
		params.DropoffAddress,
		params.CustomerName,
		params.CustomerPhone,
		params.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = params.Status.Validate(); err != nil {
		return nil, err
	}

	if params.Status != Pending {
		if err = params.Status.ValidateCanHavePartner(params.PartnerID != nil); err != nil {
			return nil, err
		}
	}

	if params.PartnerID != nil {
		if err = params.PartnerID.Validate(); err != nil {
			return nil, err
		}
	}

	job.partnerID = params.PartnerID
	job.pickup = params.Pickup
	job.dropoff = params.Dropoff
	job.deliveryNotes = params.DeliveryNotes
	job.status = params.Status
	job.estimatedDistanceKm = params.EstimatedDistanceKm
	job.estimatedDurationMin = params.EstimatedDurationMin
	job.actualDistanceKm = params.ActualDistanceKm
	job.actualDurationMin = params.ActualDurationMin
	job.isSynced = params.IsSynced
	job.localID = params.LocalID
	job.createdAt = params.CreatedAt
	job.updatedAt = params.UpdatedAt

	return job, nil
}

// Validate ensures the DeliveryJob instance was properly constructed through
// NewDeliveryJob. This prevents bypassing validation by directly
// instantiating the struct.
func (j *DeliveryJob) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrDeliveryJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *DeliveryJob) IsEqual(other *DeliveryJob) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *DeliveryJob) ID() kernel.UUID {
	return j.id
}

// CustomerID returns the identity of the requesting customer.
func (j *DeliveryJob) CustomerID() kernel.UUID {
	return j.customerID
}

// Partner returns the assigned partner's ID, or nil if unassigned.
func (j *DeliveryJob) Partner() *kernel.UUID {
	return j.partnerID
}

// PickupAddress returns the free-text pickup address.
func (j *DeliveryJob) PickupAddress() string {
	return j.pickupAddress
}

// DropoffAddress returns the free-text dropoff address.
func (j *DeliveryJob) DropoffAddress() string {
	return j.dropoffAddress
}

// Pickup returns the pickup coordinates, or nil when the job has none.
func (j *DeliveryJob) Pickup() *kernel.GeoPoint {
	return j.pickup
}

// Dropoff returns the dropoff coordinates, or nil when the job has none.
func (j *DeliveryJob) Dropoff() *kernel.GeoPoint {
	return j.dropoff
}

// CustomerName returns the contact name recorded on the job.
func (j *DeliveryJob) CustomerName() string {
	return j.customerName
}

// CustomerPhone returns the contact phone recorded on the job.
func (j *DeliveryJob) CustomerPhone() string {
	return j.customerPhone
}

// DeliveryNotes returns free-text courier instructions.
func (j *DeliveryJob) DeliveryNotes() string {
	return j.deliveryNotes
}

// Status returns the current status of the job.
func (j *DeliveryJob) Status() Status {
	return j.status
}

// EstimatedDistanceKm returns the estimated route distance in kilometres,
// or nil when no estimate was computed.
func (j *DeliveryJob) EstimatedDistanceKm() *decimal.Decimal {
	return j.estimatedDistanceKm
}

// EstimatedDurationMin returns the estimated duration in minutes,
// or nil when no estimate was computed.
func (j *DeliveryJob) EstimatedDurationMin() *int {
	return j.estimatedDurationMin
}

// ActualDistanceKm returns the actual travelled distance in kilometres,
// or nil when not recorded.
func (j *DeliveryJob) ActualDistanceKm() *decimal.Decimal {
	return j.actualDistanceKm
}

// ActualDurationMin returns the actual duration in minutes,
// or nil when not recorded.
func (j *DeliveryJob) ActualDurationMin() *int {
	return j.actualDurationMin
}

// IsSynced reports whether the job has been reconciled with the server.
func (j *DeliveryJob) IsSynced() bool {
	return j.isSynced
}

// LocalID returns the client-supplied identifier used for idempotent sync,
// or the empty string for jobs created directly on the server.
func (j *DeliveryJob) LocalID() string {
	return j.localID
}

// CreatedAt returns the creation timestamp.
func (j *DeliveryJob) CreatedAt() time.Time {
	return j.createdAt
}

// UpdatedAt returns the timestamp of the last successful mutation.
func (j *DeliveryJob) UpdatedAt() time.Time {
	return j.updatedAt
}

// SetRoute attaches pickup and dropoff coordinates to the job.
// Each point, when provided, must be a properly constructed GeoPoint; a nil
// point means the corresponding coordinates are absent.
func (j *DeliveryJob) SetRoute(pickup *kernel.GeoPoint, dropoff *kernel.GeoPoint) error {
	if pickup != nil {
		if err := pickup.Validate(); err != nil {
			return err
		}
	}
	if dropoff != nil {
		if err := dropoff.Validate(); err != nil {
			return err
		}
	}

	j.pickup = pickup
	j.dropoff = dropoff
	return nil
}

// SetDeliveryNotes records free-text courier instructions.
func (j *DeliveryJob) SetDeliveryNotes(notes string) {
	j.deliveryNotes = notes
}

// SetLocalID records the client-supplied identifier used for idempotent sync.
func (j *DeliveryJob) SetLocalID(localID string) {
	j.localID = localID
}

// SetSynced records whether the job has been reconciled with the server.
func (j *DeliveryJob) SetSynced(synced bool) {
	j.isSynced = synced
}

// SetEstimates records the estimated route distance and duration.
func (j *DeliveryJob) SetEstimates(distanceKm decimal.Decimal, durationMin int) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsInvalidError("estimated distance must not be negative")
	}
	if durationMin < 0 {
		return errs.NewValueIsInvalidError("estimated duration must not be negative")
	}

	j.estimatedDistanceKm = &distanceKm
	j.estimatedDurationMin = &durationMin
	return nil
}

// SetActuals records the actual travelled distance and duration.
func (j *DeliveryJob) SetActuals(distanceKm decimal.Decimal, durationMin int) error {
	if distanceKm.IsNegative() {
		return errs.NewValueIsInvalidError("actual distance must not be negative")
	}
	if durationMin < 0 {
		return errs.NewValueIsInvalidError("actual duration must not be negative")
	}

	j.actualDistanceKm = &distanceKm
	j.actualDurationMin = &durationMin
	return nil
}

// Assign assigns the job to a partner and moves the status to Assigned.
//
// Business rules enforced:
//   - The partner ID must be valid
//   - The job must be in Pending status; assigning an already-assigned or
//     terminal job is rejected with an InvalidStatusTransitionError
//
// After successful assignment Partner() returns the partner's ID and the
// update timestamp advances.
func (j *DeliveryJob) Assign(partnerID kernel.UUID, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if err := j.status.ValidateAssign(); err != nil {
		return err
	}

	j.status = Assigned
	j.partnerID = &partnerID
	j.touch(now)
	return nil
}

// TransitionTo moves the job's status along a legal edge of the state
// machine. Requesting the current status again is a no-op retry that
// succeeds without mutating the job.
//
// Transitions into Cancelled or Failed release the partner reference so the
// partner becomes eligible for new assignment. A transition into Assigned is
// rejected here; assignment must go through Assign so a partner is attached
// atomically with the status change.
func (j *DeliveryJob) TransitionTo(target Status, now time.Time) error {
	newStatus, err := j.status.TransitionTo(target)
	if err != nil {
		return err
	}

	if newStatus == j.status {
		return nil
	}

	hasPartner := j.partnerID != nil
	if newStatus == Cancelled || newStatus == Failed {
		hasPartner = false
	}
	if err = newStatus.ValidateCanHavePartner(hasPartner); err != nil {
		return err
	}

	j.status = newStatus
	if newStatus == Cancelled || newStatus == Failed {
		j.partnerID = nil
	}
	j.touch(now)
	return nil
}

func (j *DeliveryJob) touch(now time.Time) {
	j.updatedAt = now.UTC()
}

// setID validates and sets the job's unique identifier.
// This is a private method used only during construction.
func (j *DeliveryJob) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

// setCustomerID validates and sets the requesting customer's identifier.
// This is a private method used only during construction.
func (j *DeliveryJob) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	j.customerID = customerID
	return nil
}

func (j *DeliveryJob) setPickupAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickup_address")
	}
	j.pickupAddress = address
	return nil
}

func (j *DeliveryJob) setDropoffAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("dropoff_address")
	}
	j.dropoffAddress = address
	return nil
}

func (j *DeliveryJob) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	j.customerName = name
	return nil
}

func (j *DeliveryJob) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	j.customerPhone = phone
	return nil
}
