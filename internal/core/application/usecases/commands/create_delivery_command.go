package commands

import (
	"errors"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand represents a request to register a new delivery job.
// Carries the addresses and customer contact details required for every job,
// plus optional route coordinates and notes.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateDeliveryCommand(
//	    jobID, customerID,
//	    "12 Thamel Marg", "88 Patan Road",
//	    "Asha Shrestha", "+977-98xxxxxxx",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid delivery request: %w", err)
//	}
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	jobID          kernel.UUID
	customerID     kernel.UUID
	pickupAddress  string
	dropoffAddress string
	customerName   string
	customerPhone  string
	deliveryNotes  string
	pickup         *kernel.GeoPoint
	dropoff        *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to register a new delivery job.
// Validates that both IDs are valid and that addresses and contact details
// are not empty. Returns an error if any validation fails.
func NewCreateDeliveryCommand(
	jobID kernel.UUID,
	customerID kernel.UUID,
	pickupAddress string,
	dropoffAddress string,
	customerName string,
	customerPhone string,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobID(jobID),
		cmd.setCustomerID(customerID),
		cmd.setPickupAddress(pickupAddress),
		cmd.setDropoffAddress(dropoffAddress),
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateDeliveryCommandIsNotConstructed if validation fails.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// SetRoute attaches pickup and dropoff coordinates. Coordinates are optional
// but must come as a complete pair per endpoint.
func (c *CreateDeliveryCommand) SetRoute(pickup, dropoff *kernel.GeoPoint) error {
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

	c.pickup = pickup
	c.dropoff = dropoff
	return nil
}

// SetDeliveryNotes attaches free-form handling instructions.
func (c *CreateDeliveryCommand) SetDeliveryNotes(notes string) {
	c.deliveryNotes = notes
}

// JobID returns the unique identifier for the new job.
func (c CreateDeliveryCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the identifier of the requesting customer.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// PickupAddress returns the human-readable pickup address.
func (c CreateDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns the human-readable dropoff address.
func (c CreateDeliveryCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// CustomerName returns the contact name for the delivery.
func (c CreateDeliveryCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the contact phone for the delivery.
func (c CreateDeliveryCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryNotes returns optional handling instructions.
func (c CreateDeliveryCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

// Pickup returns the pickup coordinates, or nil when not provided.
func (c CreateDeliveryCommand) Pickup() *kernel.GeoPoint {
	return c.pickup
}

// Dropoff returns the dropoff coordinates, or nil when not provided.
func (c CreateDeliveryCommand) Dropoff() *kernel.GeoPoint {
	return c.dropoff
}

func (c *CreateDeliveryCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateDeliveryCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickup_address")
	}

	c.pickupAddress = pickupAddress
	return nil
}

func (c *CreateDeliveryCommand) setDropoffAddress(dropoffAddress string) error {
	if dropoffAddress == "" {
		return errs.NewValueIsRequiredError("dropoff_address")
	}

	c.dropoffAddress = dropoffAddress
	return nil
}

func (c *CreateDeliveryCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}

	c.customerName = customerName
	return nil
}

func (c *CreateDeliveryCommand) setCustomerPhone(customerPhone string) error {
	if customerPhone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}

	c.customerPhone = customerPhone
	return nil
}
