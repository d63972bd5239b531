package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/guard"
)

var ErrSyncDeliveryCommandIsNotConstructed = errors.New(
	"SyncDeliveryCommand must be created via NewSyncDeliveryCommand constructor",
)

// SyncPayload is one delivery request captured on a client while offline.
// The local ID is the client's own identifier for the request and is the
// idempotency key for reconciliation. Coordinates are optional but must come
// as complete pairs.
type SyncPayload struct {
	LocalID        string
	PickupAddress  string
	DropoffAddress string
	CustomerName   string
	CustomerPhone  string
	DeliveryNotes  string
	PickupLat      *decimal.Decimal
	PickupLng      *decimal.Decimal
	DropoffLat     *decimal.Decimal
	DropoffLng     *decimal.Decimal
	CreatedAt      *time.Time
}

// SyncDeliveryCommand represents a request to reconcile one offline-captured
// delivery with the server. Validation happens per payload so a bad item in
// a batch cannot poison its siblings.
//
// Example:
//
//	cmd, err := NewSyncDeliveryCommand(customerID, payload)
//	if err != nil {
//	    // record the failure for this payload, move on to the next
//	}
type SyncDeliveryCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	localID         string
	pickupAddress   string
	dropoffAddress  string
	customerName    string
	customerPhone   string
	deliveryNotes   string
	pickup          *kernel.GeoPoint
	dropoff         *kernel.GeoPoint
	clientCreatedAt *time.Time

	guard guard.ConstructorGuard
}

// NewSyncDeliveryCommand creates a command to reconcile one offline payload.
// Validates the customer ID, the presence of the local ID, addresses and
// contact details, and the completeness of each coordinate pair. All
// validation failures are joined into one error.
func NewSyncDeliveryCommand(customerID kernel.UUID, payload SyncPayload) (SyncDeliveryCommand, error) {
	cmd := SyncDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setLocalID(payload.LocalID),
		cmd.setPickupAddress(payload.PickupAddress),
		cmd.setDropoffAddress(payload.DropoffAddress),
		cmd.setCustomerName(payload.CustomerName),
		cmd.setCustomerPhone(payload.CustomerPhone),
		cmd.setPickup(payload.PickupLat, payload.PickupLng),
		cmd.setDropoff(payload.DropoffLat, payload.DropoffLng),
	); err != nil {
		return SyncDeliveryCommand{}, err
	}

	cmd.deliveryNotes = payload.DeliveryNotes
	cmd.clientCreatedAt = payload.CreatedAt

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncDeliveryCommandIsNotConstructed if validation fails.
func (c SyncDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrSyncDeliveryCommandIsNotConstructed)
}

// CustomerID returns the identifier of the syncing customer.
func (c SyncDeliveryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// LocalID returns the client-side identifier used as the idempotency key.
func (c SyncDeliveryCommand) LocalID() string {
	return c.localID
}

// PickupAddress returns the human-readable pickup address.
func (c SyncDeliveryCommand) PickupAddress() string {
	return c.pickupAddress
}

// DropoffAddress returns the human-readable dropoff address.
func (c SyncDeliveryCommand) DropoffAddress() string {
	return c.dropoffAddress
}

// CustomerName returns the contact name for the delivery.
func (c SyncDeliveryCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the contact phone for the delivery.
func (c SyncDeliveryCommand) CustomerPhone() string {
	return c.customerPhone
}

// DeliveryNotes returns optional handling instructions.
func (c SyncDeliveryCommand) DeliveryNotes() string {
	return c.deliveryNotes
}

// Pickup returns the pickup coordinates, or nil when not provided.
func (c SyncDeliveryCommand) Pickup() *kernel.GeoPoint {
	return c.pickup
}

// Dropoff returns the dropoff coordinates, or nil when not provided.
func (c SyncDeliveryCommand) Dropoff() *kernel.GeoPoint {
	return c.dropoff
}

// ClientCreatedAt returns when the client captured the request, or nil when
// the client did not report it.
func (c SyncDeliveryCommand) ClientCreatedAt() *time.Time {
	return c.clientCreatedAt
}

func (c *SyncDeliveryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SyncDeliveryCommand) setLocalID(localID string) error {
	if localID == "" {
		return errs.NewValueIsRequiredError("local_id")
	}

	c.localID = localID
	return nil
}

func (c *SyncDeliveryCommand) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickup_address")
	}

	c.pickupAddress = pickupAddress
	return nil
}

func (c *SyncDeliveryCommand) setDropoffAddress(dropoffAddress string) error {
	if dropoffAddress == "" {
		return errs.NewValueIsRequiredError("dropoff_address")
	}

	c.dropoffAddress = dropoffAddress
	return nil
}

func (c *SyncDeliveryCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}

	c.customerName = customerName
	return nil
}

func (c *SyncDeliveryCommand) setCustomerPhone(customerPhone string) error {
	if customerPhone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}

	c.customerPhone = customerPhone
	return nil
}

func (c *SyncDeliveryCommand) setPickup(lat, lng *decimal.Decimal) error {
	point, err := pairToPoint(lat, lng, "pickup_lat", "pickup_lng")
	if err != nil {
		return err
	}

	c.pickup = point
	return nil
}

func (c *SyncDeliveryCommand) setDropoff(lat, lng *decimal.Decimal) error {
	point, err := pairToPoint(lat, lng, "dropoff_lat", "dropoff_lng")
	if err != nil {
		return err
	}

	c.dropoff = point
	return nil
}

// pairToPoint builds a GeoPoint from an optional coordinate pair. Both
// halves must be present or both absent.
func pairToPoint(lat, lng *decimal.Decimal, latName, lngName string) (*kernel.GeoPoint, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil {
		return nil, errs.NewValueIsRequiredError(latName)
	}
	if lng == nil {
		return nil, errs.NewValueIsRequiredError(lngName)
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}

	return &point, nil
}
