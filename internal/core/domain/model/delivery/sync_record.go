package delivery

import (
	"errors"
	"fmt"
	"time"

	"github.com/prabhatghimire/sajiloLife/internal/core/domain/model/kernel"
	"github.com/prabhatghimire/sajiloLife/internal/pkg/errs"
)

// ErrSyncRecordIsNotConstructed is returned when a SyncRecord instance was
// not created through the NewSyncRecord factory method.
var ErrSyncRecordIsNotConstructed = errors.New(
	"SyncRecord must be created via NewSyncRecord constructor")

// SyncStatus represents the outcome of one synchronization attempt.
type SyncStatus int

const (
	// SyncUnknown represents an invalid or undefined sync status.
	SyncUnknown SyncStatus = iota

	// SyncPending means the attempt has been recorded but not resolved.
	SyncPending

	// SyncSuccess means the client record was reconciled into a durable job.
	SyncSuccess

	// SyncFailed means the attempt failed and will not be retried automatically.
	SyncFailed

	// SyncRetry means the attempt failed and is queued for another try.
	SyncRetry
)

func getSyncStatusStrings() map[SyncStatus]string {
	return map[SyncStatus]string{
		SyncUnknown: "unknown",
		SyncPending: "pending",
		SyncSuccess: "success",
		SyncFailed:  "failed",
		SyncRetry:   "retry",
	}
}

// Validate checks if the SyncStatus value is valid.
func (s SyncStatus) Validate() error {
	if s == SyncUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"sync_status", fmt.Errorf("%d is not a valid sync status", s))
	}
	if _, ok := getSyncStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"sync_status", fmt.Errorf("%d is not a valid sync status", s))
	}
	return nil
}

// String returns the wire-format name of the sync status.
func (s SyncStatus) String() string {
	if str, ok := getSyncStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// SyncRecord is the audit entry written for each synchronization attempt of a
// DeliveryJob. Records are append-only; only the status, error text, and
// retry counter of the active entry mutate as an attempt is resolved.
type SyncRecord struct {
	id           kernel.UUID
	deliveryID   kernel.UUID
	status       SyncStatus
	errorMessage string
	retryCount   int
	syncedAt     *time.Time
	createdAt    time.Time

	isConstructed bool
}

// NewSyncRecord creates a sync record in pending status for the given job.
func NewSyncRecord(id kernel.UUID, deliveryID kernel.UUID, now time.Time) (*SyncRecord, error) {
	if err := errors.Join(id.Validate(), deliveryID.Validate()); err != nil {
		return nil, err
	}

	return &SyncRecord{
		id:            id,
		deliveryID:    deliveryID,
		status:        SyncPending,
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreSyncRecord reconstructs a sync record from persistence.
func RestoreSyncRecord(
	id kernel.UUID,
	deliveryID kernel.UUID,
	status SyncStatus,
	errorMessage string,
	retryCount int,
	syncedAt *time.Time,
	createdAt time.Time,
) (*SyncRecord, error) {
	record, err := NewSyncRecord(id, deliveryID, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	record.status = status
	record.errorMessage = errorMessage
	record.retryCount = retryCount
	record.syncedAt = syncedAt

	return record, nil
}

// Validate ensures the SyncRecord was properly constructed through NewSyncRecord.
func (r *SyncRecord) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrSyncRecordIsNotConstructed
	}
	return nil
}

// ID returns the record's unique identifier.
func (r *SyncRecord) ID() kernel.UUID {
	return r.id
}

// DeliveryID returns the identifier of the job this record audits.
func (r *SyncRecord) DeliveryID() kernel.UUID {
	return r.deliveryID
}

// Status returns the current sync status.
func (r *SyncRecord) Status() SyncStatus {
	return r.status
}

// ErrorMessage returns the failure text of the last attempt, if any.
func (r *SyncRecord) ErrorMessage() string {
	return r.errorMessage
}

// RetryCount returns the number of failed attempts so far.
func (r *SyncRecord) RetryCount() int {
	return r.retryCount
}

// SyncedAt returns the time the record was successfully reconciled,
// or nil when it has not succeeded yet.
func (r *SyncRecord) SyncedAt() *time.Time {
	return r.syncedAt
}

// CreatedAt returns the creation timestamp.
func (r *SyncRecord) CreatedAt() time.Time {
	return r.createdAt
}

// MarkSuccess resolves the attempt as successful and records when it synced.
func (r *SyncRecord) MarkSuccess(now time.Time) {
	syncedAt := now.UTC()
	r.status = SyncSuccess
	r.syncedAt = &syncedAt
}

// MarkFailed resolves the attempt as failed with the given error text and
// advances the retry counter.
func (r *SyncRecord) MarkFailed(errorMessage string) {
	r.status = SyncFailed
	r.errorMessage = errorMessage
	r.retryCount++
}

// MarkRetry queues the attempt for another try and advances the retry counter.
func (r *SyncRecord) MarkRetry() {
	r.status = SyncRetry
	r.retryCount++
}
