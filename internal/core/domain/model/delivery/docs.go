// Package delivery contains the DeliveryJob aggregate and its supporting
// value objects: the Status state machine that governs the job lifecycle and
// the SyncRecord audit entity created for offline-sync attempts.
//
// The Status state machine is the single authority over the status field.
// No other component sets status directly; every change goes through
// DeliveryJob.Assign or DeliveryJob.TransitionTo, which consult the
// transition table and reject illegal edges.
package delivery
