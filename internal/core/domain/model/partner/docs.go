// Package partner contains the Partner aggregate representing one courier:
// vehicle category, shift flags, live position, and performance counters.
// Eligibility for new work combines the availability flags held here with
// the busy check computed from live job status by the repository layer.
package partner
