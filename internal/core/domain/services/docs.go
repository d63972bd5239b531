// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the delivery system.
//
// The package includes:
//   - PartnerScorer: computes the multi-factor ranking score for a
//     (partner, job) pair
//   - Dispatcher: selects the best eligible partner for a pending job,
//     combining geospatial filtering, scoring, and a best-available fallback
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles. They operate on in-memory aggregates only; candidate discovery
// and transactional assignment are the application layer's responsibility.
package services
