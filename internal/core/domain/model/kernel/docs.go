// Package kernel contains shared value objects used across the delivery
// domain: UUID identifiers and geographic points with great-circle distance
// computation. Value objects in this package are immutable and must be
// created through their constructor functions.
package kernel
