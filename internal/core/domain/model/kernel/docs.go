// Package kernel provides the shared domain primitives of the fulfillment
// system. It implements the immutable, self-validating measurement value types
// that the fulfillment aggregate is built on:
//
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Address: a postal address with optional coordinates and great-circle distance
//   - Weight: a physical weight with unit conversion over a canonical gram basis
//   - Dimensions: package length/width/height in a single unit
//   - Money: an amount in a single ISO-4217 currency
//
// All types in this package follow the same discipline: construction validates
// inputs and fails with a typed domain error, instances are immutable after
// construction, and every "mutating" operation returns a new instance. Equality
// is structural, never by identity, and cross-unit comparisons always go
// through the canonical base unit to avoid precision bugs.
package kernel
