// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - DeliveryEstimator: A domain service computing delivery time estimates
//     from warehouse and destination addresses
package services
