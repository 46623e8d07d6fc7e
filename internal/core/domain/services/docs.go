// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the fulfillment system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - ProximityIndex: ranks dispatchable partners by distance from a pickup point
//   - RatingAggregator: folds customer ratings into a partner's running average
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
