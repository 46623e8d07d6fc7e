// Package assignment contains the DeliveryAssignment aggregate.
//
// A DeliveryAssignment links exactly one order to exactly one delivery
// partner and walks the hand-off milestones: Assigned, PickedUp, InTransit,
// Delivered, with Failed reachable from every non-terminal state. Milestone
// timestamps are stamped by the aggregate as transitions happen.
//
// After delivery the ordering customer may rate the run once; the running
// average on the partner is maintained by the RatingAggregator domain
// service, not by this aggregate.
package assignment
