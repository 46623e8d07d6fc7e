package commands

import (
	"context"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// RateDeliveryCommandHandler records a customer's rating of a delivery and
// folds it into the partner's running average in the same transaction, so a
// stored rating and the aggregate it feeds never diverge.
//
// Business rules:
//   - Only the customer who placed the order may rate its delivery
//   - The assignment must be Delivered and not yet rated
type RateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	aggregator services.RatingAggregator
}

// NewRateDeliveryCommandHandler creates a handler for delivery ratings.
func NewRateDeliveryCommandHandler(uowFactory UoWFactory) RateDeliveryCommandHandler {
	return RateDeliveryCommandHandler{
		uowFactory: uowFactory,
		aggregator: services.NewRatingAggregator(),
	}
}

// Handle processes the rating.
// Returns ObjectNotFound for a missing assignment, Forbidden when the caller
// did not place the order, InvalidState before delivery and Conflict when the
// delivery was already rated.
func (h RateDeliveryCommandHandler) Handle(ctx context.Context, cmd RateDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	aggregate, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, aggregate.OrderID())
	if err != nil {
		return err
	}
	if !cmd.CallerID().IsEqual(ord.UserID()) {
		return errs.NewForbiddenError(
			cmd.CallerID().String(), "assignment "+aggregate.ID().String())
	}

	if err = aggregate.Rate(cmd.Rating(), cmd.Feedback()); err != nil {
		return err
	}

	partnerRepo := uow.PartnerRepository()
	carrier, err := partnerRepo.Get(ctx, aggregate.PartnerID())
	if err != nil {
		return err
	}

	if _, err = h.aggregator.Apply(carrier, cmd.Rating()); err != nil {
		return err
	}

	if err = partnerRepo.Update(ctx, carrier); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
