package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/partner"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

// ErrNoPartnerAvailable is returned when no dispatchable partner sits inside
// the search radius, or every candidate was taken by a concurrent dispatch.
var ErrNoPartnerAvailable = errs.NewObjectNotFoundError("availablePartner", "within search radius")

// CreateAssignmentCommandHandler dispatches a paid order to the nearest
// available partner.
//
// Business rules:
//   - One assignment per order, ever; a failed assignment still counts
//   - Only paid orders are dispatched
//   - Candidates are tried nearest first; reserving a partner uses a
//     conditional availability write, so losing a race to a concurrent
//     dispatch just moves on to the next candidate
type CreateAssignmentCommandHandler struct {
	uowFactory     UoWFactory
	proximityIndex services.ProximityIndex
	searchRadiusM  float64
}

// NewCreateAssignmentCommandHandler creates a handler for order dispatch.
// searchRadiusMeters bounds the candidate search around the pickup point.
func NewCreateAssignmentCommandHandler(
	uowFactory UoWFactory,
	searchRadiusMeters float64,
) CreateAssignmentCommandHandler {
	return CreateAssignmentCommandHandler{
		uowFactory:     uowFactory,
		proximityIndex: services.NewProximityIndex(),
		searchRadiusM:  searchRadiusMeters,
	}
}

// Handle processes the dispatch command.
// Returns Conflict when the order already has an assignment or partner,
// InvalidState when the order is unpaid, and ObjectNotFound when nobody can
// take the delivery.
func (h CreateAssignmentCommandHandler) Handle(ctx context.Context, cmd CreateAssignmentCommand) error {
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

	existing, err := assignmentRepo.GetByOrderID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if existing != nil {
		return errs.NewConflictError("order already has an assignment")
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !aggregate.IsPaid() {
		return errs.NewInvalidStateError("dispatch order", "unpaid")
	}
	if aggregate.Partner() != nil {
		return errs.NewConflictError("order already has a partner")
	}

	chosen, err := h.reserveNearest(ctx, uow, cmd)
	if err != nil {
		return err
	}

	newAssignment, err := assignment.NewDeliveryAssignment(
		cmd.AssignmentID(), cmd.OrderID(), chosen.ID(),
		cmd.PickupAddress(), aggregate.DeliveryAddress(), aggregate.DeliveryInstructions())
	if err != nil {
		return err
	}

	if err = aggregate.AssignPartner(chosen.ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	// The unique index on the order reference backstops the earlier existence
	// check against concurrent dispatches.
	if err = assignmentRepo.Add(ctx, newAssignment); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// reserveNearest walks the ranked candidates, claiming the first whose
// availability flip wins. Candidates lost to concurrent dispatches are
// skipped, not treated as failures.
func (h CreateAssignmentCommandHandler) reserveNearest(
	ctx context.Context,
	uow UoW,
	cmd CreateAssignmentCommand,
) (*partner.DeliveryPartner, error) {
	partnerRepo := uow.PartnerRepository()

	pool, err := partnerRepo.GetAllAvailableVerified(ctx)
	if err != nil {
		return nil, err
	}

	candidates, err := h.proximityIndex.FindCandidates(cmd.PickupLocation(), h.searchRadiusM, pool)
	if err != nil {
		return nil, err
	}

	for _, candidate := range candidates {
		err = partnerRepo.ReserveAvailable(ctx, candidate.Partner.ID())
		if errors.Is(err, errs.ErrConflict) {
			continue
		}
		if err != nil {
			return nil, err
		}

		candidate.Partner.SetUnavailable()
		return candidate.Partner, nil
	}

	return nil, ErrNoPartnerAvailable
}
