package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetPartnerAssignmentsQueryIsNotConstructed = errors.New(
	"GetPartnerAssignmentsQuery must be created via NewGetPartnerAssignmentsQuery constructor",
)

// GetPartnerAssignmentsQuery retrieves a partner's delivery history,
// newest first.
type GetPartnerAssignmentsQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerAssignmentsQuery creates a query for a partner's assignments.
func NewGetPartnerAssignmentsQuery(partnerID kernel.UUID) (GetPartnerAssignmentsQuery, error) {
	q := GetPartnerAssignmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setPartnerID(partnerID); err != nil {
		return GetPartnerAssignmentsQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerAssignmentsQueryIsNotConstructed)
}

// PartnerID returns the identifier of the partner whose history to retrieve.
func (q GetPartnerAssignmentsQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetPartnerAssignmentsQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	q.partnerID = partnerID
	return nil
}

// GetPartnerAssignmentsQueryResponse is one assignment in the partner's
// delivery history.
type GetPartnerAssignmentsQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Status          string
	PickupAddress   string
	DeliveryAddress string
	AssignedAt      time.Time
	DeliveredAt     *time.Time
	FailureReason   string
	CustomerRating  *int
}
