package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPartnerAssignmentsQueryHandler retrieves a partner's delivery history
// from the database. Uses direct SQL queries for optimal read performance in
// the CQRS pattern.
type GetPartnerAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerAssignmentsQueryHandler creates a handler for delivery history queries.
// Requires a GORM database connection for query execution.
func NewGetPartnerAssignmentsQueryHandler(db *gorm.DB) GetPartnerAssignmentsQueryHandler {
	return GetPartnerAssignmentsQueryHandler{db: db}
}

// Handle executes the query.
// Returns the partner's assignments newest first; a partner without history
// gets an empty slice.
func (h GetPartnerAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerAssignmentsQuery,
) ([]GetPartnerAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetPartnerAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			pickup_address,
			delivery_address,
			assigned_at,
			delivered_at,
			failure_reason,
			customer_rating
		FROM assignments
		WHERE partner_id = ?
		ORDER BY assigned_at DESC
	`, query.PartnerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetPartnerAssignmentsQueryResponse
		var id, orderID uuid.UUID
		var deliveredAt sql.NullTime
		var failureReason sql.NullString
		var customerRating sql.NullInt64

		err = rows.Scan(
			&id,
			&orderID,
			&response.Status,
			&response.PickupAddress,
			&response.DeliveryAddress,
			&response.AssignedAt,
			&deliveredAt,
			&failureReason,
			&customerRating,
		)
		if err != nil {
			return nil, err
		}

		if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if response.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if deliveredAt.Valid {
			t := deliveredAt.Time
			response.DeliveredAt = &t
		}
		response.FailureReason = failureReason.String
		if customerRating.Valid {
			rating := int(customerRating.Int64)
			response.CustomerRating = &rating
		}

		assignments = append(assignments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
