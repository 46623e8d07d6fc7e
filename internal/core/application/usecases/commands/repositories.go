// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest unit of work that covers the
// aggregates it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PaymentRepoFactory provides access to the payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PaymentUoW manages transactions for payment-only operations.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new payment unit of work instances.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	// OrderPaymentUoW manages transactions spanning orders and payments.
	// Used by payment intent creation and confirmation, which read the order
	// and write the intent (and, on confirmation, the order) together.
	OrderPaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// OrderPaymentUoWFactory creates new order+payment unit of work instances.
	OrderPaymentUoWFactory interface {
		Create() OrderPaymentUoW
	}

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// PartnerAssignmentUoW manages transactions spanning partners and
	// assignments. Used when availability changes must be checked against the
	// partner's open assignments.
	PartnerAssignmentUoW interface {
		TxManager
		PartnerRepoFactory
		AssignmentRepoFactory
	}

	// PartnerAssignmentUoWFactory creates new partner+assignment unit of work instances.
	PartnerAssignmentUoWFactory interface {
		Create() PartnerAssignmentUoW
	}

	// UoW manages transactions across every aggregate in the fulfillment
	// core. Used by dispatch and delivery progression, which coordinate the
	// order, the partner and the assignment in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   partnerRepo := uow.PartnerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
		PartnerRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
