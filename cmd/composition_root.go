package cmd

import (
	"fulfillment/internal/adapters/out/pickup"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/stripegw"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	gateway        ports.PaymentGateway
	pickupResolver ports.PickupResolver
	searchRadiusM  float64
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	gateway, err := stripegw.NewStripePaymentGateway(config.StripeSecretKey, config.StripeCurrency)
	if err != nil {
		return CompositionRoot{}, err
	}

	resolver, err := pickup.NewStaticResolver(
		config.PickupLatitude, config.PickupLongitude, config.PickupAddress)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:        gateway,
		pickupResolver: resolver,
		searchRadiusM:  config.SearchRadiusMeters,
	}, nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePaymentIntentCommandHandler() commands.CreatePaymentIntentCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentIntentCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateConfirmPaymentCommandHandler() commands.ConfirmPaymentCommandHandler {
	var f commands.OrderPaymentUoWFactory = FuncOrderPaymentUoWFactory(func() commands.OrderPaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmPaymentCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateRefundPaymentCommandHandler() commands.RefundPaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefundPaymentCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateVerifyPartnerCommandHandler() commands.VerifyPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewVerifyPartnerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePartnerLocationCommandHandler() commands.UpdatePartnerLocationCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPartnerAvailabilityCommandHandler() commands.SetPartnerAvailabilityCommandHandler {
	var f commands.PartnerAssignmentUoWFactory = FuncPartnerAssignmentUoWFactory(func() commands.PartnerAssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPartnerAvailabilityCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssignmentCommandHandler(f, c.searchRadiusM)
}

func (c *CompositionRoot) CreateAdvanceDeliveryCommandHandler() commands.AdvanceDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRateDeliveryCommandHandler() commands.RateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRateDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrdersCommandHandler() commands.DispatchOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrdersCommandHandler(
		f, c.CreateCreateAssignmentCommandHandler(), c.pickupResolver)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNearbyPartnersQueryHandler() queries.GetNearbyPartnersQueryHandler {
	return queries.NewGetNearbyPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerAssignmentsQueryHandler() queries.GetPartnerAssignmentsQueryHandler {
	return queries.NewGetPartnerAssignmentsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncOrderPaymentUoWFactory func() commands.OrderPaymentUoW

func (f FuncOrderPaymentUoWFactory) Create() commands.OrderPaymentUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncPartnerAssignmentUoWFactory func() commands.PartnerAssignmentUoW

func (f FuncPartnerAssignmentUoWFactory) Create() commands.PartnerAssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
