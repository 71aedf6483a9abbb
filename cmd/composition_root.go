package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateFulfillmentCommandHandler() commands.CreateFulfillmentCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateFulfillmentCommandHandler(f)
}

func (c *CompositionRoot) CreateShipFulfillmentCommandHandler() commands.ShipFulfillmentCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewShipFulfillmentCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordTrackingEventCommandHandler() commands.RecordTrackingEventCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordTrackingEventCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelFulfillmentCommandHandler() commands.CancelFulfillmentCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelFulfillmentCommandHandler(f)
}

func (c *CompositionRoot) CreateFulfillmentUoWFactory() commands.FulfillmentUoWFactory {
	return FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetActiveFulfillmentsQueryHandler() queries.GetActiveFulfillmentsQueryHandler {
	return queries.NewGetActiveFulfillmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFulfillmentTrackingQueryHandler() queries.GetFulfillmentTrackingQueryHandler {
	return queries.NewGetFulfillmentTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLateFulfillmentsQueryHandler() queries.GetLateFulfillmentsQueryHandler {
	return queries.NewGetLateFulfillmentsQueryHandler(c.gormDB)
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}
