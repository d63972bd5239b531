package cmd

import (
	"gorm.io/gorm"

	"github.com/prabhatghimire/sajiloLife/internal/adapters/out/postgres"
	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/commands"
	"github.com/prabhatghimire/sajiloLife/internal/core/application/usecases/queries"
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

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	return commands.NewCreateDeliveryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	return commands.NewUpdateStatusCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	return commands.NewAssignPartnerCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateSyncDeliveryCommandHandler() commands.SyncDeliveryCommandHandler {
	return commands.NewSyncDeliveryCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateBulkSyncCommandHandler() commands.BulkSyncCommandHandler {
	return commands.NewBulkSyncCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateDispatchPendingCommandHandler() commands.DispatchPendingCommandHandler {
	return commands.NewDispatchPendingCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePartnerLocationCommandHandler() commands.UpdatePartnerLocationCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerLocationCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPartnerShiftCommandHandler() commands.SetPartnerShiftCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPartnerShiftCommandHandler(f)
}

func (c *CompositionRoot) CreateGetNearbyPartnersQueryHandler() queries.GetNearbyPartnersQueryHandler {
	return queries.NewGetNearbyPartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerStatisticsQueryHandler() queries.GetPartnerStatisticsQueryHandler {
	return queries.NewGetPartnerStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDeliveryStatisticsQueryHandler() queries.GetDeliveryStatisticsQueryHandler {
	return queries.NewGetDeliveryStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnsyncedDeliveriesQueryHandler() queries.GetUnsyncedDeliveriesQueryHandler {
	return queries.NewGetUnsyncedDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
