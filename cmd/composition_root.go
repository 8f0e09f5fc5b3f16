package cmd

import (
	"log/slog"

	httpin "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      *clock.Authority
	logger     *slog.Logger
	metrics    *httpin.Metrics
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithLockTimeout(configs.DB.LockTimeout)),
		clock:      clock.New(clock.LoadZone(configs.Time.DisplayZone, configs.Time.DisplayOffset)),
		logger:     logger,
		metrics:    httpin.NewMetrics(),
	}
}

func (c *CompositionRoot) CreateAttachPayloadCommandHandler() commands.AttachPayloadCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachPayloadCommandHandler(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateClearCarrierCommandHandler() commands.ClearCarrierCommandHandler {
	var f commands.CarrierUoWFactory = FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClearCarrierCommandHandler(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateCarrierToProcessorCommandHandler() commands.CarrierToProcessorCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCarrierToProcessorCommandHandler(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateProcessorToCarrierCommandHandler() commands.ProcessorToCarrierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewProcessorToCarrierCommandHandler(f, c.clock, c.logger)
}

func (c *CompositionRoot) CreateProvisionProcessCommandHandler() commands.ProvisionProcessCommandHandler {
	var f commands.SlotUoWFactory = FuncSlotUoWFactory(func() commands.SlotUoW {
		return c.uowFactory.Create()
	})
	return commands.NewProvisionProcessCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateResolveBarcodeQueryHandler() queries.ResolveBarcodeQueryHandler {
	return queries.NewResolveBarcodeQueryHandler(c.gormDB, c.clock, c.configs.History.ResolveLimit)
}

func (c *CompositionRoot) CreateListHistoryQueryHandler() queries.ListHistoryQueryHandler {
	return queries.NewListHistoryQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateSearchHistoryQueryHandler() queries.SearchHistoryQueryHandler {
	return queries.NewSearchHistoryQueryHandler(c.gormDB, c.clock, c.configs.History.SearchLimit)
}

func (c *CompositionRoot) CreateProcessHistoryQueryHandler() queries.ProcessHistoryQueryHandler {
	return queries.NewProcessHistoryQueryHandler(c.gormDB, c.clock, c.configs.History.SearchLimit)
}

func (c *CompositionRoot) CreateCarrierJourneyQueryHandler() queries.CarrierJourneyQueryHandler {
	return queries.NewCarrierJourneyQueryHandler(c.gormDB, c.clock, c.configs.History.SearchLimit)
}

func (c *CompositionRoot) CreateHistoryStatsQueryHandler() queries.HistoryStatsQueryHandler {
	return queries.NewHistoryStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AttachPayload:      c.CreateAttachPayloadCommandHandler(),
		ClearCarrier:       c.CreateClearCarrierCommandHandler(),
		CarrierToProcessor: c.CreateCarrierToProcessorCommandHandler(),
		ProcessorToCarrier: c.CreateProcessorToCarrierCommandHandler(),
		ProvisionProcess:   c.CreateProvisionProcessCommandHandler(),
		ResolveBarcode:     c.CreateResolveBarcodeQueryHandler(),
		ListHistory:        c.CreateListHistoryQueryHandler(),
		SearchHistory:      c.CreateSearchHistoryQueryHandler(),
		ProcessHistory:     c.CreateProcessHistoryQueryHandler(),
		CarrierJourney:     c.CreateCarrierJourneyQueryHandler(),
		HistoryStats:       c.CreateHistoryStatsQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) Metrics() *httpin.Metrics {
	return c.metrics
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncSlotUoWFactory func() commands.SlotUoW

func (f FuncSlotUoWFactory) Create() commands.SlotUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
