package cmd

import (
	"log/slog"

	httpadapter "requisitions/internal/adapters/in/http"
	"requisitions/internal/adapters/out/kafka"
	"requisitions/internal/adapters/out/postgres"
	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/application/usecases/queries"
	"requisitions/internal/core/domain/services"
	"requisitions/internal/core/ports"
	"requisitions/internal/jobs"
	"requisitions/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	policy     services.AccessPolicy
	resolver   services.DestinationResolver
	metrics    *metrics.Metrics
	publisher  ports.MessagePublisher
	closers    []func() error
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, configs.KafkaOrderStatusTopic),
		policy:     services.NewAccessPolicy(),
		resolver:   services.NewDestinationResolver(configs.DestinationLocationName),
		metrics:    metrics.New(),
		logger:     logger,
	}

	if configs.KafkaHost == "" {
		c.publisher = kafka.NewLogPublisher(logger)
	} else {
		publisher := kafka.NewPublisher(configs.KafkaHost)
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
	}

	return c
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

// Close releases the outbound connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) lifecycleFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderingFactory() commands.OrderingUoWFactory {
	return FuncOrderingUoWFactory(func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) directoryFactory() commands.DirectoryUoWFactory {
	return FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderingFactory(), c.resolver, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() *commands.AdvanceOrderCommandHandler {
	h := commands.NewAdvanceOrderCommandHandler(c.lifecycleFactory(), c.policy, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateConfirmReceiptCommandHandler() *commands.ConfirmReceiptCommandHandler {
	h := commands.NewConfirmReceiptCommandHandler(c.lifecycleFactory(), c.policy, c.metrics)
	return &h
}

func (c *CompositionRoot) CreateCreateLocationCommandHandler() *commands.CreateLocationCommandHandler {
	h := commands.NewCreateLocationCommandHandler(c.directoryFactory())
	return &h
}

func (c *CompositionRoot) CreateBindUserLocationCommandHandler() *commands.BindUserLocationCommandHandler {
	h := commands.NewBindUserLocationCommandHandler(c.directoryFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateRequisitionCommandHandler() *commands.CreateRequisitionCommandHandler {
	h := commands.NewCreateRequisitionCommandHandler(c.directoryFactory())
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() *commands.RelayOutboxCommandHandler {
	h := commands.NewRelayOutboxCommandHandler(c.outboxFactory(), c.publisher)
	return &h
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderViewQueryHandler() queries.GetOrderViewQueryHandler {
	return queries.NewGetOrderViewQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetOrderTimelineQueryHandler() queries.GetOrderTimelineQueryHandler {
	return queries.NewGetOrderTimelineQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRequisitionsQueryHandler() queries.GetRequisitionsQueryHandler {
	return queries.NewGetRequisitionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRequisitionQueryHandler() queries.GetRequisitionQueryHandler {
	return queries.NewGetRequisitionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		AdvanceOrder:      c.CreateAdvanceOrderCommandHandler(),
		ConfirmReceipt:    c.CreateConfirmReceiptCommandHandler(),
		CreateLocation:    c.CreateCreateLocationCommandHandler(),
		BindUserLocation:  c.CreateBindUserLocationCommandHandler(),
		CreateRequisition: c.CreateCreateRequisitionCommandHandler(),
		ListOrders:        c.CreateListOrdersQueryHandler(),
		GetOrderView:      c.CreateGetOrderViewQueryHandler(),
		GetOrderTimeline:  c.CreateGetOrderTimelineQueryHandler(),
		GetDashboard:      c.CreateGetDashboardQueryHandler(),
		GetRequisitions:   c.CreateGetRequisitionsQueryHandler(),
		GetRequisition:    c.CreateGetRequisitionQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	cmd, err := commands.NewRelayOutboxCommand(c.configs.OutboxBatchSize)
	if err != nil {
		return nil, err
	}

	relay := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(),
		c.metrics,
		c.configs.OutboxSchedule,
		cmd,
		c.logger,
	)
	return jobs.NewJobManager(relay), nil
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncOrderingUoWFactory func() commands.OrderingUoW

func (f FuncOrderingUoWFactory) Create() commands.OrderingUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
