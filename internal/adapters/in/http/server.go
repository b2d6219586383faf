package http

import (
	"context"
	"log/slog"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/application/usecases/queries"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = (*Server)(nil)

// Use case ports consumed by the HTTP adapter. The command and query
// handlers of the application layer satisfy them.
type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	AdvanceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (order.Status, error)
	}

	ConfirmReceiptHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmReceiptCommand) (order.Status, error)
	}

	CreateLocationHandler interface {
		Handle(ctx context.Context, cmd commands.CreateLocationCommand) error
	}

	BindUserLocationHandler interface {
		Handle(ctx context.Context, cmd commands.BindUserLocationCommand) error
	}

	CreateRequisitionHandler interface {
		Handle(ctx context.Context, cmd commands.CreateRequisitionCommand) error
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
	}

	GetOrderViewHandler interface {
		Handle(ctx context.Context, query queries.GetOrderViewQuery) (queries.GetOrderViewQueryResponse, error)
	}

	GetOrderTimelineHandler interface {
		Handle(ctx context.Context, query queries.GetOrderTimelineQuery) (queries.GetOrderTimelineQueryResponse, error)
	}

	GetDashboardHandler interface {
		Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error)
	}

	GetRequisitionsHandler interface {
		Handle(ctx context.Context, query queries.GetRequisitionsQuery) ([]queries.GetRequisitionsQueryResponse, error)
	}

	GetRequisitionHandler interface {
		Handle(ctx context.Context, query queries.GetRequisitionQuery) (queries.GetRequisitionQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateOrder       CreateOrderHandler
	AdvanceOrder      AdvanceOrderHandler
	ConfirmReceipt    ConfirmReceiptHandler
	CreateLocation    CreateLocationHandler
	BindUserLocation  BindUserLocationHandler
	CreateRequisition CreateRequisitionHandler

	// Query handlers
	ListOrders       ListOrdersHandler
	GetOrderView     GetOrderViewHandler
	GetOrderTimeline GetOrderTimelineHandler
	GetDashboard     GetDashboardHandler
	GetRequisitions  GetRequisitionsHandler
	GetRequisition   GetRequisitionHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts the API routes on e behind ActorMiddleware.
func (s *Server) Register(e *echo.Echo) {
	api := e.Group("", ActorMiddleware())
	servers.RegisterHandlers(api, s)
}
