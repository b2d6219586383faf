package http

import (
	"net/http"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/application/usecases/queries"
	"requisitions/internal/core/domain/model/cart"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders - submits the caller's cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body servers.NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]cart.Line, 0, len(body.Items))
	for _, item := range body.Items {
		productID, idErr := toKernelUUID(item.ProductId)
		if idErr != nil {
			return s.fail(ctx, idErr)
		}
		lines = append(lines, cart.Line{ProductID: productID, Quantity: item.Quantity})
	}

	selection, err := cart.FromLines(lines)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actorID, selection)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// ListOrders handles GET /api/v1/orders - orders sent or received by the caller's branch.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	activeOnly := params.Active != nil && *params.Active
	query, err := queries.NewListOrdersQuery(actorID, activeOnly)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummary(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive // generated signature
	actorID, orderID, err := s.orderRequest(ctx, orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderViewQuery(orderID, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.handlers.GetOrderView.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(view))
}

// AdvanceOrder handles POST /api/v1/orders/{orderId}/advance.
func (s *Server) AdvanceOrder(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive // generated signature
	actorID, orderID, err := s.orderRequest(ctx, orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(orderID, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if ctx.Request().ContentLength != 0 {
		var body servers.AdvanceRequest
		if err = ctx.Bind(&body); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
		if body.ExpectedStatus != nil {
			expected, parseErr := order.ParseStatus(string(*body.ExpectedStatus))
			if parseErr != nil {
				return s.fail(ctx, parseErr)
			}
			if cmd, err = cmd.ExpectingStatus(expected); err != nil {
				return s.fail(ctx, err)
			}
		}
	}

	status, err := s.handlers.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusChange{Status: toAPIStatus(status)})
}

// ConfirmReceipt handles POST /api/v1/orders/{orderId}/confirm-receipt.
func (s *Server) ConfirmReceipt(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive // generated signature
	actorID, orderID, err := s.orderRequest(ctx, orderId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewConfirmReceiptCommand(orderID, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := s.handlers.ConfirmReceipt.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusChange{Status: toAPIStatus(status)})
}

// GetOrderTimeline handles GET /api/v1/orders/{orderId}/timeline.
func (s *Server) GetOrderTimeline(ctx echo.Context, orderId servers.OrderId) error { //nolint:revive // generated signature
	actorID, orderID, err := s.orderRequest(ctx, orderId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderTimelineQuery(orderID, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	timeline, err := s.handlers.GetOrderTimeline.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTimeline(timeline))
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context, params servers.GetDashboardParams) error {
	actorID, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	days := 0
	if params.Days != nil {
		days = *params.Days
	}

	query, err := queries.NewGetDashboardQuery(actorID, days)
	if err != nil {
		return s.fail(ctx, err)
	}

	dashboard, err := s.handlers.GetDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDashboard(dashboard))
}

// orderRequest returns the acting user and the order addressed by the path.
func (s *Server) orderRequest(ctx echo.Context, orderId servers.OrderId) (kernel.UUID, kernel.UUID, error) { //nolint:revive // generated name
	actorID, err := actorFrom(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	orderID, err := toKernelUUID(orderId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	return actorID, orderID, nil
}
