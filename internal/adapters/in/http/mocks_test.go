package http_test

import (
	"context"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/application/usecases/queries"
	"requisitions/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockCreateOrder struct{ mock.Mock }

func (m *MockCreateOrder) Handle(ctx context.Context, cmd commands.CreateOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockAdvanceOrder struct{ mock.Mock }

func (m *MockAdvanceOrder) Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockConfirmReceipt struct{ mock.Mock }

func (m *MockConfirmReceipt) Handle(ctx context.Context, cmd commands.ConfirmReceiptCommand) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type MockCreateLocation struct{ mock.Mock }

func (m *MockCreateLocation) Handle(ctx context.Context, cmd commands.CreateLocationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockBindUserLocation struct{ mock.Mock }

func (m *MockBindUserLocation) Handle(ctx context.Context, cmd commands.BindUserLocationCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateRequisition struct{ mock.Mock }

func (m *MockCreateRequisition) Handle(ctx context.Context, cmd commands.CreateRequisitionCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockListOrders struct{ mock.Mock }

func (m *MockListOrders) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	orders, _ := args.Get(0).([]queries.ListOrdersQueryResponse)
	return orders, args.Error(1)
}

type MockGetOrderView struct{ mock.Mock }

func (m *MockGetOrderView) Handle(ctx context.Context, query queries.GetOrderViewQuery) (queries.GetOrderViewQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderViewQueryResponse), args.Error(1)
}

type MockGetOrderTimeline struct{ mock.Mock }

func (m *MockGetOrderTimeline) Handle(
	ctx context.Context,
	query queries.GetOrderTimelineQuery,
) (queries.GetOrderTimelineQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderTimelineQueryResponse), args.Error(1)
}

type MockGetDashboard struct{ mock.Mock }

func (m *MockGetDashboard) Handle(ctx context.Context, query queries.GetDashboardQuery) (queries.GetDashboardQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDashboardQueryResponse), args.Error(1)
}

type MockGetRequisitions struct{ mock.Mock }

func (m *MockGetRequisitions) Handle(
	ctx context.Context,
	query queries.GetRequisitionsQuery,
) ([]queries.GetRequisitionsQueryResponse, error) {
	args := m.Called(ctx, query)
	requisitions, _ := args.Get(0).([]queries.GetRequisitionsQueryResponse)
	return requisitions, args.Error(1)
}

type MockGetRequisition struct{ mock.Mock }

func (m *MockGetRequisition) Handle(
	ctx context.Context,
	query queries.GetRequisitionQuery,
) (queries.GetRequisitionQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetRequisitionQueryResponse), args.Error(1)
}
