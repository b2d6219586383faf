package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "requisitions/internal/adapters/in/http"
	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/application/usecases/queries"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/generated/servers"
	"requisitions/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	e *echo.Echo

	createOrder       *MockCreateOrder
	advanceOrder      *MockAdvanceOrder
	confirmReceipt    *MockConfirmReceipt
	createLocation    *MockCreateLocation
	bindUserLocation  *MockBindUserLocation
	createRequisition *MockCreateRequisition
	listOrders        *MockListOrders
	getOrderView      *MockGetOrderView
	getOrderTimeline  *MockGetOrderTimeline
	getDashboard      *MockGetDashboard
	getRequisitions   *MockGetRequisitions
	getRequisition    *MockGetRequisition

	actorID kernel.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := &apiFixture{
		createOrder:       &MockCreateOrder{},
		advanceOrder:      &MockAdvanceOrder{},
		confirmReceipt:    &MockConfirmReceipt{},
		createLocation:    &MockCreateLocation{},
		bindUserLocation:  &MockBindUserLocation{},
		createRequisition: &MockCreateRequisition{},
		listOrders:        &MockListOrders{},
		getOrderView:      &MockGetOrderView{},
		getOrderTimeline:  &MockGetOrderTimeline{},
		getDashboard:      &MockGetDashboard{},
		getRequisitions:   &MockGetRequisitions{},
		getRequisition:    &MockGetRequisition{},
		actorID:           kernel.NewUUID(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       f.createOrder,
		AdvanceOrder:      f.advanceOrder,
		ConfirmReceipt:    f.confirmReceipt,
		CreateLocation:    f.createLocation,
		BindUserLocation:  f.bindUserLocation,
		CreateRequisition: f.createRequisition,
		ListOrders:        f.listOrders,
		GetOrderView:      f.getOrderView,
		GetOrderTimeline:  f.getOrderTimeline,
		GetDashboard:      f.getDashboard,
		GetRequisitions:   f.getRequisitions,
		GetRequisition:    f.getRequisition,
	}, logger)

	f.e = echo.New()
	f.e.HTTPErrorHandler = httpadapter.ErrorHandler(logger)
	server.Register(f.e)

	t.Cleanup(func() {
		f.createOrder.AssertExpectations(t)
		f.advanceOrder.AssertExpectations(t)
		f.confirmReceipt.AssertExpectations(t)
		f.createLocation.AssertExpectations(t)
		f.bindUserLocation.AssertExpectations(t)
		f.createRequisition.AssertExpectations(t)
		f.listOrders.AssertExpectations(t)
		f.getOrderView.AssertExpectations(t)
		f.getOrderTimeline.AssertExpectations(t)
		f.getDashboard.AssertExpectations(t)
		f.getRequisitions.AssertExpectations(t)
		f.getRequisition.AssertExpectations(t)
	})
	return f
}

func (f *apiFixture) do(method, target, body string) *httptest.ResponseRecorder {
	return f.doAs(f.actorID.String(), method, target, body)
}

func (f *apiFixture) doAs(userID, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set(httpadapter.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var apiErr servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestActorMiddleware(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.doAs("", http.MethodGet, "/api/v1/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, httpadapter.UserIDHeader)

	rec = f.doAs("not-a-uuid", http.MethodGet, "/api/v1/orders", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.doAs("00000000-0000-0000-0000-000000000000", http.MethodGet, "/api/v1/orders", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newAPIFixture(t)
		pizza := kernel.NewUUID()

		f.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
			return cmd.ActorID().IsEqual(f.actorID) && cmd.Cart().Quantity(pizza) == 5 && cmd.Cart().Len() == 1
		})).Return(nil).Once()

		body := `{"items":[{"productId":"` + pizza.String() + `","quantity":2},` +
			`{"productId":"` + pizza.String() + `","quantity":3}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		require.Equal(t, http.StatusCreated, rec.Code)
		var created servers.Created
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEqual(t, [16]byte{}, [16]byte(created.Id))
	})

	t.Run("empty cart is rejected before the use case", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"items":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "cart is empty")
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		f := newAPIFixture(t)

		body := `{"items":[{"productId":"` + kernel.NewUUID().String() + `","quantity":0}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("quantities beyond the column range are rejected", func(t *testing.T) {
		f := newAPIFixture(t)
		product := kernel.NewUUID().String()

		body := `{"items":[{"productId":"` + product + `","quantity":2147483647},` +
			`{"productId":"` + product + `","quantity":1}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "max value is 2147483647")

		body = `{"items":[{"productId":"` + product + `","quantity":3000000000}]}`
		rec = f.do(http.MethodPost, "/api/v1/orders", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders", `{"items":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unresolvable destination is a configuration error", func(t *testing.T) {
		f := newAPIFixture(t)
		f.createOrder.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewConfigurationError("destination location")).Once()

		body := `{"items":[{"productId":"` + kernel.NewUUID().String() + `","quantity":1}]}`
		rec := f.do(http.MethodPost, "/api/v1/orders", body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "destination location")
	})
}

func TestAdvanceOrder_StatusMapping(t *testing.T) {
	tests := map[string]struct {
		status   order.Status
		err      error
		wantCode int
	}{
		"advanced":         {status: order.Picking, wantCode: http.StatusOK},
		"forbidden":        {err: errs.NewForbiddenError("advance", "not the destination"), wantCode: http.StatusForbidden},
		"not found":        {err: errs.NewObjectNotFoundError("order", "x"), wantCode: http.StatusNotFound},
		"already final":    {err: errs.NewAlreadyFinalError("SHIPPED", "advance"), wantCode: http.StatusConflict},
		"stale transition": {err: errs.NewInvalidTransitionError("PICKING", "advance"), wantCode: http.StatusConflict},
		"unbound actor":    {err: errs.NewValueIsRequiredError("actor location"), wantCode: http.StatusBadRequest},
		"storage failure":  {err: errors.New("connection reset"), wantCode: http.StatusInternalServerError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			// Arrange
			f := newAPIFixture(t)
			orderID := kernel.NewUUID()
			f.advanceOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceOrderCommand) bool {
				return cmd.OrderID().IsEqual(orderID) && cmd.ActorID().IsEqual(f.actorID)
			})).Return(tt.status, tt.err).Once()

			// Act
			rec := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/advance", "")

			// Assert
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.err == nil {
				var change servers.StatusChange
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &change))
				assert.Equal(t, servers.PICKING, change.Status)
				return
			}
			apiErr := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			if tt.wantCode == http.StatusInternalServerError {
				assert.NotContains(t, apiErr.Message, "connection reset")
			} else {
				assert.Equal(t, tt.err.Error(), apiErr.Message)
			}
		})
	}
}

func TestAdvanceOrder_ExpectedStatus(t *testing.T) {
	t.Run("forwarded to the command", func(t *testing.T) {
		f := newAPIFixture(t)
		orderID := kernel.NewUUID()
		f.advanceOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AdvanceOrderCommand) bool {
			return cmd.ExpectedStatus() == order.Created
		})).Return(order.DestinationReceived, nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/advance", `{"expectedStatus":"CREATED"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"DESTINATION_RECEIVED"}`, rec.Body.String())
	})

	t.Run("unknown status code", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/advance", `{"expectedStatus":"LOST"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "LOST")
	})
}

func TestConfirmReceipt(t *testing.T) {
	f := newAPIFixture(t)
	orderID := kernel.NewUUID()
	f.confirmReceipt.On("Handle", mock.Anything, mock.Anything).
		Return(order.OriginReceived, nil).Once()

	rec := f.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/confirm-receipt", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ORIGIN_RECEIVED"}`, rec.Body.String())
}

func TestMalformedOrderID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/orders/42/advance", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "orderId")
}

func TestListOrders(t *testing.T) {
	f := newAPIFixture(t)
	now := time.Now().UTC()
	origin := queries.LocationRef{ID: kernel.NewUUID(), Name: "Dallas"}
	destination := queries.LocationRef{ID: kernel.NewUUID(), Name: "Austin"}

	f.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		return q.ActiveOnly() && q.ActorID().IsEqual(f.actorID)
	})).Return([]queries.ListOrdersQueryResponse{{
		ID:            kernel.NewUUID(),
		Origin:        origin,
		Destination:   destination,
		Status:        order.Shipped,
		CreatedAt:     now,
		ItemCount:     2,
		TotalQuantity: 7,
		Direction:     queries.DirectionOutgoing,
	}}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders?active=true", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var orders []servers.OrderSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, servers.SHIPPED, orders[0].Status)
	assert.Equal(t, servers.Outgoing, orders[0].Direction)
	assert.Equal(t, "Austin", orders[0].Destination.Name)
	assert.Equal(t, 7, orders[0].TotalQuantity)
	assert.Nil(t, orders[0].CompletedAt)
}

func TestGetOrder(t *testing.T) {
	f := newAPIFixture(t)
	orderID := kernel.NewUUID()
	changedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	f.getOrderView.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetOrderViewQuery) bool {
		return q.OrderID().IsEqual(orderID)
	})).Return(queries.GetOrderViewQueryResponse{
		ID:          orderID,
		CreatedBy:   f.actorID,
		Origin:      queries.LocationRef{ID: kernel.NewUUID(), Name: "Dallas"},
		Destination: queries.LocationRef{ID: kernel.NewUUID(), Name: "Austin"},
		Status:      order.Created,
		CreatedAt:   changedAt,
		Items: []queries.OrderViewItem{{
			ProductID: kernel.NewUUID(), ProductName: "Pepperoni",
			RequisitionID: kernel.NewUUID(), RequisitionName: "Pizza", Quantity: 5,
		}},
		History: []queries.OrderViewHistoryEntry{{
			Status: order.Created, ChangedAt: changedAt, ChangedBy: f.actorID,
		}},
		CanConfirm: false,
		CanAdvance: false,
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var view servers.OrderView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, servers.CREATED, view.Status)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	require.Len(t, view.History, 1)
	assert.True(t, view.History[0].ChangedAt.Equal(changedAt))
}

func TestGetOrderTimeline(t *testing.T) {
	f := newAPIFixture(t)
	orderID := kernel.NewUUID()
	entered := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	left := entered.Add(90 * time.Minute)

	f.getOrderTimeline.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderTimelineQueryResponse{
		OrderID: orderID,
		Status:  order.DestinationReceived,
		Steps: []queries.TimelineStep{
			{Status: order.Created, EnteredAt: entered, LeftAt: &left, Duration: 90 * time.Minute},
			{Status: order.DestinationReceived, EnteredAt: left, Duration: 30 * time.Minute},
		},
		Total: 2 * time.Hour,
	}, nil).Once()

	rec := f.do(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/timeline", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var timeline servers.Timeline
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &timeline))
	require.Len(t, timeline.Steps, 2)
	assert.Equal(t, int64(5400), timeline.Steps[0].DurationSeconds)
	assert.Nil(t, timeline.Steps[1].LeftAt)
	assert.Equal(t, int64(7200), timeline.TotalSeconds)
}

func TestGetDashboard(t *testing.T) {
	t.Run("default window", func(t *testing.T) {
		f := newAPIFixture(t)
		since := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		f.getDashboard.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetDashboardQuery) bool {
			return q.Days() == queries.DefaultDashboardDays
		})).Return(queries.GetDashboardQueryResponse{
			Since:        since,
			OrdersPerDay: []queries.DailyOrders{{Day: since, Count: 3}},
			TopProducts:  []queries.ProductTotal{{ProductID: kernel.NewUUID(), Name: "Pepperoni", Quantity: 12}},
			PendingCount: 2,
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/dashboard", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var dashboard servers.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
		assert.Equal(t, "2026-02-01", dashboard.Since.String())
		assert.Equal(t, 2, dashboard.PendingCount)
		require.Len(t, dashboard.TopProducts, 1)
		assert.Equal(t, 12, dashboard.TopProducts[0].Quantity)
	})

	t.Run("window out of range", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodGet, "/api/v1/dashboard?days=1000", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCatalog(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		f := newAPIFixture(t)
		f.getRequisitions.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetRequisitionsQueryResponse{
			{ID: kernel.NewUUID(), Name: "Bakery", ProductCount: 2},
			{ID: kernel.NewUUID(), Name: "Pizza", Description: "Toppings", ProductCount: 3},
		}, nil).Once()

		rec := f.do(http.MethodGet, "/api/v1/requisitions", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var list []servers.RequisitionSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
		require.Len(t, list, 2)
		assert.Equal(t, "Bakery", list[0].Name)
	})

	t.Run("unknown requisition", func(t *testing.T) {
		f := newAPIFixture(t)
		id := kernel.NewUUID()
		f.getRequisition.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetRequisitionQueryResponse{}, errs.NewObjectNotFoundError("requisition", id)).Once()

		rec := f.do(http.MethodGet, "/api/v1/requisitions/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("create", func(t *testing.T) {
		f := newAPIFixture(t)
		f.createRequisition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateRequisitionCommand) bool {
			return cmd.Requisition().Name() == "Pizza" && len(cmd.Requisition().Products()) == 2
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/requisitions",
			`{"name":"Pizza","description":"Toppings","products":["Pepperoni","Cheese"]}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestDirectory(t *testing.T) {
	t.Run("create location", func(t *testing.T) {
		f := newAPIFixture(t)
		f.createLocation.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateLocationCommand) bool {
			return cmd.Name() == "Austin"
		})).Return(nil).Once()

		rec := f.do(http.MethodPost, "/api/v1/locations", `{"name":"Austin"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("duplicate location", func(t *testing.T) {
		f := newAPIFixture(t)
		f.createLocation.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewValueIsInvalidError("location name")).Once()

		rec := f.do(http.MethodPost, "/api/v1/locations", `{"name":"Austin"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bind user", func(t *testing.T) {
		f := newAPIFixture(t)
		userID := kernel.NewUUID()
		locationID := kernel.NewUUID()
		f.bindUserLocation.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.BindUserLocationCommand) bool {
			return cmd.UserID().IsEqual(userID) && cmd.LocationID().IsEqual(locationID)
		})).Return(nil).Once()

		rec := f.do(http.MethodPut, "/api/v1/users/"+userID.String()+"/location",
			`{"locationId":"`+locationID.String()+`"}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, httpadapter.StatusFor(errs.NewValueIsOutOfRangeError("days", 0, 1, 366)))
	assert.Equal(t, http.StatusInternalServerError, httpadapter.StatusFor(errs.NewConfigurationError("destination")))
	assert.Equal(t, http.StatusInternalServerError, httpadapter.StatusFor(commands.ErrCreateOrderCommandIsNotConstructed))
}
