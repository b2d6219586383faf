package http

import (
	"requisitions/internal/core/application/usecases/queries"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toAPIStatus(s order.Status) servers.OrderStatus {
	return servers.OrderStatus(s.String())
}

func toAPILocation(ref queries.LocationRef) servers.Location {
	return servers.Location{Id: ref.ID.Bytes(), Name: ref.Name}
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromGoogle(id)
}

func toOrderSummary(o queries.ListOrdersQueryResponse) servers.OrderSummary {
	return servers.OrderSummary{
		Id:            o.ID.Bytes(),
		Origin:        toAPILocation(o.Origin),
		Destination:   toAPILocation(o.Destination),
		Status:        toAPIStatus(o.Status),
		CreatedAt:     o.CreatedAt,
		CompletedAt:   o.CompletedAt,
		ItemCount:     o.ItemCount,
		TotalQuantity: o.TotalQuantity,
		Direction:     servers.OrderSummaryDirection(o.Direction),
	}
}

func toOrderView(v queries.GetOrderViewQueryResponse) servers.OrderView {
	items := make([]servers.OrderItem, len(v.Items))
	for i, item := range v.Items {
		items[i] = servers.OrderItem{
			ProductId:       item.ProductID.Bytes(),
			ProductName:     item.ProductName,
			RequisitionId:   item.RequisitionID.Bytes(),
			RequisitionName: item.RequisitionName,
			Quantity:        item.Quantity,
		}
	}

	history := make([]servers.HistoryEntry, len(v.History))
	for i, entry := range v.History {
		history[i] = servers.HistoryEntry{
			Status:    toAPIStatus(entry.Status),
			ChangedAt: entry.ChangedAt,
			ChangedBy: entry.ChangedBy.Bytes(),
		}
	}

	return servers.OrderView{
		Id:          v.ID.Bytes(),
		CreatedBy:   v.CreatedBy.Bytes(),
		Origin:      toAPILocation(v.Origin),
		Destination: toAPILocation(v.Destination),
		Status:      toAPIStatus(v.Status),
		CreatedAt:   v.CreatedAt,
		CompletedAt: v.CompletedAt,
		Items:       items,
		History:     history,
		CanAdvance:  v.CanAdvance,
		CanConfirm:  v.CanConfirm,
	}
}

func toTimeline(t queries.GetOrderTimelineQueryResponse) servers.Timeline {
	steps := make([]servers.TimelineStep, len(t.Steps))
	for i, step := range t.Steps {
		steps[i] = servers.TimelineStep{
			Status:          toAPIStatus(step.Status),
			EnteredAt:       step.EnteredAt,
			LeftAt:          step.LeftAt,
			DurationSeconds: int64(step.Duration.Seconds()),
		}
	}
	return servers.Timeline{
		OrderId:      t.OrderID.Bytes(),
		Status:       toAPIStatus(t.Status),
		Steps:        steps,
		TotalSeconds: int64(t.Total.Seconds()),
	}
}

func toDashboard(d queries.GetDashboardQueryResponse) servers.Dashboard {
	perDay := make([]servers.DailyOrders, len(d.OrdersPerDay))
	for i, day := range d.OrdersPerDay {
		perDay[i] = servers.DailyOrders{Day: openapi_types.Date{Time: day.Day}, Count: day.Count}
	}

	top := make([]servers.ProductTotal, len(d.TopProducts))
	for i, p := range d.TopProducts {
		top[i] = servers.ProductTotal{ProductId: p.ProductID.Bytes(), Name: p.Name, Quantity: p.Quantity}
	}

	return servers.Dashboard{
		Since:        openapi_types.Date{Time: d.Since},
		OrdersPerDay: perDay,
		TopProducts:  top,
		PendingCount: d.PendingCount,
	}
}
