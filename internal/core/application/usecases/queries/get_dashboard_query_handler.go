package queries

import (
	"context"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDashboardQueryHandler runs the three dashboard aggregations.
type GetDashboardQueryHandler struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGetDashboardQueryHandler(db *gorm.DB) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{db: db, now: time.Now}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	branch, err := actorLocation(ctx, h.db, query.ActorID())
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	today := h.now().UTC().Truncate(24 * time.Hour)
	resp := GetDashboardQueryResponse{
		Since: today.AddDate(0, 0, 1-query.Days()),
	}

	if resp.OrdersPerDay, err = h.ordersPerDay(ctx, branch, resp.Since); err != nil {
		return GetDashboardQueryResponse{}, err
	}
	if resp.TopProducts, err = h.topProducts(ctx, branch, resp.Since); err != nil {
		return GetDashboardQueryResponse{}, err
	}
	if resp.PendingCount, err = h.pendingCount(ctx, branch); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	return resp, nil
}

func (h GetDashboardQueryHandler) ordersPerDay(ctx context.Context, branch kernel.UUID, since time.Time) ([]DailyOrders, error) {
	days := make([]DailyOrders, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('day', created_at AT TIME ZONE 'UTC') AS day,
			COUNT(*)
		FROM orders
		WHERE (origin_id = @branch OR destination_id = @branch)
			AND created_at >= @since
		GROUP BY day
		ORDER BY day
	`, map[string]any{"branch": branch.Bytes(), "since": since}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var d DailyOrders
		if err = rows.Scan(&d.Day, &d.Count); err != nil {
			return nil, err
		}
		d.Day = time.Date(d.Day.Year(), d.Day.Month(), d.Day.Day(), 0, 0, 0, 0, time.UTC)
		days = append(days, d)
	}

	return days, rows.Err()
}

func (h GetDashboardQueryHandler) topProducts(ctx context.Context, branch kernel.UUID, since time.Time) ([]ProductTotal, error) {
	products := make([]ProductTotal, 0, TopProductsLimit)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			SUM(i.quantity) AS total
		FROM order_items i
		JOIN orders o ON o.id = i.order_id
		JOIN products p ON p.id = i.product_id
		WHERE (o.origin_id = @branch OR o.destination_id = @branch)
			AND o.created_at >= @since
		GROUP BY p.id, p.name
		ORDER BY total DESC, p.name
		LIMIT @limit
	`, map[string]any{"branch": branch.Bytes(), "since": since, "limit": TopProductsLimit}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p  ProductTotal
			id uuid.UUID
		)
		if err = rows.Scan(&id, &p.Name, &p.Quantity); err != nil {
			return nil, err
		}
		if err = assign(&p.ProductID, id); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

// pendingCount counts orders the branch has not received yet.
func (h GetDashboardQueryHandler) pendingCount(ctx context.Context, branch kernel.UUID) (int, error) {
	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE destination_id = ? AND status = ?
	`, branch.Bytes(), order.Created.String()).Scan(&count).Error
	return int(count), err
}
