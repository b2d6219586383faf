package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/core/domain/model/location"
	"requisitions/internal/core/domain/model/order"
	"requisitions/internal/core/domain/services"
	"requisitions/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderViewQueryHandler assembles the order detail from the order header,
// its items with catalog names and its history, read in one snapshot.
type GetOrderViewQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetOrderViewQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderViewQueryHandler {
	return GetOrderViewQueryHandler{db: db, policy: policy}
}

// Handle returns errs.ObjectNotFoundError for unknown orders and
// errs.ForbiddenError when the actor's branch is neither origin nor destination.
func (h GetOrderViewQueryHandler) Handle(ctx context.Context, query GetOrderViewQuery) (GetOrderViewQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderViewQueryResponse{}, err
	}

	var (
		binding *location.Binding
		view    GetOrderViewQueryResponse
		o       *order.Order
	)
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if binding, err = actorBinding(ctx, tx, query.ActorID()); err != nil {
			return err
		}
		if view, err = orderHeader(ctx, tx, query.OrderID()); err != nil {
			return err
		}
		if view.Items, err = orderItems(ctx, tx, query.OrderID()); err != nil {
			return err
		}
		if o, err = restore(view); err != nil {
			return err
		}
		if err = h.policy.AuthorizeView(binding, o); err != nil {
			return err
		}
		view.History, err = orderHistory(ctx, tx, query.OrderID())
		return err
	}, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return GetOrderViewQueryResponse{}, err
	}

	branch, err := binding.LocationID()
	if err != nil {
		return GetOrderViewQueryResponse{}, err
	}
	_, advanceErr := view.Status.Advance()
	_, confirmErr := view.Status.ConfirmReceipt()
	view.CanAdvance = advanceErr == nil && h.policy.CanAdvance(branch, o)
	view.CanConfirm = confirmErr == nil && h.policy.CanConfirm(branch, o)

	return view, nil
}

func orderHeader(ctx context.Context, db *gorm.DB, orderID kernel.UUID) (GetOrderViewQueryResponse, error) {
	var (
		view                                   GetOrderViewQueryResponse
		id, createdBy, originID, destinationID uuid.UUID
		status                                 string
		createdAt                              time.Time
	)

	err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.created_by,
			o.origin_id,
			origin.name,
			o.destination_id,
			destination.name,
			o.status,
			o.created_at,
			o.completed_at
		FROM orders o
		JOIN locations origin ON origin.id = o.origin_id
		JOIN locations destination ON destination.id = o.destination_id
		WHERE o.id = ?
	`, orderID.Bytes()).Row().Scan(
		&id,
		&createdBy,
		&originID,
		&view.Origin.Name,
		&destinationID,
		&view.Destination.Name,
		&status,
		&createdAt,
		&view.CompletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderViewQueryResponse{}, errs.NewObjectNotFoundError("order", orderID)
	}
	if err != nil {
		return GetOrderViewQueryResponse{}, err
	}

	if err = errors.Join(
		assign(&view.ID, id),
		assign(&view.CreatedBy, createdBy),
		assign(&view.Origin.ID, originID),
		assign(&view.Destination.ID, destinationID),
	); err != nil {
		return GetOrderViewQueryResponse{}, err
	}
	if view.Status, err = order.ParseStatus(status); err != nil {
		return GetOrderViewQueryResponse{}, err
	}
	view.CreatedAt = createdAt.UTC()

	return view, nil
}

func orderItems(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderViewItem, error) {
	items := make([]OrderViewItem, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			r.id,
			r.name,
			i.quantity
		FROM order_items i
		JOIN products p ON p.id = i.product_id
		JOIN requisitions r ON r.id = p.requisition_id
		WHERE i.order_id = ?
		ORDER BY r.name, p.name
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                     OrderViewItem
			productID, requisitionID uuid.UUID
		)
		if err = rows.Scan(&productID, &item.ProductName, &requisitionID, &item.RequisitionName, &item.Quantity); err != nil {
			return nil, err
		}
		if err = errors.Join(
			assign(&item.ProductID, productID),
			assign(&item.RequisitionID, requisitionID),
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// orderHistory reads the status history in the order it was written. The
// ordering matches historyrepo.GormStatusHistoryRepository.HistoryFor.
func orderHistory(ctx context.Context, db *gorm.DB, orderID kernel.UUID) ([]OrderViewHistoryEntry, error) {
	history := make([]OrderViewHistoryEntry, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT status, changed_at, changed_by
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry     OrderViewHistoryEntry
			status    string
			changedAt time.Time
			changedBy uuid.UUID
		)
		if err = rows.Scan(&status, &changedAt, &changedBy); err != nil {
			return nil, err
		}
		if entry.Status, err = order.ParseStatus(status); err != nil {
			return nil, err
		}
		if err = assign(&entry.ChangedBy, changedBy); err != nil {
			return nil, err
		}
		entry.ChangedAt = changedAt.UTC()
		history = append(history, entry)
	}

	return history, rows.Err()
}

// restore rebuilds the aggregate from the read model so the access policy
// can judge it.
func restore(view GetOrderViewQueryResponse) (*order.Order, error) {
	items := make([]order.Item, 0, len(view.Items))
	for _, line := range view.Items {
		item, err := order.NewItem(line.ProductID, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(view.ID, view.CreatedBy, view.Origin.ID, view.Destination.ID,
		view.Status, view.CreatedAt, view.CompletedAt, items)
}

func assign(dst *kernel.UUID, id uuid.UUID) error {
	converted, err := toUUID(id)
	if err != nil {
		return err
	}
	*dst = converted
	return nil
}
