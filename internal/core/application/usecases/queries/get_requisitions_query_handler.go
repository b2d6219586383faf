package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"requisitions/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRequisitionsQueryHandler struct {
	db *gorm.DB
}

func NewGetRequisitionsQueryHandler(db *gorm.DB) GetRequisitionsQueryHandler {
	return GetRequisitionsQueryHandler{db: db}
}

func (h GetRequisitionsQueryHandler) Handle(
	ctx context.Context,
	query GetRequisitionsQuery,
) ([]GetRequisitionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requisitions := make([]GetRequisitionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.name,
			r.description,
			COUNT(p.id)
		FROM requisitions r
		LEFT JOIN products p ON p.requisition_id = r.id
		GROUP BY r.id
		ORDER BY r.name, r.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp GetRequisitionsQueryResponse
			id   uuid.UUID
		)
		if err = rows.Scan(&id, &resp.Name, &resp.Description, &resp.ProductCount); err != nil {
			return nil, err
		}
		if err = assign(&resp.ID, id); err != nil {
			return nil, err
		}
		requisitions = append(requisitions, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requisitions, nil
}

type GetRequisitionQueryHandler struct {
	db *gorm.DB
}

func NewGetRequisitionQueryHandler(db *gorm.DB) GetRequisitionQueryHandler {
	return GetRequisitionQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError for unknown requisitions.
func (h GetRequisitionQueryHandler) Handle(
	ctx context.Context,
	query GetRequisitionQuery,
) (GetRequisitionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRequisitionQueryResponse{}, err
	}

	var (
		resp      GetRequisitionQueryResponse
		createdAt time.Time
	)
	resp.ID = query.RequisitionID()

	err := h.db.WithContext(ctx).Raw(`
		SELECT name, description, created_at
		FROM requisitions
		WHERE id = ?
	`, query.RequisitionID().Bytes()).Row().Scan(&resp.Name, &resp.Description, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRequisitionQueryResponse{}, errs.NewObjectNotFoundError("requisition", query.RequisitionID())
	}
	if err != nil {
		return GetRequisitionQueryResponse{}, err
	}
	resp.CreatedAt = createdAt.UTC()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, name
		FROM products
		WHERE requisition_id = ?
		ORDER BY name, id
	`, query.RequisitionID().Bytes()).Rows()
	if err != nil {
		return GetRequisitionQueryResponse{}, err
	}
	defer rows.Close()

	resp.Products = make([]ProductView, 0)
	for rows.Next() {
		var (
			product ProductView
			id      uuid.UUID
		)
		if err = rows.Scan(&id, &product.Name); err != nil {
			return GetRequisitionQueryResponse{}, err
		}
		if err = assign(&product.ID, id); err != nil {
			return GetRequisitionQueryResponse{}, err
		}
		resp.Products = append(resp.Products, product)
	}

	if err = rows.Err(); err != nil {
		return GetRequisitionQueryResponse{}, err
	}

	return resp, nil
}
