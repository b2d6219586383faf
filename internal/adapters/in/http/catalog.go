package http

import (
	"net/http"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/application/usecases/queries"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListRequisitions handles GET /api/v1/requisitions - the catalog ordered by name.
func (s *Server) ListRequisitions(ctx echo.Context) error {
	requisitions, err := s.handlers.GetRequisitions.Handle(ctx.Request().Context(), queries.NewGetRequisitionsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.RequisitionSummary, len(requisitions))
	for i, r := range requisitions {
		response[i] = servers.RequisitionSummary{
			Id:           r.ID.Bytes(),
			Name:         r.Name,
			Description:  r.Description,
			ProductCount: r.ProductCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetRequisition handles GET /api/v1/requisitions/{requisitionId}.
func (s *Server) GetRequisition(ctx echo.Context, requisitionId openapi_types.UUID) error { //nolint:revive // generated signature
	id, err := toKernelUUID(requisitionId)
	if err != nil {
		return badRequest(ctx, "invalid requisition id: "+err.Error())
	}

	query, err := queries.NewGetRequisitionQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.handlers.GetRequisition.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	products := make([]servers.Product, len(r.Products))
	for i, p := range r.Products {
		products[i] = servers.Product{Id: p.ID.Bytes(), Name: p.Name}
	}

	return ctx.JSON(http.StatusOK, servers.Requisition{
		Id:          r.ID.Bytes(),
		Name:        r.Name,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		Products:    products,
	})
}

// CreateRequisition handles POST /api/v1/requisitions - adds a requisition with its products.
func (s *Server) CreateRequisition(ctx echo.Context) error {
	var body servers.NewRequisition
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	description := ""
	if body.Description != nil {
		description = *body.Description
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRequisitionCommand(id, body.Name, description, body.Products)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateRequisition.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}
