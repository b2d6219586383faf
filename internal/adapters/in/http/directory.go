package http

import (
	"net/http"

	"requisitions/internal/core/application/usecases/commands"
	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateLocation handles POST /api/v1/locations - registers a branch.
func (s *Server) CreateLocation(ctx echo.Context) error {
	var body servers.NewLocation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateLocationCommand(id, body.Name)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.CreateLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: id.Bytes()})
}

// BindUserLocation handles PUT /api/v1/users/{userId}/location.
func (s *Server) BindUserLocation(ctx echo.Context, userId openapi_types.UUID) error { //nolint:revive // generated signature
	var body servers.UserLocation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := toKernelUUID(userId)
	if err != nil {
		return badRequest(ctx, "invalid user id: "+err.Error())
	}
	locationID, err := toKernelUUID(body.LocationId)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewBindUserLocationCommand(userID, locationID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.handlers.BindUserLocation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
