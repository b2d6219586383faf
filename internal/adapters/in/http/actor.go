package http

import (
	"net/http"

	"requisitions/internal/core/domain/model/kernel"
	"requisitions/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the identity of the user authenticated by the upstream proxy.
const UserIDHeader = "X-User-ID"

const actorKey = "actorID"

// ActorMiddleware resolves the acting user from the X-User-ID header and
// rejects requests that do not carry a valid one.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(UserIDHeader)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: UserIDHeader + " header is required",
				})
			}

			actorID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, servers.Error{
					Code:    http.StatusBadRequest,
					Message: UserIDHeader + " header must be a UUID: " + err.Error(),
				})
			}

			c.Set(actorKey, actorID)
			return next(c)
		}
	}
}

func actorFrom(ctx echo.Context) (kernel.UUID, error) {
	actorID, ok := ctx.Get(actorKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, echo.NewHTTPError(http.StatusUnauthorized, UserIDHeader+" header is required")
	}
	return actorID, nil
}
