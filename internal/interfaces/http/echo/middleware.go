package echo

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domain "github.com/greenfieldhq/provisioning/internal/domain/provisioning"
)

// AdminGuard rejects requests whose bearer token does not belong to an
// authenticated admin. It is the only contact this service has with the
// auth layer.
func AdminGuard(verifier domain.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				return c.JSON(http.StatusUnauthorized, apiResponse{Error: &errorBody{
					Code:    "unauthorized",
					Message: "missing bearer token",
				}})
			}

			if err := verifier.VerifyAdmin(c.Request().Context(), token); err != nil {
				return c.JSON(http.StatusForbidden, apiResponse{Error: &errorBody{
					Code:    "forbidden",
					Message: "admin access required",
				}})
			}

			return next(c)
		}
	}
}
