package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/labstack/echo/v4"

	"github.com/and161185/values-journal/internal/errs"
	"github.com/and161185/values-journal/internal/service"
)

const identityKey = "identity"

// Identity is the authenticated caller, threaded through the echo context.
// The username is the owner string on every journal row the caller touches.
type Identity struct {
	UserID   uuid.UUID
	Username string
}

// authMiddleware verifies the bearer JWT and stores the caller's identity.
func (s *Server) authMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := service.ParseAccessToken(token, s.signKey)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		id, err := uuid.FromString(claims.Subject)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}

		c.Set(identityKey, Identity{UserID: id, Username: claims.Username})
		return next(c)
	}
}

func identityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// mapError translates sentinel errors into HTTP responses. Genuine failures
// stay 500 so the UI can tell them apart from empty results.
func mapError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "bad credentials")
	case errors.Is(err, errs.ErrRateLimited):
		return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
	case errors.Is(err, errs.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "already exists")
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
