package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	UserID string `json:"user_id"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	UserID      string    `json:"user_id"`
}

func (s *Server) handleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	userID, err := s.auth.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, registerResponse{UserID: userID})
}

func (s *Server) handleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tokens, user, err := s.auth.LoginWithIP(c.Request().Context(), req.Username, req.Password, c.RealIP())
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: tokens.AccessToken,
		ExpiresAt:   tokens.ExpiresAt,
		UserID:      user.ID.String(),
	})
}
