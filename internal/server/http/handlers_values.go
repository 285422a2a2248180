package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/and161185/values-journal/internal/catalog"
)

type valuesResponse struct {
	Values []catalog.Value `json:"values"`
}

// handleValues serves the fixed value catalog with glossary descriptions.
func (s *Server) handleValues(c echo.Context) error {
	return c.JSON(http.StatusOK, valuesResponse{Values: s.catalog.Values()})
}
