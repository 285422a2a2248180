package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/and161185/values-journal/internal/aggregate"
	"github.com/and161185/values-journal/internal/model"
)

type dashboardResponse struct {
	Window string            `json:"window"`
	State  string            `json:"state"`
	Rows   []model.ValueMean `json:"rows,omitempty"`
}

const (
	stateNoEntries      = "no_entries"
	stateNoTaggedValues = "no_tagged_values"
	stateRanked         = "ranked"
)

func (s *Server) handleDashboard(c echo.Context) error {
	ident, ok := identityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no identity")
	}

	window, err := model.ParseWindow(c.QueryParam("window"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entries, tags, err := s.entries.Load(c.Request().Context(), ident.Username)
	if err != nil {
		return mapError(err)
	}

	res := aggregate.Aggregate(entries, tags, window, s.now())
	resp := dashboardResponse{Window: window.String()}
	switch res.State {
	case aggregate.StateNoEntries:
		resp.State = stateNoEntries
	case aggregate.StateNoTaggedValues:
		resp.State = stateNoTaggedValues
	default:
		resp.State = stateRanked
		resp.Rows = res.Rows
	}
	return c.JSON(http.StatusOK, resp)
}
