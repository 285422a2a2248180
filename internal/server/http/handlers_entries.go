package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/and161185/values-journal/internal/model"
)

type createEntryRequest struct {
	Text    string           `json:"text"`
	Ratings map[string]int32 `json:"ratings"`
}

type createEntryResponse struct {
	EntryID string `json:"entry_id"`
}

type entryDTO struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`
}

type tagDTO struct {
	EntryID string `json:"entry_id"`
	Value   string `json:"value"`
	Rating  *int32 `json:"rating"`
}

type listEntriesResponse struct {
	Entries []entryDTO `json:"entries"`
	Tags    []tagDTO   `json:"tags"`
}

func (s *Server) handleCreateEntry(c echo.Context) error {
	ident, ok := identityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no identity")
	}

	var req createEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := s.entries.Add(c.Request().Context(), ident.Username, req.Text, req.Ratings)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusCreated, createEntryResponse{EntryID: id.String()})
}

func (s *Server) handleListEntries(c echo.Context) error {
	ident, ok := identityFrom(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no identity")
	}

	entries, tags, err := s.entries.Load(c.Request().Context(), ident.Username)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, toListEntriesResponse(entries, tags))
}

func toListEntriesResponse(entries []model.Entry, tags []model.Tag) listEntriesResponse {
	resp := listEntriesResponse{Entries: []entryDTO{}, Tags: []tagDTO{}}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, entryDTO{ID: e.ID.String(), CreatedAt: e.CreatedAt, Text: e.Text})
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, tagDTO{EntryID: t.EntryID.String(), Value: t.Value, Rating: t.Rating})
	}
	return resp
}
