package repository

import (
	"context"

	"github.com/and161185/values-journal/internal/model"
)

// EntryRepository provides owner-scoped access to journal entries and their tags.
type EntryRepository interface {
	// CreateEntry persists an entry and all of its tags in one transaction.
	CreateEntry(ctx context.Context, e *model.Entry, tags []model.Tag) error

	// ListByOwner returns every entry owned by the given user together with
	// the tags referencing those entries. Rows belonging to other users (or
	// to no user) are never returned. Order is unspecified.
	ListByOwner(ctx context.Context, owner string) ([]model.Entry, []model.Tag, error)
}
