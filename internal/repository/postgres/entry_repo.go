package postgres

import (
	"context"

	"github.com/and161185/values-journal/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
)

// EntryRepo implements EntryRepository using PostgreSQL.
type EntryRepo struct{ db *DB }

// NewEntryRepo constructs an entry repository.
func NewEntryRepo(db *DB) *EntryRepo { return &EntryRepo{db: db} }

// CreateEntry inserts the entry row and all tag rows in a single transaction,
// so a failed tag insert never leaves an orphaned entry behind.
func (r *EntryRepo) CreateEntry(ctx context.Context, e *model.Entry, tags []model.Tag) (err error) {
	tx, err := r.db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if cerr := tx.Commit(ctx); cerr != nil {
			err = cerr
		}
	}()

	// Column lists are spelled out on purpose; positional inserts have bitten
	// this schema before.
	const insEntry = `INSERT INTO entries (id, owner, created_at, text) VALUES ($1,$2,$3,$4)`
	const insTag = `INSERT INTO tags (entry_id, value, rating) VALUES ($1,$2,$3)`

	if _, err = tx.Exec(ctx, insEntry, e.ID, e.Owner, e.CreatedAt, e.Text); err != nil {
		return err
	}
	for i := range tags {
		if _, err = tx.Exec(ctx, insTag, tags[i].EntryID, tags[i].Value, tags[i].Rating); err != nil {
			return err
		}
	}
	return nil
}

// ListByOwner returns the owner's entries and the tags referencing them.
// The owner filter is applied at query time; legacy rows with a NULL owner
// match no user and are therefore never returned.
func (r *EntryRepo) ListByOwner(ctx context.Context, owner string) ([]model.Entry, []model.Tag, error) {
	const qe = `
SELECT id, owner, created_at, text
FROM entries
WHERE owner=$1`
	rows, err := r.db.Pool.Query(ctx, qe, owner)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var entries []model.Entry
	for rows.Next() {
		var e model.Entry
		if err = rows.Scan(&e.ID, &e.Owner, &e.CreatedAt, &e.Text); err != nil {
			return nil, nil, err
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, nil
	}

	const qt = `
SELECT entry_id, value, rating
FROM tags
WHERE entry_id IN (SELECT id FROM entries WHERE owner=$1)`
	trows, err := r.db.Pool.Query(ctx, qt, owner)
	if err != nil {
		return nil, nil, err
	}
	defer trows.Close()

	var tags []model.Tag
	for trows.Next() {
		var (
			id     uuid.UUID
			value  string
			rating *int32
		)
		if err = trows.Scan(&id, &value, &rating); err != nil {
			return nil, nil, err
		}
		tags = append(tags, model.Tag{EntryID: id, Value: value, Rating: rating})
	}
	return entries, tags, trows.Err()
}
