package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/and161185/values-journal/internal/errs"
	"github.com/and161185/values-journal/internal/model"
)

func TestUserRepo_Create_OK_and_UniqueViolation(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	u := &model.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: "demo",
		PwdHash:  []byte("h"),
	}

	// OK
	mock.ExpectExec(`INSERT INTO users \(id, username, pwd_hash\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs(u.ID, u.Username, u.PwdHash).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	require.NoError(t, r.Create(ctx, u))

	// Unique violation -> username taken
	mock.ExpectExec(`INSERT INTO users \(id, username, pwd_hash\) VALUES \(\$1, \$2, \$3\)`).
		WithArgs(u.ID, u.Username, u.PwdHash).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	err := r.Create(ctx, u)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestUserRepo_GetByUsername(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewUserRepo(db)
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	mock.ExpectQuery(`SELECT id, username, pwd_hash, created_at FROM users WHERE username=\$1`).
		WithArgs("demo").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "pwd_hash", "created_at"}).
			AddRow(id, "demo", []byte("h"), time.Now()))
	u, err := r.GetByUsername(ctx, "demo")
	require.NoError(t, err)
	require.Equal(t, "demo", u.Username)
	require.Equal(t, id, u.ID)

	mock.ExpectQuery(`SELECT id, username, pwd_hash, created_at FROM users WHERE username=\$1`).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)
	_, err = r.GetByUsername(ctx, "ghost")
	require.ErrorIs(t, err, errs.ErrNotFound)
}
