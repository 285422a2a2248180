// Package model defines domain entities used by services and repositories.
package model

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tokens collects issued access tokens.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// User represents an account stored on the server. Passwords are never stored in plaintext.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique; doubles as the owner string on journal rows
	PwdHash   []byte    // bcrypt hash (salt embedded)
	CreatedAt time.Time
}

// Entry is a single journal submission owned by exactly one user.
type Entry struct {
	ID        uuid.UUID // server-generated PK, never reused
	Owner     string    // username of the creator, never empty
	CreatedAt time.Time // UTC creation instant
	Text      string    // free-form content
}

// Tag associates an entry with one catalog value and a salience rating.
type Tag struct {
	EntryID uuid.UUID // FK -> entries.id
	Value   string    // catalog value name (advisory, not enforced)
	Rating  *int32    // 0..99; nil on legacy rows, treated as missing at read time
}

// ValueMean is one dashboard row: a value and its mean rating over a window.
type ValueMean struct {
	Value string  `json:"value"`
	Mean  float64 `json:"mean"`
}

// Window selects the dashboard time range.
type Window int

const (
	// WindowDay covers the last 24 hours.
	WindowDay Window = iota
	// WindowWeek covers the last 7 days.
	WindowWeek
	// WindowMonth covers the last 30 days.
	WindowMonth
	// WindowAll covers everything back to the oldest entry.
	WindowAll
)

// ParseWindow maps the API query parameter to a Window. An empty string
// defaults to WindowAll.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "day":
		return WindowDay, nil
	case "week":
		return WindowWeek, nil
	case "month":
		return WindowMonth, nil
	case "all", "":
		return WindowAll, nil
	default:
		return 0, fmt.Errorf("unknown window %q", s)
	}
}

// String returns the API name of the window.
func (w Window) String() string {
	switch w {
	case WindowDay:
		return "day"
	case WindowWeek:
		return "week"
	case WindowMonth:
		return "month"
	default:
		return "all"
	}
}
