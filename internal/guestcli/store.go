package guestcli

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const storeFile = "guest.db"

// Session is the last successful login.
type Session struct {
	UserID       string
	Email        string
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Identity is the guest's locally remembered name and room. UserID is only set when the
// identity was created by a login or provided explicitly for kiosk use.
type Identity struct {
	UserID     string
	GuestName  string
	RoomNumber string
	UpdatedAt  time.Time
}

// Store keeps the session and identity between runs. Concurrent writers are not
// coordinated; the last write wins.
type Store struct {
	db *sql.DB
}

func DefaultStorePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}

	return filepath.Join(dir, "concierge", storeFile), nil
}

func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Store{db: db}, nil
}

func ensureSchema(db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS session (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  user_id TEXT NOT NULL,
  email TEXT NOT NULL,
  access_token TEXT NOT NULL,
  refresh_token TEXT NOT NULL,
  expires_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS identity (
  id INTEGER PRIMARY KEY CHECK (id = 1),
  user_id TEXT NOT NULL DEFAULT '',
  guest_name TEXT NOT NULL DEFAULT '',
  room_number TEXT NOT NULL DEFAULT '',
  updated_at TEXT NOT NULL
);`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create store schema: %w", err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveSession(session Session) error {
	_, err := s.db.Exec(`
INSERT INTO session (id, user_id, email, access_token, refresh_token, expires_at)
VALUES (1, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  user_id = excluded.user_id,
  email = excluded.email,
  access_token = excluded.access_token,
  refresh_token = excluded.refresh_token,
  expires_at = excluded.expires_at`,
		session.UserID, session.Email, session.AccessToken, session.RefreshToken, session.ExpiresAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

// LoadSession returns nil when nobody is logged in.
func (s *Store) LoadSession() (*Session, error) {
	var (
		session   Session
		expiresAt string
	)

	err := s.db.QueryRow(`SELECT user_id, email, access_token, refresh_token, expires_at FROM session WHERE id = 1`).
		Scan(&session.UserID, &session.Email, &session.AccessToken, &session.RefreshToken, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	session.ExpiresAt, _ = time.Parse(time.RFC3339, expiresAt)

	return &session, nil
}

func (s *Store) ClearSession() error {
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}

// SaveIdentity overwrites the cached identity. Empty fields keep their stored value.
func (s *Store) SaveIdentity(identity Identity) error {
	_, err := s.db.Exec(`
INSERT INTO identity (id, user_id, guest_name, room_number, updated_at)
VALUES (1, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  user_id = CASE WHEN excluded.user_id = '' THEN identity.user_id ELSE excluded.user_id END,
  guest_name = CASE WHEN excluded.guest_name = '' THEN identity.guest_name ELSE excluded.guest_name END,
  room_number = CASE WHEN excluded.room_number = '' THEN identity.room_number ELSE excluded.room_number END,
  updated_at = excluded.updated_at`,
		identity.UserID, identity.GuestName, identity.RoomNumber, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save identity: %w", err)
	}

	return nil
}

// LoadIdentity returns nil when nothing has been cached yet.
func (s *Store) LoadIdentity() (*Identity, error) {
	var (
		identity  Identity
		updatedAt string
	)

	err := s.db.QueryRow(`SELECT user_id, guest_name, room_number, updated_at FROM identity WHERE id = 1`).
		Scan(&identity.UserID, &identity.GuestName, &identity.RoomNumber, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}

	identity.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &identity, nil
}

func (s *Store) ClearIdentity() error {
	if _, err := s.db.Exec(`DELETE FROM identity`); err != nil {
		return fmt.Errorf("clear identity: %w", err)
	}

	return nil
}
