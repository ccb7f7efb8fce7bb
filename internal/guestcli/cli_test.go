package guestcli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"concierge/internal/guestcli"
	"concierge/shared/failure"
)

type fakeAPI struct {
	*httptest.Server
	calls    atomic.Int32
	mu       sync.Mutex
	lastBody map[string]any
	lastAuth string
	lastKey  string
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)
		writeData(w, http.StatusOK, map[string]any{
			"access_token":  "token-1",
			"refresh_token": "refresh-1",
			"expires_in":    3600,
			"user":          map[string]any{"id": "user-1", "email": "jane@example.com"},
		})
	})
	mux.HandleFunc("POST /v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)

		api.mu.Lock()
		api.lastAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&api.lastBody)
		api.mu.Unlock()

		writeData(w, http.StatusOK, nil)
	})
	mux.HandleFunc("POST /v1/requests", func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)

		api.mu.Lock()
		defer api.mu.Unlock()

		api.lastAuth = r.Header.Get("Authorization")
		api.lastKey = r.Header.Get("X-API-Key")
		_ = json.NewDecoder(r.Body).Decode(&api.lastBody)

		writeData(w, http.StatusCreated, map[string]any{
			"success":         true,
			"message":         "Request submitted",
			"chat_message_id": "msg-1",
			"room_number":     api.lastBody["room_number"],
			"guest_name":      api.lastBody["guest_name"],
		})
	})
	mux.HandleFunc("POST /v1/chat/messages", func(w http.ResponseWriter, r *http.Request) {
		api.calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Token has expired"}`))
	})

	api.Server = httptest.NewServer(mux)
	t.Cleanup(api.Close)

	return api
}

func writeData(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func run(t *testing.T, api *fakeAPI, db string, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := guestcli.NewRootCommand(guestcli.Options{
		In:           strings.NewReader(stdin),
		Out:          &out,
		ReadPassword: func() (string, error) { return "secret", nil },
	})
	cmd.SetArgs(append([]string{"--api-url", api.URL, "--db", db}, args...))

	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestSubmit_WithoutIdentity_FailsLocally(t *testing.T) {
	api := newFakeAPI(t)
	db := filepath.Join(t.TempDir(), "guest.db")

	_, err := run(t, api, db, "", "request", "submit", "Extra towels", "--type", "housekeeping")

	require.Error(t, err)
	assert.Equal(t, "User ID missing", err.Error())

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusUnauthorized, fail.Code)

	assert.Zero(t, api.calls.Load())
}

func TestSubmit_NameAndRoomAloneAreNotAnIdentity(t *testing.T) {
	api := newFakeAPI(t)
	db := filepath.Join(t.TempDir(), "guest.db")

	_, err := run(t, api, db, "", "identity", "set", "--name", "Jane Doe", "--room", "204")
	require.NoError(t, err)

	_, err = run(t, api, db, "", "request", "submit", "Extra towels")
	require.ErrorIs(t, err, guestcli.ErrUserIDMissing)
	assert.Zero(t, api.calls.Load())
}

func TestSubmit_AfterLogin_UsesSessionAndCachedIdentity(t *testing.T) {
	api := newFakeAPI(t)
	db := filepath.Join(t.TempDir(), "guest.db")

	out, err := run(t, api, db, "jane@example.com\n", "login")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as jane@example.com.")

	_, err = run(t, api, db, "", "identity", "set", "--name", "Jane Doe", "--room", "204")
	require.NoError(t, err)

	out, err = run(t, api, db, "", "request", "submit", "Late", "checkout", "--type", "front_desk")
	require.NoError(t, err)
	assert.Contains(t, out, "Request submitted")
	assert.Contains(t, out, "Room 204, Jane Doe")

	assert.Equal(t, "Bearer token-1", api.lastAuth)
	assert.Equal(t, "Late checkout", api.lastBody["description"])
	assert.Equal(t, "front_desk", api.lastBody["type"])
	assert.Equal(t, "204", api.lastBody["room_number"])
	assert.Equal(t, "user-1", api.lastBody["user_id"])
}

func TestSubmit_KioskIdentityUsesAPIKey(t *testing.T) {
	api := newFakeAPI(t)
	db := filepath.Join(t.TempDir(), "guest.db")

	_, err := run(t, api, db, "", "identity", "set", "--user-id", "kiosk-guest", "--room", "101")
	require.NoError(t, err)

	_, err = run(t, api, db, "", "--api-key", "internal-key", "request", "submit", "Fresh towels")
	require.NoError(t, err)

	assert.Empty(t, api.lastAuth)
	assert.Equal(t, "internal-key", api.lastKey)
	assert.Equal(t, "kiosk-guest", api.lastBody["user_id"])
	assert.Equal(t, "101", api.lastBody["room_number"])
}

func TestIdentity_ShowAfterLogoutKeepsIdentity(t *testing.T) {
	api := newFakeAPI(t)
	db := filepath.Join(t.TempDir(), "guest.db")

	_, err := run(t, api, db, "", "login", "--email", "jane@example.com")
	require.NoError(t, err)

	_, err = run(t, api, db, "", "logout")
	require.NoError(t, err)

	assert.Equal(t, "Bearer token-1", api.lastAuth)
	assert.Equal(t, "refresh-1", api.lastBody["refresh_token"])

	out, err := run(t, api, db, "", "identity", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "User ID: user-1")
}

func TestChat_SendRequiresLogin(t *testing.T) {
	api := newFakeAPI(t)
	db := filepath.Join(t.TempDir(), "guest.db")

	_, err := run(t, api, db, "", "chat", "send", "hello")
	require.ErrorIs(t, err, guestcli.ErrNotLoggedIn)
	assert.Zero(t, api.calls.Load())
}

func TestChat_ServerErrorIsSurfaced(t *testing.T) {
	api := newFakeAPI(t)
	db := filepath.Join(t.TempDir(), "guest.db")

	_, err := run(t, api, db, "", "login", "--email", "jane@example.com")
	require.NoError(t, err)

	_, err = run(t, api, db, "", "chat", "send", "hello")

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, http.StatusUnauthorized, fail.Code)
	assert.Equal(t, "Token has expired", fail.Message)
}
