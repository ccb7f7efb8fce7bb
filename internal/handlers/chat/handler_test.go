package chat_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/otel/mocks"
	"concierge/internal/domains/chat/hub"
	"concierge/internal/domains/chat/model/dto"
	chatMocks "concierge/internal/domains/chat/service/mocks"
	"concierge/internal/handlers/chat"
	"concierge/shared/constant"
	"concierge/shared/failure"
)

type session struct {
	userID string
	role   string
}

func newHub(t *testing.T) *hub.Hub {
	t.Helper()

	h := hub.New(nil, &config.Config{})
	go h.Run()
	t.Cleanup(h.Shutdown)

	return h
}

func newRouter(t *testing.T, h *hub.Hub, cfg *config.Config, setupMock func(s *chatMocks.MockChat)) chi.Router {
	t.Helper()

	service := chatMocks.NewMockChat(gomock.NewController(t))
	setupMock(service)

	handler := chat.New(service, h, cfg, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

// withSession stands in for the auth middleware.
func withSession(next http.Handler, s session) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if s.userID != constant.Empty {
			ctx = context.WithValue(ctx, constant.ContextKeyUserID, s.userID)
			ctx = context.WithValue(ctx, constant.ContextKeyUserRole, s.role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func dial(t *testing.T, server *httptest.Server, header http.Header) (*websocket.Conn, *http.Response, error) {
	t.Helper()

	client, res, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/chat/ws", header)
	if client != nil {
		t.Cleanup(func() { _ = client.Close() })
	}

	return client, res, err
}

func TestHandler_WebSocket_RequiresUser(t *testing.T) {
	router := newRouter(t, newHub(t), &config.Config{}, func(*chatMocks.MockChat) {})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chat/ws", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}

func TestHandler_WebSocket_StaffByRole(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		wantStaff bool
	}{
		{name: "superadmin", role: constant.RoleSuperAdmin, wantStaff: true},
		{name: "admin", role: constant.RoleAdmin, wantStaff: true},
		{name: "staff", role: constant.RoleStaff, wantStaff: true},
		{name: "guest", role: constant.RoleUser, wantStaff: false},
		{name: "no role", role: constant.Empty, wantStaff: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHub(t)
			router := newRouter(t, h, &config.Config{}, func(*chatMocks.MockChat) {})

			server := httptest.NewServer(withSession(router, session{userID: "user-1", role: tt.role}))
			defer server.Close()

			client, _, err := dial(t, server, nil)
			require.NoError(t, err)

			require.Eventually(t, func() bool { return h.ConnectionCount() == 1 }, time.Second, 5*time.Millisecond)

			// only staff follow the staff channel, and every connection follows its own thread
			require.NoError(t, h.PublishStaff(context.Background(), map[string]string{"type": "request"}))
			require.NoError(t, h.PublishUser(context.Background(), "user-1", map[string]string{"type": "message"}))

			require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
			_, first, err := client.ReadMessage()
			require.NoError(t, err)

			if tt.wantStaff {
				assert.JSONEq(t, `{"type":"request"}`, string(first))

				return
			}

			assert.JSONEq(t, `{"type":"message"}`, string(first))
		})
	}
}

func TestHandler_WebSocket_RejectsForeignOrigin(t *testing.T) {
	cfg := &config.Config{}
	cfg.Chat.AllowedOrigins = []string{"https://frontdesk.example"}

	h := newHub(t)
	router := newRouter(t, h, cfg, func(*chatMocks.MockChat) {})

	server := httptest.NewServer(withSession(router, session{userID: "user-1", role: constant.RoleUser}))
	defer server.Close()

	_, res, err := dial(t, server, http.Header{"Origin": {"https://elsewhere.example"}})
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	_, _, err = dial(t, server, http.Header{"Origin": {"https://frontdesk.example"}})
	require.NoError(t, err)
}

func TestHandler_Reply(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(s *chatMocks.MockChat)
		wantCode  int
		wantBody  string
	}{
		{
			name: "staff reply lands on the guest thread",
			body: `{"text":"On our way with towels"}`,
			setupMock: func(s *chatMocks.MockChat) {
				s.EXPECT().Reply(gomock.Any(), "user-1", dto.ReplyRequest{Text: "On our way with towels"}).
					Return(dto.MessageResponse{ID: "msg-9", UserID: "user-1", Sender: "staff", Text: "On our way with towels"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: `"id":"msg-9"`,
		},
		{
			name:      "empty reply",
			body:      `{"text":""}`,
			setupMock: func(*chatMocks.MockChat) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown thread",
			body: `{"text":"Hello"}`,
			setupMock: func(s *chatMocks.MockChat) {
				s.EXPECT().Reply(gomock.Any(), "user-1", gomock.Any()).Return(dto.MessageResponse{}, failure.NotFound("chat thread not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"chat thread not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/chat/threads/user-1/reply", strings.NewReader(tt.body))
			req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

			rec := httptest.NewRecorder()
			newRouter(t, newHub(t), &config.Config{}, tt.setupMock).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_MarkRead(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(s *chatMocks.MockChat)
		wantCode  int
	}{
		{
			name: "marks the thread",
			setupMock: func(s *chatMocks.MockChat) {
				s.EXPECT().MarkRead(gomock.Any(), "user-1").Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unknown thread",
			setupMock: func(s *chatMocks.MockChat) {
				s.EXPECT().MarkRead(gomock.Any(), "user-1").Return(failure.NotFound("chat thread not found"))
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(t, newHub(t), &config.Config{}, tt.setupMock).
				ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/chat/threads/user-1/read", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_SendMessage_UsesSessionUser(t *testing.T) {
	router := newRouter(t, newHub(t), &config.Config{}, func(s *chatMocks.MockChat) {
		s.EXPECT().Send(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, req dto.SendMessageRequest) (dto.MessageResponse, error) {
				assert.Equal(t, "Is the pool open?", req.Text)
				assert.Equal(t, "204", req.RoomNumber)

				return dto.MessageResponse{ID: "msg-1", UserID: "user-1"}, nil
			})
	})

	req := httptest.NewRequest(http.MethodPost, "/chat/messages", strings.NewReader(`{"text":"Is the pool open?","room_number":"204"}`))
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req = req.WithContext(context.WithValue(req.Context(), constant.ContextKeyUserID, "user-1"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandler_GetThreads_Limit(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(s *chatMocks.MockChat)
		wantCode  int
	}{
		{
			name:  "passes the limit through",
			query: "?limit=5",
			setupMock: func(s *chatMocks.MockChat) {
				s.EXPECT().GetThreads(gomock.Any(), 5).Return(dto.GetThreadsResponse{Threads: []dto.Thread{}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "rejects a non numeric limit",
			query:     "?limit=all",
			setupMock: func(*chatMocks.MockChat) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter(t, newHub(t), &config.Config{}, tt.setupMock).
				ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/chat/threads"+tt.query, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
