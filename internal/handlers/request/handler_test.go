package request_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/infras/otel/mocks"
	guestService "concierge/internal/domains/guest/service"
	requestMocks "concierge/internal/domains/request/service/mocks"
	"concierge/internal/domains/submission/model/dto"
	submissionService "concierge/internal/domains/submission/service"
	submissionMocks "concierge/internal/domains/submission/service/mocks"
	"concierge/internal/handlers/request"
	"concierge/shared/constant"
	"concierge/transport/http/middleware"
)

func newRouter(t *testing.T, submission submissionService.Submission) chi.Router {
	t.Helper()

	ctrl := gomock.NewController(t)

	handler := request.New(requestMocks.NewMockRequest(ctrl), submission, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func post(ctx context.Context, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/requests/", strings.NewReader(body)).WithContext(ctx)
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	return req
}

func TestHandler_Submit(t *testing.T) {
	body := `{"description":"Late checkout","type":"front_desk","user_id":"spoofed"}`

	tests := []struct {
		name       string
		ctx        context.Context
		wantUserID string
	}{
		{
			name:       "session user wins over body",
			ctx:        context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1"),
			wantUserID: "user-1",
		},
		{
			name:       "anonymous caller cannot claim a user id",
			ctx:        context.Background(),
			wantUserID: "",
		},
		{
			name:       "internal caller passes the cached user id",
			ctx:        context.WithValue(context.Background(), middleware.SkipAuthKey("skip"), true),
			wantUserID: "spoofed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			submission := submissionMocks.NewMockSubmission(ctrl)

			submission.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, req dto.SubmitRequest) (dto.SubmitResult, error) {
					assert.Equal(t, tt.wantUserID, req.UserID)

					return dto.SubmitResult{Success: true, ChatMessageID: "msg-1"}, nil
				})

			rec := httptest.NewRecorder()
			newRouter(t, submission).ServeHTTP(rec, post(tt.ctx, body))

			assert.Equal(t, http.StatusCreated, rec.Code)
		})
	}
}

func TestHandler_Submit_UserIDMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	submission := submissionMocks.NewMockSubmission(ctrl)

	submission.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(dto.SubmitResult{}, guestService.ErrUserIDMissing)

	rec := httptest.NewRecorder()
	newRouter(t, submission).ServeHTTP(rec, post(context.Background(), `{"description":"Extra towels","type":"housekeeping"}`))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"User ID missing"}`, rec.Body.String())
}

func TestHandler_Submit_InvalidBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(t, submissionMocks.NewMockSubmission(gomock.NewController(t))).ServeHTTP(rec, post(context.Background(), `{"type":"housekeeping"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
