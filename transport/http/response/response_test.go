package response_test

import (
	"concierge/shared/failure"
	"concierge/transport/http/response"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure keeps its message",
			err:      fmt.Errorf("book room: %w", failure.Conflict("room is already booked for these dates")),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"room is already booked for these dates"}`,
		},
		{
			name:     "wrapper prefixes never reach the client",
			err:      fmt.Errorf("failed to send request message: %w", fmt.Errorf("load item: %w", failure.NotFound("request item not found"))),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"request item not found"}`,
		},
		{
			name:     "server side failures are masked too",
			err:      &failure.Failure{Code: http.StatusBadGateway, Message: "s3: access denied for bucket concierge"},
			wantCode: http.StatusBadGateway,
			wantBody: `{"error":"internal server error"}`,
		},
		{
			name:     "internal errors are masked",
			err:      errors.New(`pq: relation "rooms" does not exist`),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"room_number": "204"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"room_number":"204"}}`, rec.Body.String())
}

func TestWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"Too many requests, slow down"}`, rec.Body.String())
}
