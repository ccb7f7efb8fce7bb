package notifier_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/infras/otel/mocks"
	hubMocks "concierge/internal/domains/chat/hub/mocks"
	"concierge/internal/domains/submission/model/dto"
	"concierge/internal/domains/submission/notifier"
)

func message(t *testing.T, event dto.SubmittedEvent) kafka.Message {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return kafka.Message{Key: []byte(event.UserID), Value: value}
}

func TestNotifier_Handle(t *testing.T) {
	event := dto.SubmittedEvent{
		Event:         dto.EventSubmitted,
		UserID:        "user-1",
		GuestName:     "Jane Doe",
		RoomNumber:    "204",
		Type:          "housekeeping",
		Description:   "Late checkout",
		ChatMessageID: "msg-1",
	}

	tests := []struct {
		name      string
		msg       func(t *testing.T) kafka.Message
		setupMock func(b *hubMocks.MockBroadcaster)
		wantErr   bool
	}{
		{
			name: "publishes staff notice",
			msg:  func(t *testing.T) kafka.Message { return message(t, event) },
			setupMock: func(b *hubMocks.MockBroadcaster) {
				b.EXPECT().PublishStaff(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, got any) error {
					notice, ok := got.(notifier.StaffNotice)
					require.True(t, ok)
					assert.Equal(t, notifier.EventRequest, notice.Type)
					assert.Equal(t, "user-1", notice.UserID)
					assert.Equal(t, "204", notice.Request.RoomNumber)

					return nil
				})
			},
		},
		{
			name: "ignores other events",
			msg: func(t *testing.T) kafka.Message {
				other := event
				other.Event = "service_request.deleted"

				return message(t, other)
			},
			setupMock: func(*hubMocks.MockBroadcaster) {},
		},
		{
			name:      "malformed payload is acknowledged",
			msg:       func(*testing.T) kafka.Message { return kafka.Message{Value: []byte("{")} },
			setupMock: func(*hubMocks.MockBroadcaster) {},
		},
		{
			name: "publish failure",
			msg:  func(t *testing.T) kafka.Message { return message(t, event) },
			setupMock: func(b *hubMocks.MockBroadcaster) {
				b.EXPECT().PublishStaff(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			broadcaster := hubMocks.NewMockBroadcaster(ctrl)
			tt.setupMock(broadcaster)

			err := notifier.New(broadcaster, mocks.NewOtel()).Handle(context.Background(), tt.msg(t))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}
