package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/otel/mocks"
	hubMocks "concierge/internal/domains/chat/hub/mocks"
	chatMocks "concierge/internal/domains/chat/mocks"
	"concierge/internal/domains/chat/model"
	"concierge/internal/domains/chat/model/dto"
	"concierge/internal/domains/chat/repository"
	"concierge/internal/domains/chat/service"
	guestDto "concierge/internal/domains/guest/model/dto"
	guestService "concierge/internal/domains/guest/service"
	guestMocks "concierge/internal/domains/guest/service/mocks"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
)

type fixture struct {
	svc   service.Chat
	repo  *chatMocks.MockChat
	guest *guestMocks.MockGuest
	hub   *hubMocks.MockBroadcaster
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  chatMocks.NewMockChat(ctrl),
		guest: guestMocks.NewMockGuest(ctrl),
		hub:   hubMocks.NewMockBroadcaster(ctrl),
	}

	f.svc = service.New(f.repo, f.guest, f.hub, &config.Config{}, mocks.NewOtel())

	return f
}

func (f fixture) expectBroadcast(userID string) {
	f.hub.EXPECT().PublishUser(gomock.Any(), userID, gomock.Any()).Return(nil)
	f.hub.EXPECT().PublishStaff(gomock.Any(), gomock.Any()).Return(nil)
}

func TestChatService_Post(t *testing.T) {
	t.Run("stores a guest message and broadcasts it", func(t *testing.T) {
		f := newFixture(t)

		var stored model.ChatMessage

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.ChatMessage) error {
			stored = m

			return nil
		})
		f.expectBroadcast("user-1")

		res, err := f.svc.Post(context.Background(), dto.PostRequest{
			UserID:     "user-1",
			RoomNumber: "204",
			GuestName:  "Jane Doe",
			Text:       "Request (housekeeping): Extra towels",
		})

		require.NoError(t, err)
		assert.Equal(t, stored.ID, res.ID)
		assert.Equal(t, model.SenderUser, stored.Sender)
		assert.Equal(t, model.StatusSent, stored.Status)
		assert.Equal(t, "204", stored.RoomNumber)
		assert.Nil(t, stored.StaffID)
	})

	t.Run("missing user id writes nothing", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Post(context.Background(), dto.PostRequest{Text: "hello"})

		assert.ErrorIs(t, err, guestService.ErrUserIDMissing)
	})

	t.Run("insert failure is returned and not broadcast", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		_, err := f.svc.Post(context.Background(), dto.PostRequest{UserID: "user-1", Text: "hello"})

		assert.Error(t, err)
	})

	t.Run("broadcast failure does not fail the post", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		f.hub.EXPECT().PublishUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		f.hub.EXPECT().PublishStaff(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		_, err := f.svc.Post(context.Background(), dto.PostRequest{UserID: "user-1", Text: "hello"})

		assert.NoError(t, err)
	})
}

func TestChatService_Send(t *testing.T) {
	f := newFixture(t)

	hint := guestDto.IdentityHint{GuestName: "Jane Doe", RoomNumber: "204"}

	f.guest.EXPECT().Resolve(gomock.Any(), "user-1", hint).Return(guestDto.Identity{
		UserID:     "user-1",
		Name:       "Jane Doe",
		RoomNumber: "204",
	}, nil)
	f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.ChatMessage) error {
		assert.Equal(t, "Jane Doe", m.GuestName)
		assert.Equal(t, "Is the pool open?", m.Text)

		return nil
	})
	f.expectBroadcast("user-1")

	res, err := f.svc.Send(context.Background(), "user-1", dto.SendMessageRequest{Text: "  Is the pool open? ", IdentityHint: hint})

	require.NoError(t, err)
	assert.Equal(t, "204", res.RoomNumber)
}

func TestChatService_Send_NoUser(t *testing.T) {
	f := newFixture(t)

	f.guest.EXPECT().Resolve(gomock.Any(), "", gomock.Any()).Return(guestDto.Identity{}, guestService.ErrUserIDMissing)

	_, err := f.svc.Send(context.Background(), "", dto.SendMessageRequest{Text: "hi"})

	assert.ErrorIs(t, err, guestService.ErrUserIDMissing)
}

func TestChatService_GetThread(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.ChatMessage, error) {
			assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.ChatMessage{
				{ID: "m1", UserID: "user-1", Sender: model.SenderUser},
				{ID: "m2", UserID: "user-1", Sender: model.SenderStaff},
			}, nil
		})

	res, err := f.svc.GetThread(context.Background(), "user-1", gDto.QueryParams{Page: 1, Limit: 10})

	require.NoError(t, err)
	assert.Len(t, res.Messages, 2)
	assert.Equal(t, 1, res.TotalPage)
}

func TestChatService_GetThreads(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Threads(gomock.Any(), 50).Return([]repository.ThreadRow{
		{ChatMessage: model.ChatMessage{ID: "m9", UserID: "user-1", GuestName: "Jane Doe", RoomNumber: "204"}, Unread: 3},
	}, nil)

	res, err := f.svc.GetThreads(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, res.Threads, 1)
	assert.Equal(t, 3, res.Threads[0].Unread)
	assert.Equal(t, "m9", res.Threads[0].LastMessage.ID)
}

func TestChatService_Reply(t *testing.T) {
	staffCtx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")

	t.Run("replies into the guest thread", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.ChatMessage{
			{ID: "m1", UserID: "user-1", GuestName: "Jane Doe", RoomNumber: "204"},
		}, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.ChatMessage) error {
			assert.Equal(t, model.SenderStaff, m.Sender)
			require.NotNil(t, m.StaffID)
			assert.Equal(t, "staff-1", *m.StaffID)
			assert.Equal(t, "user-1", m.UserID)

			return nil
		})
		f.expectBroadcast("user-1")

		res, err := f.svc.Reply(staffCtx, "user-1", dto.ReplyRequest{Text: "On its way"})

		require.NoError(t, err)
		assert.Equal(t, "204", res.RoomNumber)
		assert.Equal(t, "staff-1", res.StaffID)
	})

	t.Run("unknown thread", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.Reply(staffCtx, "user-9", dto.ReplyRequest{Text: "hello"})

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, 404, fail.Code)
	})
}

func TestChatService_MarkRead(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
			assert.Equal(t, model.StatusRead, fields[model.FieldStatus])
			assert.Len(t, filter.Filters, 3)

			return nil
		})
	f.expectBroadcast("user-1")

	require.NoError(t, f.svc.MarkRead(context.Background(), "user-1"))
}
