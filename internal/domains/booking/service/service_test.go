package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/otel/mocks"
	bookingMocks "concierge/internal/domains/booking/mocks"
	"concierge/internal/domains/booking/model"
	"concierge/internal/domains/booking/model/dto"
	"concierge/internal/domains/booking/service"
	guestDto "concierge/internal/domains/guest/model/dto"
	guestService "concierge/internal/domains/guest/service"
	guestMocks "concierge/internal/domains/guest/service/mocks"
	roomMocks "concierge/internal/domains/room/mocks"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
)

type fixture struct {
	svc   service.Booking
	repo  *bookingMocks.MockBooking
	rooms *roomMocks.MockRoom
	guest *guestMocks.MockGuest
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  bookingMocks.NewMockBooking(ctrl),
		rooms: roomMocks.NewMockRoom(ctrl),
		guest: guestMocks.NewMockGuest(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.rooms, f.guest, cfg, mockCache, mocks.NewOtel())

	return f
}

func guestCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func TestBookingService_Create(t *testing.T) {
	validReq := dto.CreateBookingRequest{
		RoomID:   "3f1c8a52-0c3e-4e0b-9d7a-2c1f0f7a1b11",
		CheckIn:  "2026-11-01",
		CheckOut: "2026-11-04",
	}

	identity := guestDto.Identity{UserID: "user-1", GuestID: "guest-1", Name: "Jane Doe", RoomNumber: "204"}

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "books free room",
			ctx:  guestCtx(),
			req:  validReq,
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), "user-1", gomock.Any()).Return(identity, nil)
				f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
					require.NotNil(t, b.GuestID)
					assert.Equal(t, "guest-1", *b.GuestID)
					assert.Equal(t, "Jane Doe", b.GuestName)
					assert.Equal(t, 1, b.Adults)
					assert.Equal(t, model.StatusPending, b.Status)
					assert.Equal(t, "user-1", b.CreatedBy)

					return nil
				})
			},
		},
		{
			name: "anonymous caller",
			ctx:  context.Background(),
			req:  validReq,
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), "", gomock.Any()).Return(guestDto.Identity{}, guestService.ErrUserIDMissing)
			},
			wantCode: 401,
		},
		{
			name: "check-out before check-in",
			ctx:  guestCtx(),
			req:  dto.CreateBookingRequest{RoomID: validReq.RoomID, CheckIn: "2026-11-04", CheckOut: "2026-11-01"},
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
			},
			wantCode: 400,
		},
		{
			name: "unknown room",
			ctx:  guestCtx(),
			req:  validReq,
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
				f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: 400,
		},
		{
			name: "overlapping stay",
			ctx:  guestCtx(),
			req:  validReq,
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
				f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(tt.ctx, tt.req)

			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "2026-11-01", res.CheckIn)

				return
			}

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, tt.wantCode, fail.Code)
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	t.Run("other guest's booking is hidden", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: "b-1", Status: model.StatusPending}, nil)

		err := f.svc.Cancel(guestCtx(), "b-1")

		var fail *failure.Failure
		require.ErrorAs(t, err, &fail)
		assert.Equal(t, 404, fail.Code)
	})

	t.Run("owner cancels", func(t *testing.T) {
		f := newFixture(t)

		booking := model.Booking{ID: "b-2", Status: model.StatusConfirmed}
		booking.CreatedBy = "user-1"

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

			return nil
		})

		require.NoError(t, f.svc.Cancel(guestCtx(), "b-2"))
	})
}

func TestBookingService_Update(t *testing.T) {
	stay := model.Booking{
		ID:       "b-1",
		RoomID:   "room-204",
		CheckIn:  time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2026, 11, 4, 0, 0, 0, 0, time.UTC),
		Status:   model.StatusPending,
	}

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name:      "empty body",
			setupMock: func(fixture) {},
			wantCode:  400,
		},
		{
			name: "confirm keeps dates",
			req:  dto.UpdateBookingRequest{Status: model.StatusConfirmed},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay, nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, model.StatusConfirmed, fields[model.FieldStatus])
					assert.NotContains(t, fields, model.FieldCheckIn)

					return nil
				})
			},
		},
		{
			name: "extend ignores its own nights",
			req:  dto.UpdateBookingRequest{CheckOut: "2026-11-06"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay, nil)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
					where, args := filter.GetWhereClause()
					assert.Contains(t, where, "room_bookings.id !=")
					assert.Equal(t, "b-1", args[model.FieldID])

					return 0, nil
				})
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "extend into another stay",
			req:  dto.UpdateBookingRequest{CheckOut: "2026-11-08"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay, nil)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
			},
			wantCode: 409,
		},
		{
			name: "check-in moved past check-out",
			req:  dto.UpdateBookingRequest{CheckIn: "2026-11-05"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(stay, nil)
			},
			wantCode: 400,
		},
		{
			name: "missing",
			req:  dto.UpdateBookingRequest{Notes: "late arrival"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.svc.Update(guestCtx(), tt.req, "b-1")

			if tt.wantCode == 0 {
				require.NoError(t, err)

				return
			}

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, tt.wantCode, fail.Code)
		})
	}
}

func TestBookingService_Delete_RepoError(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

	require.Error(t, f.svc.Delete(guestCtx(), "b-1"))
}
