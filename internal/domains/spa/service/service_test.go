package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"concierge/config"
	"concierge/infras/otel/mocks"
	guestDto "concierge/internal/domains/guest/model/dto"
	guestService "concierge/internal/domains/guest/service"
	guestMocks "concierge/internal/domains/guest/service/mocks"
	spaMocks "concierge/internal/domains/spa/mocks"
	"concierge/internal/domains/spa/model"
	"concierge/internal/domains/spa/model/dto"
	"concierge/internal/domains/spa/service"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	mediaMocks "concierge/shared/media/mocks"
	"concierge/shared/timezone"
)

type fixture struct {
	svc        service.Spa
	treatments *spaMocks.MockTreatment
	bookings   *spaMocks.MockBooking
	guest      *guestMocks.MockGuest
	uploader   *mediaMocks.MockUploader
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		treatments: spaMocks.NewMockTreatment(ctrl),
		bookings:   spaMocks.NewMockBooking(ctrl),
		guest:      guestMocks.NewMockGuest(ctrl),
		uploader:   mediaMocks.NewMockUploader(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.treatments, f.bookings, f.guest, cfg, mockCache, mocks.NewOtel(), f.uploader)

	return f
}

func TestSpaService_Create(t *testing.T) {
	f := newFixture(t)

	f.uploader.EXPECT().Upload(gomock.Any(), model.EntityName, nil, nil).Return("", "", nil)
	f.treatments.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m model.Treatment) error {
		assert.Equal(t, "Hot stone massage", m.Name)
		assert.Equal(t, 90, m.DurationMinutes)
		assert.True(t, m.Active)

		return nil
	})

	require.NoError(t, f.svc.Create(context.Background(), dto.CreateTreatmentRequest{Name: "Hot stone massage", DurationMinutes: 90}))
}

func TestSpaService_Book(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
	identity := guestDto.Identity{UserID: "user-1", GuestID: "guest-1", Name: "Jane Doe", RoomNumber: "204"}
	tomorrow := timezone.Now().Add(24 * time.Hour).Format(constant.DateFormat)
	yesterday := timezone.Now().Add(-24 * time.Hour).Format(constant.DateFormat)

	tests := []struct {
		name      string
		ctx       context.Context
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "books active treatment",
			ctx:  ctx,
			req:  dto.CreateBookingRequest{ScheduledAt: tomorrow, Notes: "light pressure"},
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), "user-1", gomock.Any()).Return(identity, nil)
				f.treatments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Treatment{ID: "t-1", Active: true}, nil)
				f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b model.Booking) error {
					require.NotNil(t, b.GuestID)
					assert.Equal(t, "guest-1", *b.GuestID)
					assert.Equal(t, "t-1", b.TreatmentID)
					assert.Equal(t, model.StatusPending, b.Status)
					assert.Equal(t, "light pressure", b.Notes)

					return nil
				})
			},
		},
		{
			name: "anonymous caller",
			ctx:  context.Background(),
			req:  dto.CreateBookingRequest{ScheduledAt: tomorrow},
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), "", gomock.Any()).Return(guestDto.Identity{}, guestService.ErrUserIDMissing)
			},
			wantCode: 401,
		},
		{
			name: "unknown treatment",
			ctx:  ctx,
			req:  dto.CreateBookingRequest{ScheduledAt: tomorrow},
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
				f.treatments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Treatment{}, nil)
			},
			wantCode: 404,
		},
		{
			name: "appointment in the past",
			ctx:  ctx,
			req:  dto.CreateBookingRequest{ScheduledAt: yesterday},
			setupMock: func(f fixture) {
				f.guest.EXPECT().Resolve(gomock.Any(), gomock.Any(), gomock.Any()).Return(identity, nil)
				f.treatments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Treatment{ID: "t-1", Active: true}, nil)
			},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Book(tt.ctx, "t-1", tt.req)

			if tt.wantCode == 0 {
				require.NoError(t, err)
				assert.Equal(t, "guest-1", res.GuestID)

				return
			}

			var fail *failure.Failure
			require.ErrorAs(t, err, &fail)
			assert.Equal(t, tt.wantCode, fail.Code)
		})
	}
}

func TestSpaService_GetBookings_Uncached(t *testing.T) {
	f := newFixture(t)

	f.bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Booking{{ID: "b-1"}, {ID: "b-2"}}, nil)

	res, err := f.svc.GetBookings(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 2, res.TotalData)
}
