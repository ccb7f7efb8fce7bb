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
	userMocks "concierge/internal/domains/user/mocks"
	"concierge/internal/domains/user/model"
	"concierge/internal/domains/user/model/dto"
	"concierge/internal/domains/user/service"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/shared/constant"
	gDto "concierge/shared/dto"
	"concierge/shared/failure"
	"concierge/shared/password"
	gRepo "concierge/shared/repository"
)

var errCacheMiss = errors.New("cache miss")

type deps struct {
	svc   service.User
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
}

func newService(t *testing.T) deps {
	t.Helper()

	ctrl := gomock.NewController(t)

	d := deps{
		repo:  userMocks.NewMockUser(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
	}

	// fills and invalidation run in goroutines
	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 600

	d.svc = service.New(d.repo, cfg, d.cache, mocks.NewOtel())

	return d
}

func as(id, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, id)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func assertCode(t *testing.T, err error, code int) {
	t.Helper()

	var fail *failure.Failure
	require.ErrorAs(t, err, &fail)
	assert.Equal(t, code, fail.Code)
}

func ptr[T any](v T) *T { return &v }

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		req     dto.CreateUserRequest
		setup   func(d deps)
		errCode int
		wantErr bool
	}{
		{
			name: "admin adds front desk staff",
			ctx:  as("admin-1", constant.RoleAdmin),
			req:  dto.CreateUserRequest{Email: "desk@harbor.example", Password: "lobby-shift-1", Level: constant.RoleStaff},
			setup: func(d deps) {
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, user model.User) error {
					assert.Equal(t, constant.RoleStaff, user.Level)
					assert.Equal(t, "admin-1", user.CreatedBy)
					assert.NoError(t, password.Verify("lobby-shift-1", user.Password))

					return nil
				})
			},
		},
		{
			name:    "admin cannot mint another admin",
			ctx:     as("admin-1", constant.RoleAdmin),
			req:     dto.CreateUserRequest{Email: "gm@harbor.example", Password: "lobby-shift-1", Level: constant.RoleAdmin},
			setup:   func(deps) {},
			wantErr: true,
			errCode: 403,
		},
		{
			name: "api key caller is unrestricted",
			ctx:  context.Background(),
			req:  dto.CreateUserRequest{Email: "owner@harbor.example", Password: "lobby-shift-1", Level: constant.RoleSuperAdmin},
			setup: func(d deps) {
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "email taken",
			ctx:  as("admin-1", constant.RoleAdmin),
			req:  dto.CreateUserRequest{Email: "desk@harbor.example", Password: "lobby-shift-1"},
			setup: func(d deps) {
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(gRepo.ErrDuplicate)
			},
			wantErr: true,
			errCode: 409,
		},
		{
			name: "storage failure",
			ctx:  as("admin-1", constant.RoleAdmin),
			req:  dto.CreateUserRequest{Email: "desk@harbor.example", Password: "lobby-shift-1"},
			setup: func(d deps) {
				d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
			},
			wantErr: true,
			errCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newService(t)
			tt.setup(d)

			err := d.svc.Create(tt.ctx, tt.req)

			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)

			if tt.errCode == 500 {
				assert.Equal(t, 500, failure.GetCode(err))

				return
			}

			assertCode(t, err, tt.errCode)
		})
	}
}

func TestUserService_Get(t *testing.T) {
	t.Run("served from cache", func(t *testing.T) {
		d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), "user:get:guest-7", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*dto.UserResponse) = dto.UserResponse{ID: "guest-7", Email: "ana@guest.example"}

				return nil
			})

		res, err := d.svc.Get(context.Background(), "guest-7")
		require.NoError(t, err)
		assert.Equal(t, "ana@guest.example", res.Email)
	})

	t.Run("miss reads repository", func(t *testing.T) {
		d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "guest-7", Email: "ana@guest.example", Level: constant.RoleUser, Active: true}, nil)

		res, err := d.svc.Get(context.Background(), "guest-7")
		require.NoError(t, err)
		assert.Equal(t, constant.RoleUser, res.Level)
		assert.True(t, res.Active)
	})

	t.Run("unknown id", func(t *testing.T) {
		d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss)
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := d.svc.Get(context.Background(), "ghost")
		assertCode(t, err, 404)
	})
}

func TestUserService_GetAll(t *testing.T) {
	d := newService(t)

	params := gDto.QueryParams{Limit: 10, Page: 1}

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).Times(2)
	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(12, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.User{
		{ID: "staff-1", Level: constant.RoleStaff},
		{ID: "guest-7", Level: constant.RoleUser},
	}, nil)

	res, err := d.svc.GetAll(context.Background(), params, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, res.Users, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestUserService_Update(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		id      string
		req     dto.UpdateUserRequest
		setup   func(d deps)
		errCode int
	}{
		{
			name: "admin deactivates a guest",
			ctx:  as("admin-1", constant.RoleAdmin),
			id:   "guest-7",
			req:  dto.UpdateUserRequest{Active: ptr(false)},
			setup: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "guest-7", Level: constant.RoleUser}, nil)
				d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, "admin-1", fields[constant.FieldModifiedBy])

					return nil
				})
			},
		},
		{
			name:    "empty body",
			ctx:     as("admin-1", constant.RoleAdmin),
			id:      "guest-7",
			setup:   func(deps) {},
			errCode: 400,
		},
		{
			name:    "own account goes through profile",
			ctx:     as("admin-1", constant.RoleAdmin),
			id:      "admin-1",
			req:     dto.UpdateUserRequest{Level: ptr(constant.RoleUser)},
			setup:   func(deps) {},
			errCode: 400,
		},
		{
			name: "staff cannot touch a peer",
			ctx:  as("staff-1", constant.RoleStaff),
			id:   "staff-2",
			req:  dto.UpdateUserRequest{FullName: ptr("Night Porter")},
			setup: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "staff-2", Level: constant.RoleStaff}, nil)
			},
			errCode: 403,
		},
		{
			name: "admin cannot promote to admin",
			ctx:  as("admin-1", constant.RoleAdmin),
			id:   "staff-2",
			req:  dto.UpdateUserRequest{Level: ptr(constant.RoleAdmin)},
			setup: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "staff-2", Level: constant.RoleStaff}, nil)
			},
			errCode: 403,
		},
		{
			name: "superadmin promotes",
			ctx:  as("owner-1", constant.RoleSuperAdmin),
			id:   "staff-2",
			req:  dto.UpdateUserRequest{Level: ptr(constant.RoleAdmin)},
			setup: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "staff-2", Level: constant.RoleStaff}, nil)
				d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "missing account",
			ctx:  as("admin-1", constant.RoleAdmin),
			id:   "ghost",
			req:  dto.UpdateUserRequest{Active: ptr(true)},
			setup: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			errCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newService(t)
			tt.setup(d)

			err := d.svc.Update(tt.ctx, tt.req, tt.id)

			if tt.errCode == 0 {
				require.NoError(t, err)

				return
			}

			assertCode(t, err, tt.errCode)
		})
	}
}

func TestUserService_UpdateProfile(t *testing.T) {
	t.Run("writes own fields", func(t *testing.T) {
		d := newService(t)

		d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "guest-7", fields[constant.FieldModifiedBy])
			assert.NotContains(t, fields, "level")

			return nil
		})

		require.NoError(t, d.svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{FullName: ptr("Ana Reyes")}, "guest-7"))
	})

	t.Run("empty body", func(t *testing.T) {
		d := newService(t)

		err := d.svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{}, "guest-7")
		assertCode(t, err, 400)
	})
}

func TestUserService_Delete(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		id      string
		setup   func(d deps)
		errCode int
	}{
		{
			name: "admin removes staff",
			ctx:  as("admin-1", constant.RoleAdmin),
			id:   "staff-2",
			setup: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "staff-2", Level: constant.RoleStaff}, nil)
				d.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "self",
			ctx:     as("admin-1", constant.RoleAdmin),
			id:      "admin-1",
			setup:   func(deps) {},
			errCode: 400,
		},
		{
			name: "admin cannot remove superadmin",
			ctx:  as("admin-1", constant.RoleAdmin),
			id:   "owner-1",
			setup: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "owner-1", Level: constant.RoleSuperAdmin}, nil)
			},
			errCode: 403,
		},
		{
			name: "missing",
			ctx:  as("admin-1", constant.RoleAdmin),
			id:   "ghost",
			setup: func(d deps) {
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)
			},
			errCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newService(t)
			tt.setup(d)

			err := d.svc.Delete(tt.ctx, tt.id)

			if tt.errCode == 0 {
				require.NoError(t, err)

				return
			}

			assertCode(t, err, tt.errCode)
		})
	}
}

func TestUserService_TracesRejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewRecorder()

	svc := service.New(userMocks.NewMockUser(ctrl), &config.Config{}, cacheMocks.NewMockRedisCache(ctrl), recorder)

	err := svc.Create(as("staff-1", constant.RoleStaff), dto.CreateUserRequest{Email: "x@harbor.example", Password: "lobby-shift-1", Level: constant.RoleStaff})
	require.Error(t, err)

	assert.Equal(t, []string{constant.OtelServiceScopeName + ".Create"}, recorder.Spans())
	require.Len(t, recorder.Errors(), 1)
	assert.ErrorIs(t, recorder.Errors()[0], failure.ForbiddenError)
}
