package cache_test

import (
	"concierge/shared/cache"
	"concierge/shared/cache/mocks"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type suite struct {
	Number string `json:"number"`
	Floor  int    `json:"floor"`
}

func TestRemember(t *testing.T) {
	ctx := context.Background()
	miss := fmt.Errorf("failed to get cache value: %w", cache.Nil)

	t.Run("hit skips the loader", func(t *testing.T) {
		store := mocks.NewMockRedisCache(gomock.NewController(t))
		store.EXPECT().Get(gomock.Any(), "room:get:204", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*suite) = suite{Number: "204", Floor: 2}

				return nil
			})

		got, err := cache.Remember(ctx, store, "room:get:204", 60, func(context.Context) (suite, error) {
			t.Fatal("loader called on a hit")

			return suite{}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, suite{Number: "204", Floor: 2}, got)
	})

	t.Run("miss loads and fills before returning", func(t *testing.T) {
		store := mocks.NewMockRedisCache(gomock.NewController(t))
		store.EXPECT().Get(gomock.Any(), "room:get:12B", gomock.Any()).Return(miss)
		store.EXPECT().Save(gomock.Any(), "room:get:12B", suite{Number: "12B", Floor: 12}, 60).Return(nil)

		got, err := cache.Remember(ctx, store, "room:get:12B", 60, func(context.Context) (suite, error) {
			return suite{Number: "12B", Floor: 12}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "12B", got.Number)
	})

	t.Run("fill errors are swallowed", func(t *testing.T) {
		store := mocks.NewMockRedisCache(gomock.NewController(t))
		store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(miss)
		store.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("READONLY"))

		got, err := cache.Remember(ctx, store, "room:get:7", 60, func(context.Context) (suite, error) {
			return suite{Number: "7"}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "7", got.Number)
	})

	t.Run("a delete after the fill is observed", func(t *testing.T) {
		store := mocks.NewMemory()
		loads := 0
		load := func(context.Context) (suite, error) {
			loads++

			return suite{Number: "301", Floor: loads}, nil
		}

		first, err := cache.Remember(ctx, store, "room:get:301", 60, load)
		require.NoError(t, err)
		require.True(t, store.Has("room:get:301"))

		require.NoError(t, store.Delete(ctx, "room:get:301"))

		second, err := cache.Remember(ctx, store, "room:get:301", 60, load)
		require.NoError(t, err)

		assert.Equal(t, 1, first.Floor)
		assert.Equal(t, 2, second.Floor)
	})

	t.Run("load errors are not cached", func(t *testing.T) {
		store := mocks.NewMockRedisCache(gomock.NewController(t))
		store.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(miss)

		boom := errors.New("connection reset")

		_, err := cache.Remember(ctx, store, "room:get:404", 60, func(context.Context) (suite, error) {
			return suite{}, boom
		})

		assert.ErrorIs(t, err, boom)
	})
}
