package shared_test

import (
	"concierge/shared"
	cacheMocks "concierge/shared/cache/mocks"
	"concierge/shared/constant"
	"concierge/shared/dto"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("featured"))

	got := shared.ConvertStringToBool("true")
	require.NotNil(t, got)
	assert.True(t, *got)

	got = shared.ConvertStringToBool("0")
	require.NotNil(t, got)
	assert.False(t, *got)
}

func TestConvertStringToInt(t *testing.T) {
	n, err := shared.ConvertStringToInt(" 4 ")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = shared.ConvertStringToInt("four")
	assert.Error(t, err)
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 1},
		{25, 0, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 20, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestTransformFields(t *testing.T) {
	note := "late check-out"

	type update struct {
		Status   string  `db:"status"`
		Capacity int     `db:"capacity"`
		Notes    *string `db:"notes"`
		Image    *string `db:"image"`
		CheckIn  string
	}

	fields := shared.TransformFields(update{Status: "occupied", Notes: &note, CheckIn: "2025-07-01"}, "staff-1")

	assert.Equal(t, "occupied", fields["status"])
	assert.Equal(t, &note, fields["notes"])
	assert.NotContains(t, fields, "capacity")
	assert.NotContains(t, fields, "image")
	assert.NotContains(t, fields, "CheckIn")
	assert.Equal(t, "staff-1", fields[constant.FieldModifiedBy])
	assert.WithinDuration(t, time.Now(), fields[constant.FieldModifiedAt].(time.Time), time.Second)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("204", "room_number", "rooms")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(rooms.room_number = :room_number)", where)
	assert.Equal(t, map[string]any{"room_number": "204"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room:get", "abc"))
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get", ""))
	assert.Equal(t, "guest:get:u1:204", shared.BuildCacheKey("guest:get", "u1", "", "204"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	active := dto.FilterGroup{}
	active.AddBoolFilter("active", "true", "")

	inactive := dto.FilterGroup{}
	inactive.AddBoolFilter("active", "false", "")

	key := shared.BuildCacheKeyWithQuery("room:gets", params, active)

	assert.True(t, strings.HasPrefix(key, "room:gets:"))
	assert.Equal(t, key, shared.BuildCacheKeyWithQuery("room:gets", params, active))
	assert.NotEqual(t, key, shared.BuildCacheKeyWithQuery("room:gets", params, inactive))
	assert.NotEqual(t, key, shared.BuildCacheKeyWithQuery("room:gets", dto.QueryParams{Page: 2, Limit: 10}, active))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cache.EXPECT().Clear(gomock.Any(), "room:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), cache, "room:gets")

	cache.EXPECT().Clear(gomock.Any(), "room:count:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), cache, "room:count")
}

func TestParseDate(t *testing.T) {
	got, err := shared.ParseDate("2025-07-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2025-07-01", got.Format(time.DateOnly))

	got, err = shared.ParseDate("  ")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = shared.ParseDate("07/01/2025")
	assert.Error(t, err)
}

func TestParseDateTime(t *testing.T) {
	got, err := shared.ParseDateTime("2025-07-01T19:30:00+07:00")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(time.Date(2025, 7, 1, 12, 30, 0, 0, time.UTC)))

	_, err = shared.ParseDateTime("2025-07-01 19:30")
	assert.Error(t, err)
}
