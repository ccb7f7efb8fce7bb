package dto_test

import (
	"concierge/shared/constant"
	"concierge/shared/dto"
	"concierge/shared/model"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	checkIn := time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

	var metadata dto.Metadata
	metadata.FromModel(model.Metadata{
		CreatedAt:  checkIn,
		ModifiedAt: checkIn.Add(2 * time.Hour),
		CreatedBy:  "front-desk",
		ModifiedBy: "housekeeping",
	})

	assert.Equal(t, checkIn.Format(constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, checkIn.Add(2*time.Hour).Format(constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "front-desk", metadata.CreatedBy)
	assert.Equal(t, "housekeeping", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		withDefaults bool
		expected     dto.QueryParams
	}{
		{
			name:     "all params",
			query:    "page=2&limit=20&sort_by=room_number&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "room_number", SortDir: dto.SortDirDesc},
		},
		{
			name:         "defaults leave sorting to the caller",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: dto.MaxLimit},
		},
		{
			name:         "non-positive paging falls back",
			query:        "page=-1&limit=0",
			withDefaults: true,
			expected:     dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "garbage numbers are ignored",
			query:    "page=two&limit=ten",
			expected: dto.QueryParams{},
		},
		{
			name:     "sort_by with sql is rejected",
			query:    "sort_by=name%3B+DROP+TABLE+rooms&sort_dir=asc",
			expected: dto.QueryParams{SortDir: dto.SortDirAsc},
		},
		{
			name:     "sort_by is lowercased",
			query:    "sort_by=Price",
			expected: dto.QueryParams{SortBy: "price"},
		},
		{
			name:     "unknown direction is dropped",
			query:    "sort_by=price&sort_dir=sideways",
			expected: dto.QueryParams{SortBy: "price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/v1/rooms?"+tt.query, nil)

			var params dto.QueryParams
			params.FromRequest(r, tt.withDefaults)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name:         "eq with table",
			filter:       dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "pending", Table: "service_requests"},
			expectedSQL:  "service_requests.status = :status",
			expectedArgs: map[string]any{"status": "pending"},
		},
		{
			name:         "like is case insensitive",
			filter:       dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "Spa"},
			expectedSQL:  "LOWER(name) LIKE LOWER(:name)",
			expectedArgs: map[string]any{"name": "%Spa%"},
		},
		{
			name:         "arg name overrides field",
			filter:       dto.Filter{ArgName: "check_in_from", Field: "check_in", Operator: dto.FilterOperatorGreaterEq, Value: "2025-01-01"},
			expectedSQL:  "check_in >= :check_in_from",
			expectedArgs: map[string]any{"check_in_from": "2025-01-01"},
		},
		{
			name:         "less",
			filter:       dto.Filter{Field: "capacity", Operator: dto.FilterOperatorLess, Value: 10},
			expectedSQL:  "capacity < :capacity",
			expectedArgs: map[string]any{"capacity": 10},
		},
		{
			name:         "unknown operator yields nothing",
			filter:       dto.Filter{Field: "name", Operator: "between", Value: 1},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("defaults to AND and nests groups", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "is_active", Operator: dto.FilterOperatorEq, Value: true},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "pool"},
						dto.Filter{ArgName: "description_q", Field: "description", Operator: dto.FilterOperatorLike, Value: "pool"},
					},
				},
				"ignored",
			},
		}

		sql, args := group.GetWhereClause()

		assert.Equal(t, "(is_active = :is_active AND (LOWER(name) LIKE LOWER(:name) OR LOWER(description) LIKE LOWER(:description_q)))", sql)
		assert.Equal(t, map[string]any{"is_active": true, "name": "%pool%", "description_q": "%pool%"}, args)
	})

	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{Filters: []any{dto.FilterGroup{}}}

		sql, args := group.GetWhereClause()

		assert.Empty(t, sql)
		assert.Empty(t, args)
	})
}

func TestFilterGroup_AddFilter(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	group.AddFilter("category", dto.FilterOperatorEq, "", "")
	group.AddFilter("category", dto.FilterOperatorEq, "housekeeping", "")
	group.AddFilter("floor", dto.FilterOperatorEq, 0, "")

	assert.Len(t, group.Filters, 2)

	group.AddBoolFilter("is_featured", "yes", "")
	group.AddBoolFilter("is_featured", "true", "destinations")

	assert.Len(t, group.Filters, 3)
	assert.Equal(t, dto.Filter{Field: "is_featured", Operator: dto.FilterOperatorEq, Value: true, Table: "destinations"}, group.Filters[2])
}
