package dto_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "front-desk",
		ModifiedBy: "night-audit",
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, "front-desk", metadata.CreatedBy)
	assert.Equal(t, "night-audit", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "number",
				"sort_dir": "asc",
			},
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "number", SortDir: dto.SortDirAsc},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with default request disabled and no parameters",
			queryParams: map[string]string{},
			expected:    dto.QueryParams{},
		},
		{
			name:           "with invalid page parameter",
			queryParams:    map[string]string{"page": "invalid"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with negative page parameter",
			queryParams:    map[string]string{"page": "-1"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:           "with negative limit parameter",
			queryParams:    map[string]string{"limit": "-10"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:        "with unknown sort direction",
			queryParams: map[string]string{"sort_dir": "sideways"},
			expected:    dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		table    string
		expected dto.QueryParams
	}{
		{
			name:     "allowed column keeps direction",
			params:   dto.QueryParams{SortBy: "number", SortDir: dto.SortDirDesc},
			table:    "rooms",
			expected: dto.QueryParams{SortBy: "rooms.number", SortDir: dto.SortDirDesc},
		},
		{
			name:     "allowed column without direction sorts ascending",
			params:   dto.QueryParams{SortBy: "number"},
			table:    "rooms",
			expected: dto.QueryParams{SortBy: "rooms.number", SortDir: dto.SortDirAsc},
		},
		{
			name:     "unknown column falls back to newest first",
			params:   dto.QueryParams{SortBy: "number; DROP TABLE rooms", SortDir: dto.SortDirAsc},
			table:    "rooms",
			expected: dto.QueryParams{SortBy: "rooms.created_at", SortDir: dto.SortDirDesc},
		},
		{
			name:     "empty column falls back to newest first",
			params:   dto.QueryParams{},
			table:    "rooms",
			expected: dto.QueryParams{SortBy: "rooms.created_at", SortDir: dto.SortDirDesc},
		},
		{
			name:     "no table leaves column bare",
			params:   dto.QueryParams{SortBy: "price"},
			expected: dto.QueryParams{SortBy: "price", SortDir: dto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.RestrictSort(tt.table, "number", "price")

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	checkIn := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	group := dto.FilterGroup{}.And(
		dto.Filter{Field: "room_id", Value: "r1", Operator: dto.FilterOperatorEq, Table: "bookings"},
		dto.Filter{ArgName: "stay_check_in", Field: "check_out", Value: checkIn, Operator: dto.FilterOperatorGreater},
		dto.Filter{Field: "status", Value: []string{"active", "completed"}, Operator: dto.FilterOperatorIn},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(bookings.room_id = :room_id AND check_out > :stay_check_in AND status IN (:status_0, :status_1) )", where)
	assert.Equal(t, map[string]any{
		"room_id":       "r1",
		"stay_check_in": checkIn,
		"status_0":      "active",
		"status_1":      "completed",
	}, args)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
	assert.True(t, group.Empty())
}
