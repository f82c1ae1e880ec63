package shared_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel/shared"
	"hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: &yes},
		{name: "false", input: "false", expected: &no},
		{name: "one", input: "1", expected: &yes},
		{name: "upper case", input: "FALSE", expected: &no},
		{name: "invalid string returns nil", input: "maybe", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "negative limit returns 1", total: 100, limit: -5, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
		{name: "limit greater than total", total: 5, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type roomPatch struct {
		Number   string   `db:"number"`
		Floor    *int     `db:"floor"`
		Price    *float64 `db:"price"`
		Note     string
		Internal string `db:"-"`
	}

	ground, price := 0, 175.5

	result := shared.TransformFields(roomPatch{
		Number:   "204",
		Floor:    &ground,
		Price:    &price,
		Note:     "ignored",
		Internal: "ignored",
	}, "front-desk")

	assert.Equal(t, "204", result["number"])
	assert.Equal(t, 0, result["floor"])
	assert.InDelta(t, 175.5, result["price"], 0.0001)
	assert.Equal(t, "front-desk", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 5)
}

func TestTransformFields_EmptyPatch(t *testing.T) {
	type guestPatch struct {
		Name  string `db:"name"`
		Phone string `db:"phone"`
	}

	result := shared.TransformFields(guestPatch{}, "system")

	assert.Len(t, result, 2)
	assert.Contains(t, result, constant.FieldModifiedAt)
	assert.Contains(t, result, constant.FieldModifiedBy)
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "rooms")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "rooms",
			},
		},
	}, result)
}

func TestFilterByKeyword(t *testing.T) {
	group := shared.FilterByKeyword("ada", "guests", "name", "email")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(LOWER(guests.name) LIKE LOWER(:keyword_name)  OR LOWER(guests.email) LIKE LOWER(:keyword_email) )", where)
	assert.Equal(t, map[string]any{"keyword_name": "%ada%", "keyword_email": "%ada%"}, args)
}

func TestOperator(t *testing.T) {
	assert.Equal(t, constant.OperatorSystem, shared.Operator(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyOperatorID, "clerk-7")
	assert.Equal(t, "clerk-7", shared.Operator(ctx))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "rooms.number", SortDir: dto.SortDirAsc}
	filter := dto.FilterGroup{}.And(dto.Filter{Field: "status", Value: "free", Operator: dto.FilterOperatorEq})

	first := shared.BuildCacheKeyWithQuery("room:all", params, filter)
	second := shared.BuildCacheKeyWithQuery("room:all", params, filter)

	assert.Equal(t, first, second)
	assert.Equal(t, "room:all:2:10:rooms.number:ASC:(status = :status):status=free", first)
	assert.Equal(t, "booking:get:b-1", shared.BuildCacheKey("booking:get", "b-1"))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := mocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "room:get*").Return(nil)
	redisCache.EXPECT().Clear(gomock.Any(), "room:all*").Return(errors.New("redis unavailable"))

	shared.InvalidateCaches(context.Background(), redisCache, "room:get")
	shared.InvalidateCaches(context.Background(), redisCache, "room:all")
}
