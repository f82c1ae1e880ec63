package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

// ConvertStringToInt parses a form value, returning nil when it is empty or not a number.
func ConvertStringToInt(value string) *int {
	if value == "" {
		return nil
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to int")

		return nil
	}

	return &intValue
}

func ConvertStringToFloat(value string) *float64 {
	if value == "" {
		return nil
	}

	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to float")

		return nil
	}

	return &floatValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero, db-tagged fields of a struct into a map of updated fields.
func TransformFields(data interface{}, operator string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = operator

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterByKeyword matches keyword as a case-insensitive substring of any of the given columns.
func FilterByKeyword(keyword, table string, fields ...string) dto.FilterGroup {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters:  []any{},
	}

	for _, field := range fields {
		group.Filters = append(group.Filters, dto.Filter{
			ArgName:  "keyword_" + field,
			Field:    field,
			Value:    keyword,
			Operator: dto.FilterOperatorLike,
			Table:    table,
		})
	}

	return group
}

// Operator returns the operator recorded in the context, falling back to the system operator.
func Operator(ctx context.Context) string {
	operator, _ := ctx.Value(constant.ContextKeyOperatorID).(string)
	if operator == "" {
		return constant.OperatorSystem
	}

	return operator
}

// BuildCacheKey joins the key prefix and its parts with a colon.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// BuildCacheKeyWithQuery derives a stable cache key from pagination and filter values.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	keys := make([]string, 0, len(args))
	for key := range args {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, key := range keys {
		values = append(values, fmt.Sprintf("%s=%v", key, args[key]))
	}

	return BuildCacheKey(
		prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		where,
		strings.Join(values, "&"),
	)
}

// InvalidateCaches removes every key that starts with prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
