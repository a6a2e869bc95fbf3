package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared"
	"innkeep/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "with remainder", total: 21, limit: 10, expected: 3},
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 50, limit: 0, expected: 1},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestConvertStringToBool(t *testing.T) {
	assert.Nil(t, shared.ConvertStringToBool(""))
	assert.Nil(t, shared.ConvertStringToBool("not-a-bool"))

	truthy := shared.ConvertStringToBool("true")
	if assert.NotNil(t, truthy) {
		assert.True(t, *truthy)
	}

	falsy := shared.ConvertStringToBool("false")
	if assert.NotNil(t, falsy) {
		assert.False(t, *falsy)
	}
}

func TestTransformFields(t *testing.T) {
	type updateRoomRequest struct {
		Number      string `db:"number"`
		Capacity    int    `db:"capacity"`
		TotalGuests int    `db:"total_guests"`
		Untagged    string
	}

	req := updateRoomRequest{Number: "101", Capacity: 4, Untagged: "ignored"}

	fields := shared.TransformFields(req, "clerk-1")

	assert.Equal(t, "101", fields["number"])
	assert.Equal(t, 4, fields["capacity"])
	assert.NotContains(t, fields, "total_guests", "zero values should be skipped")
	assert.Equal(t, "clerk-1", fields["modified_by"])
	assert.Contains(t, fields, "modified_at")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("res-1", "id", "reservations")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(reservations.id = :id)", where)
	assert.Equal(t, "res-1", args["id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get", shared.BuildCacheKey("room:get"))
	assert.Equal(t, "room:get:room-1", shared.BuildCacheKey("room:get", "room-1"))
	assert.Equal(t, "limiter:10.0.0.1:cli", shared.BuildCacheKey("limiter", "10.0.0.1", "cli"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "start_date", SortDir: dto.SortDirAsc}
	filter := shared.FilterByID("room-1", "room_id", "reservations")

	first := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("reservation:gets", params, filter)

	assert.Equal(t, first, second, "same query must map to the same key")

	other := shared.BuildCacheKeyWithQuery("reservation:gets", dto.QueryParams{Page: 3, Limit: 10}, filter)
	assert.NotEqual(t, first, other, "different queries must map to different keys")
}
