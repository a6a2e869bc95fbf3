package dto_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"innkeep/shared/dto"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.Filter
		expected string
		args     map[string]any
	}{
		{
			name:     "eq operator",
			filter:   dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: "room-1", Table: "reservations"},
			expected: "reservations.room_id = :room_id",
			args:     map[string]any{"room_id": "room-1"},
		},
		{
			name:     "greater_eq operator",
			filter:   dto.Filter{Field: "end_date", Operator: dto.FilterOperatorGreaterEq, Value: "2024-06-01", Table: "reservations"},
			expected: "reservations.end_date >= :end_date",
			args:     map[string]any{"end_date": "2024-06-01"},
		},
		{
			name:     "less_eq operator",
			filter:   dto.Filter{Field: "start_date", Operator: dto.FilterOperatorLessEq, Value: "2024-06-05", Table: "reservations"},
			expected: "reservations.start_date <= :start_date",
			args:     map[string]any{"start_date": "2024-06-05"},
		},
		{
			name:     "not_eq operator with custom arg name",
			filter:   dto.Filter{ArgName: "self_id", Field: "id", Operator: dto.FilterOperatorNotEq, Value: "res-9", Table: "reservations"},
			expected: "reservations.id != :self_id",
			args:     map[string]any{"self_id": "res-9"},
		},
		{
			name:     "unknown operator yields empty clause",
			filter:   dto.Filter{Field: "id", Operator: "between", Value: 1},
			expected: "",
			args:     map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expected, where)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestFilterGroup_OverlapClause(t *testing.T) {
	// The inclusive date range overlap predicate used by the availability check.
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "room_id", Operator: dto.FilterOperatorEq, Value: "room-1", Table: "reservations"},
			dto.Filter{Field: "end_date", Operator: dto.FilterOperatorGreaterEq, Value: "2024-06-01", Table: "reservations"},
			dto.Filter{Field: "start_date", Operator: dto.FilterOperatorLessEq, Value: "2024-06-05", Table: "reservations"},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(reservations.room_id = :room_id AND reservations.end_date >= :end_date AND reservations.start_date <= :start_date)", where)
	assert.Len(t, args, 3)
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterGroup_Nested(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorOr,
		Filters: []any{
			dto.Filter{Field: "sender_id", Operator: dto.FilterOperatorEq, Value: "u1", Table: "messages"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "receiver_id", Operator: dto.FilterOperatorEq, Value: "u1", Table: "messages"},
					dto.Filter{Field: "is_read", Operator: dto.FilterOperatorEq, ArgName: "unread", Value: false, Table: "messages"},
				},
			},
		},
	}

	where, _ := group.GetWhereClause()

	assert.Contains(t, where, "messages.sender_id = :sender_id OR")
	assert.Contains(t, where, "(messages.receiver_id = :receiver_id AND messages.is_read = :unread)")
}

func TestQueryParams_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/reservations?page=2&limit=25&sort_by=start_date&sort_dir=asc", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "start_date", q.SortBy)
	assert.Equal(t, dto.SortDirAsc, q.SortDir)
}

func TestQueryParams_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/v1/reservations", nil)

	q := dto.QueryParams{}
	q.FromRequest(r, true)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.Limit)
}
