package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTotal(t *testing.T) {
	tests := []struct {
		name     string
		params   Params
		raw      int
		matched  int
		expected int
	}{
		{"full first page signals more", Params{Page: 1, PageSize: 20}, 20, 20, 21},
		{"short page is exact", Params{Page: 3, PageSize: 20}, 7, 7, 47},
		{"empty listing", Params{Page: 1, PageSize: 20}, 0, 0, 0},
		{"filtered short page counts survivors", Params{Page: 2, PageSize: 10}, 4, 1, 11},
		{"full page ignores filter count", Params{Page: 1, PageSize: 20}, 20, 3, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateTotal(tt.params, tt.raw, tt.matched))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(1, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 3, TotalPages(47, 20))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Params{Page: 3, PageSize: 20}.Offset())
}

func TestNewResponse(t *testing.T) {
	data := []string{"a", "b"}
	resp := NewResponse(Params{Page: 2, PageSize: 20}, 47, data)

	assert.Equal(t, 47, resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 20, resp.PageSize)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Equal(t, data, resp.Data)
}
