package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zizouhuweidi/trivia/internal/domain"
)

func seq(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	items := seq(23)

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page", 1, seq(10)},
		{"second page", 2, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}},
		{"partial last page", 3, []int{20, 21, 22}},
		{"past the end", 4, []int{}},
		{"far past the end", 100, []int{}},
		{"zero page", 0, []int{}},
		{"negative page", -1, []int{}},
		{"max int page", math.MaxInt, []int{}},
		{"page whose offset overflows", math.MaxInt/PageSize + 2, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page, PageSize)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}

func TestPaginateWindowProperty(t *testing.T) {
	for n := 0; n <= 35; n++ {
		items := seq(n)
		for page := 1; page <= 5; page++ {
			got := Paginate(items, page, PageSize)
			require.LessOrEqual(t, len(got), PageSize)
			for i, v := range got {
				assert.Equal(t, (page-1)*PageSize+i, v)
			}
		}
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	got := Paginate([]string(nil), 1, PageSize)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestParsePage(t *testing.T) {
	page, err := ParsePage("")
	require.NoError(t, err)
	assert.Equal(t, 1, page)

	page, err = ParsePage(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, page)

	for _, raw := range []string{"abc", "0", "-2", "1.5"} {
		_, err := ParsePage(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidPage, raw)
		assert.ErrorIs(t, err, domain.ErrBadRequest, raw)
	}
}
