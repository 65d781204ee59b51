package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePage(t *testing.T) {
	testCases := []struct {
		query   string
		page    Page
		invalid string
	}{
		{"", Page{Page: 1, PageSize: 20}, ""},
		{"?page=3&page_size=50", Page{Page: 3, PageSize: 50}, ""},
		{"?page=0", Page{}, "page"},
		{"?page_size=101", Page{}, "page_size"},
		{"?page=abc", Page{}, "page"},
		{"?page=100000&page_size=100", Page{Page: 100000, PageSize: 100}, ""},
		{"?page=100001", Page{}, "page"},
		{"?page=9223372036854775807&page_size=100", Page{}, "page"},
	}

	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			p, details := ParsePage(httptest.NewRequest(http.MethodGet, "/v1/posts"+tc.query, nil))
			if tc.invalid == "" {
				assert.Empty(t, details)
				assert.Equal(t, tc.page, p)
				return
			}
			require.NotEmpty(t, details)
			assert.Equal(t, tc.invalid, details[0].Field)
		})
	}
}

func TestPage_LimitOffset(t *testing.T) {
	p := Page{Page: 3, PageSize: 20}
	assert.Equal(t, 20, p.Limit())
	assert.Equal(t, 40, p.Offset())

	last := Page{Page: 100000, PageSize: 100}
	assert.Equal(t, 9999900, last.Offset())
}

func TestParseID(t *testing.T) {
	id, details := ParseID("42")
	assert.Empty(t, details)
	assert.Equal(t, int64(42), id)

	_, details = ParseID("0")
	assert.NotEmpty(t, details)

	_, details = ParseID("x")
	assert.NotEmpty(t, details)
}

func TestValidateStruct_Oneof(t *testing.T) {
	type filter struct {
		Category string `validate:"omitempty,oneof=Fiction Non-Fiction"`
	}

	assert.Empty(t, ValidateStruct(filter{Category: "Non-Fiction"}))
	assert.Empty(t, ValidateStruct(filter{}))

	details := ValidateStruct(filter{Category: "fiction"})
	require.Len(t, details, 1)
	assert.Equal(t, "category", details[0].Field)
	assert.Contains(t, details[0].Message, "Fiction, Non-Fiction")
}
