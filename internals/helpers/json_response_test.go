// file: internals/helpers/json_response_test.go
package helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaging(t *testing.T) {
	var cases = []struct {
		name        string
		query       string
		wantPage    int
		wantPerPage int
		wantOffset  int
	}{
		{"default", "", 1, 30, 0},
		{"page & per_page", "page=3&per_page=10", 3, 10, 20},
		{"alias limit", "limit=15", 1, 15, 0},
		{"per_page menang atas limit", "per_page=10&limit=99", 1, 10, 0},
		{"dibatasi maksimum", "per_page=9999", 1, 100, 0},
		{"page negatif → 1", "page=-5", 1, 30, 0},
		{"per_page nol → default", "per_page=0", 1, 30, 0},
	}

	app := fiber.New()
	var got Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 30, 100)
		return c.SendStatus(fiber.StatusOK)
	})

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			_, err := app.Test(httptest.NewRequest(http.MethodGet, "/?"+tcase.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tcase.wantPage, got.Page)
			assert.Equal(t, tcase.wantPerPage, got.PerPage)
			assert.Equal(t, tcase.wantOffset, got.Offset)
			assert.Equal(t, tcase.wantPerPage, got.Limit)
		})
	}
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := BuildPaginationFromPage(45, 2, 20)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = BuildPaginationFromPage(0, 1, 20)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)

	// nilai ngawur dinormalkan
	p = BuildPaginationFromPage(10, 0, 0)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}
