package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8000/media/p.jpg", ImageURL("http://localhost:8000", "/media/p.jpg"))
	assert.Equal(t, "http://localhost:8000/media/p.jpg", ImageURL("http://localhost:8000/", "media/p.jpg"))
	assert.Equal(t, "https://cdn.example.com/p.jpg", ImageURL("http://localhost:8000", "https://cdn.example.com/p.jpg"))
	assert.Equal(t, "", ImageURL("http://localhost:8000", ""))
}

func TestParsePaginationDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products", nil)
	page, limit, offset := ParsePagination(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, DefaultPageLimit, limit)
	assert.Equal(t, 0, offset)
}

func TestParsePaginationClampsAndOffsets(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/products?page=3&limit=10", nil)
	page, limit, offset := ParsePagination(r)
	assert.Equal(t, 3, page)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 20, offset)

	r = httptest.NewRequest("GET", "/api/products?page=-2&limit=9999", nil)
	page, limit, offset = ParsePagination(r)
	assert.Equal(t, 1, page)
	assert.Equal(t, MaxPageLimit, limit)
	assert.Equal(t, 0, offset)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
	assert.Equal(t, 0, TotalPages(10, 0))
}
