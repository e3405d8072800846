package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thakur-sujal/ERP-Portal/internal/response"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// paramID parses a positive integer path parameter. Returns 0 when absent or
// malformed.
func paramID(c *gin.Context, name string) int {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0
	}
	return id
}

// queryInt parses an optional positive integer query parameter.
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return 0
	}
	return v
}

// queryDate parses an optional YYYY-MM-DD query parameter. Returns
// (nil, true) when absent and (nil, false) when malformed.
func queryDate(c *gin.Context, name string) (*time.Time, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, false
	}
	return &d, true
}

// pageParams reads page/per_page query parameters with bounds applied.
func pageParams(c *gin.Context) (page, perPage int) {
	page = queryInt(c, "page")
	if page == 0 {
		page = 1
	}
	perPage = queryInt(c, "per_page")
	if perPage == 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// paginationOf builds the response pagination block.
func paginationOf(page, perPage, total int) *response.Pagination {
	totalPages := total / perPage
	if total%perPage > 0 {
		totalPages++
	}
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
