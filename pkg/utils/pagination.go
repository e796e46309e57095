package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams reads "page" and "limit" from the query string. ok is
// false when the client sent neither; such requests get the whole collection.
func GetPaginationParams(c echo.Context) (params PaginationParams, ok bool) {
	rawPage, rawLimit := c.QueryParam("page"), c.QueryParam("limit")
	if rawPage == "" && rawLimit == "" {
		return PaginationParams{}, false
	}

	page, _ := strconv.Atoi(rawPage)
	pageSize, _ := strconv.Atoi(rawLimit)

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}, true
}

// Paginate returns the slice of items on page p. Pages past the end are empty.
func Paginate[T any](items []T, p PaginationParams) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}
