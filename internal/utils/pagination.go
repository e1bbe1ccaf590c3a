package utils

import (
	"strconv"

	domainerrors "credvia/internal/errors"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Pagination carries validated page parameters and, after the query ran,
// the total row count.
type Pagination struct {
	Page   int
	Limit  int
	Offset int
	Total  int64
}

// ParsePagination reads and validates page/limit query parameters.
// page must be >= 1 and limit within [1, 100].
func ParsePagination(c *fiber.Ctx) (Pagination, error) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return Pagination{}, domainerrors.ErrValidation.WithMessage("page must be a positive integer")
	}
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageSize)))
	if err != nil || limit < 1 || limit > maxPageSize {
		return Pagination{}, domainerrors.ErrValidation.WithMessage("limit must be between 1 and %d", maxPageSize)
	}
	return Pagination{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}, nil
}

// PaginatedData wraps a result page with its pagination meta for the
// response envelope.
func PaginatedData(p Pagination, items interface{}) fiber.Map {
	totalPages := p.Total / int64(p.Limit)
	if p.Total%int64(p.Limit) > 0 {
		totalPages++
	}

	return fiber.Map{
		"items": items,
		"meta": fiber.Map{
			"current_page": p.Page,
			"per_page":     p.Limit,
			"total_items":  p.Total,
			"total_pages":  totalPages,
		},
	}
}
