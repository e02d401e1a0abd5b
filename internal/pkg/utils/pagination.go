package utils

import "github.com/gofiber/fiber/v2"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Pagination - limit/offset из query-параметров
type Pagination struct {
	Limit  int
	Offset int
}

// ParsePagination reads ?limit=&offset=, clamping limit to [1, MaxLimit].
func ParsePagination(c *fiber.Ctx) Pagination {
	limit := c.QueryInt("limit", DefaultLimit)
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return Pagination{Limit: limit, Offset: offset}
}
