// Package paging implements skip/limit pagination over the news API.
package paging

import (
	"context"
	"errors"
	"fmt"
)

// DefaultPageSize is used when a non-positive page size is configured.
const DefaultPageSize = 10

// ErrInvalidPage is returned for page numbers below 1.
var ErrInvalidPage = errors.New("paging: page must be >= 1")

// Cursor is a 1-based page position with a fixed page size.
type Cursor struct {
	Page  int
	Limit int
}

// NewCursor validates page and applies the default page size.
func NewCursor(page, limit int) (Cursor, error) {
	if page < 1 {
		return Cursor{}, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	return Cursor{Page: page, Limit: limit}, nil
}

// Skip returns the offset for the cursor: (page-1) * limit.
func (c Cursor) Skip() int {
	return (c.Page - 1) * c.Limit
}

// Next returns the cursor for the following page.
func (c Cursor) Next() Cursor { return Cursor{Page: c.Page + 1, Limit: c.Limit} }

// Prev returns the cursor for the previous page, never going below page 1.
func (c Cursor) Prev() Cursor {
	if c.Page <= 1 {
		return c
	}
	return Cursor{Page: c.Page - 1, Limit: c.Limit}
}

// FetchFunc loads one page worth of items.
type FetchFunc[T any] func(ctx context.Context, skip, limit int) ([]T, error)

// Controller turns page numbers into skip/limit fetches. Every call hits the
// fetcher; nothing is cached and nothing is retried. Concurrent calls are not
// serialized, so consumers should commit results through a View.
type Controller[T any] struct {
	fetch    FetchFunc[T]
	pageSize int
}

// NewController creates a controller with a fixed page size.
func NewController[T any](fetch FetchFunc[T], pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller[T]{fetch: fetch, pageSize: pageSize}
}

// PageSize returns the fixed page size.
func (c *Controller[T]) PageSize() int { return c.pageSize }

// Cursor returns the cursor for page.
func (c *Controller[T]) Cursor(page int) (Cursor, error) {
	return NewCursor(page, c.pageSize)
}

// LoadPage fetches page (1-based). Fetch errors are returned unchanged.
func (c *Controller[T]) LoadPage(ctx context.Context, page int) ([]T, error) {
	cur, err := c.Cursor(page)
	if err != nil {
		return nil, err
	}
	return c.fetch(ctx, cur.Skip(), cur.Limit)
}
