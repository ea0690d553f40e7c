package utils

import "strconv"

const MaxPageSize = 100

// ParsePagination reads page and pageSize query values, falling back to
// 1 and defaultSize when empty.
func ParsePagination(pageStr, pageSizeStr string, defaultSize int) (int, int, error) {
	page, pageSize := 1, defaultSize
	var err error
	if pageStr != "" {
		if page, err = strconv.Atoi(pageStr); err != nil || page < 1 {
			return 0, 0, ErrInvalidPage
		}
	}
	if pageSizeStr != "" {
		if pageSize, err = strconv.Atoi(pageSizeStr); err != nil {
			return 0, 0, ErrInvalidPageSize
		}
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		return 0, 0, ErrInvalidPageSize
	}
	return page, pageSize, nil
}

// Paginate returns the page of items, empty when page is past the end.
func Paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return []T{}
	}
	// compare page counts first so (page-1)*pageSize cannot overflow
	pages := (len(items) + pageSize - 1) / pageSize
	if page-1 >= pages {
		return []T{}
	}
	offset := (page - 1) * pageSize
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
