package util

import "github.com/sovanra/uxfolio/internal/constant"

func CalculateTotalPage(totalItems int64, pageSize uint) int {
	if pageSize <= 0 {
		pageSize = constant.DefaultPageSize
	}
	if totalItems == 0 {
		return 1
	}
	totalPage := int(totalItems / int64(pageSize))
	if totalItems%int64(pageSize) != 0 {
		totalPage++
	}
	return totalPage
}

// Paginate slices one page out of an in-memory list. The flat-file store
// always loads whole collections, so paging happens after the fact.
func Paginate[T any](items []T, page uint, pageSize uint) []T {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = constant.DefaultPageSize
	}

	start := int(page-1) * int(pageSize)
	if start >= len(items) {
		return []T{}
	}

	end := start + int(pageSize)
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
