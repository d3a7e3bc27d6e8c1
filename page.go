package gridlet

// totalPages is the page count for a row count and page size, never
// less than one. A non-positive size disables paging: one page holds
// everything.
func totalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 1
	}
	return (count + size - 1) / size
}

// pageBounds returns the half-open row range shown on a page.
func pageBounds(page, size, count int) (start, end int) {
	if size <= 0 {
		return 0, count
	}

	start = (page - 1) * size
	if start > count {
		start = count
	}
	if start < 0 {
		start = 0
	}

	end = start + size
	if end > count {
		end = count
	}
	return
}

// clampPage pins a page number into [1, total].
func clampPage(page, total int) int {
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}
