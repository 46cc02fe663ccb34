// Package pagination computes page counts and slice windows over the
// employee list. Callers treat zero total pages as "no pagination UI".
package pagination

// TotalPages returns ceil(itemCount / pageSize). Zero items yield zero pages.
func TotalPages(itemCount, pageSize int) int {
	if itemCount <= 0 || pageSize <= 0 {
		return 0
	}
	return (itemCount + pageSize - 1) / pageSize
}

// Window resolves the half-open slice bounds [start, end) for the requested
// page. A page beyond the last valid one (e.g. after a delete empties the
// last page) is clamped to the last valid page, never below 1; the returned
// page tells the caller where it actually landed so it can re-render there.
func Window(itemCount, page, pageSize int) (start, end, clampedPage int) {
	totalPages := TotalPages(itemCount, pageSize)

	clampedPage = page
	if clampedPage > totalPages {
		clampedPage = totalPages
	}
	if clampedPage < 1 {
		clampedPage = 1
	}

	start = (clampedPage - 1) * pageSize
	if start > itemCount {
		start = itemCount
	}
	end = start + pageSize
	if end > itemCount {
		end = itemCount
	}
	return start, end, clampedPage
}
