package common

// Paginate returns the 1-based page of items holding at most limit entries.
// Pages past the end are empty; page and limit below 1 are treated as 1.
func Paginate[T any](items []T, page, limit int) []T {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	// (page-1)*limit may overflow, so the page index is checked first
	if len(items) == 0 || page-1 > (len(items)-1)/limit {
		return []T{}
	}
	start := (page - 1) * limit
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-start)
	copy(out, items[start:end])
	return out
}
