// Package pagination provides the page arithmetic shared by list endpoints.
package pagination

// TotalPages returns the number of pages needed to hold totalItems records
// at size records per page (ceiling division). It is 0 when totalItems is 0
// or size is not positive.
func TotalPages(size int, totalItems int64) int {
	if size <= 0 || totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(size) - 1) / int64(size))
}

// Offset returns the number of records to skip for the given 1-based page.
// Pages are never clamped: out-of-range pages simply yield empty slices.
func Offset(page, size int) int {
	if page <= 1 {
		return 0
	}
	return (page - 1) * size
}
