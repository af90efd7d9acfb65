package utils

import "math"

// PageInfo describes a 1-based page over a list. Requests outside
// [1, TotalPages] clamp to the nearest valid page, so paging past the end is
// a no-op rather than an empty result.
type PageInfo struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalRows  int `json:"total_rows"`
	TotalPages int `json:"total_pages"`
}

func ClampPage(totalRows, page, limit int) PageInfo {
	if limit < 1 {
		limit = 10
	}
	totalPages := int(math.Ceil(float64(totalRows) / float64(limit)))
	if page < 1 {
		page = 1
	}
	if totalPages == 0 {
		page = 1
	} else if page > totalPages {
		page = totalPages
	}
	return PageInfo{Page: page, Limit: limit, TotalRows: totalRows, TotalPages: totalPages}
}

// Bounds returns the half-open slice bounds [start, end) for the page.
func (p PageInfo) Bounds() (int, int) {
	start := (p.Page - 1) * p.Limit
	end := start + p.Limit
	if start > p.TotalRows {
		start = p.TotalRows
	}
	if end > p.TotalRows {
		end = p.TotalRows
	}
	return start, end
}

// Offset returns the SQL offset for the page.
func (p PageInfo) Offset() int {
	return (p.Page - 1) * p.Limit
}
