package utils

import "math"

// Pagination is the paginate block carried by list response envelopes.
type Pagination struct {
	Total       int64 `json:"total"`
	PerPage     int   `json:"perPage"`
	CurrentPage int   `json:"currentPage"`
	NextPage    *int  `json:"nextPage"`
	PrevPage    *int  `json:"prevPage"`
	LastPage    int   `json:"lastPage"`
}

// BuildPaginate computes the pagination envelope. lastPage is never below 1
// even for empty result sets.
func BuildPaginate(total int64, page, limit int) Pagination {
	lastPage := int(math.Ceil(float64(total) / float64(limit)))
	if lastPage < 1 {
		lastPage = 1
	}

	p := Pagination{
		Total:       total,
		PerPage:     limit,
		CurrentPage: page,
		LastPage:    lastPage,
	}
	if page < lastPage {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p
}

// PageQuery holds sanitized paging inputs: page defaults to 1 and limit to
// 10 when absent or non-positive.
type PageQuery struct {
	Page   int
	Limit  int
	Offset int
}

func NewPageQuery(page, limit int) PageQuery {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return PageQuery{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}
