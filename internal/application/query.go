package application

import (
	"github.com/ahtasham/user-directory/internal/domain/repository"
	"github.com/ahtasham/user-directory/pkg/response"
)

// Defaults for the user list endpoint.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	DefaultSort  = "createdAt"
	DefaultOrder = "desc"
)

// ListParams is a parsed, validated list request. Handlers are responsible
// for rejecting malformed page/limit values before constructing one.
type ListParams struct {
	Page   int
	Limit  int
	Sort   string
	Order  string // "desc" sorts descending, anything else ascending
	Search string
}

// Query resolves the params into a store-level query specification.
func (p ListParams) Query() repository.ListQuery {
	return repository.ListQuery{
		Search:    p.Search,
		SortField: p.Sort,
		SortDesc:  p.Order == "desc",
		Skip:      int64(p.Page-1) * int64(p.Limit),
		Limit:     int64(p.Limit),
	}
}

// Pagination computes the page metadata for a total match count.
func (p ListParams) Pagination(total int64) response.Pagination {
	pages := 0
	if p.Limit > 0 {
		pages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return response.Pagination{
		CurrentPage:  p.Page,
		TotalPages:   pages,
		TotalItems:   total,
		ItemsPerPage: p.Limit,
	}
}
