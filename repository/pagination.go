package repository

// Pagination defaults match the HTTP surface: page and limit query params
// fall back to 1/10, invalid values are normalized instead of rejected.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Page describes a one-based page request.
type Page struct {
	Number int
	Limit  int
}

// NewPage normalizes a raw page/limit pair.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Page{Number: number, Limit: limit}
}

// Offset returns the row offset for this page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// TotalPages computes the page count for a total row count.
func (p Page) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// List is a single page of records plus the pagination totals the API
// exposes alongside it.
type List[T any] struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
	Items      []T `json:"items"`
}

func newList[T any](page Page, total int, items []T) *List[T] {
	if items == nil {
		items = []T{}
	}
	return &List[T]{
		Page:       page.Number,
		TotalPages: page.TotalPages(total),
		Total:      total,
		Items:      items,
	}
}
