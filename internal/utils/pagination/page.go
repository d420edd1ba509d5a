package pagination

const (
	DefaultPage     = 1
	DefaultPageSize = 12
	MaxPageSize     = 200
)

// Meta describes the page returned to the client.
type Meta struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// Normalize clamps page and pageSize into their valid ranges.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return page, pageSize
}

// Offset returns the row offset of the first item on page.
func Offset(page, pageSize int) int {
	page, pageSize = Normalize(page, pageSize)
	return (page - 1) * pageSize
}

// NewMeta builds the pagination metadata for a result set.
func NewMeta(page, pageSize, total int) Meta {
	page, pageSize = Normalize(page, pageSize)
	return Meta{Page: page, PageSize: pageSize, Total: total}
}
