// Package pagination implements the page-window arithmetic shared by every
// listing operation, including the approximate total-count heuristic the
// admin API exposes. The store does not return exact counts cheaply, so the
// total is estimated from a single page-sized scan.
package pagination

// Defaults used when a listing request does not specify a window.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Params is a validated page window: Page >= 1, 1 <= PageSize <= MaxPageSize.
type Params struct {
	Page     int
	PageSize int
}

// Offset returns the scan offset for the window.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// EstimateTotal estimates the total record count from one page-sized scan.
// When the raw scan came back short, this is the last page and the count is
// exact for the filtered window. When the scan filled the page, at least one
// more page exists and the estimate deliberately over-signals by one record.
// Existing API clients depend on this exact arithmetic.
func EstimateTotal(p Params, rawCount, matchedCount int) int {
	if rawCount == p.PageSize {
		return p.Page*p.PageSize + 1
	}
	return (p.Page-1)*p.PageSize + matchedCount
}

// TotalPages returns ceil(total/pageSize), or 0 for an empty listing.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

// Response is the paginated envelope the admin API returns for listings.
type Response struct {
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
	Data       interface{} `json:"data"`
}

// NewResponse assembles the listing envelope for one page of results.
func NewResponse(p Params, total int, data interface{}) Response {
	return Response{
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: TotalPages(total, p.PageSize),
		Data:       data,
	}
}
