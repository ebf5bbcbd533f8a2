package service

// DefaultRowsPerPage is the page size a fresh pagination starts with.
const DefaultRowsPerPage = 5

// allowedRowsPerPage is the fixed set of page sizes the table offers.
var allowedRowsPerPage = []int64{5, 10, 25}

// Pagination tracks the zero-based page cursor of a server-paginated table.
// TotalCount is the server-reported row count; it stays 0 until the first
// page response returns, which makes every forward page change before then
// fail the guard. That conservative behavior is intended.
type Pagination struct {
	CurrentPage int64
	RowsPerPage int64
	TotalCount  int64
}

func NewPagination() Pagination {
	return Pagination{RowsPerPage: DefaultRowsPerPage}
}

// SetRowsPerPage switches the page size and rewinds to the first page.
// Values outside the allowed set are rejected.
func (p *Pagination) SetRowsPerPage(n int64) bool {
	allowed := false
	for _, v := range allowedRowsPerPage {
		if v == n {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}
	p.RowsPerPage = n
	p.CurrentPage = 0
	return true
}

// SetPage moves the cursor. Moving forward is refused when the last page the
// server reported data for has already been reached.
func (p *Pagination) SetPage(next int64) bool {
	if next < 0 {
		return false
	}
	if next > p.CurrentPage && p.RowsPerPage*(p.CurrentPage+1) >= p.TotalCount {
		return false
	}
	p.CurrentPage = next
	return true
}

// Limit is the page size sent to the server.
func (p Pagination) Limit() int64 {
	return p.RowsPerPage
}

// Skip is the row offset sent to the server.
func (p Pagination) Skip() int64 {
	return p.RowsPerPage * p.CurrentPage
}
