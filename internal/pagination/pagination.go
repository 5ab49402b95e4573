package pagination

import (
	"gorm.io/gorm"
)

// PageRequest holds optional pagination parameters parsed from query strings.
// The zero value means "no paging": the full list is returned.
type PageRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=500"`
}

// Enabled reports whether the caller asked for a single page.
func (p PageRequest) Enabled() bool {
	return p.PageSize > 0
}

// Defaults fills in the first page when only page_size was provided.
func (p *PageRequest) Defaults() {
	if p.Enabled() && p.Page == 0 {
		p.Page = 1
	}
}

// Offset returns the SQL OFFSET for the current page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given
// page request, or leaves the query untouched when paging is disabled.
func Paginate(req PageRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !req.Enabled() {
			return db
		}
		return db.Offset(req.Offset()).Limit(req.PageSize)
	}
}
