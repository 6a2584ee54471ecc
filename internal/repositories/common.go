package repositories

import "gorm.io/gorm"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Pagination - параметры постраничной выборки. Нулевое значение = без лимита.
type Pagination struct {
	Page     int
	PageSize int
}

func (p Pagination) apply(db *gorm.DB) *gorm.DB {
	if p.Page <= 0 {
		return db
	}
	size := p.PageSize
	if size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return db.Offset((p.Page - 1) * size).Limit(size)
}
