package repository

import (
	"errors"

	"gorm.io/gorm"
)

// findOne 取第一条记录，未找到时返回 nil, nil
func findOne[T any](query *gorm.DB, conds ...interface{}) (*T, error) {
	var row T
	err := query.First(&row, conds...).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// applyPagination pageSize <= 0 时不分页
func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if query == nil || pageSize <= 0 {
		return query
	}
	if page < 1 {
		page = 1
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}
