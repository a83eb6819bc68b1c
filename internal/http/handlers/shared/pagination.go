package shared

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// ParsePagination 读取 page/page_size 查询参数，未传 page_size 时返回 0 表示不分页。
func ParsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	pageSize, _ := strconv.Atoi(strings.TrimSpace(c.Query("page_size")))
	return NormalizePagination(page, pageSize)
}

// NormalizePagination 归一化分页参数。
func NormalizePagination(page, pageSize int) (int, int) {
	if pageSize <= 0 {
		return 0, 0
	}
	if page < 1 {
		page = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize
}
