package repository

import "github.com/storefront-next/internal/models"

// ProductListFilter 查询商品列表的过滤条件，各条件之间为 AND 关系
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	FeaturedOnly bool
	MaxPrice     *models.Money
	MinRating    *float64
	Search       string
	WithCategory bool
}
