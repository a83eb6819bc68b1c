package service

import (
	"strconv"
	"strings"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"

	"github.com/shopspring/decimal"
)

// ProductFilter 首页商品过滤条件，同一时间只生效一种
type ProductFilter struct {
	Kind       string
	CategoryID uint
	MaxPrice   models.Money
	Ratings    []float64
	Search     string
}

// FilterResult 过滤结果，Empty 对应“未找到商品”状态
type FilterResult struct {
	Products []models.Product `json:"products"`
	Empty    bool             `json:"empty"`
}

// FilterNone 不过滤
func FilterNone() ProductFilter {
	return ProductFilter{Kind: constants.CatalogFilterNone}
}

// FilterCategory 按分类过滤
func FilterCategory(categoryID uint) ProductFilter {
	return ProductFilter{Kind: constants.CatalogFilterCategory, CategoryID: categoryID}
}

// FilterMaxPrice 按最高价格过滤（含边界）
func FilterMaxPrice(maxPrice models.Money) ProductFilter {
	return ProductFilter{Kind: constants.CatalogFilterPrice, MaxPrice: maxPrice}
}

// FilterRating 按勾选的最低评分过滤，多个勾选取最小值
func FilterRating(thresholds ...float64) ProductFilter {
	return ProductFilter{Kind: constants.CatalogFilterRating, Ratings: thresholds}
}

// FilterSearch 按名称或描述搜索
func FilterSearch(term string) ProductFilter {
	return ProductFilter{Kind: constants.CatalogFilterSearch, Search: term}
}

// ParseProductFilter 解析查询参数 filter/value
func ParseProductFilter(kind, value string) (ProductFilter, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", constants.CatalogFilterNone:
		return FilterNone(), nil
	case constants.CatalogFilterCategory:
		id, err := strconv.ParseUint(value, 10, 64)
		if err != nil || id == 0 {
			return ProductFilter{}, ErrInvalidInput
		}
		return FilterCategory(uint(id)), nil
	case constants.CatalogFilterPrice:
		amount, err := decimal.NewFromString(value)
		if err != nil || amount.IsNegative() {
			return ProductFilter{}, ErrInvalidInput
		}
		return FilterMaxPrice(models.NewMoneyFromDecimal(amount)), nil
	case constants.CatalogFilterRating:
		thresholds := make([]float64, 0, constants.StarSlots)
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			threshold, err := strconv.ParseFloat(part, 64)
			if err != nil || threshold < constants.RatingMin || threshold > constants.RatingMax {
				return ProductFilter{}, ErrInvalidInput
			}
			thresholds = append(thresholds, threshold)
		}
		return FilterRating(thresholds...), nil
	case constants.CatalogFilterSearch:
		return FilterSearch(value), nil
	default:
		return ProductFilter{}, ErrInvalidInput
	}
}

// FilterProducts 对全量商品列表应用单个过滤条件，不修改入参
func FilterProducts(all []models.Product, filter ProductFilter) FilterResult {
	var matched []models.Product
	switch filter.Kind {
	case constants.CatalogFilterCategory:
		matched = selectProducts(all, func(p models.Product) bool {
			return p.CategoryID == filter.CategoryID
		})
	case constants.CatalogFilterPrice:
		matched = selectProducts(all, func(p models.Product) bool {
			return p.Price.LessThanOrEqual(filter.MaxPrice.Decimal)
		})
	case constants.CatalogFilterRating:
		minRating, ok := minThreshold(filter.Ratings)
		if !ok {
			matched = copyProducts(all)
			break
		}
		matched = selectProducts(all, func(p models.Product) bool {
			return p.Rating >= minRating
		})
	case constants.CatalogFilterSearch:
		term := strings.ToLower(strings.TrimSpace(filter.Search))
		if term == "" {
			matched = copyProducts(all)
			break
		}
		matched = selectProducts(all, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term) ||
				strings.Contains(strings.ToLower(p.Description), term)
		})
	default:
		matched = copyProducts(all)
	}
	return newFilterResult(matched)
}

func newFilterResult(products []models.Product) FilterResult {
	if products == nil {
		products = []models.Product{}
	}
	return FilterResult{Products: products, Empty: len(products) == 0}
}

func selectProducts(all []models.Product, keep func(models.Product) bool) []models.Product {
	matched := make([]models.Product, 0, len(all))
	for _, product := range all {
		if keep(product) {
			matched = append(matched, product)
		}
	}
	return matched
}

func copyProducts(all []models.Product) []models.Product {
	return append(make([]models.Product, 0, len(all)), all...)
}

func minThreshold(thresholds []float64) (float64, bool) {
	if len(thresholds) == 0 {
		return 0, false
	}
	minValue := thresholds[0]
	for _, threshold := range thresholds[1:] {
		if threshold < minValue {
			minValue = threshold
		}
	}
	return minValue, true
}
