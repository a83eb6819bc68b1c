package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/storefront-next/internal/http/handlers/shared"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

var errQueryInvalid = errors.New("query invalid")

// GetCategories 获取分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// GetProducts 获取商品列表，条件之间为且关系
func (h *Handler) GetProducts(c *gin.Context) {
	query, err := parseProductQuery(c)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.catalog_filter_invalid", nil)
		return
	}
	products, err := h.CatalogService.ListProducts(query)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, products)
}

// GetFeaturedProducts 获取精选商品
func (h *Handler) GetFeaturedProducts(c *gin.Context) {
	products, err := h.CatalogService.ListFeatured()
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, products)
}

// GetProductBySlug 获取商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	detail, err := h.CatalogService.GetProductDetail(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, detail)
}

// FilterCatalog 对全量商品快照应用单一过滤条件
func (h *Handler) FilterCatalog(c *gin.Context) {
	filter, err := service.ParseProductFilter(c.Query("filter"), c.Query("value"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.catalog_filter_invalid", nil)
		return
	}
	result, err := h.CatalogService.Filter(c.Request.Context(), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, result)
}

func parseProductQuery(c *gin.Context) (service.ProductQuery, error) {
	var query service.ProductQuery
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return query, errQueryInvalid
		}
		query.CategoryID = uint(id)
	}
	if raw := strings.TrimSpace(c.Query("featured")); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return query, errQueryInvalid
		}
		query.Featured = featured
	}
	if raw := strings.TrimSpace(c.Query("max_price")); raw != "" {
		maxPrice, err := models.NewMoneyFromString(raw)
		if err != nil {
			return query, errQueryInvalid
		}
		query.MaxPrice = &maxPrice
	}
	if raw := strings.TrimSpace(c.Query("min_rating")); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil || minRating < 0 || minRating > 5 {
			return query, errQueryInvalid
		}
		query.MinRating = &minRating
	}
	query.Search = strings.TrimSpace(c.Query("search"))
	query.Page, query.PageSize = shared.ParsePagination(c)
	return query, nil
}
