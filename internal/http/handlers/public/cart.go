package public

import (
	"strconv"
	"strings"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// UpdateCartItemRequest 修改购物车数量请求
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车（含金额汇总）
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	view, err := h.CartService.View(uid)
	if err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, view)
}

// AddCartItem 加入购物车，已存在时数量累加
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	quantity := constants.CartDefaultQuantityDelta
	if req.Quantity != nil {
		quantity = *req.Quantity
	}
	item, err := h.CartService.AddToCart(uid, req.ProductID, quantity)
	if err != nil {
		respondCartAddError(c, err)
		return
	}
	response.Success(c, gin.H{
		"item":       item,
		"cart_count": h.CartService.CartCount(uid),
	})
}

// UpdateCartItem 直接设置购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseCartItemID(c)
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.CartService.SetQuantity(uid, itemID, *req.Quantity)
	if err != nil {
		respondCartUpdateError(c, err)
		return
	}
	response.Success(c, gin.H{
		"item":       item,
		"cart_count": h.CartService.CartCount(uid),
	})
}

// DeleteCartItem 删除购物车项，不存在时同样返回成功
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	itemID, ok := parseCartItemID(c)
	if !ok {
		return
	}
	if err := h.CartService.RemoveItem(uid, itemID); err != nil {
		respondWithMappedError(c, err, sessionErrorRules, response.CodeInternal, "error.cart_remove_failed")
		return
	}
	response.Success(c, gin.H{
		"deleted":    true,
		"cart_count": h.CartService.CartCount(uid),
	})
}

// GetCartCount 购物车角标数量，未登录返回 0
func (h *Handler) GetCartCount(c *gin.Context) {
	response.Success(c, gin.H{"count": h.CartService.CartCount(optionalUserID(c))})
}

func parseCartItemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.cart_item_not_found", nil)
		return 0, false
	}
	return uint(id), true
}
