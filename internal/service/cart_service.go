package service

import (
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"
)

// CartItemView 购物车项详情（用于响应）
type CartItemView struct {
	ID           uint            `json:"id"`
	ProductID    uint            `json:"product_id"`
	Quantity     int             `json:"quantity"`
	UnitPrice    models.Money    `json:"unit_price"`
	LineTotal    models.Money    `json:"line_total"`
	CanIncrement bool            `json:"can_increment"`
	CanDecrement bool            `json:"can_decrement"`
	Product      *models.Product `json:"product"`
}

// CartView 购物车页面数据
type CartView struct {
	Items   []CartItemView `json:"items"`
	Summary CartSummary    `json:"summary"`
	Empty   bool           `json:"empty"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	pricing     *PricingService
	now         func() time.Time
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, pricing *PricingService) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		pricing:     pricing,
		now:         time.Now,
	}
}

// AddToCart 加入购物车：已存在则数量累加，否则新建
func (s *CartService) AddToCart(userID, productID uint, quantityDelta int) (*models.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if productID == 0 || quantityDelta < constants.CartMinQuantity {
		return nil, ErrInvalidInput
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if product == nil {
		return nil, ErrNotFound
	}

	existing, err := s.cartRepo.FindByUserAndProduct(userID, productID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if existing != nil {
		if err := s.cartRepo.UpdateQuantity(existing, existing.Quantity+quantityDelta, s.now()); err != nil {
			return nil, wrapStoreError(err)
		}
		logger.Debugw("cart_item_merged",
			"user_id", userID,
			"product_id", productID,
			"quantity", existing.Quantity,
		)
		return existing, nil
	}

	now := s.now()
	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantityDelta,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, wrapStoreError(err)
	}
	logger.Debugw("cart_item_created",
		"user_id", userID,
		"product_id", productID,
		"quantity", item.Quantity,
	)
	return item, nil
}

// SetQuantity 覆盖购物车项数量，不做库存校验
func (s *CartService) SetQuantity(userID, cartItemID uint, newQuantity int) (*models.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if newQuantity < constants.CartMinQuantity {
		return nil, ErrInvalidInput
	}

	item, err := s.cartRepo.GetByID(cartItemID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if item == nil || item.UserID != userID {
		return nil, ErrNotFound
	}
	if err := s.cartRepo.UpdateQuantity(item, newQuantity, s.now()); err != nil {
		return nil, wrapStoreError(err)
	}
	return item, nil
}

// RemoveItem 删除购物车项，记录不存在视为成功
func (s *CartService) RemoveItem(userID, cartItemID uint) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if err := s.cartRepo.DeleteByUserAndID(userID, cartItemID); err != nil {
		return wrapStoreError(err)
	}
	return nil
}

// CartCount 购物车商品总件数，未登录或查询失败时返回 0
func (s *CartService) CartCount(userID uint) int {
	if userID == 0 {
		return 0
	}
	total, err := s.cartRepo.SumQuantityByUser(userID)
	if err != nil {
		logger.Warnw("cart_count_failed", "user_id", userID, "error", err)
		return 0
	}
	return total
}

// ListItems 获取购物车项及加减按钮状态
func (s *CartService) ListItems(userID uint) ([]CartItemView, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	views := make([]CartItemView, 0, len(items))
	for _, item := range items {
		if item.Product == nil {
			logger.Warnw("cart_item_product_missing",
				"user_id", userID,
				"cart_item_id", item.ID,
				"product_id", item.ProductID,
			)
			continue
		}
		views = append(views, CartItemView{
			ID:           item.ID,
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			UnitPrice:    item.Product.Price,
			LineTotal:    item.Product.Price.Times(item.Quantity),
			CanIncrement: item.Quantity < item.Product.Stock,
			CanDecrement: item.Quantity > constants.CartMinQuantity,
			Product:      item.Product,
		})
	}
	return views, nil
}

// View 购物车页面：明细 + 金额汇总
func (s *CartService) View(userID uint) (*CartView, error) {
	items, err := s.ListItems(userID)
	if err != nil {
		return nil, err
	}
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, CartLine{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}
	return &CartView{
		Items:   items,
		Summary: s.pricing.Summarize(lines),
		Empty:   len(items) == 0,
	}, nil
}
