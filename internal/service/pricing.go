package service

import (
	"math"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"

	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	halfUnit = decimal.New(5, -1)
)

// CartLine 参与金额汇总的购物车行
type CartLine struct {
	UnitPrice models.Money
	Quantity  int
}

// CartSummary 购物车金额汇总（每次实时计算，不落库）
type CartSummary struct {
	ItemCount    int          `json:"item_count"`
	Subtotal     models.Money `json:"subtotal"`
	Shipping     models.Money `json:"shipping"`
	Tax          models.Money `json:"tax"`
	Total        models.Money `json:"total"`
	FreeShipping bool         `json:"free_shipping"`
}

// StarRating 评分星级展示
type StarRating struct {
	Full  int `json:"full"`
	Half  int `json:"half"`
	Empty int `json:"empty"`
}

// PricingService 金额计算服务
type PricingService struct {
	rules config.PricingRules
}

// NewPricingService 创建金额计算服务
func NewPricingService(rules config.PricingRules) *PricingService {
	return &PricingService{rules: rules}
}

// Rules 当前生效的金额规则
func (s *PricingService) Rules() config.PricingRules {
	return s.rules
}

// Summarize 计算小计、运费、税费与合计
// 小计严格大于免运费门槛时运费为 0；税费按分四舍五入后再计入合计
func (s *PricingService) Summarize(lines []CartLine) CartSummary {
	subtotal := decimal.Zero
	itemCount := 0
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(line.Quantity))))
		itemCount += line.Quantity
	}

	freeShipping := subtotal.GreaterThan(s.rules.FreeShippingThreshold)
	shipping := s.rules.ShippingFee
	if freeShipping {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(s.rules.TaxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return CartSummary{
		ItemCount:    itemCount,
		Subtotal:     models.NewMoneyFromDecimal(subtotal),
		Shipping:     models.NewMoneyFromDecimal(shipping),
		Tax:          models.NewMoneyFromDecimal(tax),
		Total:        models.NewMoneyFromDecimal(total),
		FreeShipping: freeShipping,
	}
}

// DiscountPercent 计算折扣百分比 round((1 - price/original) * 100)
// 原价为空时 ok=false；原价 <= 0 返回 ErrInvalidPriceData
func DiscountPercent(price models.Money, original models.NullMoney) (int, bool, error) {
	if !original.Valid {
		return 0, false, nil
	}
	if !original.Money.IsPositive() {
		return 0, false, ErrInvalidPriceData
	}
	ratio := price.Decimal.Div(original.Money.Decimal)
	// 半数向正无穷取整，价格高于原价时 -2.5 得到 -2
	percent := decimal.NewFromInt(1).Sub(ratio).Mul(hundred).Add(halfUnit).Floor()
	return int(percent.IntPart()), true, nil
}

// RenderStars 将评分转换为 5 个星位：整数部分为满星，小数部分 >= 0.5 为半星
func RenderStars(rating float64) StarRating {
	if math.IsNaN(rating) || rating < constants.RatingMin {
		rating = constants.RatingMin
	}
	if rating > constants.RatingMax {
		rating = constants.RatingMax
	}
	full := int(math.Floor(rating))
	half := 0
	if rating-float64(full) >= constants.HalfStarCeiling {
		half = 1
	}
	return StarRating{
		Full:  full,
		Half:  half,
		Empty: constants.StarSlots - full - half,
	}
}
