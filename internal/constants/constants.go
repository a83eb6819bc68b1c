package constants

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 购物车数量常量
const (
	CartDefaultQuantityDelta = 1
	CartMinQuantity          = 1
)

// 商品评分常量
const (
	RatingMin       = 0.0
	RatingMax       = 5.0
	StarSlots       = 5
	HalfStarCeiling = 0.5
)

// 目录过滤类型常量
const (
	CatalogFilterNone     = "none"
	CatalogFilterCategory = "category"
	CatalogFilterPrice    = "price"
	CatalogFilterRating   = "rating"
	CatalogFilterSearch   = "search"
)

// 订单金额默认值（字符串形式，交由 decimal 解析）
const (
	PricingFreeShippingThresholdDefault = "50.00"
	PricingShippingFeeDefault           = "5.99"
	PricingTaxRateDefault               = "0.07"
)

// 队列常量
const (
	QueueDefault        = "default"
	TaskCatalogRefresh  = "catalog:refresh"
	CatalogRefreshEvery = 300
)

// 缓存默认配置常量
const (
	RedisPrefixDefault       = "sf"
	CatalogSnapshotCacheKey  = "catalog:products:all"
	CatalogSnapshotTTLSecond = 600
)

// 密码策略默认值
const (
	PasswordMinLengthDefault = 6
)
