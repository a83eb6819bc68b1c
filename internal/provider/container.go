package provider

import (
	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/queue"
	"github.com/storefront-next/internal/repository"
	"github.com/storefront-next/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo     repository.UserRepository
	CategoryRepo repository.CategoryRepository
	ProductRepo  repository.ProductRepository
	CartRepo     repository.CartRepository

	// Services
	PricingService  *service.PricingService
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	UserAuthService *service.UserAuthService
}

// NewContainer 初始化容器，使用全局数据库连接
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := NewContainerWithDB(cfg, models.DB)
	c.QueueClient = queueClient
	return c
}

// NewContainerWithDB 基于指定数据库连接装配仓储与服务，不触碰 redis 与队列
func NewContainerWithDB(cfg *config.Config, db *gorm.DB) *Container {
	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories(db)

	// 2. 初始化 Services
	c.initServices()

	return c
}

// RequestCatalogRefresh 推送商品快照刷新任务，队列未启用时返回 false
func (c *Container) RequestCatalogRefresh(reason string) (bool, error) {
	if c == nil || !c.QueueClient.Enabled() {
		return false, nil
	}
	if err := c.QueueClient.EnqueueCatalogRefresh(queue.CatalogRefreshPayload{Reason: reason}); err != nil {
		return true, err
	}
	return true, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
}

func (c *Container) initServices() {
	rules, err := c.Config.Pricing.Rules()
	if err != nil {
		logger.Warnw("provider_pricing_rules_invalid_use_default", "error", err)
		rules = config.DefaultPricingRules()
	}
	c.PricingService = service.NewPricingService(rules)
	c.CatalogService = service.NewCatalogService(c.CategoryRepo, c.ProductRepo, c.Config.Catalog.SnapshotTTLSeconds)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.PricingService)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
}
