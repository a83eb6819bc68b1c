package public

import (
	"github.com/storefront-next/internal/provider"
	"github.com/storefront-next/internal/service"
)

// Handler 店铺前台接口：目录浏览、购物车与会员登录
type Handler struct {
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	UserAuthService *service.UserAuthService
}

// New 从容器中取出前台所需的服务
func New(c *provider.Container) *Handler {
	if c == nil {
		return &Handler{}
	}
	return &Handler{
		CatalogService:  c.CatalogService,
		CartService:     c.CartService,
		UserAuthService: c.UserAuthService,
	}
}
