package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

const testUserHeader = "X-Test-User"

type testEnvelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

type publicTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func newTestConfig() *config.Config {
	return &config.Config{
		UserJWT: config.JWTConfig{SecretKey: "handler-test-secret-0123456789abcdef", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 6},
		},
	}
}

func setupPublicTestEnv(t *testing.T, prefix string) *publicTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", prefix, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.MigrateDB(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	h := New(provider.NewContainerWithDB(newTestConfig(), db))
	r := gin.New()
	api := r.Group("/api/v1")
	api.GET("/public/categories", h.GetCategories)
	api.GET("/public/products", h.GetProducts)
	api.GET("/public/products/featured", h.GetFeaturedProducts)
	api.GET("/public/products/:slug", h.GetProductBySlug)
	api.GET("/public/catalog", h.FilterCatalog)
	api.POST("/auth/register", h.UserRegister)
	api.POST("/auth/login", h.UserLogin)
	api.GET("/cart/count", stubOptionalAuth(), h.GetCartCount)

	authed := api.Group("", stubRequiredAuth())
	authed.GET("/me", h.GetCurrentUser)
	authed.GET("/cart", h.GetCart)
	authed.POST("/cart/items", h.AddCartItem)
	authed.PUT("/cart/items/:id", h.UpdateCartItem)
	authed.DELETE("/cart/items/:id", h.DeleteCartItem)

	return &publicTestEnv{db: db, router: r}
}

// stubRequiredAuth 以请求头模拟已登录用户，缺失时不写入 user_id
func stubRequiredAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(testUserHeader); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				c.Set(contextKeyUserID, uint(id))
			}
		}
		c.Next()
	}
}

func stubOptionalAuth() gin.HandlerFunc {
	return stubRequiredAuth()
}

func (env *publicTestEnv) do(t *testing.T, method, path string, userID uint, body interface{}) testEnvelope {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set(testUserHeader, strconv.FormatUint(uint64(userID), 10))
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("http status want 200 got %d", w.Code)
	}
	var resp testEnvelope
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v body=%s", err, w.Body.String())
	}
	return resp
}

func (env *publicTestEnv) seedCategory(t *testing.T, slug, name string) models.Category {
	t.Helper()
	category := models.Category{Slug: slug, Name: name}
	if err := env.db.Create(&category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}
	return category
}

func (env *publicTestEnv) seedProduct(t *testing.T, product models.Product) models.Product {
	t.Helper()
	if err := env.db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func decodeData(t *testing.T, resp testEnvelope, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(resp.Data, target); err != nil {
		t.Fatalf("decode data failed: %v raw=%s", err, string(resp.Data))
	}
}
