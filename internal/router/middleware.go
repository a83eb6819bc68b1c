package router

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/i18n"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/repository"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"
const userIDContextKey = "user_id"
const userEmailContextKey = "user_email"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Accept-Language",
			"Authorization",
			"Cache-Control",
			"X-Locale",
			"X-Requested-With",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.Z()
	}
	sugar := log.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if uid, ok := c.Get(userIDContextKey); ok {
			fields = fields.With("user_id", uid)
		}
		if len(c.Errors) > 0 {
			fields.Errorw("request", "errors", c.Errors.String())
			return
		}
		fields.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// UserJWTAuthMiddleware 用户 JWT 鉴权中间件，成功后写入 user_id
func UserJWTAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, errKey := authenticateUser(c, secretKey, userRepo)
		if errKey != "" {
			msg := i18n.T(i18n.ResolveLocale(c), errKey)
			response.Unauthorized(c, msg)
			c.Abort()
			return
		}
		c.Set(userIDContextKey, claims.UserID)
		c.Set(userEmailContextKey, claims.Email)
		c.Next()
	}
}

// OptionalUserAuthMiddleware 可选鉴权：有合法会话时写入 user_id，否则按游客继续
func OptionalUserAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(c.GetHeader("Authorization")) == "" {
			c.Next()
			return
		}
		claims, errKey := authenticateUser(c, secretKey, userRepo)
		if errKey != "" {
			logger.Debugw("optional_user_auth_ignored", "request_id", getRequestID(c), "reason", errKey)
			c.Next()
			return
		}
		c.Set(userIDContextKey, claims.UserID)
		c.Set(userEmailContextKey, claims.Email)
		c.Next()
	}
}

// authenticateUser 校验 Bearer 令牌，失败时返回 i18n 文案键
func authenticateUser(c *gin.Context, secretKey string, userRepo repository.UserRepository) (*service.UserJWTClaims, string) {
	if secretKey == "" {
		return nil, "error.jwt_secret_missing"
	}
	if userRepo == nil {
		return nil, "error.token_invalid"
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, "error.auth_header_missing"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") {
		return nil, "error.auth_header_invalid"
	}

	tokenString := parts[1]
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &service.UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return nil, "error.token_invalid"
	}

	ctx := c.Request.Context()
	state, hit, cacheErr := cache.GetUserAuthState(ctx, claims.UserID)
	if cacheErr != nil || !hit || state == nil {
		user, err := userRepo.GetByID(claims.UserID)
		if err != nil || user == nil {
			return nil, "error.token_invalid"
		}
		state = cache.BuildUserAuthState(user)
		_ = cache.SetUserAuthState(ctx, state)
	}
	if !state.Active() {
		return nil, "error.user_disabled"
	}
	if !state.Accepts(claims.TokenVersion) {
		return nil, "error.token_revoked"
	}
	return claims, ""
}
