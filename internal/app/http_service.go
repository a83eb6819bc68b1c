package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/storefront-next/internal/config"
)

const (
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 30 * time.Second
)

// HTTPService 以 http.Server 承载 gin 路由
type HTTPService struct {
	server *http.Server
}

// NewHTTPService 按 server 配置创建 HTTP 服务，超时未配置时取默认值
func NewHTTPService(cfg config.ServerConfig, handler http.Handler) *HTTPService {
	readTimeout := secondsOr(cfg.ReadTimeoutSeconds, defaultReadTimeout)
	return &HTTPService{
		server: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadHeaderTimeout: readTimeout,
			ReadTimeout:       readTimeout,
			WriteTimeout:      secondsOr(cfg.WriteTimeoutSeconds, defaultWriteTimeout),
		},
	}
}

func (s *HTTPService) Name() string {
	return "http"
}

// Start 阻塞监听，正常关闭时返回 nil
func (s *HTTPService) Start(context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop 等待进行中的请求结束
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func secondsOr(seconds int, fallback time.Duration) time.Duration {
	if seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
