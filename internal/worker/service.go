package worker

import (
	"context"
	"errors"
	"time"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/queue"

	"github.com/hibiken/asynq"
)

// Service 异步队列服务
type Service struct {
	name            string
	server          *asynq.Server
	mux             *asynq.ServeMux
	consumer        *Consumer
	refreshInterval time.Duration
}

// NewService 创建异步队列服务
func NewService(cfg *config.QueueConfig, catalogCfg config.CatalogConfig, consumer *Consumer) (*Service, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, errors.New("queue disabled")
	}
	if consumer == nil {
		return nil, errors.New("consumer is nil")
	}
	opt, serverCfg := queue.BuildServerConfig(cfg)
	server := asynq.NewServer(opt, serverCfg)
	mux := asynq.NewServeMux()
	consumer.Register(mux)
	return &Service{
		name:            "worker",
		server:          server,
		mux:             mux,
		consumer:        consumer,
		refreshInterval: resolveRefreshInterval(catalogCfg.RefreshIntervalSeconds),
	}, nil
}

// Name 服务名称
func (s *Service) Name() string {
	if s == nil || s.name == "" {
		return "worker"
	}
	return s.name
}

// Start 启动服务
func (s *Service) Start(ctx context.Context) error {
	if s == nil || s.server == nil || s.mux == nil {
		return errors.New("worker not initialized")
	}
	if s.consumer != nil && s.consumer.catalog != nil {
		go s.runCatalogRefreshLoop(ctx)
	}
	return s.server.Run(s.mux)
}

// Stop 停止服务
func (s *Service) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	_ = ctx
	s.server.Shutdown()
	return nil
}

func (s *Service) runCatalogRefreshLoop(ctx context.Context) {
	if s == nil || s.consumer == nil {
		return
	}
	runCatalogRefreshLoop(ctx, s.refreshInterval, func() {
		_ = s.consumer.refreshCatalog(ctx, "periodic")
	})
}

// runCatalogRefreshLoop 立即执行一次，之后按间隔执行直到 ctx 结束
func runCatalogRefreshLoop(ctx context.Context, interval time.Duration, runOnce func()) {
	if runOnce == nil {
		return
	}
	if interval <= 0 {
		interval = resolveRefreshInterval(0)
	}
	logger.Infow("worker_catalog_refresh_loop_started", "interval", interval.String())
	runOnce()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}

func resolveRefreshInterval(seconds int) time.Duration {
	if seconds <= 0 {
		seconds = constants.CatalogRefreshEvery
	}
	return time.Duration(seconds) * time.Second
}
