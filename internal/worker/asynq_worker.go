package worker

import (
	"context"

	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/provider"
	"github.com/storefront-next/internal/queue"

	"github.com/hibiken/asynq"
)

// catalogRefresher 快照刷新能力
type catalogRefresher interface {
	RefreshSnapshot(ctx context.Context) ([]models.Product, error)
}

// Consumer 异步任务消费者
type Consumer struct {
	catalog catalogRefresher
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	if c == nil || c.CatalogService == nil {
		return &Consumer{}
	}
	return &Consumer{catalog: c.CatalogService}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskCatalogRefresh, c.handleCatalogRefresh)
}

func (c *Consumer) handleCatalogRefresh(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_catalog_refresh_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseCatalogRefreshPayload(task)
	if err != nil {
		logger.Warnw("worker_catalog_refresh_unmarshal_failed", "error", err)
		return err
	}
	return c.refreshCatalog(ctx, payload.Reason)
}

func (c *Consumer) refreshCatalog(ctx context.Context, reason string) error {
	if c == nil || c.catalog == nil {
		logger.Warnw("worker_catalog_refresh_skip_service_nil", "reason", reason)
		return nil
	}
	products, err := c.catalog.RefreshSnapshot(ctx)
	if err != nil {
		logger.Warnw("worker_catalog_refresh_failed", "reason", reason, "error", err)
		return err
	}
	logger.Infow("worker_catalog_refreshed", "reason", reason, "product_count", len(products))
	return nil
}
