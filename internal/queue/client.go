package queue

import (
	"context"
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"

	"github.com/hibiken/asynq"
)

const (
	// DefaultQueue 默认队列名称
	DefaultQueue = constants.QueueDefault

	catalogRefreshUniqueWindow = 30 * time.Second
)

// Client 队列客户端封装
type Client struct {
	client       *asynq.Client
	enabled      bool
	defaultQueue string
}

// NewClient 创建队列客户端，未启用时返回空操作客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{enabled: false, defaultQueue: DefaultQueue}, nil
	}
	client := asynq.NewClient(buildRedisOpt(cfg))
	return &Client{
		client:       client,
		enabled:      true,
		defaultQueue: DefaultQueue,
	}, nil
}

// Enabled 判断是否启用
func (c *Client) Enabled() bool {
	return c != nil && c.enabled && c.client != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueCatalogRefresh 推送商品快照刷新任务，短时间内重复推送会被去重
func (c *Client) EnqueueCatalogRefresh(payload CatalogRefreshPayload, opts ...asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := NewCatalogRefreshTask(payload)
	if err != nil {
		return err
	}
	options := append([]asynq.Option{
		asynq.Queue(c.defaultQueue),
		asynq.Unique(catalogRefreshUniqueWindow),
		asynq.MaxRetry(0),
	}, opts...)
	_, err = c.client.Enqueue(task, options...)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	return err
}

// BuildServerConfig asynq 服务配置，日志与任务失败统一走 zap
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	serverCfg := asynq.Config{
		Concurrency:  10,
		Queues:       map[string]int{DefaultQueue: 1},
		Logger:       logger.S(),
		ErrorHandler: asynq.ErrorHandlerFunc(logTaskFailure),
	}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			serverCfg.Concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			serverCfg.Queues = cfg.Queues
		}
	}
	return buildRedisOpt(cfg), serverCfg
}

func logTaskFailure(_ context.Context, task *asynq.Task, err error) {
	taskType := ""
	if task != nil {
		taskType = task.Type()
	}
	logger.Warnw("queue_task_failed", "task_type", taskType, "error", err)
}

func buildRedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	host, port := "127.0.0.1", 6379
	opt := asynq.RedisClientOpt{}
	if cfg != nil {
		if trimmed := strings.TrimSpace(cfg.Host); trimmed != "" {
			host = trimmed
		}
		if cfg.Port > 0 {
			port = cfg.Port
		}
		opt.Password = cfg.Password
		opt.DB = cfg.DB
	}
	opt.Addr = net.JoinHostPort(host, strconv.Itoa(port))
	return opt
}
