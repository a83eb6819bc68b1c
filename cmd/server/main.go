package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/storefront-next/internal/app"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset     = "\033[0m"
	ansiBold      = "\033[1m"
	ansiDim       = "\033[2m"
	ansiGreen     = "\033[32m"
	ansiBlue      = "\033[34m"
	ansiCyan      = "\033[36m"
	ansiBrightMag = "\033[95m"
)

var errWeakSecretInRelease = errors.New("user_jwt.secret 过弱或仍为默认值，release 模式拒绝启动")

func main() {
	rawMode := flag.String("mode", app.ModeAll, "启动模式: all (默认), api, worker")
	flag.Parse()
	mode, err := app.ParseMode(*rawMode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	printStartupBanner(mode)

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := verifyUserJWTSecret(cfg.Server.Mode, cfg.UserJWT.SecretKey); err != nil {
		stdLog.Fatalf("%v", err)
	}

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("数据库初始化失败: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("数据库迁移失败: %v", err)
	}

	gin.SetMode(resolveGinMode(cfg.Server.Mode))

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("服务运行失败: %v", err)
	}
}

// verifyUserJWTSecret release 模式拒绝弱密钥，其他模式仅告警
func verifyUserJWTSecret(serverMode, secret string) error {
	if !isWeakSecret(secret) {
		return nil
	}
	if serverMode == "release" {
		return errWeakSecretInRelease
	}
	logger.Warnw("user_jwt_secret_weak", "server_mode", serverMode)
	return nil
}

func resolveGinMode(serverMode string) string {
	switch strings.ToLower(strings.TrimSpace(serverMode)) {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

func printStartupBanner(mode string) {
	fmt.Println(ansiBrightMag + "╔══════════════════════════════════════════════════════╗" + ansiReset)
	fmt.Println(ansiBrightMag + "║              Storefront-Next API 启动中              ║" + ansiReset)
	fmt.Println(ansiBrightMag + "╚══════════════════════════════════════════════════════╝" + ansiReset)
	fmt.Println(ansiCyan + ansiBold + "catalog · cart · pricing" + ansiReset)
	fmt.Println(ansiGreen + "• API:     /api/v1/public, /api/v1/auth, /api/v1/cart" + ansiReset)
	fmt.Println(ansiBlue + "• Mode:    " + mode + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}

var weakSecretMarkers = []string{"change-me", "change-in-production", "your-secret-key"}

func isWeakSecret(secret string) bool {
	if len(secret) < 32 {
		return true
	}
	normalized := strings.ToLower(secret)
	for _, marker := range weakSecretMarkers {
		if strings.Contains(normalized, marker) {
			return true
		}
	}
	return false
}
