package shared

import (
	"errors"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/i18n"
	"github.com/storefront-next/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// keyedError 携带 i18n 文案键与参数的业务错误
type keyedError interface {
	error
	Key() string
	Args() []interface{}
}

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	RespondErrorWithMsg(c, code, i18n.T(i18n.ResolveLocale(c), key), err)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		if appErr.Internal() {
			RequestLog(c).Errorw("handler_error", appErr.LogFields()...)
		} else {
			RequestLog(c).Warnw("handler_rejected", appErr.LogFields()...)
		}
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondKeyedError 错误自带文案键时按其键与参数翻译，否则使用 fallbackKey。
func RespondKeyedError(c *gin.Context, code int, err error, fallbackKey string) {
	var keyed keyedError
	if errors.As(err, &keyed) {
		RespondErrorWithMsg(c, code, i18n.Sprintf(i18n.ResolveLocale(c), keyed.Key(), keyed.Args()...), nil)
		return
	}
	RespondError(c, code, fallbackKey, nil)
}
