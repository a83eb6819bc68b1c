package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构；HTTP 状态码恒为 200，结果以 status_code 区分
type Response struct {
	StatusCode int         `json:"status_code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data"`
}

func write(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(http.StatusOK, Response{StatusCode: code, Msg: msg, Data: data})
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	write(c, CodeOK, "success", data)
}

// Error 错误响应，data 只携带 request_id（若有）
func Error(c *gin.Context, code int, msg string) {
	write(c, code, msg, requestIDData(c))
}

// Unauthorized 401
func Unauthorized(c *gin.Context, msg string) {
	Error(c, CodeUnauthorized, msg)
}

// TooManyRequests 429
func TooManyRequests(c *gin.Context, msg string) {
	Error(c, CodeTooManyRequests, msg)
}

func requestIDData(c *gin.Context) interface{} {
	if c == nil {
		return nil
	}
	if id := c.GetString("request_id"); id != "" {
		return gin.H{"request_id": id}
	}
	return nil
}
