package response

import "fmt"

// AppError 携带业务码与已翻译文案的错误，Err 保留原始原因
type AppError struct {
	Code    int
	Message string
	Err     error
}

// WrapError 包装错误
func WrapError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Internal 是否为服务端故障（5xx 业务码）
func (e *AppError) Internal() bool {
	return e != nil && e.Code >= CodeInternal
}

// LogFields 结构化日志字段
func (e *AppError) LogFields() []interface{} {
	if e == nil {
		return nil
	}
	fields := []interface{}{"code", e.Code, "message", e.Message}
	if e.Err != nil {
		fields = append(fields, "error", e.Err)
	}
	return fields
}
