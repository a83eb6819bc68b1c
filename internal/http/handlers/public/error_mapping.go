package public

import (
	"errors"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var sessionErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, key: "error.unauthorized"},
}

var cartWriteErrorRules = concatMappedHandlerErrors(sessionErrorRules, []mappedHandlerError{
	{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.cart_quantity_invalid"},
})

var cartAddErrorRules = concatMappedHandlerErrors(cartWriteErrorRules, []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
})

var cartUpdateErrorRules = concatMappedHandlerErrors(cartWriteErrorRules, []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
})

var userRegisterErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrPasswordMismatch, code: response.CodeBadRequest, key: "error.password_mismatch"},
	{target: service.ErrEmailExists, code: response.CodeConflict, key: "error.email_exists"},
}

var userLoginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.login_invalid"},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: "error.user_disabled"},
}

func respondCartAddError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartAddErrorRules, response.CodeInternal, "error.cart_add_failed")
}

func respondCartUpdateError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartUpdateErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondUserRegisterError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrWeakPassword) {
		respondKeyedError(c, response.CodeBadRequest, err, "error.password_weak")
		return
	}
	respondWithMappedError(c, err, userRegisterErrorRules, response.CodeInternal, "error.register_failed")
}

func respondUserLoginError(c *gin.Context, err error) {
	respondWithMappedError(c, err, userLoginErrorRules, response.CodeInternal, "error.login_failed")
}
