package public

import (
	"time"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserAuthResponse 登录/注册响应
type UserAuthResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	result, err := h.UserAuthService.Register(service.RegisterInput{
		FullName:        req.FullName,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		respondUserRegisterError(c, err)
		return
	}
	response.Success(c, buildUserAuthResponse(result))
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	result, err := h.UserAuthService.Login(req.Email, req.Password)
	if err != nil {
		respondUserLoginError(c, err)
		return
	}
	response.Success(c, buildUserAuthResponse(result))
}

// GetCurrentUser 获取当前登录用户
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetUser(uid)
	if err != nil {
		respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
		}), response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, user)
}

func buildUserAuthResponse(result *service.AuthResult) UserAuthResponse {
	return UserAuthResponse{
		User:      result.User,
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.Format(time.RFC3339),
	}
}
