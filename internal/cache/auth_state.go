package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/models"
)

const (
	authStateKeyPrefix = "auth:user:"
	authStateCacheTTL  = 10 * time.Minute
)

// UserAuthState 会员鉴权所需的最小字段，避免每个请求回表
type UserAuthState struct {
	UserID       uint   `json:"user_id"`
	Status       string `json:"status"`
	TokenVersion uint64 `json:"token_version"`
	UpdatedAt    int64  `json:"updated_at"`
}

// BuildUserAuthState 从用户模型构建鉴权快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:       user.ID,
		Status:       user.Status,
		TokenVersion: user.TokenVersion,
		UpdatedAt:    time.Now().Unix(),
	}
}

// Active 账号是否可用
func (s *UserAuthState) Active() bool {
	return s != nil && strings.EqualFold(strings.TrimSpace(s.Status), constants.UserStatusActive)
}

// Accepts 令牌版本与当前版本一致才有效
func (s *UserAuthState) Accepts(tokenVersion uint64) bool {
	return s != nil && s.TokenVersion == tokenVersion
}

func userAuthStateKey(userID uint) string {
	return authStateKeyPrefix + strconv.FormatUint(uint64(userID), 10)
}

// GetUserAuthState 读取鉴权快照
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	var state UserAuthState
	hit, err := GetJSON(ctx, userAuthStateKey(userID), &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// SetUserAuthState 写入鉴权快照，登录与回表后调用
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}
