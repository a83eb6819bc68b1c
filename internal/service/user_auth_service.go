package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/storefront-next/internal/cache"
	"github.com/storefront-next/internal/config"
	"github.com/storefront-next/internal/constants"
	"github.com/storefront-next/internal/logger"
	"github.com/storefront-next/internal/models"
	"github.com/storefront-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserAuthService 用户认证服务
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// UserJWTClaims 用户 JWT 声明
type UserJWTClaims struct {
	UserID       uint   `json:"user_id"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// AuthResult 登录/注册结果
type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// RegisterInput 注册输入
type RegisterInput struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

// GenerateUserJWT 生成用户 JWT Token
func (s *UserAuthService) GenerateUserJWT(user *models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(resolveUserJWTExpireHours(s.cfg.UserJWT)) * time.Hour)
	claims := UserJWTClaims{
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析用户 JWT Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*UserJWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Register 用户注册，成功后直接登录
func (s *UserAuthService) Register(input RegisterInput) (*AuthResult, error) {
	normalized, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if input.Password != input.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}

	exist, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if exist != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	fullName := strings.TrimSpace(input.FullName)
	if fullName == "" {
		fullName = resolveNameFromEmail(normalized)
	}
	user := &models.User{
		Email:        normalized,
		FullName:     fullName,
		PasswordHash: string(hashedPassword),
		Status:       constants.UserStatusActive,
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, wrapStoreError(err)
	}

	token, expiresAt, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, err
	}
	s.storeAuthState(user)
	logger.Infow("user_registered", "user_id", user.ID)
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// Login 用户登录
func (s *UserAuthService) Login(email, password string) (*AuthResult, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByEmail(normalized)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	if strings.ToLower(user.Status) != constants.UserStatusActive {
		return nil, ErrUserDisabled
	}

	token, expiresAt, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user.LastLoginAt = &now
	if err := s.userRepo.RecordLogin(user.ID, now); err != nil {
		return nil, wrapStoreError(err)
	}
	s.storeAuthState(user)
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// GetUser 获取当前用户
func (s *UserAuthService) GetUser(userID uint) (*models.User, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, wrapStoreError(err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserAuthService) storeAuthState(user *models.User) {
	if err := cache.SetUserAuthState(context.Background(), cache.BuildUserAuthState(user)); err != nil {
		logger.Warnw("user_auth_state_cache_write_failed", "user_id", user.ID, "error", err)
	}
}

func normalizeEmail(email string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(normalized); err != nil {
		return "", ErrInvalidEmail
	}
	return normalized, nil
}

func resolveUserJWTExpireHours(cfg config.JWTConfig) int {
	if cfg.ExpireHours <= 0 {
		return 24
	}
	return cfg.ExpireHours
}

func resolveNameFromEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) == 2 && strings.TrimSpace(parts[0]) != "" {
		return strings.TrimSpace(parts[0])
	}
	return email
}
