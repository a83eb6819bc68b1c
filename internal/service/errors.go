package service

import (
	"errors"
	"fmt"
)

// 通用错误
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNotFound         = errors.New("not found")
	ErrStore            = errors.New("store failure")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidPriceData = errors.New("invalid price data")
)

// 认证错误
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrWeakPassword       = errors.New("password does not satisfy policy")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
)

// wrapStoreError 将存储层错误包装为 ErrStore，同时保留原始错误链
func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}
