package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money 统一金额类型（保留 2 位小数）
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal 从 decimal 创建金额
func NewMoneyFromDecimal(amount decimal.Decimal) Money {
	return Money{Decimal: amount.Round(2)}
}

// NewMoneyFromString 从字符串创建金额，解析失败返回错误
func NewMoneyFromString(raw string) (Money, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Money{}, err
	}
	return NewMoneyFromDecimal(d), nil
}

// RequireMoney 从字符串创建金额，解析失败直接 panic（仅用于常量/种子数据）
func RequireMoney(raw string) Money {
	return NewMoneyFromDecimal(decimal.RequireFromString(raw))
}

// NullMoney 可空金额（用于原价等可选字段）
type NullMoney struct {
	Money Money
	Valid bool
}

// NewNullMoney 创建有效的可空金额
func NewNullMoney(m Money) NullMoney {
	return NullMoney{Money: m, Valid: true}
}

// Value 用于数据库写入，无效时写入 NULL
func (n NullMoney) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Money.Value()
}

// Scan 用于数据库读取
func (n *NullMoney) Scan(value interface{}) error {
	if value == nil {
		n.Money = Money{}
		n.Valid = false
		return nil
	}
	if err := n.Money.Scan(value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON 无效时输出 null
func (n NullMoney) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Money.MarshalJSON()
}

// UnmarshalJSON 解析可空金额
func (n *NullMoney) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		n.Money = Money{}
		n.Valid = false
		return nil
	}
	if err := n.Money.UnmarshalJSON(b); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

// Times 金额乘以数量
func (m Money) Times(quantity int) Money {
	return NewMoneyFromDecimal(m.Decimal.Mul(decimal.NewFromInt(int64(quantity))))
}

// MarshalJSON 统一输出 2 位小数的字符串
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON 解析金额（字符串或数字）
func (m *Money) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return err
		}
		m.Decimal = d.Round(2)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	m.Decimal = decimal.NewFromFloat(f).Round(2)
	return nil
}

// Value 用于数据库写入
func (m Money) Value() (driver.Value, error) {
	return m.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (m *Money) Scan(value interface{}) error {
	if err := m.Decimal.Scan(value); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

// String 返回 2 位小数格式
func (m Money) String() string {
	return m.Decimal.Round(2).StringFixed(2)
}
