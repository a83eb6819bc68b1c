package models

import "time"

// Category 分类表
type Category struct {
	ID          uint      `gorm:"primarykey" json:"id"`                         // 主键
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`             // 唯一标识
	Name        string    `gorm:"type:varchar(120);not null;index" json:"name"` // 名称
	Description string    `gorm:"type:text" json:"description"`                 // 描述
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`           // 分类图片
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                      // 创建时间
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
