package models

import "time"

// Product 商品表（前台只读，仅后端维护）
type Product struct {
	ID            uint        `gorm:"primarykey" json:"id"`                               // 主键
	CategoryID    uint        `gorm:"not null;index" json:"category_id"`                  // 分类ID
	Slug          string      `gorm:"uniqueIndex;not null" json:"slug"`                   // 唯一标识（URL）
	Name          string      `gorm:"type:varchar(255);not null" json:"name"`             // 名称
	Description   string      `gorm:"type:text" json:"description"`                       // 描述
	Price         Money       `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 售价
	OriginalPrice NullMoney   `gorm:"type:decimal(20,2)" json:"original_price"`           // 原价（可选，用于折扣展示）
	Stock         int         `gorm:"not null;default:0" json:"stock"`                    // 库存
	Rating        float64     `gorm:"not null;default:0" json:"rating"`                   // 评分 0.0-5.0
	ReviewCount   int         `gorm:"not null;default:0" json:"review_count"`             // 评价数
	Features      StringArray `gorm:"type:json" json:"features"`                          // 卖点列表
	ImageURL      string      `gorm:"type:varchar(500)" json:"image_url"`                 // 主图
	IsFeatured    bool        `gorm:"not null;default:false;index" json:"is_featured"`    // 是否精选
	CreatedAt     time.Time   `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt     time.Time   `json:"updated_at"`                                         // 更新时间

	// 关联
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// InStock 是否有货
func (p *Product) InStock() bool {
	return p != nil && p.Stock > 0
}
