package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Name          string         `gorm:"not null;index" json:"name"`                                // 商品名称（展示用，去重依据归一化键）
	Description   string         `gorm:"type:text" json:"description"`                              // 商品描述
	Category      string         `gorm:"not null;index" json:"category"`                            // 分类 slug
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`        // 现价
	OriginalPrice *Money         `gorm:"type:decimal(20,2)" json:"original_price,omitempty"`        // 原价（用于折扣展示）
	ImageURL      string         `gorm:"type:varchar(500)" json:"image_url"`                        // 主图
	Images        StringArray    `gorm:"type:json" json:"images"`                                   // 图片数组
	Rating        float64        `gorm:"not null;default:4" json:"rating"`                          // 评分
	ReviewCount   int            `gorm:"not null;default:0" json:"review_count"`                    // 评价数
	InStock       bool           `gorm:"not null;default:true;index" json:"in_stock"`               // 是否有货
	SortOrder     int            `gorm:"default:0;index" json:"sort_order"`                         // 排序权重
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// MarshalJSON 输出时附带派生的折扣百分比
func (p Product) MarshalJSON() ([]byte, error) {
	type productAlias Product
	return json.Marshal(struct {
		productAlias
		DiscountPercent int `json:"discount_percent"`
	}{
		productAlias:    productAlias(p),
		DiscountPercent: p.DiscountPercent(),
	})
}

// DiscountPercent 按原价与现价推导折扣百分比，无折扣返回 0
func (p Product) DiscountPercent() int {
	if p.OriginalPrice == nil {
		return 0
	}
	orig := p.OriginalPrice.Decimal
	if !orig.GreaterThan(p.Price.Decimal) || orig.IsZero() {
		return 0
	}
	ratio := orig.Sub(p.Price.Decimal).Div(orig).Mul(decimal.NewFromInt(100))
	return int(ratio.Round(0).IntPart())
}
