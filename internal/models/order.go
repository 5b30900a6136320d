package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // 订单编号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                              // 用户ID
	DeliveryAddress string         `gorm:"type:text;not null" json:"delivery_address"`                 // 收货地址快照
	PaymentMethod   string         `gorm:"type:varchar(20);not null" json:"payment_method"`            // 支付方式标签
	SubtotalAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"`      // 商品小计
	TaxAmount       Money          `gorm:"type:decimal(20,2);not null;default:0" json:"tax"`           // 税费
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // 实付金额
	PaymentStatus   string         `gorm:"index;not null;default:'pending'" json:"payment_status"`     // 支付状态
	ClientIP        string         `gorm:"type:varchar(64)" json:"client_ip,omitempty"`                // 下单客户端IP
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项快照
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`   // 下单用户
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
