package models

import "time"

// Order 订单表
// 下单后不再变更：总额在下单时刻计算，状态只会写入 pending。
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                      // 主键
	SessionID       string    `gorm:"type:varchar(64);not null;index" json:"session_id"`         // 会话标识
	UserID          uint      `gorm:"not null;default:0" json:"user_id"`                         // 用户ID（预留，始终为 0）
	TotalAmount     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单总额
	Status          string    `gorm:"type:varchar(20);index;not null" json:"status"`             // 订单状态
	CustomerName    string    `gorm:"not null" json:"customer_name"`                             // 客户姓名
	CustomerEmail   string    `gorm:"not null" json:"customer_email"`                            // 客户邮箱
	ShippingAddress string    `gorm:"type:text;not null" json:"shipping_address"`                // 收货地址
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                   // 创建时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
