package models

import "time"

// OrderItem 订单项表
// Price 为下单时刻的价格快照，与商品现价解耦；
// 商品删除后 ProductID 置空，快照价与数量保留。
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`                     // 订单ID
	ProductID *uint     `gorm:"index" json:"product_id"`                            // 商品ID（商品删除后置空）
	Quantity  int       `gorm:"not null" json:"quantity"`                           // 数量
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价快照
	CreatedAt time.Time `gorm:"index" json:"created_at"`                            // 创建时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品（可能已删除）
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
