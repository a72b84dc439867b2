package models

import "time"

// CartItem 购物车项
// 同一会话同一商品只保留一行，(session_id, product_id) 唯一索引
// 支撑 UpsertAdd 的原子累加。UserID 预留给登录用户，当前始终为 0。
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                                   // 主键
	SessionID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_session_product" json:"session_id"` // 会话标识
	UserID    uint      `gorm:"not null;default:0" json:"user_id"`                                      // 用户ID（预留）
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_session_product" json:"product_id"`        // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                               // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                                // 创建时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
