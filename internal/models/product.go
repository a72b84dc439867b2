package models

import "time"

// Product 商品表
type Product struct {
	ID          uint      `gorm:"primarykey" json:"id"`                          // 主键
	CategoryID  *uint     `gorm:"index" json:"category_id"`                      // 分类ID（分类删除后置空）
	Name        string    `gorm:"not null" json:"name"`                          // 商品名称
	Description string    `gorm:"type:text" json:"description"`                  // 商品描述
	Price       Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价
	ImageURL    string    `gorm:"type:varchar(500)" json:"image_url"`            // 商品图片
	Stock       int       `gorm:"not null;default:0" json:"stock"`               // 库存（仅展示，系统不扣减）
	CreatedAt   time.Time `gorm:"index" json:"created_at"`                       // 创建时间

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 所属分类
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
