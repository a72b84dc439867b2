package main

import (
	"fmt"

	"github.com/stallfront/internal/config"
	"github.com/stallfront/internal/logger"
	"github.com/stallfront/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加分类
	categories := []models.Category{
		{Name: "电子产品", Description: "耳机、手表与其他数码设备"},
		{Name: "生活用品", Description: "日常居家与出行好物"},
		{Name: "数码配件", Description: "充电、收纳与周边配件"},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("name = ?", cat.Name).First(&existing).Error; err != nil {
			// 不存在则创建
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Name, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Name)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Name)
		}
	}

	// 获取分类ID
	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("name IN ?", []string{"电子产品", "生活用品", "数码配件"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Name] = cat.ID
	}
	electronicsID := categoryIDs["电子产品"]
	lifestyleID := categoryIDs["生活用品"]
	accessoriesID := categoryIDs["数码配件"]

	// 添加商品
	products := []models.Product{
		{
			Name:        "无线蓝牙耳机",
			Description: "高品质音质，长续航，舒适佩戴",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(99.99)),
			CategoryID:  &electronicsID,
			ImageURL:    "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			Stock:       120,
		},
		{
			Name:        "智能手表",
			Description: "健康监测，运动追踪，消息提醒",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(199.99)),
			CategoryID:  &electronicsID,
			ImageURL:    "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800",
			Stock:       60,
		},
		{
			Name:        "便携充电宝",
			Description: "大容量，快速充电，多设备兼容",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(49.99)),
			CategoryID:  &accessoriesID,
			ImageURL:    "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800",
			Stock:       200,
		},
		{
			Name:        "多功能背包",
			Description: "大容量，防水防盗，USB充电接口",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(79.99)),
			CategoryID:  &lifestyleID,
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			Stock:       45,
		},
		{
			Name:        "桌面收纳盒",
			Description: "简约设计，分层收纳，节省空间",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(19.90)),
			CategoryID:  &lifestyleID,
			ImageURL:    "https://images.unsplash.com/photo-1499951360447-b19be8fe80f5?w=800",
			Stock:       300,
		},
	}

	for _, prod := range products {
		if prod.CategoryID == nil || *prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category missing", prod.Name)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Description = prod.Description
			existing.Price = prod.Price
			existing.CategoryID = prod.CategoryID
			existing.ImageURL = prod.ImageURL
			existing.Stock = prod.Stock
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	fmt.Println("\nSeed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 3 Categories")
	fmt.Println("- 5 Products")
}
