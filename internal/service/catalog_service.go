package service

import (
	"context"
	"time"

	"github.com/stallfront/internal/cache"
	"github.com/stallfront/internal/logger"
	"github.com/stallfront/internal/models"
	"github.com/stallfront/internal/repository"
)

const categoriesCacheKey = "catalog:categories"

// CatalogService 目录读取服务（分类、商品）
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	cacheTTL     time.Duration
}

// NewCatalogService 创建目录服务
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository, cacheTTLSeconds int) *CatalogService {
	ttl := time.Duration(cacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cacheTTL:     ttl,
	}
}

// ListCategories 分类列表
// 分类在种子数据写入后不再变更，可安全走缓存；缓存故障降级为直查。
func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cached []models.Category
	hit, err := cache.GetJSON(ctx, categoriesCacheKey, &cached)
	if err != nil {
		logger.Warnw("catalog_categories_cache_read_failed", "error", err)
	} else if hit {
		return cached, nil
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, categoriesCacheKey, categories, s.cacheTTL); err != nil {
		logger.Warnw("catalog_categories_cache_write_failed", "error", err)
	}
	return categories, nil
}

// ListProducts 商品列表，categoryID 非空时按分类过滤
func (s *CatalogService) ListProducts(categoryID *uint) ([]models.Product, error) {
	return s.productRepo.List(categoryID)
}

// GetProduct 商品详情，不存在返回 ErrProductNotFound
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
