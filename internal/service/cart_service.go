package service

import (
	"strings"
	"time"

	"github.com/stallfront/internal/models"
	"github.com/stallfront/internal/repository"
)

// CartService 购物车服务，所有操作都以会话标识为边界
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListBySession 获取会话购物车（含商品）
func (s *CartService) ListBySession(sessionID string) ([]models.CartItem, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}
	return s.cartRepo.ListBySession(sessionID)
}

// AddItem 加入购物车
// 同一会话同一商品累加数量而不是新建行；累加由仓库层的原子 upsert 保证。
func (s *CartService) AddItem(sessionID string, productID uint, quantity int) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.cartRepo.UpsertAdd(&models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	})
}

// UpdateQuantity 覆盖购物车项数量，数量 <= 0 时删除该行
func (s *CartService) UpdateQuantity(sessionID string, cartItemID uint, quantity int) error {
	item, err := s.ownedItem(sessionID, cartItemID)
	if err != nil {
		return err
	}
	if quantity <= 0 {
		return s.cartRepo.DeleteByID(item.ID)
	}
	return s.cartRepo.UpdateQuantity(item.ID, quantity)
}

// RemoveItem 删除单个购物车项
func (s *CartService) RemoveItem(sessionID string, cartItemID uint) error {
	item, err := s.ownedItem(sessionID, cartItemID)
	if err != nil {
		return err
	}
	return s.cartRepo.DeleteByID(item.ID)
}

// Clear 清空会话购物车
func (s *CartService) Clear(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}
	return s.cartRepo.ClearBySession(sessionID)
}

// ownedItem 校验购物车项归属；不属于该会话的行按不存在处理
func (s *CartService) ownedItem(sessionID string, cartItemID uint) (*models.CartItem, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}
	item, err := s.cartRepo.GetByID(cartItemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.SessionID != sessionID {
		return nil, ErrCartItemNotFound
	}
	return item, nil
}
