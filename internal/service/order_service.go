package service

import (
	"strings"
	"time"

	"github.com/stallfront/internal/constants"
	"github.com/stallfront/internal/logger"
	"github.com/stallfront/internal/models"
	"github.com/stallfront/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

// CustomerInfo 下单客户信息，三项均必填
type CustomerInfo struct {
	Name            string
	Email           string
	ShippingAddress string
}

// PlaceOrder 从当前购物车创建订单
// 订单头与订单项在同一个事务内写入，一起成功或一起失败；
// 总额与单价快照取自下单时刻购物车关联的商品价格，之后不再重算。
// 事务提交后清空购物车；清空失败不影响订单成立，只记日志。
func (s *OrderService) PlaceOrder(sessionID string, customer CustomerInfo) (*models.Order, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	customer.ShippingAddress = strings.TrimSpace(customer.ShippingAddress)
	if customer.Name == "" || customer.Email == "" || customer.ShippingAddress == "" {
		return nil, ErrCustomerInfoRequired
	}

	cartItems, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	now := time.Now()
	total := decimal.Zero
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		if item.Product == nil {
			return nil, ErrProductNotFound
		}
		productID := item.ProductID
		price := item.Product.Price
		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		orderItems = append(orderItems, models.OrderItem{
			ProductID: &productID,
			Quantity:  item.Quantity,
			Price:     price,
			CreatedAt: now,
		})
	}

	order := &models.Order{
		SessionID:       sessionID,
		Status:          constants.OrderStatusPending,
		TotalAmount:     models.NewMoneyFromDecimal(total),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		ShippingAddress: customer.ShippingAddress,
		CreatedAt:       now,
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, orderItems)
	})
	if err != nil {
		logger.Errorw("order_create_failed",
			"session_id", sessionID,
			"error", err,
		)
		return nil, ErrOrderCreateFailed
	}

	if err := s.cartRepo.ClearBySession(sessionID); err != nil {
		logger.Warnw("order_cart_clear_failed",
			"order_id", order.ID,
			"session_id", sessionID,
			"error", err,
		)
	}

	return order, nil
}

// ListBySession 获取会话订单，最新在前
func (s *OrderService) ListBySession(sessionID string) ([]models.Order, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}
	return s.orderRepo.ListBySession(sessionID)
}

// GetByID 获取单个订单
// 不存在或不属于该会话都返回 (nil, nil)，由调用方表达"未找到"。
func (s *OrderService) GetByID(sessionID string, orderID uint) (*models.Order, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidSession
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.SessionID != sessionID {
		return nil, nil
	}
	return order, nil
}

// ListItems 获取订单项（含商品）；订单必须属于该会话
func (s *OrderService) ListItems(sessionID string, orderID uint) ([]models.OrderItem, error) {
	order, err := s.GetByID(sessionID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.orderRepo.ListItems(order.ID)
}
