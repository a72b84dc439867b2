package public

import (
	"errors"

	"github.com/stallfront/internal/http/response"
	"github.com/stallfront/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// CreateOrder 从当前购物车下单
func (h *Handler) CreateOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	order, err := h.OrderService.PlaceOrder(sessionID, service.CustomerInfo{
		Name:            req.CustomerName,
		Email:           req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerInfoRequired):
			respondError(c, response.CodeBadRequest, "客户信息不完整", nil)
		case errors.Is(err, service.ErrEmptyCart):
			respondError(c, response.CodeBadRequest, "购物车为空", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeBadRequest, "购物车中存在已下架商品", nil)
		default:
			respondError(c, response.CodeInternal, "下单失败", err)
		}
		return
	}
	response.Success(c, gin.H{"order": order})
}

// ListOrders 获取会话订单列表，最新在前
func (h *Handler) ListOrders(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	orders, err := h.OrderService.ListBySession(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "获取订单失败", err)
		return
	}
	response.Success(c, gin.H{"orders": orders})
}

// GetOrder 获取单个订单，不存在返回 404 而不是错误
func (h *Handler) GetOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.GetByID(sessionID, id)
	if err != nil {
		respondError(c, response.CodeInternal, "获取订单失败", err)
		return
	}
	if order == nil {
		respondError(c, response.CodeNotFound, "订单不存在", nil)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// GetOrderItems 获取订单项
func (h *Handler) GetOrderItems(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	items, err := h.OrderService.ListItems(sessionID, id)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "订单不存在", nil)
		default:
			respondError(c, response.CodeInternal, "获取订单项失败", err)
		}
		return
	}
	response.Success(c, gin.H{"items": items})
}
