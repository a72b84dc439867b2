package public

import (
	"errors"

	"github.com/stallfront/internal/http/response"
	"github.com/stallfront/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// UpdateCartItemRequest 修改购物车项请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}

	items, err := h.CartService.ListBySession(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "获取购物车失败", err)
		return
	}
	response.Success(c, gin.H{"items": items})
}

// AddCartItem 加入购物车（同商品累加数量）
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.CartService.AddItem(sessionID, req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			respondError(c, response.CodeBadRequest, "数量无效", nil)
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeBadRequest, "商品不存在", nil)
		default:
			respondError(c, response.CodeInternal, "加入购物车失败", err)
		}
		return
	}
	response.Success(c, gin.H{"added": true})
}

// UpdateCartItem 修改购物车项数量，数量 <= 0 等同删除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数无效", err)
		return
	}

	if err := h.CartService.UpdateQuantity(sessionID, id, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			respondError(c, response.CodeNotFound, "购物车项不存在", nil)
		default:
			respondError(c, response.CodeInternal, "更新购物车失败", err)
		}
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.CartService.RemoveItem(sessionID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrCartItemNotFound):
			respondError(c, response.CodeNotFound, "购物车项不存在", nil)
		default:
			respondError(c, response.CodeInternal, "删除购物车项失败", err)
		}
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(sessionID); err != nil {
		respondError(c, response.CodeInternal, "清空购物车失败", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
