package service

import "errors"

// 业务错误，由 handler 层映射为接口错误码
var (
	ErrInvalidSession       = errors.New("session id required")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrProductNotFound      = errors.New("product not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrCustomerInfoRequired = errors.New("customer info required")
	ErrOrderNotFound        = errors.New("order not found")
	ErrOrderCreateFailed    = errors.New("order create failed")
)
