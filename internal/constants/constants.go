package constants

// 订单状态
// 本系统只会写入 pending，completed/cancelled 预留给后台流程。
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// 会话标识的传递位置
const (
	SessionContextKey = "session_id"
	SessionCookieName = "sf_session"
	SessionHeaderName = "X-Session-ID"
)

// SessionCookieMaxAge 会话 Cookie 有效期（秒），约 10 年，不轮换不过期
const SessionCookieMaxAge = 10 * 365 * 24 * 3600

// ValidOrderStatus 校验订单状态取值
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
