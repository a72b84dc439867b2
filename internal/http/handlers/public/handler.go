package public

import "github.com/stallfront/internal/provider"

// Handler 店面接口处理器入口
// 说明：本系统没有后台接口，全部 API 都由该处理器承载。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
