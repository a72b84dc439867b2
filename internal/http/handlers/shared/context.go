package shared

import (
	"strings"

	"github.com/stallfront/internal/constants"
	"github.com/stallfront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSessionID 从上下文取会话标识；拿不到说明会话中间件未生效，直接终止请求。
func GetSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get(constants.SessionContextKey)
	if ok {
		if sessionID, ok := value.(string); ok && strings.TrimSpace(sessionID) != "" {
			return sessionID, true
		}
	}
	RespondError(c, response.CodeInternal, "会话标识缺失", nil)
	c.Abort()
	return "", false
}
