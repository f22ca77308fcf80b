package controller

import (
	"github.com/Xushengqwer/go-common/constants"
	"github.com/gin-gonic/gin"
)

// currentUserID 从 gin.Context 中取出网关透传的用户 ID。
// 公开接口拿不到用户时返回空串，调用方据此决定是放行还是拒绝。
func currentUserID(c *gin.Context) string {
	userIDValue, exists := c.Get(string(constants.UserIDKey))
	if !exists {
		return ""
	}
	userID, ok := userIDValue.(string)
	if !ok {
		return ""
	}
	return userID
}
