package controller

import (
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/discussion_service/service"
)

// HotPostController 定义热门帖子控制器的结构体
type HotPostController struct {
	hotPostService service.HotPostService
}

// NewHotPostController 构造函数，用于创建 HotPostController 实例
func NewHotPostController(hotPostService service.HotPostService) *HotPostController {
	return &HotPostController{
		hotPostService: hotPostService,
	}
}

// GetHotPosts 处理查询热门帖子榜单的 HTTP 请求。
// @Summary      获取热门帖子榜单 (公开)
// @Description  按热度从高到低返回帖子。榜单由定时任务预计算进 Redis，缓存不可用时回源数据库。
// @Tags         posts (帖子)
// @Produce      json
// @Param        limit query int false "返回条数上限 (默认与榜单大小一致)" format(int32) minimum(1) maximum(100)
// @Success      200 {object} vo.PostListResponseWrapper "成功响应，包含热门帖子列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/hot-posts [get]
func (ctrl *HotPostController) GetHotPosts(c *gin.Context) {
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的 limit 参数")
			return
		}
		limit = parsed
	}

	postVOs, err := ctrl.hotPostService.GetHotPosts(c.Request.Context(), limit, currentUserID(c))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取热门帖子失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, postVOs, "热门帖子获取成功")
}

// RegisterRoutes 注册热门帖子相关的路由。
func (ctrl *HotPostController) RegisterRoutes(group *gin.RouterGroup) {
	hotPosts := group.Group("/hot-posts")
	{
		hotPosts.GET("", ctrl.GetHotPosts)
	}
}
