package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/myErrors"
	"github.com/Xushengqwer/discussion_service/service"
)

// CommunityController 定义社区控制器的结构体
type CommunityController struct {
	communityService service.CommunityService
}

// NewCommunityController 构造函数，用于创建 CommunityController 实例
func NewCommunityController(communityService service.CommunityService) *CommunityController {
	return &CommunityController{
		communityService: communityService,
	}
}

// CreateCommunity 处理创建社区的 HTTP 请求。
// @Summary      创建新社区
// @Description  使用给定的名称和描述创建一个社区。名称要求 3-21 个字符，仅限字母、数字和下划线，且全局唯一。
// @Tags         communities (社区)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommunityRequest true "创建社区请求体"
// @Success      200 {object} vo.CommunityResponseWrapper "社区创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或名称不符合规则"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      409 {object} vo.BaseResponseWrapper "社区名称已被占用"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/communities [post]
func (ctrl *CommunityController) CreateCommunity(c *gin.Context) {
	var reqDTO dto.CreateCommunityRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID := currentUserID(c)
	if userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return
	}

	communityVO, err := ctrl.communityService.CreateCommunity(c.Request.Context(), &reqDTO, userID)
	if err != nil {
		switch {
		case errors.Is(err, myErrors.ErrCommunityNameInvalid):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "社区名称不符合规则: 3-21个字符，仅限字母、数字和下划线")
		case errors.Is(err, myErrors.ErrCommunityNameTaken):
			response.RespondError(c, http.StatusConflict, response.ErrCodeClientInvalidInput, "社区名称已被占用")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建社区失败: "+err.Error())
		}
		return
	}

	response.RespondSuccess(c, communityVO, "社区创建成功")
}

// ListCommunities 处理查询社区列表的 HTTP 请求。
// @Summary      获取社区列表 (公开)
// @Description  返回全部社区，按名称升序排列。
// @Tags         communities (社区)
// @Produce      json
// @Success      200 {object} vo.CommunityListResponseWrapper "成功响应，包含社区列表"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/communities [get]
func (ctrl *CommunityController) ListCommunities(c *gin.Context) {
	communityVOs, err := ctrl.communityService.ListCommunities(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取社区列表失败: "+err.Error())
		return
	}
	response.RespondSuccess(c, communityVOs, "社区列表获取成功")
}

// RegisterRoutes 注册社区相关的路由。
func (ctrl *CommunityController) RegisterRoutes(group *gin.RouterGroup) {
	communityGroup := group.Group("/communities")
	{
		communityGroup.GET("", ctrl.ListCommunities)
		communityGroup.POST("", ctrl.CreateCommunity)
	}
}
