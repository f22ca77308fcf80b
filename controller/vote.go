package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/models/entities"
	"github.com/Xushengqwer/discussion_service/models/vo"
	"github.com/Xushengqwer/discussion_service/service"
)

// VoteController 定义投票控制器的结构体
type VoteController struct {
	voteService service.VoteService
}

// NewVoteController 构造函数，用于创建 VoteController 实例
func NewVoteController(voteService service.VoteService) *VoteController {
	return &VoteController{
		voteService: voteService,
	}
}

// CastVote 处理投票的 HTTP 请求。
// @Summary      投票
// @Description  对帖子或评论投出 +1/-1。postId 与 commentId 必须恰好提供一个。重复投相同值视为撤销，投相反值视为改票。
// @Tags         votes (投票)
// @Accept       json
// @Produce      json
// @Param        request body dto.CastVoteRequest true "投票请求体"
// @Success      200 {object} vo.CastVoteResponseWrapper "投票落账成功 (新建/改票/撤销)"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载或目标不互斥"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "目标帖子或评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/votes [post]
func (ctrl *VoteController) CastVote(c *gin.Context) {
	var reqDTO dto.CastVoteRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID := currentUserID(c)
	if userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return
	}

	result, err := ctrl.voteService.CastVote(c.Request.Context(), &reqDTO, userID)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrInvalidVoteTarget):
			response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "postId 与 commentId 必须恰好提供一个")
		case errors.Is(err, commonerrors.ErrRepoNotFound):
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "目标帖子或评论不存在")
		default:
			response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "投票失败: "+err.Error())
		}
		return
	}

	message := "投票成功"
	if result.Outcome == vo.VoteOutcomeRemoved {
		message = "投票已撤销"
	}
	response.RespondSuccess(c, result, message)
}

// RegisterRoutes 注册投票相关的路由。
func (ctrl *VoteController) RegisterRoutes(group *gin.RouterGroup) {
	voteGroup := group.Group("/votes")
	{
		voteGroup.POST("", ctrl.CastVote)
	}
}
