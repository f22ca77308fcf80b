package controller

import (
	"errors"
	"net/http"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/service"
)

// CommentController 定义评论控制器的结构体
type CommentController struct {
	commentService service.CommentService
}

// NewCommentController 构造函数，用于创建 CommentController 实例
func NewCommentController(commentService service.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

// CreateComment 处理发表评论的 HTTP 请求。
// @Summary      发表评论
// @Description  在指定帖子下发表评论，parentId 非空时为对已有评论的回复。帖子或父评论不存在时返回 404。
// @Tags         comments (评论)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCommentRequest true "发表评论请求体"
// @Success      200 {object} vo.CommentResponseWrapper "评论发表成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子或父评论不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comments [post]
func (ctrl *CommentController) CreateComment(c *gin.Context) {
	var reqDTO dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID := currentUserID(c)
	if userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return
	}

	commentVO, err := ctrl.commentService.CreateComment(c.Request.Context(), &reqDTO, userID, reqDTO.AuthorUsername)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子或父评论不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "发表评论失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, commentVO, "评论发表成功")
}

// ListComments 处理查询帖子评论树的 HTTP 请求。
// @Summary      获取帖子的评论树
// @Description  返回指定帖子的全部评论，按父子关系组装成树，顶层与各层回复均为新评论在前。每条评论带净得分与本人投票状态。
// @Tags         comments (评论)
// @Produce      json
// @Param        postId query uint64 true "帖子ID" format(uint64) minimum(1)
// @Success      200 {object} vo.CommentForestResponseWrapper "成功响应，包含评论树"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/comments [get]
func (ctrl *CommentController) ListComments(c *gin.Context) {
	var reqDTO dto.ListCommentsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	userID := currentUserID(c)
	if userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return
	}

	forest, err := ctrl.commentService.ListCommentForest(c.Request.Context(), &reqDTO, userID)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取评论树失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, forest, "评论树获取成功")
}

// RegisterRoutes 注册评论相关的路由。
func (ctrl *CommentController) RegisterRoutes(group *gin.RouterGroup) {
	commentGroup := group.Group("/comments")
	{
		commentGroup.GET("", ctrl.ListComments)
		commentGroup.POST("", ctrl.CreateComment)
	}
}
