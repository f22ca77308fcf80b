package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/response"
	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/discussion_service/models/dto"
	"github.com/Xushengqwer/discussion_service/service"
)

// PostController 定义帖子控制器的结构体
type PostController struct {
	postService service.PostService
}

// NewPostController 构造函数，用于创建 PostController 实例
func NewPostController(postService service.PostService) *PostController {
	return &PostController{
		postService: postService,
	}
}

// CreatePost 处理创建帖子的 HTTP 请求。
// @Summary      创建新帖子
// @Description  在指定社区内发布一个新帖子。社区不存在时返回 404。UserID 从请求上下文中获取。
// @Tags         posts (帖子)
// @Accept       json
// @Produce      json
// @Param        request body dto.CreatePostRequest true "创建帖子请求体"
// @Success      200 {object} vo.PostResponseWrapper "帖子创建成功"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的请求负载"
// @Failure      401 {object} vo.BaseResponseWrapper "用户未授权"
// @Failure      404 {object} vo.BaseResponseWrapper "目标社区不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts [post]
func (ctrl *PostController) CreatePost(c *gin.Context) {
	var reqDTO dto.CreatePostRequest
	if err := c.ShouldBindJSON(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的请求负载: "+err.Error())
		return
	}

	userID := currentUserID(c)
	if userID == "" {
		response.RespondError(c, http.StatusUnauthorized, response.ErrCodeClientUnauthorized, "无法获取有效的用户 ID")
		return
	}

	postVO, err := ctrl.postService.CreatePost(c.Request.Context(), &reqDTO, userID, reqDTO.AuthorUsername)
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "目标社区不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "创建帖子失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, postVO, "帖子创建成功")
}

// ListPosts 处理查询帖子列表的 HTTP 请求。
// @Summary      获取帖子列表 (公开)
// @Description  查询帖子列表，支持按社区过滤和 hot/new/top 三种排序。已登录用户的返回值中带本人投票状态。
// @Tags         posts (帖子)
// @Produce      json
// @Param        communityId query uint64 false "按社区ID过滤" format(uint64) minimum(1)
// @Param        sort query string false "排序方式 (hot/new/top，默认 hot)" Enums(hot,new,top)
// @Param        limit query int false "返回条数上限 (默认50，最大100)" format(int32) minimum(1) maximum(100)
// @Success      200 {object} vo.PostListResponseWrapper "成功响应，包含帖子列表"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的查询参数"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts [get]
func (ctrl *PostController) ListPosts(c *gin.Context) {
	var reqDTO dto.ListPostsRequest
	if err := c.ShouldBindQuery(&reqDTO); err != nil {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的查询参数: "+err.Error())
		return
	}

	postVOs, err := ctrl.postService.ListPosts(c.Request.Context(), &reqDTO, currentUserID(c))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取帖子列表失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, postVOs, "帖子列表获取成功")
}

// GetPostByID 处理查询单个帖子的 HTTP 请求。
// @Summary      获取帖子详情 (公开)
// @Description  按 ID 查询单个帖子，净得分与当前用户的投票状态实时聚合。
// @Tags         posts (帖子)
// @Produce      json
// @Param        post_id path uint64 true "帖子ID" format(uint64) minimum(1)
// @Success      200 {object} vo.PostResponseWrapper "成功响应，包含帖子详情"
// @Failure      400 {object} vo.BaseResponseWrapper "无效的帖子ID格式"
// @Failure      404 {object} vo.BaseResponseWrapper "帖子不存在"
// @Failure      500 {object} vo.BaseResponseWrapper "服务器内部错误"
// @Router       /api/v1/posts/{post_id} [get]
func (ctrl *PostController) GetPostByID(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil || postID == 0 {
		response.RespondError(c, http.StatusBadRequest, response.ErrCodeClientInvalidInput, "无效的帖子ID格式")
		return
	}

	postVO, err := ctrl.postService.GetPostByID(c.Request.Context(), postID, currentUserID(c))
	if err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			response.RespondError(c, http.StatusNotFound, response.ErrCodeClientResourceNotFound, "帖子不存在")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, response.ErrCodeServerInternal, "获取帖子失败: "+err.Error())
		return
	}

	response.RespondSuccess(c, postVO, "帖子获取成功")
}

// RegisterRoutes 注册帖子相关的路由。
func (ctrl *PostController) RegisterRoutes(group *gin.RouterGroup) {
	postGroup := group.Group("/posts")
	{
		postGroup.GET("", ctrl.ListPosts)
		postGroup.POST("", ctrl.CreatePost)
		postGroup.GET("/:post_id", ctrl.GetPostByID)
	}
}
