package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"readandlead/internal/models/request_models"
	"readandlead/internal/services"
	"readandlead/pkg/utils"
)

type PostController struct {
	postService services.PostServiceInterface
}

func NewPostController(postService services.PostServiceInterface) *PostController {
	return &PostController{
		postService: postService,
	}
}

// ListPosts godoc
// @Summary List neighbor posts
// @Description Fetch recent posts, newest first
// @Tags Posts
// @Produce json
// @Param limit query int false "Page size" default(20) minimum(1) maximum(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} response_models.PostResponse
// @Router /neighbor-posts [get]
func (p *PostController) ListPosts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-100)")
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid offset")
		return
	}

	posts, err := p.postService.ListPosts(c.Request.Context(), limit, offset)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, posts, "Posts fetched successfully")
}

// GetPost godoc
// @Summary Get a post by ID
// @Tags Posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} response_models.PostResponse
// @Failure 404 {object} utils.APIResponse
// @Router /neighbor-posts/{postId} [get]
func (p *PostController) GetPost(c *gin.Context) {
	postID := c.Param("postId")
	if postID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Post ID is required")
		return
	}

	post, err := p.postService.GetPost(c.Request.Context(), postID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post fetched successfully")
}

// CreatePost godoc
// @Summary Create a post
// @Tags Posts
// @Accept json
// @Produce json
// @Param request body request_models.CreatePostRequest true "Post payload"
// @Success 200 {object} response_models.PostResponse
// @Security BearerAuth
// @Router /neighbor-posts [post]
func (p *PostController) CreatePost(c *gin.Context) {
	var request request_models.CreatePostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid post payload")
		return
	}

	post, err := p.postService.CreatePost(c.Request.Context(), c.GetString("user_id"), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post created successfully")
}

// UpdatePost godoc
// @Summary Update a post
// @Description Only the author can update. Omitted fields stay unchanged.
// @Tags Posts
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Param request body request_models.UpdatePostRequest true "Fields to update"
// @Success 200 {object} response_models.PostResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /neighbor-posts/{postId} [put]
func (p *PostController) UpdatePost(c *gin.Context) {
	postID := c.Param("postId")
	if postID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Post ID is required")
		return
	}

	var request request_models.UpdatePostRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid post payload")
		return
	}

	post, err := p.postService.UpdatePost(c.Request.Context(), c.GetString("user_id"), postID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, post, "Post updated successfully")
}

// DeletePost godoc
// @Summary Delete a post
// @Description Only the author can delete
// @Tags Posts
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /neighbor-posts/{postId} [delete]
func (p *PostController) DeletePost(c *gin.Context) {
	postID := c.Param("postId")
	if postID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Post ID is required")
		return
	}

	if err := p.postService.DeletePost(c.Request.Context(), c.GetString("user_id"), postID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Post deleted successfully")
}
