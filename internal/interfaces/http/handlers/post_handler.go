package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dev-orbit.backend/internal/domain/entities"
	domainerrors "dev-orbit.backend/internal/domain/errors"
	"dev-orbit.backend/internal/interfaces/http/middleware"
	"dev-orbit.backend/internal/interfaces/http/response"
	"dev-orbit.backend/internal/usecases"
)

// PostHandler handles post endpoints
type PostHandler struct {
	postUsecase *usecases.PostUsecase
}

// NewPostHandler creates a new post handler
func NewPostHandler(postUsecase *usecases.PostUsecase) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
	}
}

// GetFeed lists published posts, newest first
// GET /api/v1/feed
func (h *PostHandler) GetFeed(c *gin.Context) {
	views, err := h.postUsecase.GetFeed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": views})
}

// CreatePost creates a post owned by the authenticated account
// POST /api/v1/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing bearer token"))
		return
	}

	var input entities.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.postUsecase.CreatePost(c.Request.Context(), principal.UserID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// UpdatePost partially updates an owned post
// PATCH /api/v1/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing bearer token"))
		return
	}

	var input entities.UpdatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.postUsecase.UpdatePost(c.Request.Context(), principal.UserID, c.Param("id"), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, result)
}

// DeletePost removes an owned post
// DELETE /api/v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("missing bearer token"))
		return
	}

	if err := h.postUsecase.DeletePost(c.Request.Context(), principal.UserID, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Post deleted"})
}

// LikePost increments a post's like counter
// POST /api/v1/posts/:id/like
func (h *PostHandler) LikePost(c *gin.Context) {
	if err := h.postUsecase.LikePost(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Post liked"})
}

// UnlikePost decrements a post's like counter
// DELETE /api/v1/posts/:id/like
func (h *PostHandler) UnlikePost(c *gin.Context) {
	if err := h.postUsecase.UnlikePost(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Post unliked"})
}
