package handler

import (
	"errors"
	"net/http"
	"strconv"

	"salon_web/internal/middleware"
	"salon_web/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BoardHandler struct {
	svc *service.BoardService
}

type CreatePostReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateCommentReq struct {
	Content   string  `json:"content"`
	PostID    *uint64 `json:"postId"`
	ContentID *uint64 `json:"contentId"`
}

func NewBoardHandler(svc *service.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

func (h *BoardHandler) ListPosts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	list, err := h.svc.ListPosts(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *BoardHandler) CreatePost(c *gin.Context) {
	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	post, err := h.svc.CreatePost(middleware.UserID(c), req.Title, req.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BoardHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}

	post, err := h.svc.GetPost(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get failed"})
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *BoardHandler) CreateComment(c *gin.Context) {
	var req CreateCommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	comment, err := h.svc.CreateComment(middleware.UserID(c), req.Content, req.PostID, req.ContentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "target not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}
	c.JSON(http.StatusOK, comment)
}

// ListComments ?postId= 或 ?contentId= 过滤，都不传返回全部
func (h *BoardHandler) ListComments(c *gin.Context) {
	var postID, contentID *uint64
	if v := c.Query("postId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid postId"})
			return
		}
		postID = &id
	}
	if v := c.Query("contentId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid contentId"})
			return
		}
		contentID = &id
	}

	list, err := h.svc.ListComments(postID, contentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}
