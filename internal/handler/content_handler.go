package handler

import (
	"errors"
	"net/http"
	"strconv"

	"salon_web/internal/middleware"
	"salon_web/internal/model"
	"salon_web/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContentHandler struct {
	svc *service.ContentService
}

type CreateContentReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	VideoURL    string `json:"videoUrl"`
	FileURL     string `json:"fileUrl"`
	Published   bool   `json:"published"`
}

func (req *CreateContentReq) input() service.CreateContentInput {
	return service.CreateContentInput{
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Content,
		Type:        model.ContentType(req.Type),
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		FileURL:     req.FileURL,
		Published:   req.Published,
	}
}

func NewContentHandler(svc *service.ContentService) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// List ?category= 与 ?limit= 均可选
func (h *ContentHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	category := c.Query("category")

	list, err := h.svc.List(category, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ContentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}

	detail, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "content not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "get failed"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *ContentHandler) Create(c *gin.Context) {
	var req CreateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	content, err := h.svc.Create(middleware.UserID(c), req.input())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, content)
}

// Update 编辑内容，媒体地址规则与创建一致
func (h *ContentHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid id"})
		return
	}

	var req CreateContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "invalid params"})
		return
	}

	content, err := h.svc.Update(id, req.input())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "content not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, content)
}
