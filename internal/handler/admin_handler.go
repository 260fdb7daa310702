package handler

import (
	"net/http"

	"salon_web/internal/service"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	stats *service.StatsService
}

func NewAdminHandler(stats *service.StatsService) *AdminHandler {
	return &AdminHandler{stats: stats}
}

// Stats 管理后台汇总数字
func (h *AdminHandler) Stats(c *gin.Context) {
	s, err := h.stats.Collect()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "stats failed"})
		return
	}
	c.JSON(http.StatusOK, s)
}
