package handler

import (
	"net/http"

	"salon_web/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	svc *service.UserService
}

func NewMemberHandler(svc *service.UserService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// List 会员名录，按加入时间倒序，不含密码
func (h *MemberHandler) List(c *gin.Context) {
	list, err := h.svc.ListMembers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "list failed"})
		return
	}
	c.JSON(http.StatusOK, list)
}
