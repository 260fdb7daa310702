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

// PageHandler 服务端渲染的会员页面。鉴权失败的呈现是重定向而不是状态码，
// 由 PageAuth / PageAdmin 网关负责；这里只管取数和渲染
type PageHandler struct {
	users         *service.UserService
	announcements *service.AnnouncementService
	contents      *service.ContentService
	board         *service.BoardService
	stats         *service.StatsService
}

func NewPageHandler(
	users *service.UserService,
	announcements *service.AnnouncementService,
	contents *service.ContentService,
	board *service.BoardService,
	stats *service.StatsService,
) *PageHandler {
	return &PageHandler{
		users:         users,
		announcements: announcements,
		contents:      contents,
		board:         board,
		stats:         stats,
	}
}

func (h *PageHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// LoginSubmit 表单登录，成功后把 access token 放进 HttpOnly cookie
func (h *PageHandler) LoginSubmit(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	token, _, err := h.users.Login(email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{"Error": "invalid email or password"})
		return
	}

	c.SetCookie(middleware.SessionCookie, token.AccessToken, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *PageHandler) Logout(c *gin.Context) {
	_ = h.users.Logout(middleware.UserID(c))
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	announcements, err := h.announcements.List(3)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load dashboard"})
		return
	}
	contents, err := h.contents.List("", 3)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load dashboard"})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Name":          middleware.UserName(c),
		"IsAdmin":       middleware.UserRole(c).IsAdmin(),
		"Announcements": announcements,
		"Contents":      contents,
	})
}

func (h *PageHandler) Announcements(c *gin.Context) {
	list, err := h.announcements.List(0)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load announcements"})
		return
	}
	c.HTML(http.StatusOK, "announcements.html", gin.H{"Announcements": list})
}

func (h *PageHandler) Contents(c *gin.Context) {
	list, err := h.contents.List(c.Query("category"), 0)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load contents"})
		return
	}
	c.HTML(http.StatusOK, "contents.html", gin.H{"Contents": list})
}

// ContentDetail 类型决定媒体区块：ARTICLE 只有正文，VIDEO/DOCUMENT 各自带链接
func (h *PageHandler) ContentDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.Redirect(http.StatusFound, "/contents")
		return
	}

	detail, err := h.contents.Get(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusFound, "/contents")
		return
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load content"})
		return
	}

	comments, err := h.board.ListComments(nil, &id)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load content"})
		return
	}

	c.HTML(http.StatusOK, "content_detail.html", gin.H{
		"Content":  detail,
		"Comments": comments,
	})
}

// ContentComment 内容详情页下的评论表单
func (h *PageHandler) ContentComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.Redirect(http.StatusFound, "/contents")
		return
	}

	// 校验失败也回详情页，表单内容不回填
	_, _ = h.board.CreateComment(middleware.UserID(c), c.PostForm("content"), nil, &id)
	c.Redirect(http.StatusFound, "/contents/"+c.Param("id"))
}

func (h *PageHandler) Members(c *gin.Context) {
	list, err := h.users.ListMembers()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load members"})
		return
	}
	c.HTML(http.StatusOK, "members.html", gin.H{"Members": list})
}

func (h *PageHandler) Board(c *gin.Context) {
	posts, err := h.board.ListPosts(0)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load board"})
		return
	}
	c.HTML(http.StatusOK, "board.html", gin.H{"Posts": posts})
}

func (h *PageHandler) BoardNew(c *gin.Context) {
	c.HTML(http.StatusOK, "board_new.html", gin.H{})
}

func (h *PageHandler) BoardCreate(c *gin.Context) {
	post, err := h.board.CreatePost(middleware.UserID(c), c.PostForm("title"), c.PostForm("content"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "board_new.html", gin.H{"Error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/board/"+strconv.FormatUint(post.ID, 10))
}

func (h *PageHandler) BoardDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.Redirect(http.StatusFound, "/board")
		return
	}

	post, err := h.board.GetPost(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.Redirect(http.StatusFound, "/board")
		return
	}
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load post"})
		return
	}
	c.HTML(http.StatusOK, "board_detail.html", gin.H{"Post": post})
}

func (h *PageHandler) BoardComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.Redirect(http.StatusFound, "/board")
		return
	}

	_, _ = h.board.CreateComment(middleware.UserID(c), c.PostForm("content"), &id, nil)
	c.Redirect(http.StatusFound, "/board/"+c.Param("id"))
}

func (h *PageHandler) Admin(c *gin.Context) {
	s, err := h.stats.Collect()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "failed to load stats"})
		return
	}
	c.HTML(http.StatusOK, "admin.html", gin.H{"Stats": s})
}

func (h *PageHandler) AdminAnnouncementNew(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_announcement_new.html", gin.H{})
}

func (h *PageHandler) AdminAnnouncementCreate(c *gin.Context) {
	_, err := h.announcements.Create(
		middleware.UserID(c),
		c.PostForm("title"),
		c.PostForm("content"),
		c.PostForm("published") == "on",
	)
	if err != nil {
		c.HTML(http.StatusBadRequest, "admin_announcement_new.html", gin.H{"Error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/announcements")
}

func (h *PageHandler) AdminContentNew(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_content_new.html", gin.H{})
}

func (h *PageHandler) AdminContentCreate(c *gin.Context) {
	_, err := h.contents.Create(middleware.UserID(c), service.CreateContentInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Body:        c.PostForm("content"),
		Type:        model.ContentType(c.PostForm("type")),
		Category:    c.PostForm("category"),
		ImageURL:    c.PostForm("imageUrl"),
		VideoURL:    c.PostForm("videoUrl"),
		FileURL:     c.PostForm("fileUrl"),
		Published:   c.PostForm("published") == "on",
	})
	if err != nil {
		c.HTML(http.StatusBadRequest, "admin_content_new.html", gin.H{"Error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/contents")
}
