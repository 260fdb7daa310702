package router

import (
	"html/template"
	"time"

	"salon_web/internal/handler"
	"salon_web/internal/middleware"
	"salon_web/internal/service"

	"github.com/gin-gonic/gin"
)

// Deps 路由装配需要的全部依赖，由 main 构造
type Deps struct {
	Users         *service.UserService
	Emails        *service.EmailService
	Announcements *service.AnnouncementService
	Contents      *service.ContentService
	Board         *service.BoardService
	Stats         *service.StatsService
	Tokens        middleware.TokenStore
	TemplateGlob  string
	StaticDir     string
}

func InitRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Format("2006-01-02")
		},
		"formatDateTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
	})
	if d.TemplateGlob != "" {
		r.LoadHTMLGlob(d.TemplateGlob)
	}
	if d.StaticDir != "" {
		r.Static("/static", d.StaticDir)
	}

	user := handler.NewUserHandler(d.Users)
	email := handler.NewEmailHandler(d.Emails)
	announcement := handler.NewAnnouncementHandler(d.Announcements)
	content := handler.NewContentHandler(d.Contents)
	board := handler.NewBoardHandler(d.Board)
	member := handler.NewMemberHandler(d.Users)
	admin := handler.NewAdminHandler(d.Stats)
	page := handler.NewPageHandler(d.Users, d.Announcements, d.Contents, d.Board, d.Stats)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 开放接口：注册 / 登录 / 找回密码 / 刷新 / 验证码
	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/reset", user.ResetPassword)
	}
	r.POST("/api/token/refresh", user.TokenRefresh)
	r.POST("/api/email/:scope/code", email.SendCode)

	// 登录态 API：拒绝用状态码表达
	authAPI := r.Group("/api")
	authAPI.Use(middleware.RequireAuth(d.Tokens))
	{
		authAPI.POST("/user/logout", user.Logout)
		authAPI.POST("/user/change-password", user.ChangePassword)

		authAPI.GET("/announcements", announcement.List)
		authAPI.GET("/contents", content.List)
		authAPI.GET("/contents/:id", content.Get)
		authAPI.GET("/posts", board.ListPosts)
		authAPI.POST("/posts", board.CreatePost)
		authAPI.GET("/posts/:id", board.GetPost)
		authAPI.GET("/comments", board.ListComments)
		authAPI.POST("/comments", board.CreateComment)
		authAPI.GET("/members", member.List)
	}

	// 管理员 API
	adminAPI := r.Group("/api")
	adminAPI.Use(middleware.RequireAuth(d.Tokens), middleware.RequireAdmin())
	{
		adminAPI.POST("/announcements", announcement.Create)
		adminAPI.PUT("/announcements/:id", announcement.Update)
		adminAPI.POST("/contents", content.Create)
		adminAPI.PUT("/contents/:id", content.Update)
		adminAPI.GET("/admin/stats", admin.Stats)
	}

	// 页面：拒绝用重定向表达
	r.GET("/login", page.LoginPage)
	r.POST("/login", page.LoginSubmit)

	pages := r.Group("/")
	pages.Use(middleware.PageAuth(d.Tokens))
	{
		pages.GET("/logout", page.Logout)
		pages.GET("/dashboard", page.Dashboard)
		pages.GET("/announcements", page.Announcements)
		pages.GET("/contents", page.Contents)
		pages.GET("/contents/:id", page.ContentDetail)
		pages.POST("/contents/:id/comments", page.ContentComment)
		pages.GET("/members", page.Members)
		pages.GET("/board", page.Board)
		pages.GET("/board/new", page.BoardNew)
		pages.POST("/board", page.BoardCreate)
		pages.GET("/board/:id", page.BoardDetail)
		pages.POST("/board/:id/comments", page.BoardComment)
	}

	adminPages := r.Group("/admin")
	adminPages.Use(middleware.PageAuth(d.Tokens), middleware.PageAdmin())
	{
		adminPages.GET("", page.Admin)
		adminPages.GET("/announcements/new", page.AdminAnnouncementNew)
		adminPages.POST("/announcements", page.AdminAnnouncementCreate)
		adminPages.GET("/contents/new", page.AdminContentNew)
		adminPages.POST("/contents", page.AdminContentCreate)
	}

	return r
}
