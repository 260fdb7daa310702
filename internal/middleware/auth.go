package middleware

import (
	"errors"
	"net/http"
	"strings"

	"salon_web/internal/model"
	"salon_web/internal/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUserNameKey = "user_name"
	ContextRoleKey     = "role"

	// SessionCookie 页面侧会话 cookie，值与 API 的 access token 相同
	SessionCookie = "salon_session"
)

var errNoSession = errors.New("no session")

// TokenStore 会话有效性校验（redis 单点登录存储）
type TokenStore interface {
	Get(userID uint64) (string, error)
	Extend(userID uint64) error
}

// authenticate 统一的会话判定入口：API 中间件和页面中间件都走这一条路，
// 只有拒绝的呈现方式不同。过期、篡改、被顶号一律等同于无会话
func authenticate(c *gin.Context, store TokenStore) (*pkg.Claims, error) {
	token := tokenFromRequest(c)
	if token == "" {
		return nil, errNoSession
	}

	claims, err := pkg.ParseAccess(token)
	if err != nil {
		return nil, errNoSession
	}

	stored, err := store.Get(claims.UserID)
	if err != nil || stored != token {
		return nil, errNoSession
	}

	// 活跃会话顺延过期时间
	if err := store.Extend(claims.UserID); err != nil {
		return nil, err
	}
	return claims, nil
}

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

func setIdentity(c *gin.Context, claims *pkg.Claims) {
	c.Set(ContextUserIDKey, claims.UserID)
	c.Set(ContextUserNameKey, claims.Name)
	c.Set(ContextRoleKey, claims.Role)
}

// RequireAuth API 侧：无会话返回 401
func RequireAuth(store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, store)
		if errors.Is(err, errNoSession) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "authentication required"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "internal error"})
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// RequireAdmin API 侧：角色不足返回 403，必须挂在 RequireAuth 之后。
// 角色取 token 内嵌值，不回查数据库
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !UserRole(c).IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"msg": "admin required"})
			return
		}
		c.Next()
	}
}

// PageAuth 页面侧：无会话重定向到登录页，响应体不带任何数据；
// 存储层故障不能伪装成"未登录"，渲染 500 错误页
func PageAuth(store TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authenticate(c, store)
		if errors.Is(err, errNoSession) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if err != nil {
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Message": "something went wrong"})
			c.Abort()
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// PageAdmin 页面侧：角色不足重定向回会员面板
func PageAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !UserRole(c).IsAdmin() {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID 取当前用户 id，仅在网关之后的 handler 调用
func UserID(c *gin.Context) uint64 {
	v, _ := c.Get(ContextUserIDKey)
	id, _ := v.(uint64)
	return id
}

func UserName(c *gin.Context) string {
	v, _ := c.Get(ContextUserNameKey)
	name, _ := v.(string)
	return name
}

func UserRole(c *gin.Context) model.Role {
	v, _ := c.Get(ContextRoleKey)
	role, _ := v.(model.Role)
	return role
}
