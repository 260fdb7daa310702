package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"salon_web/internal/model"
	"salon_web/internal/pkg"
	"salon_web/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	pkg.InitJWT("test-access", "test-refresh", 30, 24)
	os.Exit(m.Run())
}

// fakeStore 内存版会话存储，替代 redis
type fakeStore struct {
	tokens map[uint64]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{tokens: map[uint64]string{}}
}

func (f *fakeStore) Get(userID uint64) (string, error) {
	tok, ok := f.tokens[userID]
	if !ok {
		return "", redis.ErrTokenNotFound
	}
	return tok, nil
}

func (f *fakeStore) Extend(userID uint64) error { return nil }

func issueToken(t *testing.T, store *fakeStore, id uint64, role model.Role) string {
	t.Helper()
	pair, err := pkg.GeneratePair(&model.User{ID: id, Name: "tester", Role: role})
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	store.tokens[id] = pair.AccessToken
	return pair.AccessToken
}

func testRouter(store TokenStore) *gin.Engine {
	r := gin.New()

	api := r.Group("/api")
	api.Use(RequireAuth(store))
	api.GET("/members", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": UserID(c)})
	})

	adminAPI := r.Group("/api/admin")
	adminAPI.Use(RequireAuth(store), RequireAdmin())
	adminAPI.GET("/stats", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	pages := r.Group("/")
	pages.Use(PageAuth(store))
	pages.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "hello "+UserName(c))
	})

	adminPages := r.Group("/admin")
	adminPages.Use(PageAuth(store), PageAdmin())
	adminPages.GET("", func(c *gin.Context) {
		c.String(http.StatusOK, "admin")
	})

	return r
}

func doReq(r *gin.Engine, method, path, bearer, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIWithoutSession(t *testing.T) {
	r := testRouter(newFakeStore())

	for _, path := range []string{"/api/members", "/api/admin/stats"} {
		w := doReq(r, http.MethodGet, path, "", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s without session: got %d, want 401", path, w.Code)
		}
	}
}

func TestAPITamperedToken(t *testing.T) {
	store := newFakeStore()
	r := testRouter(store)
	tok := issueToken(t, store, 1, model.RoleMember)

	w := doReq(r, http.MethodGet, "/api/members", tok+"x", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("tampered token: got %d, want 401", w.Code)
	}
}

func TestAPIDisplacedSession(t *testing.T) {
	store := newFakeStore()
	r := testRouter(store)
	old := issueToken(t, store, 1, model.RoleMember)
	// 同一用户再次登录，旧 token 被顶掉
	issueToken(t, store, 1, model.RoleMember)

	w := doReq(r, http.MethodGet, "/api/members", old, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("displaced token: got %d, want 401", w.Code)
	}
}

func TestAPIMemberForbiddenOnAdminRoute(t *testing.T) {
	store := newFakeStore()
	r := testRouter(store)
	tok := issueToken(t, store, 1, model.RoleMember)

	w := doReq(r, http.MethodGet, "/api/admin/stats", tok, "")
	if w.Code != http.StatusForbidden {
		t.Fatalf("member on admin route: got %d, want 403", w.Code)
	}
}

func TestAPIAdminAllowed(t *testing.T) {
	store := newFakeStore()
	r := testRouter(store)
	tok := issueToken(t, store, 2, model.RoleAdmin)

	if w := doReq(r, http.MethodGet, "/api/admin/stats", tok, ""); w.Code != http.StatusOK {
		t.Fatalf("admin on admin route: got %d, want 200", w.Code)
	}
	if w := doReq(r, http.MethodGet, "/api/members", tok, ""); w.Code != http.StatusOK {
		t.Fatalf("admin on member route: got %d, want 200", w.Code)
	}
}

func TestPageRedirectsToLogin(t *testing.T) {
	r := testRouter(newFakeStore())

	w := doReq(r, http.MethodGet, "/dashboard", "", "")
	if w.Code != http.StatusFound {
		t.Fatalf("page without session: got %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Fatalf("redirect location: got %q, want /login", loc)
	}
	// 响应体不能带任何页面数据
	if body := w.Body.String(); strings.Contains(body, "hello") {
		t.Fatalf("page data leaked on redirect: %q", body)
	}
}

func TestPageCookieSession(t *testing.T) {
	store := newFakeStore()
	r := testRouter(store)
	tok := issueToken(t, store, 3, model.RoleMember)

	w := doReq(r, http.MethodGet, "/dashboard", "", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("page with cookie session: got %d, want 200", w.Code)
	}
}

func TestAdminPageRedirectsMemberToDashboard(t *testing.T) {
	store := newFakeStore()
	r := testRouter(store)
	tok := issueToken(t, store, 4, model.RoleMember)

	w := doReq(r, http.MethodGet, "/admin", "", tok)
	if w.Code != http.StatusFound {
		t.Fatalf("member on admin page: got %d, want 302", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("redirect location: got %q, want /dashboard", loc)
	}
}

func TestAdminPageAllowsAdmin(t *testing.T) {
	store := newFakeStore()
	r := testRouter(store)
	tok := issueToken(t, store, 5, model.RoleAdmin)

	w := doReq(r, http.MethodGet, "/admin", "", tok)
	if w.Code != http.StatusOK {
		t.Fatalf("admin on admin page: got %d, want 200", w.Code)
	}
}

// failingStore 会话查得到但顺延失败，模拟 redis 故障
type failingStore struct {
	*fakeStore
}

func (f *failingStore) Extend(userID uint64) error { return redis.ErrRedisUnavailable }

func TestStoreFailureIsInternalError(t *testing.T) {
	inner := newFakeStore()
	store := &failingStore{fakeStore: inner}
	tok := issueToken(t, inner, 6, model.RoleMember)

	r := gin.New()
	r.LoadHTMLFiles("../../web/templates/error.html")

	api := r.Group("/api")
	api.Use(RequireAuth(store))
	api.GET("/members", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	pages := r.Group("/")
	pages.Use(PageAuth(store))
	pages.GET("/dashboard", func(c *gin.Context) {
		c.String(http.StatusOK, "hello")
	})

	// API 侧：500 而不是 401
	if w := doReq(r, http.MethodGet, "/api/members", tok, ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("api on store failure: got %d, want 500", w.Code)
	}

	// 页面侧：500 错误页而不是跳转登录页
	w := doReq(r, http.MethodGet, "/dashboard", "", tok)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("page on store failure: got %d, want 500", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "" {
		t.Fatalf("page on store failure redirected to %q", loc)
	}
	if strings.Contains(w.Body.String(), "hello") {
		t.Fatalf("page data leaked: %q", w.Body.String())
	}
}
