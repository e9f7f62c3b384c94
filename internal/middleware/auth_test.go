package middleware

import (
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/user/mocorn/internal/model"
)

func init() {
	gin.SetMode(gin.TestMode)
	gob.Register(model.SessionUser{})
}

func TestEvaluate(t *testing.T) {
	admin := &model.SessionUser{FirstName: "kadeem", LastName: "best", Email: "kadeem@MoCorn.com", Role: model.RoleAdmin}
	customer := &model.SessionUser{FirstName: "A", LastName: "B", Email: "a@x.com", Role: model.RoleCustomer}

	loginOnly := Policy{RequireLogin: true}
	adminOnly := Policy{RequireLogin: true, Role: model.RoleAdmin}
	customerOnly := Policy{RequireLogin: true, Role: model.RoleCustomer}

	cases := []struct {
		name   string
		user   *model.SessionUser
		policy Policy
		want   Decision
	}{
		{"公开路由匿名放行", nil, Policy{}, DecisionAllow},
		{"公开路由登录放行", customer, Policy{}, DecisionAllow},
		{"需登录路由匿名拒绝", nil, loginOnly, DecisionLoginRequired},
		{"需登录路由登录放行", customer, loginOnly, DecisionAllow},
		// 匿名访问管理员路由必须是"需登录"而不是"角色不符"
		{"管理员路由匿名拒绝", nil, adminOnly, DecisionLoginRequired},
		{"管理员路由顾客拒绝", customer, adminOnly, DecisionForbidden},
		{"管理员路由管理员放行", admin, adminOnly, DecisionAllow},
		{"顾客路由管理员拒绝", admin, customerOnly, DecisionForbidden},
		{"顾客路由顾客放行", customer, customerOnly, DecisionAllow},
	}

	for _, tc := range cases {
		if got := Evaluate(tc.user, tc.policy); got != tc.want {
			t.Errorf("%s: Evaluate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

// setupRouter 组装带 Session 的测试路由
// /grant/:role 写入对应角色的会话快照，用于拿到会话 Cookie
func setupRouter() *gin.Engine {
	r := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions("mocorn_session", store))

	r.GET("/grant/:role", func(c *gin.Context) {
		_ = SetCurrentUser(c, model.SessionUser{
			FirstName: "A",
			LastName:  "B",
			Email:     "a@x.com",
			Role:      c.Param("role"),
		})
		c.Status(http.StatusOK)
	})
	r.GET("/revoke", func(c *gin.Context) {
		_ = ClearCurrentUser(c)
		c.Status(http.StatusOK)
	})

	r.GET("/private", Protect(Policy{RequireLogin: true}), func(c *gin.Context) {
		c.String(http.StatusOK, "private")
	})
	r.GET("/admin-only", Protect(Policy{RequireLogin: true, Role: model.RoleAdmin}), func(c *gin.Context) {
		c.String(http.StatusOK, "admin")
	})

	return r
}

func grantSession(t *testing.T, r *gin.Engine, role string) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/grant/"+role, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("grant failed with status %d", rec.Code)
	}
	return rec.Result().Cookies()
}

func doRequest(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestProtect_AnonymousRedirectsToLogin(t *testing.T) {
	r := setupRouter()

	for _, path := range []string{"/private", "/admin-only"} {
		rec := doRequest(r, path, nil)
		if rec.Code != http.StatusFound {
			t.Fatalf("%s: expected 302, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/auth/login" {
			t.Fatalf("%s: expected redirect to /auth/login, got %q", path, loc)
		}
	}
}

func TestProtect_WrongRoleRedirectsHome(t *testing.T) {
	r := setupRouter()
	cookies := grantSession(t, r, model.RoleCustomer)

	rec := doRequest(r, "/admin-only", cookies)
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func TestProtect_Allows(t *testing.T) {
	r := setupRouter()

	customer := grantSession(t, r, model.RoleCustomer)
	if rec := doRequest(r, "/private", customer); rec.Code != http.StatusOK {
		t.Fatalf("customer on /private: expected 200, got %d", rec.Code)
	}

	admin := grantSession(t, r, model.RoleAdmin)
	if rec := doRequest(r, "/admin-only", admin); rec.Code != http.StatusOK {
		t.Fatalf("admin on /admin-only: expected 200, got %d", rec.Code)
	}
}

func TestProtect_DestroyedSessionDenied(t *testing.T) {
	r := setupRouter()
	cookies := grantSession(t, r, model.RoleCustomer)

	// 登出后同一 Cookie 再访问受保护路由要回到登录页
	req := httptest.NewRequest(http.MethodGet, "/revoke", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	cleared := rec.Result().Cookies()

	rec2 := doRequest(r, "/private", cleared)
	if rec2.Code != http.StatusFound {
		t.Fatalf("expected 302 after revoke, got %d", rec2.Code)
	}
	if loc := rec2.Header().Get("Location"); loc != "/auth/login" {
		t.Fatalf("expected redirect to /auth/login, got %q", loc)
	}
}
