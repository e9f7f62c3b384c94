package router

import (
	"html/template"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"

	"github.com/user/mocorn/internal/handler"
	"github.com/user/mocorn/internal/middleware"
	"github.com/user/mocorn/internal/model"
)

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	loginOnly := middleware.Protect(middleware.Policy{RequireLogin: true})
	adminOnly := middleware.Protect(middleware.Policy{RequireLogin: true, Role: model.RoleAdmin})
	customerOnly := middleware.Protect(middleware.Policy{RequireLogin: true, Role: model.RoleCustomer})

	// ==================== 公开页面 ====================
	r.GET("/", h.Home)
	r.GET("/movielisting", h.MovieListing)
	r.GET("/tvlisting", h.TVListing)
	r.GET("/details/:id", h.Details)

	// ==================== 认证页面 ====================
	auth := r.Group("/auth")
	{
		auth.GET("/register", h.RegisterPage)
		auth.POST("/register", h.Register)
		auth.GET("/login", h.LoginPage)
		auth.POST("/login", h.Login)
		auth.POST("/logout", loginOnly, h.Logout)
	}

	// ==================== 仪表盘 ====================
	r.GET("/admin-dashboard", adminOnly, h.AdminDashboard)
	r.GET("/customer-dashboard", customerOnly, h.CustomerDashboard)

	// ==================== 条目管理（仅管理员）====================
	r.GET("/create", adminOnly, h.CreatePage)
	r.POST("/create", adminOnly, h.Create)

	media := r.Group("/mediadetails", adminOnly)
	{
		media.GET("/:id/edit", h.EditPage)
		media.POST("/:id/update", h.Update)
		media.POST("/:id/delete", h.Delete)
	}

	// 未匹配路由统一 404 页面
	r.NoRoute(h.NotFound)
}

// LoadTemplates 使用 multitemplate 加载模板，解决模板继承问题
func LoadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	// 获取布局和局部模板
	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	partials, err := filepath.Glob(templatesDir + "/partials/*.html")
	if err != nil {
		panic(err)
	}

	pages, err := filepath.Glob(templatesDir + "/pages/*.html")
	if err != nil {
		panic(err)
	}

	// 组装模板文件列表
	assemble := func(view string) []string {
		files := make([]string, 0, len(layouts)+len(partials)+1)
		files = append(files, layouts...)
		files = append(files, partials...)
		files = append(files, view)
		return files
	}

	// 模板函数
	funcMap := template.FuncMap{
		"kindLabel": func(isMovie bool) string {
			if isMovie {
				return "Movie"
			}
			return "TV Show"
		},
		"default": func(defaultValue, value interface{}) interface{} {
			switch v := value.(type) {
			case string:
				if v == "" {
					return defaultValue
				}
			case float64:
				if v == 0 {
					return defaultValue
				}
			case nil:
				return defaultValue
			}
			return value
		},
	}

	for _, page := range pages {
		name := strings.TrimSuffix(filepath.Base(page), ".html")
		r.AddFromFilesFuncs(name+".html", funcMap, assemble(page)...)
	}

	return r
}
