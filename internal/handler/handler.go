package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/user/mocorn/internal/config"
	"github.com/user/mocorn/internal/middleware"
	"github.com/user/mocorn/internal/model"
	"github.com/user/mocorn/internal/repository"
	"github.com/user/mocorn/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Auth    *service.AuthService
	Catalog *service.CatalogService
	Config  *config.Config
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Auth:    service.NewAuthService(repos.User),
		Catalog: service.NewCatalogService(repos.Media),
		Config:  cfg,
	}
}

// RenderData 统一封装公共渲染数据
func (h *Handler) RenderData(c *gin.Context, data gin.H) gin.H {
	res := gin.H{
		"SiteName": h.Config.SiteName,
		"Path":     c.Request.URL.Path,
		"UserRole": "",
	}

	// 注入当前会话用户
	if user := middleware.CurrentUser(c); user != nil {
		res["UserInfo"] = *user
		res["UserRole"] = user.Role
	}

	// 合并传入的数据
	for k, v := range data {
		res[k] = v
	}

	return res
}

// Home 首页，两条精选栏并发查询
func (h *Handler) Home(c *gin.Context) {
	var featuredMovies, featuredTV []*model.MediaItem

	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		featuredMovies, err = h.Catalog.Featured(ctx, true)
		return err
	})
	g.Go(func() error {
		var err error
		featuredTV, err = h.Catalog.Featured(ctx, false)
		return err
	})
	if err := g.Wait(); err != nil {
		// 查询失败时精选栏留空，首页照常渲染
		log.Printf("加载精选条目失败: %v", err)
	}

	c.HTML(http.StatusOK, "home.html", h.RenderData(c, gin.H{
		"Title":          h.Config.SiteName + " - Movie & TV Rentals",
		"FeaturedMovies": featuredMovies,
		"FeaturedTV":     featuredTV,
		"FeaturedImages": []string{"/static/img/img1.jpg", "/static/img/img2.jpg", "/static/img/img3.jpg"},
	}))
}

// AdminDashboard 管理员仪表盘
func (h *Handler) AdminDashboard(c *gin.Context) {
	movieCount, tvCount, _ := h.Catalog.Counts(c.Request.Context())

	c.HTML(http.StatusOK, "admin_dashboard.html", h.RenderData(c, gin.H{
		"Title":      "Admin Dashboard - " + h.Config.SiteName,
		"MovieCount": movieCount,
		"TVCount":    tvCount,
	}))
}

// CustomerDashboard 顾客仪表盘
func (h *Handler) CustomerDashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "customer_dashboard.html", h.RenderData(c, gin.H{
		"Title": "My Dashboard - " + h.Config.SiteName,
	}))
}

// NotFound 404 页面，未匹配路由和缺失记录统一走这里
func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.RenderData(c, gin.H{
		"Title": "Page Not Found - " + h.Config.SiteName,
	}))
}
