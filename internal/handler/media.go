package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/mocorn/internal/service"
)

// ==================== 目录页面 ====================

// MovieListing 全部电影列表
func (h *Handler) MovieListing(c *gin.Context) {
	movies, err := h.Catalog.ListByKind(c.Request.Context(), true)
	if err != nil {
		log.Printf("加载电影列表失败: %v", err)
	}

	c.HTML(http.StatusOK, "allmovies.html", h.RenderData(c, gin.H{
		"Title":  "All Movies - " + h.Config.SiteName,
		"Movies": movies,
	}))
}

// TVListing 全部剧集列表
func (h *Handler) TVListing(c *gin.Context) {
	tvshows, err := h.Catalog.ListByKind(c.Request.Context(), false)
	if err != nil {
		log.Printf("加载剧集列表失败: %v", err)
	}

	c.HTML(http.StatusOK, "alltvshows.html", h.RenderData(c, gin.H{
		"Title":   "All TV Shows - " + h.Config.SiteName,
		"TVShows": tvshows,
	}))
}

// Details 条目详情页
func (h *Handler) Details(c *gin.Context) {
	media, err := h.Catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || media == nil {
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "details.html", h.RenderData(c, gin.H{
		"Title": media.Title + " - " + h.Config.SiteName,
		"Media": media,
	}))
}

// ==================== 管理操作 ====================

// CreatePage 创建条目表单
func (h *Handler) CreatePage(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", h.RenderData(c, gin.H{
		"Title": "Add Media - " + h.Config.SiteName,
	}))
}

// Create 创建条目，成功后回到表单方便继续录入
func (h *Handler) Create(c *gin.Context) {
	var in service.MediaInput
	if err := c.ShouldBind(&in); err != nil {
		c.HTML(http.StatusOK, "create.html", h.RenderData(c, gin.H{
			"Title": "Add Media - " + h.Config.SiteName,
			"Error": "Title is required.",
		}))
		return
	}

	media, err := h.Catalog.Create(c.Request.Context(), in)
	if err != nil {
		c.HTML(http.StatusOK, "create.html", h.RenderData(c, gin.H{
			"Title": "Add Media - " + h.Config.SiteName,
			"Error": "Failed to save, please try again.",
		}))
		return
	}

	log.Printf("条目已创建: %s (%s)", media.Title, media.ID)
	c.Redirect(http.StatusFound, "/create")
}

// EditPage 编辑条目表单
func (h *Handler) EditPage(c *gin.Context) {
	media, err := h.Catalog.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || media == nil {
		h.NotFound(c)
		return
	}

	c.HTML(http.StatusOK, "edit.html", h.RenderData(c, gin.H{
		"Title": "Edit " + media.Title + " - " + h.Config.SiteName,
		"Media": media,
	}))
}

// Update 整条替换条目后跳转详情页
// 表单缺省的字段会被清空，不做合并
func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var in service.MediaInput
	if err := c.ShouldBind(&in); err != nil {
		media, ferr := h.Catalog.GetByID(c.Request.Context(), id)
		if ferr != nil || media == nil {
			h.NotFound(c)
			return
		}
		c.HTML(http.StatusOK, "edit.html", h.RenderData(c, gin.H{
			"Title": "Edit " + media.Title + " - " + h.Config.SiteName,
			"Media": media,
			"Error": "Title is required.",
		}))
		return
	}

	media, err := h.Catalog.Update(c.Request.Context(), id, in)
	if err != nil || media == nil {
		h.NotFound(c)
		return
	}

	log.Printf("条目已更新: %s (%s)", media.Title, media.ID)
	c.Redirect(http.StatusFound, "/details/"+id)
}

// Delete 硬删除条目后回到首页
func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.Catalog.Delete(c.Request.Context(), id)
	if err != nil || !ok {
		h.NotFound(c)
		return
	}

	log.Printf("条目已删除: %s", id)
	c.Redirect(http.StatusFound, "/")
}
