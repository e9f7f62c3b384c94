package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/user/mocorn/internal/middleware"
	"github.com/user/mocorn/internal/model"
	"github.com/user/mocorn/internal/repository"
)

// ==================== 认证页面 ====================

// RegisterPage 注册页面
func (h *Handler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", h.RenderData(c, gin.H{
		"Title": "Register - " + h.Config.SiteName,
	}))
}

// Register 注册处理，成功后跳转登录页
func (h *Handler) Register(c *gin.Context) {
	firstName := c.PostForm("firstName")
	lastName := c.PostForm("lastName")
	email := c.PostForm("email")
	password := c.PostForm("password")

	if _, err := h.Auth.Register(c.Request.Context(), firstName, lastName, email, password); err != nil {
		msg := "Registration failed, please try again."
		if errors.Is(err, repository.ErrEmailTaken) {
			msg = "That email is already registered."
		}
		c.HTML(http.StatusOK, "register.html", h.RenderData(c, gin.H{
			"Title": "Register - " + h.Config.SiteName,
			"Error": msg,
		}))
		return
	}

	c.Redirect(http.StatusFound, "/auth/login")
}

// LoginPage 登录页面
func (h *Handler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", h.RenderData(c, gin.H{
		"Title": "Login - " + h.Config.SiteName,
	}))
}

// Login 登录处理
// 邮箱不存在和密码错误展示同一条提示，不暴露具体原因
func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.Auth.Authenticate(c.Request.Context(), email, password)
	if err != nil || user == nil {
		c.HTML(http.StatusOK, "login.html", h.RenderData(c, gin.H{
			"Title": "Login - " + h.Config.SiteName,
			"Error": "Invalid email or password.",
		}))
		return
	}

	// 把用户快照写入会话
	if err := middleware.SetCurrentUser(c, model.SessionUser{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
	}); err != nil {
		c.HTML(http.StatusOK, "login.html", h.RenderData(c, gin.H{
			"Title": "Login - " + h.Config.SiteName,
			"Error": "Login failed, please try again.",
		}))
		return
	}

	// 按角色跳转
	if user.Role == model.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin-dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/customer-dashboard")
}

// Logout 登出，销毁会话后回到登录页
func (h *Handler) Logout(c *gin.Context) {
	_ = middleware.ClearCurrentUser(c)
	c.Redirect(http.StatusFound, "/auth/login")
}
