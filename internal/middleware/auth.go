package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/user/mocorn/internal/model"
)

// sessionUserKey Session 中存放用户快照的键
const sessionUserKey = "userinfo"

// Policy 路由的访问策略
// RequireLogin 表示必须登录；Role 非空时还要求指定角色
type Policy struct {
	RequireLogin bool
	Role         string
}

// Decision 访问判定结果
type Decision int

const (
	// DecisionAllow 放行
	DecisionAllow Decision = iota
	// DecisionLoginRequired 未登录，需跳转登录页
	DecisionLoginRequired
	// DecisionForbidden 已登录但角色不符，需跳转首页
	DecisionForbidden
)

// Evaluate 按策略判定访问
// 未登录优先于角色不符：没有会话时永远返回 DecisionLoginRequired
func Evaluate(user *model.SessionUser, p Policy) Decision {
	if !p.RequireLogin && p.Role == "" {
		return DecisionAllow
	}
	if user == nil {
		return DecisionLoginRequired
	}
	if p.Role != "" && user.Role != p.Role {
		return DecisionForbidden
	}
	return DecisionAllow
}

// Protect 按策略保护路由，拒绝时以重定向而非错误页响应
func Protect(p Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch Evaluate(CurrentUser(c), p) {
		case DecisionLoginRequired:
			c.Redirect(http.StatusFound, "/auth/login")
			c.Abort()
		case DecisionForbidden:
			c.Redirect(http.StatusFound, "/")
			c.Abort()
		default:
			c.Next()
		}
	}
}

// CurrentUser 读取当前会话的用户快照，匿名时返回 nil
func CurrentUser(c *gin.Context) *model.SessionUser {
	session := sessions.Default(c)
	if userinfo := session.Get(sessionUserKey); userinfo != nil {
		if su, ok := userinfo.(model.SessionUser); ok {
			return &su
		}
	}
	return nil
}

// SetCurrentUser 把用户快照写入会话
func SetCurrentUser(c *gin.Context, user model.SessionUser) error {
	session := sessions.Default(c)
	session.Set(sessionUserKey, user)
	return session.Save()
}

// ClearCurrentUser 清除会话中的用户快照
func ClearCurrentUser(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)
	return session.Save()
}
