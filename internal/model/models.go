package model

import (
	"time"
)

// 用户角色
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User 用户模型
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// SessionUser 专门用于 Session 存储的用户信息快照
// 登录时从 User 复制，不是数据库记录的实时引用
type SessionUser struct {
	FirstName string
	LastName  string
	Email     string
	Role      string
}

// MediaItem 影视条目（电影或剧集）
type MediaItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Synopsis    string  `json:"synopsis"`
	Genre       string  `json:"genre"`
	Rating      float64 `json:"rating"`
	SmallPoster string  `json:"small_poster"`
	LargePoster string  `json:"large_poster"`
	TrailerLink string  `json:"trailer_link"`
	PricePerDay float64 `json:"price_per_day"`
	IsMovie     bool    `json:"is_movie"`
	IsFeatured  bool    `json:"is_featured"`
}
