package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/mocorn/internal/model"
)

// 启动时尝试创建的管理员账号
const (
	adminFirstName = "kadeem"
	adminLastName  = "best"
	adminEmail     = "kadeem@MoCorn.com"
	adminPassword  = "admin123"
)

// UserStore 认证服务依赖的用户存储
type UserStore interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// AuthService 注册与登录验证
type AuthService struct {
	store UserStore
}

func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// Register 注册新用户，角色固定为 customer
// 不做邮箱预检，冲突由存储层唯一索引暴露为插入错误
func (s *AuthService) Register(ctx context.Context, firstName, lastName, email, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.store.Create(ctx, &model.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleCustomer,
		CreatedAt:    time.Now().UTC(),
	})
}

// Authenticate 校验邮箱和密码
// 邮箱不存在与密码错误统一返回 (nil, nil)，不向调用方区分是哪个失败
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil
	}

	return user, nil
}

// SeedAdmin 启动时尝试创建固定管理员账号
// 只尝试插入，不做 upsert；重复启动时邮箱冲突由调用方记录日志后继续
func (s *AuthService) SeedAdmin(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.store.Create(ctx, &model.User{
		FirstName:    adminFirstName,
		LastName:     adminLastName,
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	return err
}
