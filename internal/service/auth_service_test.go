package service

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/user/mocorn/internal/model"
	"github.com/user/mocorn/internal/repository"
)

type stubUserStore struct {
	users  []*model.User
	nextID int
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{}
}

func cloneUser(u *model.User) *model.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (s *stubUserStore) Create(_ context.Context, user *model.User) (*model.User, error) {
	// 模拟 users.email 唯一索引
	for _, u := range s.users {
		if u.Email == user.Email {
			return nil, repository.ErrEmailTaken
		}
	}

	s.nextID++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("user-%d", s.nextID)
	s.users = append(s.users, created)
	return cloneUser(created), nil
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

func TestAuthService_Register(t *testing.T) {
	svc := NewAuthService(newStubUserStore())

	user, err := svc.Register(context.Background(), "A", "B", "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected store-assigned ID")
	}
	if user.Role != model.RoleCustomer {
		t.Fatalf("expected role %q, got %q", model.RoleCustomer, user.Role)
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc := NewAuthService(newStubUserStore())

	if _, err := svc.Register(context.Background(), "A", "B", "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	user, err := svc.Authenticate(context.Background(), "a@x.com", "pw1")
	if err != nil {
		t.Fatalf("Authenticate returned error: %v", err)
	}
	if user == nil {
		t.Fatalf("expected user, got nil")
	}
	if user.Role != model.RoleCustomer {
		t.Fatalf("unexpected role: %q", user.Role)
	}
}

func TestAuthService_Authenticate_UndifferentiatedFailure(t *testing.T) {
	svc := NewAuthService(newStubUserStore())

	if _, err := svc.Register(context.Background(), "A", "B", "a@x.com", "pw1"); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// 邮箱不存在和密码错误必须表现完全一致
	for name, creds := range map[string][2]string{
		"未知邮箱": {"nobody@x.com", "pw1"},
		"密码错误": {"a@x.com", "wrongpw"},
	} {
		user, err := svc.Authenticate(context.Background(), creds[0], creds[1])
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if user != nil {
			t.Fatalf("%s: expected authentication failure", name)
		}
	}
}

func TestAuthService_SeedAdmin(t *testing.T) {
	store := newStubUserStore()
	svc := NewAuthService(store)

	if err := svc.SeedAdmin(context.Background()); err != nil {
		t.Fatalf("first SeedAdmin returned error: %v", err)
	}

	admin, err := store.FindByEmail(context.Background(), adminEmail)
	if err != nil || admin == nil {
		t.Fatalf("seeded admin not found: %v", err)
	}
	if admin.Role != model.RoleAdmin {
		t.Fatalf("expected role %q, got %q", model.RoleAdmin, admin.Role)
	}

	// 第二次启动：插入冲突返回错误，由调用方记录后继续，不是 upsert
	if err := svc.SeedAdmin(context.Background()); err == nil {
		t.Fatalf("expected duplicate seed to fail")
	}
	if len(store.users) != 1 {
		t.Fatalf("expected exactly one admin record, got %d", len(store.users))
	}
}
