package service

import (
	"errors"
	"testing"

	"github.com/freshcart/freshcart/internal/config"
	"github.com/freshcart/freshcart/internal/repository"

	"gorm.io/gorm"
)

func newTestUserAuthService(db *gorm.DB) *UserAuthService {
	cfg := &config.Config{}
	cfg.UserJWT.SecretKey = "test-secret-key-0123456789abcdef0123456789abcdef"
	cfg.UserJWT.ExpireHours = 24
	cfg.Security.PasswordPolicy = config.PasswordPolicyConfig{
		MinLength:     8,
		RequireNumber: true,
	}
	return NewUserAuthService(cfg, repository.NewUserRepository(db))
}

func TestUserRegisterNormalizesEmail(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestUserAuthService(db)

	user, token, _, err := svc.Register("  Shopper@Example.COM ", "password1", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "shopper@example.com" {
		t.Fatalf("email should be normalized, got %s", user.Email)
	}
	if user.DisplayName != "shopper" {
		t.Fatalf("display name should default to mailbox part, got %s", user.DisplayName)
	}
	if token == "" {
		t.Fatalf("register should issue a token")
	}

	claims, err := svc.ParseUserJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != user.Email {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	// 同一邮箱的不同写法视为重复
	_, _, _, err = svc.Register("SHOPPER@example.com", "password1", "")
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists got %v", err)
	}
}

func TestUserRegisterValidation(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestUserAuthService(db)

	_, _, _, err := svc.Register("not-an-email", "password1", "")
	if !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("want ErrInvalidEmail got %v", err)
	}

	_, _, _, err = svc.Register("shopper@example.com", "short1", "")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("want ErrWeakPassword got %v", err)
	}
	var policyErr interface {
		Key() string
		Args() []interface{}
	}
	if !errors.As(err, &policyErr) {
		t.Fatalf("weak password error should expose key and args, got %T", err)
	}
	if policyErr.Key() != "error.password_min_length" {
		t.Fatalf("policy key want error.password_min_length got %s", policyErr.Key())
	}

	_, _, _, err = svc.Register("shopper@example.com", "passwords", "")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("missing digit want ErrWeakPassword got %v", err)
	}
}

func TestUserLogin(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestUserAuthService(db)

	registered, _, _, err := svc.Register("shopper@example.com", "password1", "Shopper")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, _, err := svc.Login("shopper@example.com", "password1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != registered.ID || token == "" {
		t.Fatalf("login should return user and token")
	}

	_, _, _, err = svc.Login("shopper@example.com", "wrong-pass")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password want ErrInvalidCredentials got %v", err)
	}
	_, _, _, err = svc.Login("other@example.com", "password1")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email want ErrInvalidCredentials got %v", err)
	}

	if err := db.Model(registered).Update("status", "disabled").Error; err != nil {
		t.Fatalf("disable user failed: %v", err)
	}
	_, _, _, err = svc.Login("shopper@example.com", "password1")
	if !errors.Is(err, ErrUserDisabled) {
		t.Fatalf("disabled user want ErrUserDisabled got %v", err)
	}
}

func TestUserChangePassword(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestUserAuthService(db)

	user, _, _, err := svc.Register("shopper@example.com", "password1", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-pass", "password2"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("wrong old password want ErrInvalidPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "password1", "short1"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("weak new password want ErrWeakPassword got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "password1", "password2"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	// 修改密码后旧 Token 版本失效
	reloaded, err := svc.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("reload user failed: %v", err)
	}
	if reloaded.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("token version should bump, got %d", reloaded.TokenVersion)
	}
	if reloaded.TokenInvalidBefore == nil {
		t.Fatalf("token invalid before should be set")
	}

	if _, _, _, err := svc.Login("shopper@example.com", "password2"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUserUpdateProfile(t *testing.T) {
	db := setupStoreDB(t)
	svc := newTestUserAuthService(db)

	user, _, _, err := svc.Register("shopper@example.com", "password1", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.UpdateProfile(user.ID, UpdateProfileInput{}); !errors.Is(err, ErrProfileEmpty) {
		t.Fatalf("empty input want ErrProfileEmpty got %v", err)
	}

	name := "  Fresh Shopper "
	addresses := []string{" 12 Market Street ", ""}
	updated, err := svc.UpdateProfile(user.ID, UpdateProfileInput{
		DisplayName: &name,
		Addresses:   &addresses,
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if updated.DisplayName != "Fresh Shopper" {
		t.Fatalf("display name want trimmed, got %q", updated.DisplayName)
	}
	if len(updated.Addresses) != 1 || updated.Addresses[0] != "12 Market Street" {
		t.Fatalf("addresses should be trimmed and filtered, got %v", updated.Addresses)
	}
}
