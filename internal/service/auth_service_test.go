package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"seouldream/backend/config"
	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
	"seouldream/backend/internal/repository"
	"seouldream/backend/pkg/jwt"
)

func newTestJWTManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-0123456789abcdef",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 7 * 24 * time.Hour,
	})
}

func setupTestAuthService() (AuthService, *repository.Repository) {
	repo := newMockRepository()
	svc := NewAuthService(repo, newTestJWTManager(), nil, zap.NewNop())
	return svc, repo
}

func seedUser(repo *repository.Repository, id, email, password, role string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	repo.User.(*mockUserRepo).users[id] = &model.User{
		UserID:       id,
		Name:         "관리자",
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
}

// ── Login ──

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "u1", "admin@seouldream.org", "SeoulDream2026!", "admin")

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@seouldream.org",
		Password: "SeoulDream2026!",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("应签发 access / refresh token 对")
	}
	if result.User.Role != "admin" {
		t.Errorf("期望 role=admin，实际=%s", result.User.Role)
	}
	if result.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("ExpiresIn 应等于 access token 有效期秒数，实际=%d", result.ExpiresIn)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "u1", "admin@seouldream.org", "SeoulDream2026!", "admin")

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@seouldream.org",
		Password: "wrong-password",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _ := setupTestAuthService()

	// 账号不存在与密码错误返回同一错误，避免账号枚举
	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@seouldream.org",
		Password: "whatever123",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── Refresh ──

func TestAuthService_Refresh_Success(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "u1", "admin@seouldream.org", "SeoulDream2026!", "admin")

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@seouldream.org",
		Password: "SeoulDream2026!",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	result, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("刷新后应签发新的 access token")
	}
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "u1", "admin@seouldream.org", "SeoulDream2026!", "admin")

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "admin@seouldream.org",
		Password: "SeoulDream2026!",
	})

	// access token 不能用于刷新
	_, err := svc.Refresh(context.Background(), login.AccessToken)
	if !errors.Is(err, ErrNotRefreshToken) {
		t.Errorf("期望 ErrNotRefreshToken，实际: %v", err)
	}
}

// ── ChangePassword ──

func TestAuthService_ChangePassword(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "u1", "admin@seouldream.org", "OldPassword1!", "admin")

	err := svc.ChangePassword(context.Background(), "u1", &dto.ChangePasswordRequest{
		OldPassword: "OldPassword1!",
		NewPassword: "NewPassword2!",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	// 旧密码不再可用
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "admin@seouldream.org", Password: "OldPassword1!",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("修改后旧密码不应可用")
	}

	// 新密码可用
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "admin@seouldream.org", Password: "NewPassword2!",
	}); err != nil {
		t.Errorf("新密码登录应成功: %v", err)
	}
}

func TestAuthService_ChangePassword_WrongOld(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "u1", "admin@seouldream.org", "OldPassword1!", "admin")

	err := svc.ChangePassword(context.Background(), "u1", &dto.ChangePasswordRequest{
		OldPassword: "not-the-password",
		NewPassword: "NewPassword2!",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("期望 ErrWrongPassword，实际: %v", err)
	}
}

// ── CreateAccount ──

func TestAuthService_CreateAccount(t *testing.T) {
	svc, repo := setupTestAuthService()
	seedUser(repo, "u1", "admin@seouldream.org", "SeoulDream2026!", "admin")

	result, err := svc.CreateAccount(context.Background(), "u1", &dto.CreateAccountRequest{
		Name:     "목자",
		Email:    "leader@seouldream.org",
		Password: "Leader2026!",
		Role:     "leader",
	})
	if err != nil {
		t.Fatalf("CreateAccount 应成功: %v", err)
	}
	if !result.MustChangePassword {
		t.Error("管理员创建的账号首次登录应强制改密")
	}

	// 重复邮箱被拒
	_, err = svc.CreateAccount(context.Background(), "u1", &dto.CreateAccountRequest{
		Name:     "목자2",
		Email:    "leader@seouldream.org",
		Password: "Leader2026!",
		Role:     "leader",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际: %v", err)
	}
}
