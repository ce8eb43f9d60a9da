package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"seouldream/backend/internal/dto"
	"seouldream/backend/internal/model"
	"seouldream/backend/internal/repository"
	"seouldream/backend/pkg/jwt"
	"seouldream/backend/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrWrongPassword      = errors.New("原密码不正确")
	ErrEmailTaken         = errors.New("该邮箱已被注册")
	ErrUserNotFound       = errors.New("账号不存在")
	ErrNotRefreshToken    = errors.New("不是有效的 refresh token")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessToken string) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	CreateAccount(ctx context.Context, operatorID string, req *dto.CreateAccountRequest) (*dto.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
// rdb 为 nil 时降级运行：登出不再使旧 Token 失效
func NewAuthService(repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不区分"账号不存在"与"密码错误"，避免账号枚举
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询账号失败", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(user, req.RememberMe)
}

// ────────────────────── Refresh ──────────────────────

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != "refresh" {
		return nil, ErrNotRefreshToken
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("黑名单查询失败，放行刷新请求", zap.Error(err))
		} else if blacklisted {
			return nil, jwt.ErrTokenInvalid
		}
	}

	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询账号失败", zap.Error(err))
		return nil, err
	}

	// 刷新时轮换 refresh token，旧 token 加入黑名单
	if s.rdb != nil {
		if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
			s.logger.Warn("旧 refresh token 加入黑名单失败", zap.Error(err))
		}
	}

	return s.issueTokens(user, claims.RememberMe)
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.jwtMgr.ParseToken(accessToken)
	if err != nil {
		// 已过期或无效的 Token 无需处理
		return nil
	}

	if s.rdb == nil {
		s.logger.Warn("Redis 不可用，登出未使 Token 失效", zap.String("user_id", claims.UserID))
		return nil
	}

	if err := s.rdb.BlacklistToken(ctx, claims.ID, time.Until(claims.ExpiresAt.Time)); err != nil {
		s.logger.Error("Token 加入黑名单失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── GetCurrentUser ──────────────────────

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserDetailResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("查询账号失败", zap.Error(err))
		return nil, err
	}

	resp := &dto.UserDetailResponse{
		ID:                 user.UserID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		CellID:             user.CellID,
		MustChangePassword: user.MustChangePassword,
		CreatedAt:          user.CreatedAt.Format(time.RFC3339),
	}
	if user.Cell != nil {
		resp.CellName = &user.Cell.Name
	}
	return resp, nil
}

// ────────────────────── ChangePassword ──────────────────────

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		s.logger.Error("查询账号失败", zap.Error(err))
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return err
	}

	user.PasswordHash = string(hash)
	user.MustChangePassword = false
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新密码失败", zap.Error(err))
		return err
	}

	s.logger.Info("密码已修改", zap.String("user_id", userID))
	return nil
}

// ────────────────────── CreateAccount ──────────────────────

func (s *authService) CreateAccount(ctx context.Context, operatorID string, req *dto.CreateAccountRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询账号失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:               req.Name,
		Email:              req.Email,
		PasswordHash:       string(hash),
		Role:               req.Role,
		CellID:             req.CellID,
		MustChangePassword: true, // 初始密码由管理员设置，首次登录须修改
	}
	user.CreatedBy = &operatorID
	user.UpdatedBy = &operatorID

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("创建账号失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("账号已创建",
		zap.String("user_id", user.UserID),
		zap.String("role", user.Role),
		zap.String("operator", operatorID))

	return &dto.UserResponse{
		ID:                 user.UserID,
		Name:               user.Name,
		Email:              user.Email,
		Role:               user.Role,
		CellID:             user.CellID,
		MustChangePassword: user.MustChangePassword,
	}, nil
}

// ── 内部辅助方法 ──

// issueTokens 为账号签发 access / refresh token 对
func (s *authService) issueTokens(user *model.User, rememberMe bool) (*dto.TokenResponse, error) {
	cellID := ""
	if user.CellID != nil {
		cellID = *user.CellID
	}

	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.Role, cellID)
	if err != nil {
		s.logger.Error("签发 access token 失败", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.Role, cellID, rememberMe)
	if err != nil {
		s.logger.Error("签发 refresh token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwtMgr.AccessTokenTTL().Seconds()),
		User: dto.UserResponse{
			ID:                 user.UserID,
			Name:               user.Name,
			Email:              user.Email,
			Role:               user.Role,
			CellID:             user.CellID,
			MustChangePassword: user.MustChangePassword,
		},
	}, nil
}
