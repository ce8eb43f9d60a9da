package dto

// ── 认证模块请求 ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email      string `json:"email"       binding:"required,email"`
	Password   string `json:"password"    binding:"required,min=8,max=72"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest 刷新 Token 请求（也支持从 Cookie 读取）
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// ChangePasswordRequest 修改密码请求
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8,max=72"`
}

// CreateAccountRequest 创建管理端账号请求（仅 admin）
type CreateAccountRequest struct {
	Name     string  `json:"name"     binding:"required,min=2,max=100"`
	Email    string  `json:"email"    binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	Role     string  `json:"role"     binding:"required,oneof=admin leader member"`
	CellID   *string `json:"cell_id"  binding:"omitempty,uuid"`
}

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token,omitempty"` // Cookie 模式下可不返回
	ExpiresIn    int          `json:"expires_in"`              // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// UserResponse 账号信息响应（脱敏）
type UserResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Role               string  `json:"role"`
	CellID             *string `json:"cell_id,omitempty"`
	MustChangePassword bool    `json:"must_change_password"`
}

// UserDetailResponse 账号详细信息（GET /auth/me）
type UserDetailResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Role               string  `json:"role"`
	CellID             *string `json:"cell_id,omitempty"`
	CellName           *string `json:"cell_name,omitempty"`
	MustChangePassword bool    `json:"must_change_password"`
	CreatedAt          string  `json:"created_at"`
}
