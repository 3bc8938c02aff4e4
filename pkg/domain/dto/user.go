package dto

// UserDTO 是用户信息的只读视图，ID 为对外公开ID。
type UserDTO struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	IsVerified bool     `json:"isVerified"`
	Roles      []string `json:"roles"`
}

// UserChangeEmailDTO 是管理员替用户发起邮箱变更的请求体。
type UserChangeEmailDTO struct {
	UserID string `json:"userId" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
}

// UserChangePasswordDTO 是管理员直接重设用户密码的请求体。
type UserChangePasswordDTO struct {
	UserID             string `json:"userId" binding:"required"`
	NewPassword        string `json:"newPassword" binding:"required,min=8,max=64"`
	ConfirmNewPassword string `json:"confirmNewPassword" binding:"required,eqfield=NewPassword"`
}

// UserUpdateRolesDTO 是整体替换用户角色的请求体。
type UserUpdateRolesDTO struct {
	UserID string   `json:"userId" binding:"required"`
	Roles  []string `json:"roles"`
}
