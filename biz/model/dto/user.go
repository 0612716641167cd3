package dto

type UserResp struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Tel       string `json:"tel,omitempty"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

type RegisterReq struct {
	Name     string `json:"name" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email,max=128"`
	Tel      string `json:"tel" validate:"max=32"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

type RegisterResp struct {
	User      UserResp `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email,max=128"`
	Password string `json:"password" validate:"required,max=72"`
}

type LoginResp struct {
	User      UserResp `json:"user"`
	Token     string   `json:"token"`
	ExpiresAt int64    `json:"expires_at"`
}

type LogoutResp struct{}

type GetMeResp struct {
	User UserResp `json:"user"`
}

type ListUsersResp struct {
	Count int        `json:"count"`
	Users []UserResp `json:"users"`
}

type GetUserResp struct {
	User UserResp `json:"user"`
}

type UpdateUserReq struct {
	Name     *string `json:"name" validate:"omitempty,max=64"`
	Email    *string `json:"email" validate:"omitempty,email,max=128"`
	Tel      *string `json:"tel" validate:"omitempty,max=32"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=user admin"`
}

type UpdateUserResp struct {
	User UserResp `json:"user"`
}

type RemoveUserResp struct{}
