package response

import (
	"github.com/ceccimesquita/papillon/internal/domain/entities"
)

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		Username: u.Username,
		Role:     u.Role,
	}
}
