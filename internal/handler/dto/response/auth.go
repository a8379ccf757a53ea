package response

import (
	"kelurahan-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token    string    `json:"token"`
	AdminID  uuid.UUID `json:"adminId"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

func FromLoginResult(res *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:    res.Token,
		AdminID:  res.AdminID,
		Username: res.Username,
		Email:    res.Email,
	}
}
