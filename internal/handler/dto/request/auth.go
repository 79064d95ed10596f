package request

import (
	"coworking-booking/internal/domain/user"
	"coworking-booking/internal/usecase/commands"
)

type SignupRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	FullName    string  `json:"full_name" binding:"required,max=200"`
	CompanyName *string `json:"company_name" binding:"omitempty,max=200"`
	Unit        *string `json:"unit" binding:"omitempty,unit"`
}

func (r *SignupRequest) ToCommand() commands.SignupRequest {
	return commands.SignupRequest{
		Email:       r.Email,
		Password:    r.Password,
		FullName:    r.FullName,
		CompanyName: r.CompanyName,
		Unit:        r.Unit,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Email, r.Password)
}

// RefreshRequest may be empty when the refresh token travels in its cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
