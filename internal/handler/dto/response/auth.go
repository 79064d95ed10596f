package response

import (
	"coworking-booking/internal/usecase/commands"
	"coworking-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeResponse struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Role       string    `json:"role"`
	IsApproved bool      `json:"is_approved"`
}

type LoginResponse struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         *MeResponse `json:"user"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func FromAuthorizedUser(v *queries.AuthorizedUserView) (*MeResponse, error) {
	res, err := copyAs[MeResponse](v)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func NewLoginResponse(result *commands.LoginResult, v *queries.AuthorizedUserView) (*LoginResponse, error) {
	me, err := FromAuthorizedUser(v)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
		User:         me,
	}, nil
}
