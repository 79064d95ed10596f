//go:build unit || e2e

package builder

import (
	reqdto "coworking-booking/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
	FullName string
	Company  *string
	Unit     *string
}

func NewAuthBuilder() *AuthBuilder {
	company := "Acme Ltda"
	unit := "07"
	return &AuthBuilder{
		Email:    "test@example.com",
		Password: "password123",
		FullName: "Maria Souza",
		Company:  &company,
		Unit:     &unit,
	}
}

func (a *AuthBuilder) WithEmail(email string) *AuthBuilder {
	a.Email = email
	return a
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildSignupDTO() reqdto.SignupRequest {
	return reqdto.SignupRequest{
		Email:       a.Email,
		Password:    a.Password,
		FullName:    a.FullName,
		CompanyName: a.Company,
		Unit:        a.Unit,
	}
}
