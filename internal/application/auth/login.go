package auth

import (
	"context"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  *domain.User
}

type Login struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
	issuer ports.TokenIssuer
}

func NewLogin(users ports.UserRepository, hasher ports.PasswordHasher, issuer ports.TokenIssuer) *Login {
	return &Login{users: users, hasher: hasher, issuer: issuer}
}

// Execute verifies credentials and mints a bearer token. A missing account
// and a wrong password report the same error so the response never leaks
// which one it was.
func (uc *Login) Execute(ctx context.Context, input LoginInput) (*LoginResult, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !uc.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, domerrors.ErrInvalidCredentials
	}
	token, err := uc.issuer.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, User: user}, nil
}
