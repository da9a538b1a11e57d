package auth

import (
	"context"
	"regexp"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"github.com/yosefin19/sinac-turismo-api/internal/domain"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type RegisterInput struct {
	Email    string
	Password string
	Admin    bool
}

type Register struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewRegister(users ports.UserRepository, hasher ports.PasswordHasher) *Register {
	return &Register{users: users, hasher: hasher}
}

func (uc *Register) Execute(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if !emailRegex.MatchString(input.Email) {
		return nil, domerrors.ErrInvalidCredentials
	}
	existing, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrEmailExists
	}
	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		Admin:        input.Admin,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
