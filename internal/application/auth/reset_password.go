package auth

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

const generatedPasswordLen = 12

// Alphabet for generated passwords. 'l' and 'o' lookalikes are left out so
// the password survives being typed from an email.
const (
	digits       = "0123456789"
	lowerLetters = "abcdefghijkmnpqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKMNPQRSTUVWXYZ"
	alphabet     = digits + lowerLetters + upperLetters
)

type ResetPassword struct {
	users    ports.UserRepository
	hasher   ports.PasswordHasher
	enqueuer ports.TaskEnqueuer
}

func NewResetPassword(users ports.UserRepository, hasher ports.PasswordHasher, enqueuer ports.TaskEnqueuer) *ResetPassword {
	return &ResetPassword{users: users, hasher: hasher, enqueuer: enqueuer}
}

// Execute replaces the account password with a generated one and emails it
// to the user. The new hash is committed before the email is enqueued, so a
// mail failure leaves a usable (if unread) password rather than a stale one.
func (uc *ResetPassword) Execute(ctx context.Context, email string) error {
	user, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return domerrors.ErrNotFound
	}
	password, err := GeneratePassword()
	if err != nil {
		return err
	}
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := uc.users.Update(ctx, user); err != nil {
		return err
	}
	return uc.enqueuer.EnqueueSendNewPassword(ctx, user.Email, password)
}

// GeneratePassword returns a random password with at least one digit, one
// upper-case and one lower-case character.
func GeneratePassword() (string, error) {
	required := []string{digits, upperLetters, lowerLetters}
	out := make([]byte, 0, generatedPasswordLen)
	for _, set := range required {
		c, err := randomFrom(set)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < generatedPasswordLen {
		c, err := randomFrom(alphabet)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	if err := shuffle(out); err != nil {
		return "", err
	}
	return string(out), nil
}

func randomFrom(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, err
	}
	return set[n.Int64()], nil
}

func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
