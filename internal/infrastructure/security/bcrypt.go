package security

import (
	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements ports.PasswordHasher. The cost parameter keeps
// brute-forcing expensive; raise it as hardware gets faster.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Verify reports whether password matches the stored hash. A mismatch or a
// malformed hash is false, never an error.
func (h *BcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)
