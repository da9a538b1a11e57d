package ports

// PasswordHasher hashes and verifies passwords (bcrypt).
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer signs and validates the bearer tokens handed to mobile
// clients. The subject is the user ID.
type TokenIssuer interface {
	Issue(subject int64) (string, error)
	// Decode verifies signature and expiry and returns the subject.
	// Expired tokens fail with errors.ErrTokenExpired, everything else
	// with errors.ErrInvalidToken.
	Decode(token string) (int64, error)
}
