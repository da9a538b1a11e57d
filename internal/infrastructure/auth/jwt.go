package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yosefin19/sinac-turismo-api/internal/application/ports"
	domerrors "github.com/yosefin19/sinac-turismo-api/internal/domain/errors"
)

// TokenIssuer implements ports.TokenIssuer with HS256. Tokens are
// stateless: once issued they stay valid until exp, there is no
// server-side revocation.
type TokenIssuer struct {
	secret []byte
	expiry time.Duration
}

func NewTokenIssuer(secret []byte, expiry time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, expiry: expiry}
}

func (t *TokenIssuer) Issue(subject int64) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(subject, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) Decode(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, domerrors.ErrTokenExpired
		}
		return 0, domerrors.ErrInvalidToken
	}
	if !token.Valid {
		return 0, domerrors.ErrInvalidToken
	}
	subject, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, domerrors.ErrInvalidToken
	}
	return subject, nil
}

var _ ports.TokenIssuer = (*TokenIssuer)(nil)
