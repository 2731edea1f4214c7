package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type claims struct {
	Role      string `json:"role"`
	CourierID int64  `json:"courier_id,omitempty"`
	jwt.RegisteredClaims
}

// Verifier проверяет HS256 токены, выпущенные сервисом авторизации.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) (*Verifier, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Verifier{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

func (v *Verifier) Parse(tokenStr string) (Principal, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		options = append(options, jwt.WithIssuer(v.issuer))
	}

	c := &claims{}
	tok, err := jwt.ParseWithClaims(tokenStr, c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, options...)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !tok.Valid {
		return Principal{}, ErrInvalidToken
	}

	principal := Principal{
		Subject: c.Subject,
		Role:    Role(strings.ToLower(c.Role)),
	}

	switch principal.Role {
	case RoleCourier:
		if c.CourierID <= 0 {
			id, err := strconv.ParseInt(c.Subject, 10, 64)
			if err != nil || id <= 0 {
				return Principal{}, fmt.Errorf("%w: courier token without courier id", ErrInvalidToken)
			}
			c.CourierID = id
		}
		principal.CourierID = c.CourierID
	case RoleAdmin:
		if principal.Subject == "" {
			return Principal{}, fmt.Errorf("%w: admin token without subject", ErrInvalidToken)
		}
	default:
		return Principal{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, c.Role)
	}

	return principal, nil
}

// Issue выпускает токен. Используется в тестах и локальной разработке.
func (v *Verifier) Issue(p Principal, ttl time.Duration) (string, error) {
	now := time.Now()
	c := claims{
		Role:      string(p.Role),
		CourierID: p.CourierID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Subject,
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}
