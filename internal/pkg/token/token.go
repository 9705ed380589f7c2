package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"parcelnet/internal/entities"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	District string `json:"district,omitempty"`
	ShopID   int64  `json:"shop_id,omitempty"`
	jwt.RegisteredClaims
}

// Issuer подписывает и проверяет bearer-токены. Токен непрозрачен для клиента,
// его содержимое никогда не принимается из тела запроса.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (i *Issuer) Issue(auth entities.AuthContext) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:   auth.UserID,
		Role:     auth.Role.String(),
		District: auth.District,
		ShopID:   auth.ShopID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (i *Issuer) Parse(raw string) (entities.AuthContext, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return entities.AuthContext{}, ErrInvalidToken
	}

	return entities.AuthContext{
		UserID:   claims.UserID,
		Role:     entities.Role(claims.Role),
		District: claims.District,
		ShopID:   claims.ShopID,
	}, nil
}
