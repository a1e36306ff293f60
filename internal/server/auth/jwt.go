package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/bloglist/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingSecret is returned when tokens are requested without a signing key.
var ErrMissingSecret = errors.New("token signing secret is not configured")

// Claims is the identity carried by a token: the user id and username next to
// the registered iat/exp claims.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	UserID   string `json:"id"`
}

// now is swapped in tests.
var now = time.Now

// GenerateToken signs an HS256 token for the given user that expires after ttl.
func GenerateToken(userID, username string, secretKey []byte, ttl time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", ErrMissingSecret
	}

	issued := now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
		},
		Username: username,
		UserID:   userID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString.
// Expired tokens yield common.ErrTokenExpired, anything else that fails
// verification yields common.ErrTokenInvalid.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	if len(secretKey) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}

	if !token.Valid || claims.UserID == "" {
		return nil, common.ErrTokenInvalid
	}

	return claims, nil
}
