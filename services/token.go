package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gonotes/apperr"
	"gonotes/utils"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. A missing token translates to 401 at the
// boundary; invalid and expired tokens translate to 400.
var (
	ErrTokenMissing = apperr.WithCode(apperr.KindAuth, apperr.CodeTokenMissing, "access denied")
	ErrTokenInvalid = apperr.WithCode(apperr.KindAuth, apperr.CodeTokenInvalid, "invalid token")
	ErrTokenExpired = apperr.WithCode(apperr.KindAuth, apperr.CodeTokenExpired, "token expired")
)

// GenerateToken issues a signed HS256 token carrying the user id and an
// expiry exactly JWT_EXPIRATION_TIME seconds (default one hour) from
// now. Tokens are not persisted server-side; there is no revocation
// list, which is a known limitation of this design.
func GenerateToken(userID string) (string, error) {
	expirationTime := time.Now().Add(time.Duration(utils.JWTExpirationTime) * time.Second)

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(utils.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateToken verifies a raw Authorization header value and returns
// the embedded user id. A "Bearer " prefix is stripped when present but
// is not required.
func ValidateToken(raw string) (string, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), "Bearer "))
	if raw == "" {
		return "", ErrTokenMissing
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrTokenInvalid
	}

	return userID, nil
}
