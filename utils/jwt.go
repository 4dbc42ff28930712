package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"kycdesk/config"

	"github.com/golang-jwt/jwt"
)

func getSecret() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		secret = "kycdesk-dev-secret"
	}
	return []byte(secret)
}

// GenerateStaffToken creates a signed JWT for a staff user. The role and
// agency travel in the claims so review routing never needs a second lookup.
func GenerateStaffToken(staffID, role, agencyID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":    staffID,
		"role":   role,
		"agency": agencyID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getSecret())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return getSecret(), nil
	})
}

// ExtractStaffClaims extracts staff ID, role and agency from a valid token.
func ExtractStaffClaims(tokenString string) (staffID, role, agencyID string, err error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", "", errors.New("invalid token")
	}

	staffID, ok = claims["sub"].(string)
	if !ok || staffID == "" {
		return "", "", "", errors.New("token does not contain a valid 'sub' claim")
	}
	role, _ = claims["role"].(string)
	agencyID, _ = claims["agency"].(string)
	return staffID, role, agencyID, nil
}
