package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt"
)

// Load the secret from an environment variable. Fallback to a default (not recommended in production).
var secretKey = []byte(getSecret())

func getSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "MYCARE"
	}
	return secret
}

// GenerateToken creates a signed JWT token carrying the numeric user id and role.
// The token expires after the specified duration.
func GenerateToken(userID int64, rol string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"rol":    rol,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
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
		return secretKey, nil
	})
}

// ExtractIdentityFromToken extracts the user id and role from a valid JWT token string.
// A token whose payload lacks a numeric userId claim yields an error, never a zero id.
func ExtractIdentityFromToken(tokenString string) (int64, string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", errors.New("invalid token")
	}

	// JSON numbers decode as float64 in MapClaims.
	rawID, ok := claims["userId"].(float64)
	if !ok || rawID <= 0 {
		return 0, "", errors.New("token does not contain a valid 'userId' claim")
	}

	rol, _ := claims["rol"].(string)

	return int64(rawID), rol, nil
}

// ExpiryFromToken returns the remaining lifetime of a valid token.
// Used to align cache TTLs with the token's own expiry.
func ExpiryFromToken(tokenString string) (time.Duration, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return 0, errors.New("token does not contain an 'exp' claim")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining <= 0 {
		return 0, errors.New("token already expired")
	}
	return remaining, nil
}
