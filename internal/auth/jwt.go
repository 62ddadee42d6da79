package auth

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"
)

// JwtIssuer is the issuer every access token is signed with
const JwtIssuer = "JobPortal"

// AccessTokenDuration is how long a standard access token stays valid
const AccessTokenDuration = time.Hour

var (
	secretMu  sync.RWMutex
	secretKey = []byte(os.Getenv("SECRET_KEY"))
)

// SetSecretKey replaces the HMAC key tokens are signed and verified with
func SetSecretKey(key string) {
	secretMu.Lock()
	defer secretMu.Unlock()
	secretKey = []byte(key)
}

func getSecretKey() []byte {
	secretMu.RLock()
	defer secretMu.RUnlock()
	return secretKey
}

// GenerateStandardToken signs an access token for the user valid for AccessTokenDuration.
// The second result is reserved for a refresh token and is always empty.
func GenerateStandardToken(userID uuid.UUID) (string, string, error) {
	return GenerateTokenWithDuration(userID, AccessTokenDuration, JwtIssuer)
}

// GenerateTokenWithDuration signs an access token with a custom lifetime and issuer
func GenerateTokenWithDuration(userID uuid.UUID, duration time.Duration, issuer string) (string, string, error) {
	now := time.Now()
	generatedAccessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    issuer,
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signedToken, err := generatedAccessToken.SignedString(getSecretKey())
	if err != nil {
		return "", "", fmt.Errorf("Failed to sign token: %s", err)
	}

	return signedToken, "", nil
}

// ValidatedToken parses an HS256 token into RegisteredClaims and checks its signature and expiry
func ValidatedToken(encodeToken string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(encodeToken, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, isvalid := token.Method.(*jwt.SigningMethodHMAC); !isvalid {
			return nil, fmt.Errorf("Invalid token")
		}
		return getSecretKey(), nil
	})
}
