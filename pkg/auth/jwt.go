package auth

import (
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// JWTConfig holds token validation settings. The finance engine never issues
// tokens; the gateway signs them and this service only verifies.
type JWTConfig struct {
	// PublicKeyPEM is a PEM-encoded RSA public key for verifying RS256
	// tokens signed by the gateway.
	PublicKeyPEM string

	// Secret is the HMAC-SHA256 symmetric key, used only when no public
	// key is configured.
	Secret string

	// Issuer, when set, must match the token's iss claim.
	Issuer string
}

// JWTService verifies bearer tokens minted upstream.
type JWTService struct {
	issuer string
	verify func(token *jwt.Token) (interface{}, error)
}

// NewJWTService builds a validator from the configured key material.
// A public key selects RS256 verification; a bare secret selects HS256.
func NewJWTService(cfg JWTConfig) (*JWTService, error) {
	svc := &JWTService{issuer: cfg.Issuer}

	switch {
	case cfg.PublicKeyPEM != "":
		pubKey, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
		}
		svc.verify = func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v (expected RS256)", token.Header["alg"])
			}
			return pubKey, nil
		}

	case cfg.Secret != "":
		secret := []byte(cfg.Secret)
		svc.verify = func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v (expected HS256)", token.Header["alg"])
			}
			return secret, nil
		}

	default:
		return nil, fmt.Errorf("jwt configuration requires PublicKeyPEM or Secret")
	}

	return svc, nil
}

// ValidateToken parses a token string, checks its signature and standard
// claims, and returns the embedded Claims.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, s.verify)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return nil, fmt.Errorf("invalid issuer: got %q, want %q", claims.Issuer, s.issuer)
	}

	return claims, nil
}

// LoadKeyFromFile reads a PEM-encoded key from a file path.
func LoadKeyFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key file %q: %w", path, err)
	}
	return data, nil
}
