package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/flizwph/clothing-brand-sub001/domain"
)

// JWTServiceImpl implements domain.TokenService with HMAC-SHA256 signed
// access tokens. The token version claim ties every token to the user's
// current version so a single bump revokes them all.
type JWTServiceImpl struct {
	secretKey      []byte
	issuer         string
	accessTokenTTL time.Duration
}

const tokenVersionClaim = "token_version"

// NewJWTService creates a new JWT service
func NewJWTService(secretKey string, issuer string, accessTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey:      []byte(secretKey),
		issuer:         issuer,
		accessTokenTTL: accessTTL,
	}
}

// GenerateAccessToken implements domain.TokenService
func (j *JWTServiceImpl) GenerateAccessToken(username string, tokenVersion int) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":             username,
		tokenVersionClaim: tokenVersion,
		"iss":             j.issuer,
		"iat":             now.Unix(),
		"exp":             now.Add(j.accessTokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// AccessTokenTTL implements domain.TokenService
func (j *JWTServiceImpl) AccessTokenTTL() time.Duration {
	return j.accessTokenTTL
}

// ValidateAccessToken implements domain.TokenService. Signature and
// expiry only; the version check against the user row belongs to the
// token guard.
func (j *JWTServiceImpl) ValidateAccessToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		if token != nil && token.Claims != nil {
			if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil && exp.Before(time.Now()) {
				return nil, domain.ErrTokenExpired
			}
		}
		return nil, domain.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.ErrTokenExpired
	}

	// Tokens minted before versioning shipped carry no version claim;
	// they are treated as version 1.
	version := 1
	if v, ok := claims[tokenVersionClaim].(float64); ok {
		version = int(v)
	}

	return &domain.TokenClaims{
		Subject:      sub,
		TokenVersion: version,
		IssuedAt:     int64(iat),
		ExpiresAt:    int64(exp),
	}, nil
}
