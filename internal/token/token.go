// Package token issues and decodes the bearer credentials that carry a
// user's identity between requests.
package token

import (
	"fmt"
	"strconv"
	"time"

	"agora/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer   = "agora-api"
	audience = "agora-client"

	tokenTTL = 7 * 24 * time.Hour
)

// Claims is the identity payload extracted from a bearer credential.
type Claims struct {
	SubjectID uint
	Username  string
}

// Codec signs and structurally decodes identity tokens. Decode performs no
// signature verification; that is the auth middleware's responsibility.
type Codec struct {
	secret []byte
}

// NewCodec returns a Codec signing with the given HMAC secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign creates a signed token carrying the user's identity.
func (c *Codec) Sign(userID uint, username string) (string, error) {
	if len(c.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"iss":      issuer,
		"aud":      audience,
		"exp":      now.Add(tokenTTL).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      generateJTI(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode extracts the identity claims from a token without verifying the
// signature. It fails only on structural problems: a string that is not a
// three-part JWT, or claims that are missing or mistyped.
func (c *Codec) Decode(raw string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return nil, models.NewUnauthorizedError("Malformed token")
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, models.NewUnauthorizedError("Invalid token claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, models.NewUnauthorizedError("Invalid subject claim")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, models.NewUnauthorizedError("Invalid user ID in token")
	}

	username, ok := mapClaims["username"].(string)
	if !ok || username == "" {
		return nil, models.NewUnauthorizedError("Invalid username claim")
	}

	return &Claims{SubjectID: uint(userID), Username: username}, nil
}

// Issuer returns the issuer value stamped into signed tokens.
func (c *Codec) Issuer() string { return issuer }

// Audience returns the audience value stamped into signed tokens.
func (c *Codec) Audience() string { return audience }

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
