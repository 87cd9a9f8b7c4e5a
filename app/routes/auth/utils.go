package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const sessionCookie = "cbc_session"

const sessionTTL = 24 * time.Hour

// Session is the typed per-request identity resolved from the signed
// cookie. TeacherID is empty for principals.
type Session struct {
	UserID    string
	Email     string
	Name      string
	Role      string
	TeacherID string
}

type sessionClaims struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	TeacherID string `json:"teacher_id,omitempty"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a fresh token carrying the whole session
// record. Logging in again replaces every claim, so no field from a
// previous role survives a role switch.
func GenerateSessionToken(secret []byte, sess Session) (string, error) {
	claims := sessionClaims{
		Email:     sess.Email,
		Name:      sess.Name,
		Role:      sess.Role,
		TeacherID: sess.TeacherID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sess.UserID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "cbc-connect",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateSessionToken parses and verifies a token. A session is only
// returned when the signature, expiry, and identity fields all hold.
func ValidateSessionToken(secret []byte, tokenString string) (*Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.Subject == "" || claims.Role == "" {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &Session{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      claims.Role,
		TeacherID: claims.TeacherID,
	}, nil
}
