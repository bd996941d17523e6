package main

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	pilotTokenExpiry = 24 * time.Hour
	rolePilot        = "pilot"
)

var errInvalidToken = errors.New("invalid token")

// PilotClaims authorise a connection to fly the ship of one session
type PilotClaims struct {
	SID  string `json:"sid"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Auth issues and checks pilot tokens
type Auth struct {
	secret []byte
	now    func() time.Time
}

// NewAuth creates an Auth signing with secret. A nil secret generates a
// random one, so tokens do not survive a restart.
func NewAuth(secret []byte) *Auth {
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			panic("failed to generate token secret: " + err.Error())
		}
	}
	return &Auth{secret: secret, now: time.Now}
}

// IssuePilotToken returns a signed token for the session
func (a *Auth) IssuePilotToken(sid string) (string, error) {
	now := a.now()
	claims := PilotClaims{
		SID:  sid,
		Role: rolePilot,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(pilotTokenExpiry)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign pilot token: %w", err)
	}
	return signed, nil
}

// ValidatePilotToken checks that token is a live pilot token for sid
func (a *Auth) ValidatePilotToken(tokenStr, sid string) error {
	var claims PilotClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if claims.Role != rolePilot || claims.SID != sid {
		return fmt.Errorf("%w: not a pilot of %s", errInvalidToken, sid)
	}
	return nil
}
