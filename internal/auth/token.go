// internal/auth/token.go
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenManager struct {
	secret        []byte
	expiryPeriod  time.Duration
	refreshPeriod time.Duration
}

func NewTokenManager(secret string, expiryPeriod, refreshPeriod time.Duration) *TokenManager {
	return &TokenManager{
		secret:        []byte(secret),
		expiryPeriod:  expiryPeriod,
		refreshPeriod: refreshPeriod,
	}
}

type Claims struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Refresh    bool   `json:"refresh,omitempty"`
	jwt.RegisteredClaims
}

// TokenPair carries the access/refresh token pair issued at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (tm *TokenManager) generate(employeeID, email string, refresh bool, ttl time.Duration) (string, error) {
	claims := Claims{
		EmployeeID: employeeID,
		Email:      email,
		Refresh:    refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}

// Generate issues a short-lived access token.
func (tm *TokenManager) Generate(employeeID, email string) (string, error) {
	return tm.generate(employeeID, email, false, tm.expiryPeriod)
}

// GeneratePair issues an access token plus a longer-lived refresh token.
func (tm *TokenManager) GeneratePair(employeeID, email string) (*TokenPair, error) {
	access, err := tm.generate(employeeID, email, false, tm.expiryPeriod)
	if err != nil {
		return nil, err
	}
	refresh, err := tm.generate(employeeID, email, true, tm.refreshPeriod)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (tm *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
