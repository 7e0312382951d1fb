// Copyright (c) 2026 Caboomlog. All rights reserved.

// Package sec holds the token and role primitives used for authorization.
//
// # Architecture
//
// Access tokens are issued by the caboomlog account service and signed with RS256.
// This API only verifies them, so it never holds the private key.
package sec

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims is the payload of an access token.
//
// The caller's identity is read from the token itself, so authenticating a request
// never touches the database. Blog ownership is still checked per request because it
// is not part of the token.
type AuthClaims struct {
	jwt.RegisteredClaims

	UserID   string `json:"uid"`
	Username string `json:"unm"`
}

// TokenService verifies RS256 access tokens.
type TokenService struct {
	publicKey *rsa.PublicKey
	issuer    string
}

// NewTokenService loads the RSA public key from disk.
func NewTokenService(publicKeyPath, issuer string) (*TokenService, error) {
	publicKeyData, err := os.ReadFile(publicKeyPath)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to read public key from %s: %w", publicKeyPath, err)
	}

	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyData)
	if err != nil {
		return nil, fmt.Errorf("sec: failed to parse public key: %w", err)
	}

	return NewTokenServiceFromKey(publicKey, issuer), nil
}

// NewTokenServiceFromKey builds a service from an already parsed key.
func NewTokenServiceFromKey(publicKey *rsa.PublicKey, issuer string) *TokenService {
	return &TokenService{
		publicKey: publicKey,
		issuer:    issuer,
	}
}

// VerifyToken checks the signature, expiry and issuer of tokenString.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.publicKey, nil
	}, jwt.WithIssuer(service.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}
