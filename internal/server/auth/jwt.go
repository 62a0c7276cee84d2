// Package auth issues and verifies the signed bearer tokens used by the
// accounts service. Tokens are stateless: there is no server-side revocation
// list, so a token stays valid until its natural expiry.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/retail-hub/accounts/internal/common"
)

// signingMethod is pinned so verification rejects tokens signed with any
// other algorithm.
var signingMethod = jwt.SigningMethodHS256

// IssueToken creates an HS256-signed token carrying the subject identifier,
// valid from now until now+validityDuration.
func IssueToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(signingMethod, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// SubjectFromToken verifies the token signature, algorithm, and expiry, and
// returns the subject identifier. Expired tokens yield common.ErrTokenExpired;
// every other failure, including a missing subject claim, yields
// common.ErrInvalidToken.
func SubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{signingMethod.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
