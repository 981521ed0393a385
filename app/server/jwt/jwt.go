package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWT struct {
	key []byte
}

type User struct {
	ID      uint
	Name    string
	Expires int64 // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

// Sign mints a bearer token carrying the user's identity. The claim shape is
// fixed; only the timestamps and the token id vary between calls.
func (j *JWT) Sign(user *User) (string, error) {
	claims := jwt.MapClaims{
		"userId":   user.ID,
		"userName": user.Name,
		"iat":      time.Now().Unix(),
		"exp":      user.Expires,
		"jti":      uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(j.key)
}

// Parse validates signature and expiry and extracts the identity claims.
// Any failure (bad signature, expired, malformed, wrong claim types) is an
// invalid credential; callers do not need to tell the cases apart.
func (j *JWT) Parse(tokenString string) (*User, error) {
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	user := &User{}
	if id, ok := claims["userId"].(float64); ok {
		user.ID = uint(id)
	} else {
		return nil, errors.New("invalid userId claim")
	}
	if name, ok := claims["userName"].(string); ok {
		user.Name = name
	} else {
		return nil, errors.New("invalid userName claim")
	}
	if exp, ok := claims["exp"].(float64); ok {
		user.Expires = int64(exp)
	} else {
		return nil, errors.New("invalid exp claim")
	}

	return user, nil
}
