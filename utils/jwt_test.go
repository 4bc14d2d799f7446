package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateToken(t *testing.T) {
	const secret = "test-secret"

	tokenStr, err := GenerateToken(42, "admin", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse token: %v, valid = %v", err, token.Valid)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not MapClaims")
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v, want admin", claims["role"])
	}
	if uint(claims["userId"].(float64)) != 42 {
		t.Errorf("userId = %v, want 42", claims["userId"])
	}
}

func TestGenerateTokenRejectsWrongSecret(t *testing.T) {
	tokenStr, err := GenerateToken(1, "customer", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return []byte("wrong-secret"), nil
	})
	if err == nil && token.Valid {
		t.Fatal("token validated with the wrong secret")
	}
}
