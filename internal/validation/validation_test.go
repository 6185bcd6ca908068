package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{"Valid password", "Password123", false},
		{"Too short", "Pass1", true},
		{"No uppercase", "password123", true},
		{"No lowercase", "PASSWORD123", true},
		{"No digit", "PasswordABC", true},
		{"Too long", strings.Repeat("Aa1", 50), true},
		{"Exactly 8 chars", "Passw0rd", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name        string
		username    string
		expectError bool
	}{
		{"Valid username", "dev_user-1", false},
		{"Too short", "ab", true},
		{"Too long", strings.Repeat("a", 31), true},
		{"Illegal characters", "user name!", true},
		{"Leading underscore", "_user", true},
		{"Trailing hyphen", "user-", true},
		{"Minimum length", "abc", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		expectError bool
	}{
		{"Valid email", "dev@example.com", false},
		{"Subdomain", "dev@mail.example.co.uk", false},
		{"Plus addressing", "dev+tag@example.com", false},
		{"Missing at sign", "example.com", true},
		{"Missing TLD", "dev@example", true},
		{"Spaces", "dev @example.com", true},
		{"Too long", strings.Repeat("a", 250) + "@x.io", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
