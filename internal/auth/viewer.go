// Package auth derives the viewer identity used for role-gated rendering.
// Tokens are decoded without verification: the API enforces authorization.
package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Role names understood by the UI.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Viewer is the person using the dashboard.
type Viewer struct {
	Username string
	Role     string
}

// Guest is the viewer used when no identity is configured.
var Guest = Viewer{Username: "guest", Role: RoleUser}

// IsAdmin reports whether the viewer may create, edit, delete and restock items.
func (v Viewer) IsAdmin() bool {
	return strings.EqualFold(v.Role, RoleAdmin)
}

type claims struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsAdmin  bool   `json:"isAdmin"`
	User     *struct {
		Username string `json:"username"`
		Role     string `json:"role"`
	} `json:"user"`
	jwt.RegisteredClaims
}

// FromToken reads username and role claims from a JWT without verifying it.
func FromToken(token string) (Viewer, error) {
	var c claims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &c); err != nil {
		return Viewer{}, fmt.Errorf("parse token: %w", err)
	}

	v := Viewer{Username: c.Username, Role: c.Role}
	if c.User != nil {
		if v.Username == "" {
			v.Username = c.User.Username
		}
		if v.Role == "" {
			v.Role = c.User.Role
		}
	}
	if v.Username == "" {
		v.Username = c.Name
	}
	if v.Username == "" {
		v.Username = c.Subject
	}
	if v.Role == "" {
		v.Role = RoleUser
		if c.IsAdmin {
			v.Role = RoleAdmin
		}
	}
	return v, nil
}

// Resolve picks the viewer from explicit settings and an optional token.
// Explicit username and role win over token claims. Without a token or a
// role the viewer is Guest.
func Resolve(token, username, role string) (Viewer, error) {
	v := Guest
	var err error
	if token != "" {
		var fromToken Viewer
		if fromToken, err = FromToken(token); err == nil {
			v = fromToken
		}
	}
	if username != "" {
		v.Username = username
	}
	if role != "" {
		v.Role = strings.ToLower(role)
	}
	return v, err
}
