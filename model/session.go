package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims are embedded in the auth_token cookie. Role is the role at
// issue time; authorization always re-reads the stored user.
type SessionClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Session is the request-scoped view of the signed-in user, built from the
// stored user record rather than from anything the client sent.
type Session struct {
	UserID      string
	Email       string
	FullName    string
	Role        string
	Permissions []string
}

func NewSession(u *User) *Session {
	return &Session{
		UserID:      u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}
