package model

import (
	"strings"
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RoleStudent = "student"
)

// User is a document in the "users" collection. Password holds the bcrypt
// digest and must never leave the service layer.
type User struct {
	ID           string    `firestore:"-" bson:"_id"`
	FullName     string    `firestore:"fullName" bson:"fullName"`
	Email        string    `firestore:"email" bson:"email"`
	Password     string    `firestore:"password,omitempty" bson:"password,omitempty"`
	Role         string    `firestore:"role" bson:"role"`
	Permissions  []string  `firestore:"permissions,omitempty" bson:"permissions,omitempty"`
	IsActive     bool      `firestore:"isActive" bson:"isActive"`
	Alamat       string    `firestore:"alamat,omitempty" bson:"alamat,omitempty"`
	NoHp         string    `firestore:"noHp,omitempty" bson:"noHp,omitempty"`
	TanggalLahir string    `firestore:"tanggalLahir,omitempty" bson:"tanggalLahir,omitempty"`
	PhotoURL     string    `firestore:"photoURL,omitempty" bson:"photoURL,omitempty"`
	CreatedAt    time.Time `firestore:"createdAt,serverTimestamp" bson:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt,serverTimestamp" bson:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsStudent reports whether the account shows up in the admin student list.
func (u *User) IsStudent() bool {
	return u.Role == RoleUser || u.Role == RoleStudent
}

// ValidRole reports whether role is one of the stored account roles.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleStudent:
		return true
	}
	return false
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
