package dto

import "time"

type ProfileResponse struct {
	UserProfile
	Alamat       string `json:"alamat,omitempty"`
	NoHp         string `json:"noHp,omitempty"`
	TanggalLahir string `json:"tanggalLahir,omitempty"`
	PhotoURL     string `json:"photoURL,omitempty"`
}

type UpdateProfileRequest struct {
	Alamat       string `json:"alamat"`
	NoHp         string `json:"noHp"`
	TanggalLahir string `json:"tanggalLahir"`
}

type UpdatePhotoRequest struct {
	PhotoURL string `json:"photoURL" binding:"required"`
}

// UserRequest is the admin add/edit form for accounts.
type UserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"isActive"`
	Alamat       string    `json:"alamat,omitempty"`
	NoHp         string    `json:"noHp,omitempty"`
	TanggalLahir string    `json:"tanggalLahir,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
