package dto

import "time"

// RegistrationForm is the text part of the public multipart form.
type RegistrationForm struct {
	Nama        string `form:"nama"`
	NISN        string `form:"nisn"`
	Email       string `form:"email"`
	Alamat      string `form:"alamat"`
	AsalSekolah string `form:"asalSekolah"`
}

// RegistrationDocuments holds the uploaded file names.
type RegistrationDocuments struct {
	KK      string
	Ijazah  string
	SKHUN   string
	PasFoto string
}

// RegistrationRequest is the admin add/edit form.
type RegistrationRequest struct {
	Nama        string `json:"nama"`
	NISN        string `json:"nisn"`
	Email       string `json:"email"`
	Alamat      string `json:"alamat"`
	AsalSekolah string `json:"asalSekolah"`
	Status      string `json:"status"`
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RegistrationResponse struct {
	ID            string    `json:"id"`
	Nama          string    `json:"nama"`
	NISN          string    `json:"nisn"`
	Email         string    `json:"email"`
	Alamat        string    `json:"alamat"`
	AsalSekolah   string    `json:"asalSekolah"`
	DokumenKK     string    `json:"dokumenKK"`
	DokumenIjazah string    `json:"dokumenIjazah"`
	DokumenSKHUN  string    `json:"dokumenSKHUN"`
	DokumenFoto   string    `json:"dokumenFoto"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type DashboardResponse struct {
	TotalUsers         int            `json:"totalUsers"`
	TotalRegistrations int            `json:"totalRegistrations"`
	ByStatus           map[string]int `json:"byStatus"`
}
