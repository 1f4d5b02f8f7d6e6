package dto

import "ppdb/model"

func NewUserProfile(u *model.User) UserProfile {
	return UserProfile{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Role:        u.Role,
		Permissions: u.Permissions,
	}
}

func NewProfileResponse(u *model.User) ProfileResponse {
	return ProfileResponse{
		UserProfile:  NewUserProfile(u),
		Alamat:       u.Alamat,
		NoHp:         u.NoHp,
		TanggalLahir: u.TanggalLahir,
		PhotoURL:     u.PhotoURL,
	}
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		FullName:     u.FullName,
		Email:        u.Email,
		Role:         u.Role,
		IsActive:     u.IsActive,
		Alamat:       u.Alamat,
		NoHp:         u.NoHp,
		TanggalLahir: u.TanggalLahir,
		CreatedAt:    u.CreatedAt,
	}
}

func NewUserResponses(users []*model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

func NewRegistrationResponse(r *model.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:            r.ID,
		Nama:          r.Nama,
		NISN:          r.NISN,
		Email:         r.Email,
		Alamat:        r.Alamat,
		AsalSekolah:   r.AsalSekolah,
		DokumenKK:     r.DokumenKK,
		DokumenIjazah: r.DokumenIjazah,
		DokumenSKHUN:  r.DokumenSKHUN,
		DokumenFoto:   r.DokumenFoto,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
	}
}

func NewRegistrationResponses(regs []*model.Registration) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		out = append(out, NewRegistrationResponse(r))
	}
	return out
}

func NewProductResponse(p *model.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Nama:      p.Nama,
		Harga:     p.Harga,
		Gambar:    p.Gambar,
		Kategori:  p.Kategori,
		Deskripsi: p.Deskripsi,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewProductResponses(products []*model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductResponse(p))
	}
	return out
}
