package store

import "ppdb/model"

// Fields returns the patch keyed by document field name. Both document
// drivers write exactly these keys plus updatedAt.
func (p UserPatch) Fields() map[string]any {
	f := map[string]any{}
	setString(f, "fullName", p.FullName)
	setString(f, "email", p.Email)
	setString(f, "password", p.Password)
	setString(f, "role", p.Role)
	if p.IsActive != nil {
		f["isActive"] = *p.IsActive
	}
	setString(f, "alamat", p.Alamat)
	setString(f, "noHp", p.NoHp)
	setString(f, "tanggalLahir", p.TanggalLahir)
	setString(f, "photoURL", p.PhotoURL)
	return f
}

// Apply copies the set fields onto u.
func (p UserPatch) Apply(u *model.User) {
	applyString(&u.FullName, p.FullName)
	applyString(&u.Email, p.Email)
	applyString(&u.Password, p.Password)
	applyString(&u.Role, p.Role)
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	applyString(&u.Alamat, p.Alamat)
	applyString(&u.NoHp, p.NoHp)
	applyString(&u.TanggalLahir, p.TanggalLahir)
	applyString(&u.PhotoURL, p.PhotoURL)
}

func (p RegistrationPatch) Fields() map[string]any {
	f := map[string]any{}
	setString(f, "nama", p.Nama)
	setString(f, "nisn", p.NISN)
	setString(f, "email", p.Email)
	setString(f, "alamat", p.Alamat)
	setString(f, "asalSekolah", p.AsalSekolah)
	setString(f, "status", p.Status)
	return f
}

func (p RegistrationPatch) Apply(r *model.Registration) {
	applyString(&r.Nama, p.Nama)
	applyString(&r.NISN, p.NISN)
	applyString(&r.Email, p.Email)
	applyString(&r.Alamat, p.Alamat)
	applyString(&r.AsalSekolah, p.AsalSekolah)
	applyString(&r.Status, p.Status)
}

func (p ProductPatch) Fields() map[string]any {
	f := map[string]any{}
	setString(f, "nama", p.Nama)
	if p.Harga != nil {
		f["harga"] = *p.Harga
	}
	setString(f, "gambar", p.Gambar)
	setString(f, "kategori", p.Kategori)
	setString(f, "deskripsi", p.Deskripsi)
	return f
}

func (p ProductPatch) Apply(pr *model.Product) {
	applyString(&pr.Nama, p.Nama)
	if p.Harga != nil {
		pr.Harga = *p.Harga
	}
	applyString(&pr.Gambar, p.Gambar)
	applyString(&pr.Kategori, p.Kategori)
	applyString(&pr.Deskripsi, p.Deskripsi)
}

func setString(f map[string]any, key string, v *string) {
	if v != nil {
		f[key] = *v
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
