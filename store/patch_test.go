package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ppdb/model"
)

func ptr[T any](v T) *T { return &v }

func TestUserPatch_FieldsOnlySetValues(t *testing.T) {
	p := UserPatch{Role: ptr(model.RoleStudent), Alamat: ptr("Jl. Merdeka 1"), IsActive: ptr(false)}

	assert.Equal(t, map[string]any{
		"role":     model.RoleStudent,
		"alamat":   "Jl. Merdeka 1",
		"isActive": false,
	}, p.Fields())
	assert.Empty(t, UserPatch{}.Fields())
}

func TestUserPatch_Apply(t *testing.T) {
	u := &model.User{FullName: "Ana", Email: "ana@example.com", Role: model.RoleUser, IsActive: true}
	UserPatch{FullName: ptr("Ana Lestari"), NoHp: ptr("0812")}.Apply(u)

	assert.Equal(t, "Ana Lestari", u.FullName)
	assert.Equal(t, "0812", u.NoHp)
	assert.Equal(t, "ana@example.com", u.Email)
	assert.True(t, u.IsActive)
}

func TestRegistrationPatch(t *testing.T) {
	r := &model.Registration{Nama: "Budi", Status: model.StatusPending}
	p := RegistrationPatch{Status: ptr(model.StatusAccepted)}

	assert.Equal(t, map[string]any{"status": model.StatusAccepted}, p.Fields())
	p.Apply(r)
	assert.Equal(t, model.StatusAccepted, r.Status)
	assert.Equal(t, "Budi", r.Nama)
}

func TestProductPatch(t *testing.T) {
	pr := &model.Product{Nama: "Seragam", Harga: 150000}
	p := ProductPatch{Harga: ptr(175000.0), Kategori: ptr("Perlengkapan")}

	assert.Equal(t, map[string]any{"harga": 175000.0, "kategori": "Perlengkapan"}, p.Fields())
	p.Apply(pr)
	assert.Equal(t, 175000.0, pr.Harga)
	assert.Equal(t, "Seragam", pr.Nama)
}
