// Package store defines the typed document-store capability the services
// consume. Each collection has its own interface; fsstore, mongostore and
// memstore implement all three.
package store

import (
	"context"
	"errors"

	"ppdb/model"
)

const (
	ColUsers         = "users"
	ColRegistrations = "registrations"
	ColProducts      = "products"
)

var (
	ErrNotFound  = errors.New("store: document not found")
	ErrDuplicate = errors.New("store: duplicate email")
)

// UserPatch lists the fields an update may set; nil means unchanged.
type UserPatch struct {
	FullName     *string
	Email        *string
	Password     *string
	Role         *string
	IsActive     *bool
	Alamat       *string
	NoHp         *string
	TanggalLahir *string
	PhotoURL     *string
}

type RegistrationPatch struct {
	Nama        *string
	NISN        *string
	Email       *string
	Alamat      *string
	AsalSekolah *string
	Status      *string
}

type ProductPatch struct {
	Nama      *string
	Harga     *float64
	Gambar    *string
	Kategori  *string
	Deskripsi *string
}

type UserStore interface {
	// CreateUser assigns u.ID. It returns ErrDuplicate when another user
	// already holds u.Email, checked atomically with the insert.
	CreateUser(ctx context.Context, u *model.User) error
	GetUser(ctx context.Context, id string) (*model.User, error)
	// FindUserByEmail returns ErrNotFound when no user matches.
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
	// ListUsers returns users whose role is in roles, or all users when
	// roles is empty, newest first.
	ListUsers(ctx context.Context, roles ...string) ([]*model.User, error)
	UpdateUser(ctx context.Context, id string, p UserPatch) error
	DeleteUser(ctx context.Context, id string) error
}

type RegistrationStore interface {
	CreateRegistration(ctx context.Context, r *model.Registration) error
	GetRegistration(ctx context.Context, id string) (*model.Registration, error)
	// ListRegistrations returns all registrations newest first, optionally
	// restricted to one status.
	ListRegistrations(ctx context.Context, status string) ([]*model.Registration, error)
	ListRegistrationsByEmail(ctx context.Context, email string) ([]*model.Registration, error)
	UpdateRegistration(ctx context.Context, id string, p RegistrationPatch) error
	DeleteRegistration(ctx context.Context, id string) error
}

type ProductStore interface {
	CreateProduct(ctx context.Context, p *model.Product) error
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	FindProductByName(ctx context.Context, nama string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]*model.Product, error)
	UpdateProduct(ctx context.Context, id string, p ProductPatch) error
	DeleteProduct(ctx context.Context, id string) error
}

// Store bundles the collections and owns the underlying client.
type Store interface {
	UserStore
	RegistrationStore
	ProductStore
	Close() error
}
