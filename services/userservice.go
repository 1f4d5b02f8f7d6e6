package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"ppdb/apierror"
	"ppdb/dto"
	"ppdb/model"
	"ppdb/store"
)

const (
	MsgUserNotFound     = "User not found"
	MsgUserRequired     = "Full name and email are required"
	MsgInvalidUserRole  = "Invalid role"
	MsgInvalidBirthDate = "tanggalLahir must be formatted as YYYY-MM-DD"
	MsgInvalidPhoto     = "Photo must be a base64 data:image URL"
	MsgPhotoTooLarge    = "Photo must be at most 1 MB"

	MaxPhotoBytes = 1 << 20
	birthDate     = "2006-01-02"
)

// UserService covers the admin account screens and the signed-in user's
// own profile.
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetUser(ctx, id)
	if err != nil {
		return nil, userError(err, "get user")
	}
	return u, nil
}

// ListStudents returns applicant accounts, newest first.
func (s *UserService) ListStudents(ctx context.Context) ([]*model.User, error) {
	users, err := s.users.ListUsers(ctx, model.RoleUser, model.RoleStudent)
	if err != nil {
		return nil, apierror.Internal("list users", err)
	}
	return users, nil
}

func (s *UserService) CountAll(ctx context.Context) (int, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return 0, apierror.Internal("list users", err)
	}
	return len(users), nil
}

// Create adds an account without a password; the holder cannot sign in
// until one is set through seeding.
func (s *UserService) Create(ctx context.Context, req dto.UserRequest) (*model.User, error) {
	fullName, email, role, err := validateUserRequest(req)
	if err != nil {
		return nil, err
	}
	u := &model.User{
		FullName: fullName,
		Email:    email,
		Role:     role,
		IsActive: true,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		return nil, userError(err, "create user")
	}
	return u, nil
}

func (s *UserService) Update(ctx context.Context, id string, req dto.UserRequest) (*model.User, error) {
	fullName, email, role, err := validateUserRequest(req)
	if err != nil {
		return nil, err
	}
	patch := store.UserPatch{FullName: &fullName, Email: &email, Role: &role}
	if err := s.users.UpdateUser(ctx, id, patch); err != nil {
		return nil, userError(err, "update user")
	}
	return s.Get(ctx, id)
}

func (s *UserService) ChangeRole(ctx context.Context, id, role string) error {
	role = strings.ToLower(strings.TrimSpace(role))
	if !model.ValidRole(role) {
		return apierror.Validation(MsgInvalidUserRole)
	}
	if err := s.users.UpdateUser(ctx, id, store.UserPatch{Role: &role}); err != nil {
		return userError(err, "change role")
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.DeleteUser(ctx, id); err != nil {
		return userError(err, "delete user")
	}
	return nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, req dto.UpdateProfileRequest) (*model.User, error) {
	alamat := strings.TrimSpace(req.Alamat)
	noHp := strings.TrimSpace(req.NoHp)
	tgl := strings.TrimSpace(req.TanggalLahir)
	if tgl != "" {
		if _, err := time.Parse(birthDate, tgl); err != nil {
			return nil, apierror.Validation(MsgInvalidBirthDate)
		}
	}
	patch := store.UserPatch{Alamat: &alamat, NoHp: &noHp, TanggalLahir: &tgl}
	if err := s.users.UpdateUser(ctx, id, patch); err != nil {
		return nil, userError(err, "update profile")
	}
	return s.Get(ctx, id)
}

// UpdatePhoto stores the picture inline as a data URL.
func (s *UserService) UpdatePhoto(ctx context.Context, id, photoURL string) error {
	if !strings.HasPrefix(photoURL, "data:image/") || !strings.Contains(photoURL, ";base64,") {
		return apierror.Validation(MsgInvalidPhoto)
	}
	if len(photoURL) > MaxPhotoBytes {
		return apierror.Validation(MsgPhotoTooLarge)
	}
	if err := s.users.UpdateUser(ctx, id, store.UserPatch{PhotoURL: &photoURL}); err != nil {
		return userError(err, "update photo")
	}
	return nil
}

func validateUserRequest(req dto.UserRequest) (fullName, email, role string, err error) {
	fullName = strings.TrimSpace(req.FullName)
	email = model.NormalizeEmail(req.Email)
	if fullName == "" || email == "" {
		return "", "", "", apierror.Validation(MsgUserRequired)
	}
	if !ValidEmail(email) {
		return "", "", "", apierror.Validation(MsgInvalidEmail)
	}
	role = strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleUser
	}
	if !model.ValidRole(role) {
		return "", "", "", apierror.Validation(MsgInvalidUserRole)
	}
	return fullName, email, role, nil
}

func userError(err error, op string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apierror.NotFound(MsgUserNotFound)
	case errors.Is(err, store.ErrDuplicate):
		return apierror.Conflict(MsgEmailTaken)
	}
	return apierror.Internal(op, err)
}
