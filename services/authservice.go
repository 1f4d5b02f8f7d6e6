package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"ppdb/apierror"
	"ppdb/dto"
	"ppdb/model"
	"ppdb/store"
)

const (
	MsgLoginRequired      = "Email and password are required"
	MsgInvalidCredentials = "Email or password is incorrect"
	MsgRegisterRequired   = "Full name, email and password are required"
	MsgInvalidRole        = "Invalid role. Must be admin or user"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgPasswordTooLong    = "Password must be at most 72 bytes"
	MsgInvalidEmail       = "Invalid email format"
	MsgEmailTaken         = "Email is already registered"

	MinPasswordLength = 6
	// bcrypt ignores input past 72 bytes.
	maxPasswordBytes  = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

type AuthService struct {
	users  store.UserStore
	hasher PasswordHasher
	// dummyHash is compared against when the email is unknown so a miss
	// costs the same as a wrong password.
	dummyHash string
}

func NewAuthService(users store.UserStore, hasher PasswordHasher) *AuthService {
	s := &AuthService{users: users, hasher: hasher}
	if h, err := hasher.Hash("ppdb-placeholder-password"); err == nil {
		s.dummyHash = h
	}
	return s
}

func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*model.User, error) {
	email := model.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apierror.Validation(MsgLoginRequired)
	}

	u, err := s.users.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		s.hasher.Compare(s.dummyHash, req.Password)
		return nil, apierror.Unauthorized(MsgInvalidCredentials)
	}
	if err != nil {
		return nil, apierror.Internal("find user", err)
	}
	if u.Password == "" || !s.hasher.Compare(u.Password, req.Password) {
		return nil, apierror.Unauthorized(MsgInvalidCredentials)
	}
	return u, nil
}

// Register creates a self-service account. The requested role is checked
// for shape only; new accounts are always plain users.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := model.NormalizeEmail(req.Email)
	if fullName == "" || email == "" || req.Password == "" {
		return nil, apierror.Validation(MsgRegisterRequired)
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleAdmin && role != model.RoleUser {
		return nil, apierror.Validation(MsgInvalidRole)
	}

	if utf8.RuneCountInString(req.Password) < MinPasswordLength {
		return nil, apierror.Validation(MsgPasswordTooShort)
	}
	if len(req.Password) > maxPasswordBytes {
		return nil, apierror.Validation(MsgPasswordTooLong)
	}
	if !ValidEmail(email) {
		return nil, apierror.Validation(MsgInvalidEmail)
	}

	if _, err := s.users.FindUserByEmail(ctx, email); err == nil {
		return nil, apierror.Conflict(MsgEmailTaken)
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, apierror.Internal("find user", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apierror.Internal("hash password", err)
	}

	u := &model.User{
		FullName: fullName,
		Email:    email,
		Password: hash,
		Role:     model.RoleUser,
		IsActive: true,
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apierror.Conflict(MsgEmailTaken)
		}
		return nil, apierror.Internal("create user", err)
	}
	return u, nil
}
