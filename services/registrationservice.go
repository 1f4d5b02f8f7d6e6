package services

import (
	"context"
	"errors"
	"strings"

	"ppdb/apierror"
	"ppdb/dto"
	"ppdb/model"
	"ppdb/store"
)

const (
	MsgRegistrationRequired = "Nama, NISN and email are required"
	MsgRegistrationNotFound = "Registration not found"
	MsgInvalidStatus        = "Invalid status"
)

type RegistrationService struct {
	registrations store.RegistrationStore
}

func NewRegistrationService(registrations store.RegistrationStore) *RegistrationService {
	return &RegistrationService{registrations: registrations}
}

// Submit records a public application; it always starts pending review.
func (s *RegistrationService) Submit(ctx context.Context, form dto.RegistrationForm, docs dto.RegistrationDocuments) (*model.Registration, error) {
	r, err := newRegistration(form.Nama, form.NISN, form.Email, form.Alamat, form.AsalSekolah)
	if err != nil {
		return nil, err
	}
	r.DokumenKK = docs.KK
	r.DokumenIjazah = docs.Ijazah
	r.DokumenSKHUN = docs.SKHUN
	r.DokumenFoto = docs.PasFoto
	r.Status = model.StatusPending

	if err := s.registrations.CreateRegistration(ctx, r); err != nil {
		return nil, apierror.Internal("create registration", err)
	}
	return r, nil
}

// Create is the admin entry form; status defaults to pending.
func (s *RegistrationService) Create(ctx context.Context, req dto.RegistrationRequest) (*model.Registration, error) {
	r, err := newRegistration(req.Nama, req.NISN, req.Email, req.Alamat, req.AsalSekolah)
	if err != nil {
		return nil, err
	}
	status, err := statusOrPending(req.Status)
	if err != nil {
		return nil, err
	}
	r.Status = status

	if err := s.registrations.CreateRegistration(ctx, r); err != nil {
		return nil, apierror.Internal("create registration", err)
	}
	return r, nil
}

func (s *RegistrationService) Get(ctx context.Context, id string) (*model.Registration, error) {
	r, err := s.registrations.GetRegistration(ctx, id)
	if err != nil {
		return nil, registrationError(err, "get registration")
	}
	return r, nil
}

func (s *RegistrationService) List(ctx context.Context, status string) ([]*model.Registration, error) {
	if status != "" && !model.ValidStatus(status) {
		return nil, apierror.Validation(MsgInvalidStatus)
	}
	regs, err := s.registrations.ListRegistrations(ctx, status)
	if err != nil {
		return nil, apierror.Internal("list registrations", err)
	}
	return regs, nil
}

// ListMine returns the submissions made under the signed-in user's email.
func (s *RegistrationService) ListMine(ctx context.Context, email string) ([]*model.Registration, error) {
	regs, err := s.registrations.ListRegistrationsByEmail(ctx, model.NormalizeEmail(email))
	if err != nil {
		return nil, apierror.Internal("list registrations", err)
	}
	return regs, nil
}

func (s *RegistrationService) Update(ctx context.Context, id string, req dto.RegistrationRequest) (*model.Registration, error) {
	r, err := newRegistration(req.Nama, req.NISN, req.Email, req.Alamat, req.AsalSekolah)
	if err != nil {
		return nil, err
	}
	patch := store.RegistrationPatch{
		Nama:        &r.Nama,
		NISN:        &r.NISN,
		Email:       &r.Email,
		Alamat:      &r.Alamat,
		AsalSekolah: &r.AsalSekolah,
	}
	if req.Status != "" {
		if !model.ValidStatus(req.Status) {
			return nil, apierror.Validation(MsgInvalidStatus)
		}
		patch.Status = &req.Status
	}
	if err := s.registrations.UpdateRegistration(ctx, id, patch); err != nil {
		return nil, registrationError(err, "update registration")
	}
	return s.Get(ctx, id)
}

func (s *RegistrationService) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidStatus(status) {
		return apierror.Validation(MsgInvalidStatus)
	}
	if err := s.registrations.UpdateRegistration(ctx, id, store.RegistrationPatch{Status: &status}); err != nil {
		return registrationError(err, "update status")
	}
	return nil
}

func (s *RegistrationService) Delete(ctx context.Context, id string) error {
	if err := s.registrations.DeleteRegistration(ctx, id); err != nil {
		return registrationError(err, "delete registration")
	}
	return nil
}

// CountByStatus returns the total and a count for every known status.
func (s *RegistrationService) CountByStatus(ctx context.Context) (int, map[string]int, error) {
	regs, err := s.registrations.ListRegistrations(ctx, "")
	if err != nil {
		return 0, nil, apierror.Internal("list registrations", err)
	}
	counts := make(map[string]int, len(model.Statuses))
	for _, st := range model.Statuses {
		counts[st] = 0
	}
	for _, r := range regs {
		counts[r.Status]++
	}
	return len(regs), counts, nil
}

func newRegistration(nama, nisn, email, alamat, asalSekolah string) (*model.Registration, error) {
	r := &model.Registration{
		Nama:        strings.TrimSpace(nama),
		NISN:        strings.TrimSpace(nisn),
		Email:       model.NormalizeEmail(email),
		Alamat:      strings.TrimSpace(alamat),
		AsalSekolah: strings.TrimSpace(asalSekolah),
	}
	if r.Nama == "" || r.NISN == "" || r.Email == "" {
		return nil, apierror.Validation(MsgRegistrationRequired)
	}
	if !ValidEmail(r.Email) {
		return nil, apierror.Validation(MsgInvalidEmail)
	}
	return r, nil
}

func statusOrPending(status string) (string, error) {
	if status == "" {
		return model.StatusPending, nil
	}
	if !model.ValidStatus(status) {
		return "", apierror.Validation(MsgInvalidStatus)
	}
	return status, nil
}

func registrationError(err error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apierror.NotFound(MsgRegistrationNotFound)
	}
	return apierror.Internal(op, err)
}
