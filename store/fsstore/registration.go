package fsstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"ppdb/model"
	"ppdb/store"
)

func setRegistrationID(r *model.Registration, id string) { r.ID = id }

func registrationCreated(r *model.Registration) time.Time { return r.CreatedAt }

func (s *Store) CreateRegistration(ctx context.Context, r *model.Registration) error {
	ref, _, err := s.col(store.ColRegistrations).Add(ctx, r)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	r.ID, r.CreatedAt, r.UpdatedAt = ref.ID, now, now
	return nil
}

func (s *Store) GetRegistration(ctx context.Context, id string) (*model.Registration, error) {
	return getByID(ctx, s.col(store.ColRegistrations), id, setRegistrationID)
}

func (s *Store) ListRegistrations(ctx context.Context, statusFilter string) ([]*model.Registration, error) {
	col := s.col(store.ColRegistrations)
	if statusFilter == "" {
		return decodeAll(col.OrderBy("createdAt", firestore.Desc).Documents(ctx), setRegistrationID)
	}
	regs, err := decodeAll(col.Where("status", "==", statusFilter).Documents(ctx), setRegistrationID)
	if err != nil {
		return nil, err
	}
	return newestFirst(regs, registrationCreated), nil
}

func (s *Store) ListRegistrationsByEmail(ctx context.Context, email string) ([]*model.Registration, error) {
	regs, err := decodeAll(s.col(store.ColRegistrations).Where("email", "==", email).Documents(ctx), setRegistrationID)
	if err != nil {
		return nil, err
	}
	return newestFirst(regs, registrationCreated), nil
}

func (s *Store) UpdateRegistration(ctx context.Context, id string, p store.RegistrationPatch) error {
	return updateByID(ctx, s.col(store.ColRegistrations), id, p.Fields())
}

func (s *Store) DeleteRegistration(ctx context.Context, id string) error {
	return deleteByID(ctx, s.col(store.ColRegistrations), id)
}
