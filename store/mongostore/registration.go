package mongostore

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ppdb/model"
	"ppdb/store"
)

func (s *Store) CreateRegistration(ctx context.Context, r *model.Registration) error {
	r.ID = uuid.New().String()
	now := s.now()
	r.CreatedAt, r.UpdatedAt = now, now
	return insertOne(ctx, s.col(store.ColRegistrations), r)
}

func (s *Store) GetRegistration(ctx context.Context, id string) (*model.Registration, error) {
	return findOne[model.Registration](ctx, s.col(store.ColRegistrations), bson.D{{Key: "_id", Value: id}})
}

func (s *Store) ListRegistrations(ctx context.Context, status string) ([]*model.Registration, error) {
	filter := bson.D{}
	if status != "" {
		filter = bson.D{{Key: "status", Value: status}}
	}
	return findMany[model.Registration](ctx, s.col(store.ColRegistrations), filter, newestFirst())
}

func (s *Store) ListRegistrationsByEmail(ctx context.Context, email string) ([]*model.Registration, error) {
	return findMany[model.Registration](ctx, s.col(store.ColRegistrations), bson.D{{Key: "email", Value: email}}, newestFirst())
}

func (s *Store) UpdateRegistration(ctx context.Context, id string, p store.RegistrationPatch) error {
	return s.updateFields(ctx, s.col(store.ColRegistrations), id, p.Fields())
}

func (s *Store) DeleteRegistration(ctx context.Context, id string) error {
	return deleteByID(ctx, s.col(store.ColRegistrations), id)
}
