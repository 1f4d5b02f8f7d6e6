package mongostore

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ppdb/model"
	"ppdb/store"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	u.ID = uuid.New().String()
	now := s.now()
	u.CreatedAt, u.UpdatedAt = now, now
	if err := insertOne(ctx, s.col(store.ColUsers), u); err != nil {
		u.ID = ""
		return err
	}
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	return findOne[model.User](ctx, s.col(store.ColUsers), bson.D{{Key: "_id", Value: id}})
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne[model.User](ctx, s.col(store.ColUsers), bson.D{{Key: "email", Value: email}})
}

func (s *Store) ListUsers(ctx context.Context, roles ...string) ([]*model.User, error) {
	filter := bson.D{}
	if len(roles) > 0 {
		filter = bson.D{{Key: "role", Value: bson.D{{Key: "$in", Value: roles}}}}
	}
	return findMany[model.User](ctx, s.col(store.ColUsers), filter, newestFirst())
}

// UpdateUser relies on the unique email index for conflicts.
func (s *Store) UpdateUser(ctx context.Context, id string, p store.UserPatch) error {
	return s.updateFields(ctx, s.col(store.ColUsers), id, p.Fields())
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return deleteByID(ctx, s.col(store.ColUsers), id)
}
