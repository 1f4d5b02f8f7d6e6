package fsstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"ppdb/model"
	"ppdb/store"
)

func setUserID(u *model.User, id string) { u.ID = id }

// CreateUser checks the email and inserts inside one transaction, so two
// concurrent enrollments with the same email cannot both succeed.
func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	users := s.col(store.ColUsers)
	ref := users.NewDoc()

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		docs, err := tx.Documents(users.Where("email", "==", u.Email).Limit(1)).GetAll()
		if err != nil {
			return err
		}
		if len(docs) > 0 {
			return store.ErrDuplicate
		}
		return tx.Create(ref, u)
	})
	if err != nil {
		return wrapError(err)
	}

	// The stored timestamps are server-assigned; these are local estimates.
	now := time.Now().UTC()
	u.ID, u.CreatedAt, u.UpdatedAt = ref.ID, now, now
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	return getByID(ctx, s.col(store.ColUsers), id, setUserID)
}

func (s *Store) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return findOne(ctx, s.col(store.ColUsers), "email", email, setUserID)
}

func (s *Store) ListUsers(ctx context.Context, roles ...string) ([]*model.User, error) {
	q := s.col(store.ColUsers).Query
	if len(roles) > 0 {
		q = q.Where("role", "in", roles)
	}
	users, err := decodeAll(q.Documents(ctx), setUserID)
	if err != nil {
		return nil, err
	}
	return newestFirst(users, func(u *model.User) time.Time { return u.CreatedAt }), nil
}

func (s *Store) UpdateUser(ctx context.Context, id string, p store.UserPatch) error {
	users := s.col(store.ColUsers)
	ref := users.Doc(id)

	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		if _, err := tx.Get(ref); err != nil {
			return err
		}
		if p.Email != nil {
			docs, err := tx.Documents(users.Where("email", "==", *p.Email).Limit(2)).GetAll()
			if err != nil {
				return err
			}
			for _, doc := range docs {
				if doc.Ref.ID != id {
					return store.ErrDuplicate
				}
			}
		}
		return tx.Update(ref, updates(p.Fields()))
	})
	return wrapError(err)
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	return deleteByID(ctx, s.col(store.ColUsers), id)
}
