package mongostore

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ppdb/model"
	"ppdb/store"
)

func (s *Store) CreateProduct(ctx context.Context, p *model.Product) error {
	p.ID = uuid.New().String()
	now := s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	return insertOne(ctx, s.col(store.ColProducts), p)
}

func (s *Store) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return findOne[model.Product](ctx, s.col(store.ColProducts), bson.D{{Key: "_id", Value: id}})
}

func (s *Store) FindProductByName(ctx context.Context, nama string) (*model.Product, error) {
	return findOne[model.Product](ctx, s.col(store.ColProducts), bson.D{{Key: "nama", Value: nama}})
}

func (s *Store) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return findMany[model.Product](ctx, s.col(store.ColProducts), bson.D{}, newestFirst())
}

func (s *Store) UpdateProduct(ctx context.Context, id string, p store.ProductPatch) error {
	return s.updateFields(ctx, s.col(store.ColProducts), id, p.Fields())
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return deleteByID(ctx, s.col(store.ColProducts), id)
}
