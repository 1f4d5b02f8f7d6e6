package fsstore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"ppdb/model"
	"ppdb/store"
)

func setProductID(p *model.Product, id string) { p.ID = id }

func (s *Store) CreateProduct(ctx context.Context, p *model.Product) error {
	ref, _, err := s.col(store.ColProducts).Add(ctx, p)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	p.ID, p.CreatedAt, p.UpdatedAt = ref.ID, now, now
	return nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	return getByID(ctx, s.col(store.ColProducts), id, setProductID)
}

func (s *Store) FindProductByName(ctx context.Context, nama string) (*model.Product, error) {
	return findOne(ctx, s.col(store.ColProducts), "nama", nama, setProductID)
}

func (s *Store) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return decodeAll(s.col(store.ColProducts).OrderBy("createdAt", firestore.Desc).Documents(ctx), setProductID)
}

func (s *Store) UpdateProduct(ctx context.Context, id string, p store.ProductPatch) error {
	return updateByID(ctx, s.col(store.ColProducts), id, p.Fields())
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return deleteByID(ctx, s.col(store.ColProducts), id)
}
