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
	MsgProductRequired   = "Nama and harga are required"
	MsgProductIDRequired = "Product id is required"
	MsgProductExists     = "Product with this name already exists"
	MsgProductNotFound   = "Product not found"
)

type ProductService struct {
	products store.ProductStore
}

func NewProductService(products store.ProductStore) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) List(ctx context.Context) ([]*model.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, apierror.Internal("list products", err)
	}
	return products, nil
}

func (s *ProductService) Create(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	nama := trimmed(req.Nama)
	if nama == "" || req.Harga == nil || *req.Harga == 0 {
		return nil, apierror.Validation(MsgProductRequired)
	}
	if err := s.ensureNameFree(ctx, nama, ""); err != nil {
		return nil, err
	}

	p := &model.Product{
		Nama:      nama,
		Harga:     float64(*req.Harga),
		Gambar:    trimmed(req.Gambar),
		Kategori:  trimmed(req.Kategori),
		Deskripsi: trimmed(req.Deskripsi),
	}
	if err := s.products.CreateProduct(ctx, p); err != nil {
		return nil, apierror.Internal("create product", err)
	}
	return p, nil
}

// Update applies only the fields present in req.
func (s *ProductService) Update(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, apierror.Validation(MsgProductIDRequired)
	}

	var patch store.ProductPatch
	if req.Nama != nil {
		nama := strings.TrimSpace(*req.Nama)
		if nama == "" {
			return nil, apierror.Validation(MsgProductRequired)
		}
		if err := s.ensureNameFree(ctx, nama, req.ID); err != nil {
			return nil, err
		}
		patch.Nama = &nama
	}
	if req.Harga != nil {
		if *req.Harga == 0 {
			return nil, apierror.Validation(MsgProductRequired)
		}
		harga := float64(*req.Harga)
		patch.Harga = &harga
	}
	patch.Gambar = trimmedPtr(req.Gambar)
	patch.Kategori = trimmedPtr(req.Kategori)
	patch.Deskripsi = trimmedPtr(req.Deskripsi)

	if err := s.products.UpdateProduct(ctx, req.ID, patch); err != nil {
		return nil, productError(err, "update product")
	}
	p, err := s.products.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, productError(err, "get product")
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apierror.Validation(MsgProductIDRequired)
	}
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		return productError(err, "delete product")
	}
	return nil
}

func (s *ProductService) ensureNameFree(ctx context.Context, nama, selfID string) error {
	existing, err := s.products.FindProductByName(ctx, nama)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return apierror.Internal("find product", err)
	case existing.ID == selfID:
		return nil
	}
	return apierror.Validation(MsgProductExists)
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func productError(err error, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return apierror.NotFound(MsgProductNotFound)
	}
	return apierror.Internal(op, err)
}
