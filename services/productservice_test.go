package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ppdb/apierror"
	"ppdb/dto"
	"ppdb/store/memstore"
)

func strPtr(s string) *string { return &s }

func pricePtr(f float64) *dto.Price {
	p := dto.Price(f)
	return &p
}

func TestProductService_Create(t *testing.T) {
	svc := NewProductService(memstore.New())
	ctx := context.Background()

	p, err := svc.Create(ctx, dto.ProductRequest{Nama: strPtr("Seragam"), Harga: pricePtr(150000), Kategori: strPtr("Pakaian")})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 150000.0, p.Harga)

	_, err = svc.Create(ctx, dto.ProductRequest{Nama: strPtr("Seragam"), Harga: pricePtr(99)})
	assertAPIError(t, err, apierror.KindValidation, MsgProductExists)

	_, err = svc.Create(ctx, dto.ProductRequest{Nama: strPtr("Topi"), Harga: pricePtr(0)})
	assertAPIError(t, err, apierror.KindValidation, MsgProductRequired)

	_, err = svc.Create(ctx, dto.ProductRequest{Harga: pricePtr(10)})
	assertAPIError(t, err, apierror.KindValidation, MsgProductRequired)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestProductService_UpdateDelete(t *testing.T) {
	svc := NewProductService(memstore.New())
	ctx := context.Background()
	a, err := svc.Create(ctx, dto.ProductRequest{Nama: strPtr("Seragam"), Harga: pricePtr(150000)})
	require.NoError(t, err)
	_, err = svc.Create(ctx, dto.ProductRequest{Nama: strPtr("Buku"), Harga: pricePtr(50000)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, dto.ProductRequest{ID: a.ID, Nama: strPtr("Seragam"), Harga: pricePtr(175000)})
	require.NoError(t, err)
	assert.Equal(t, 175000.0, updated.Harga)
	assert.Equal(t, "Seragam", updated.Nama)

	_, err = svc.Update(ctx, dto.ProductRequest{ID: a.ID, Nama: strPtr("Buku")})
	assertAPIError(t, err, apierror.KindValidation, MsgProductExists)

	_, err = svc.Update(ctx, dto.ProductRequest{Nama: strPtr("X")})
	assertAPIError(t, err, apierror.KindValidation, MsgProductIDRequired)

	_, err = svc.Update(ctx, dto.ProductRequest{ID: "missing", Deskripsi: strPtr("x")})
	assertAPIError(t, err, apierror.KindNotFound, MsgProductNotFound)

	assertAPIError(t, svc.Delete(ctx, ""), apierror.KindValidation, MsgProductIDRequired)
	require.NoError(t, svc.Delete(ctx, a.ID))
	assertAPIError(t, svc.Delete(ctx, a.ID), apierror.KindNotFound, MsgProductNotFound)
}
