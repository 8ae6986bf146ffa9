package service_test

import (
	"context"
	"errors"
	"testing"

	"warehouse/internal/dto"
	"warehouse/internal/repository/repotest"
	"warehouse/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProductSvc() (service.ProductService, *repotest.Store) {
	store := repotest.NewStore()
	svc := service.NewProductService(store.Products, store.Categories, store.Suppliers, repotest.Transactor{})
	return svc, store
}

func TestProduct_CreateWithReferences(t *testing.T) {
	svc, store := buildProductSvc()
	ctx := context.Background()

	cat, err := service.NewCategoryService(store.Categories, repotest.Transactor{}).
		Create(ctx, dto.CategoryRequest{Name: strp("Drinks")})
	require.NoError(t, err)
	sup, err := service.NewSupplierService(store.Suppliers, repotest.Transactor{}).
		Create(ctx, dto.SupplierRequest{Name: strp("Acme")})
	require.NoError(t, err)

	p, err := svc.Create(ctx, dto.ProductRequest{
		Name: strp("Cola"), Price: decp("1.50"), Category: uintp(cat.ID), Supplier: uintp(sup.ID),
	})
	require.NoError(t, err)
	assert.Equal(t, cat.ID, *p.Category)
	assert.Equal(t, sup.ID, *p.Supplier)
	assert.True(t, decp("1.5").Equal(*p.Price))
}

func TestProduct_CreateWithoutReferences(t *testing.T) {
	svc, _ := buildProductSvc()

	p, err := svc.Create(context.Background(), dto.ProductRequest{Name: strp("Loose"), Price: decp("10")})
	require.NoError(t, err)
	assert.Nil(t, p.Category)
	assert.Nil(t, p.Supplier)
}

func TestProduct_UnknownReferences(t *testing.T) {
	svc, store := buildProductSvc()

	_, err := svc.Create(context.Background(), dto.ProductRequest{
		Name: strp("Ghost"), Price: decp("1"), Category: uintp(7), Supplier: uintp(8),
	})
	var verr *service.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{`Invalid pk "7" - object does not exist.`}, verr.Fields["category"])
	assert.Equal(t, []string{`Invalid pk "8" - object does not exist.`}, verr.Fields["supplier"])
	assert.Equal(t, 0, store.Products.Len(), "nothing written on validation failure")
}

func TestProduct_UpdateRejectsUnknownReference(t *testing.T) {
	svc, _ := buildProductSvc()
	ctx := context.Background()

	p, err := svc.Create(ctx, dto.ProductRequest{Name: strp("Cola"), Price: decp("1")})
	require.NoError(t, err)

	req := p.Writable()
	req.Category = uintp(123)
	_, err = svc.Update(ctx, p.ID, req)
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "category")

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Category)
}

func TestProductQuantity_RequiresExistingProduct(t *testing.T) {
	store := repotest.NewStore()
	svc := service.NewProductQuantityService(store.ProductQuantities, store.Products, repotest.Transactor{})
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.ProductQuantityRequest{Product: uintp(1), Quantity: intp(3)})
	var verr *service.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "product")

	products := service.NewProductService(store.Products, store.Categories, store.Suppliers, repotest.Transactor{})
	p, err := products.Create(ctx, dto.ProductRequest{Name: strp("Cola"), Price: decp("1")})
	require.NoError(t, err)

	q, err := svc.Create(ctx, dto.ProductQuantityRequest{Product: uintp(p.ID), Quantity: intp(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, *q.Quantity)
	assert.Equal(t, p.ID, *q.Product)
}
