package service_test

import (
	"context"
	"fmt"
	"testing"

	"warehouse/internal/dto"
	"warehouse/internal/repository/repotest"
	"warehouse/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func uintp(v uint) *uint    { return &v }
func intp(v int) *int       { return &v }

func decp(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// ── Suppliers: generic CRUD behaviour ────────────────────────────────────────

func TestSupplier_CreateThenGet(t *testing.T) {
	store := repotest.NewStore()
	svc := service.NewSupplierService(store.Suppliers, repotest.Transactor{})
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.SupplierRequest{
		Name: strp("Acme"), Email: strp("a@b.com"), Phone: strp("123"), Address: strp("X"),
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Acme", *got.Name)
	assert.Equal(t, "a@b.com", *got.Email)
	assert.Equal(t, "123", *got.Phone)
	assert.Equal(t, "X", *got.Address)
}

func TestSupplier_GetMissing(t *testing.T) {
	store := repotest.NewStore()
	svc := service.NewSupplierService(store.Suppliers, repotest.Transactor{})

	_, err := svc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSupplier_Update(t *testing.T) {
	store := repotest.NewStore()
	svc := service.NewSupplierService(store.Suppliers, repotest.Transactor{})
	ctx := context.Background()

	created, err := svc.Create(ctx, dto.SupplierRequest{Name: strp("Old"), Phone: strp("555")})
	require.NoError(t, err)

	req := created.Writable()
	req.Name = strp("New")
	updated, err := svc.Update(ctx, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "New", *updated.Name)
	assert.Equal(t, "555", *updated.Phone, "untouched fields persist")

	_, err = svc.Update(ctx, 404, req)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSupplier_Delete(t *testing.T) {
	store := repotest.NewStore()
	svc := service.NewSupplierService(store.Suppliers, repotest.Transactor{})
	ctx := context.Background()

	a, _ := svc.Create(ctx, dto.SupplierRequest{Name: strp("A")})
	_, _ = svc.Create(ctx, dto.SupplierRequest{Name: strp("B")})
	require.Equal(t, 2, store.Suppliers.Len())

	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.Equal(t, 1, store.Suppliers.Len())

	_, err := svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), service.ErrNotFound)
}

// ── Pagination ───────────────────────────────────────────────────────────────

func TestList_Pagination(t *testing.T) {
	store := repotest.NewStore()
	svc := service.NewCategoryService(store.Categories, repotest.Transactor{})
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		_, err := svc.Create(ctx, dto.CategoryRequest{Name: strp(fmt.Sprintf("cat-%02d", i))})
		require.NoError(t, err)
	}

	first, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 11, first.Count)
	assert.Len(t, first.Results, dto.PageSize)
	assert.Equal(t, 2, first.NumPages)
	assert.True(t, first.HasNext())
	assert.False(t, first.HasPrevious())
	assert.Equal(t, "cat-01", *first.Results[0].Name, "insertion order")

	second, err := svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, second.Results, 1)
	assert.Equal(t, "cat-11", *second.Results[0].Name)
	assert.False(t, second.HasNext())
	assert.True(t, second.HasPrevious())

	_, err = svc.List(ctx, 3)
	assert.ErrorIs(t, err, service.ErrInvalidPage)
	_, err = svc.List(ctx, 0)
	assert.ErrorIs(t, err, service.ErrInvalidPage)
}

func TestList_EmptyFirstPage(t *testing.T) {
	store := repotest.NewStore()
	svc := service.NewWarehouseService(store.Warehouses, repotest.Transactor{})

	page, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Count)
	assert.Empty(t, page.Results)
	assert.NotNil(t, page.Results)
	assert.False(t, page.HasNext())

	_, err = svc.List(context.Background(), 2)
	assert.ErrorIs(t, err, service.ErrInvalidPage)
}
