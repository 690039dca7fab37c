package repository_test

import (
	"context"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-shop/repository"
)

func TestProducts_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	categories := repository.NewCategoriesRepository(db)
	products := repository.NewProductsRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, categories, "gadgets", true)
	created := createTestProduct(t, products, category.ID, "widget", true, time.Now())

	found, err := products.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "widget", found.Name)
	assert.Equal(t, category.ID, found.CategoryID)
}

// FindActiveByID is the public detail view: an inactive product is absent
// there even though FindByID still sees it.
func TestProducts_FindActiveByID(t *testing.T) {
	db := newTestDB(t)
	categories := repository.NewCategoriesRepository(db)
	products := repository.NewProductsRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, categories, "gadgets", true)
	hidden := createTestProduct(t, products, category.ID, "hidden", false, time.Now())

	_, err := products.FindActiveByID(ctx, hidden.ID)
	require.Error(t, err)
	assert.True(t, goerrors.IsNotFound(err))

	_, err = products.FindByID(ctx, hidden.ID)
	assert.NoError(t, err)
}

func TestProducts_ListActive(t *testing.T) {
	db := newTestDB(t)
	categories := repository.NewCategoriesRepository(db)
	products := repository.NewProductsRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, categories, "gadgets", true)
	base := time.Now().Add(-time.Hour)

	createTestProduct(t, products, category.ID, "first", true, base)
	createTestProduct(t, products, category.ID, "second", true, base.Add(time.Minute))
	createTestProduct(t, products, category.ID, "hidden", false, base.Add(2*time.Minute))

	items, err := products.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "second", items[1].Name)
}

func TestProducts_FindByCategoryName(t *testing.T) {
	db := newTestDB(t)
	categories := repository.NewCategoriesRepository(db)
	products := repository.NewProductsRepository(db)
	ctx := context.Background()

	active := createTestCategory(t, categories, "visible", true)
	inactive := createTestCategory(t, categories, "retired", false)

	createTestProduct(t, products, active.ID, "in-visible", true, time.Now())
	createTestProduct(t, products, active.ID, "inactive-product", false, time.Now())
	createTestProduct(t, products, inactive.ID, "in-retired", true, time.Now())

	items, err := products.FindByCategoryName(ctx, "visible")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "in-visible", items[0].Name)

	// inactive category yields an empty list, not an error
	items, err = products.FindByCategoryName(ctx, "retired")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = products.FindByCategoryName(ctx, "no-such-category")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProducts_ListPagination(t *testing.T) {
	db := newTestDB(t)
	categories := repository.NewCategoriesRepository(db)
	products := repository.NewProductsRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, categories, "bulk", true)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		createTestProduct(t, products, category.ID, "item", i%2 == 0, base.Add(time.Duration(i)*time.Second))
	}

	list, err := products.List(ctx, repository.NewPage(2, 10))
	require.NoError(t, err)
	assert.Equal(t, 15, list.Total)
	assert.Equal(t, 2, list.TotalPages)
	assert.Len(t, list.Items, 5)
}

func TestProducts_Update(t *testing.T) {
	db := newTestDB(t)
	categories := repository.NewCategoriesRepository(db)
	products := repository.NewProductsRepository(db)
	ctx := context.Background()

	original := createTestCategory(t, categories, "original", true)
	moved := createTestCategory(t, categories, "moved", true)

	created := createTestProduct(t, products, original.ID, "before", true, time.Now())

	updated, err := products.Update(ctx, created.ID, repository.ProductUpdate{
		CategoryID: moved.ID,
		Name:       "after",
		Price:      19.99,
		Quantity:   3,
		Discount:   25,
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, moved.ID, updated.CategoryID)
	assert.Equal(t, 25, updated.Discount)

	reread, err := products.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 19.99, reread.Price)
	assert.Equal(t, 3, reread.Quantity)
}

func TestProducts_ToggleAndDelete(t *testing.T) {
	db := newTestDB(t)
	categories := repository.NewCategoriesRepository(db)
	products := repository.NewProductsRepository(db)
	ctx := context.Background()

	category := createTestCategory(t, categories, "gadgets", true)
	created := createTestProduct(t, products, category.ID, "doomed", true, time.Now())

	toggled, err := products.ToggleActive(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, toggled.Active)

	require.NoError(t, products.DeleteByID(ctx, created.ID))

	err = products.DeleteByID(ctx, created.ID)
	require.Error(t, err)
	assert.True(t, goerrors.IsNotFound(err))
}
