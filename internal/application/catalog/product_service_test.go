package catalog

import (
	"context"
	"testing"

	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/shared"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductService(t *testing.T) (*ProductService, *persistence.CatalogStore) {
	t.Helper()
	blob, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	store := persistence.NewCatalogStore(blob)
	return NewProductService(store, zap.NewNop()), store
}

func TestLoadSeedsDefaultsOnFirstRun(t *testing.T) {
	service, _ := newProductService(t)

	require.NoError(t, service.Load(context.Background()))
	products := service.List()
	require.Len(t, products, 2)

	fatiado, err := service.Get("mussarela-fatiado")
	require.NoError(t, err)
	assert.Equal(t, "69.9", fatiado.SellPrice.String())
}

func TestLoadDoesNotReseed(t *testing.T) {
	service, store := newProductService(t)
	ctx := context.Background()

	require.NoError(t, service.Load(ctx))
	require.NoError(t, service.Delete(ctx, "mussarela-fatiado"))
	require.Len(t, service.List(), 1)

	// a restart must not bring the deleted product back
	service2 := NewProductService(store, zap.NewNop())
	require.NoError(t, service2.Load(ctx))
	assert.Len(t, service2.List(), 1)
}

func TestUpsertCreatesAndUpdates(t *testing.T) {
	service, _ := newProductService(t)
	ctx := context.Background()
	require.NoError(t, service.Load(ctx))

	created, err := service.Upsert(ctx, UpsertProductRequest{
		ID:        "canastra",
		Name:      "Canastra",
		SellPrice: 89.90,
		CostPrice: 55,
		UnitType:  "WEIGHT",
	})
	require.NoError(t, err)
	assert.Equal(t, "Canastra", created.Name)
	require.Len(t, service.List(), 3)

	updated, err := service.Upsert(ctx, UpsertProductRequest{
		ID:         "canastra",
		Name:       "Canastra Curado",
		SellPrice:  99.90,
		CostPrice:  60,
		UnitType:   "COUNT", // ignored on update
		TrackStock: true,
		Stock:      5000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Canastra Curado", updated.Name)
	assert.Equal(t, catalog.UnitTypeWeight, updated.UnitType)
	assert.Equal(t, int64(5000), updated.Stock)
	assert.Len(t, service.List(), 3)
}

func TestUpsertRejectsInvalidProduct(t *testing.T) {
	service, _ := newProductService(t)
	ctx := context.Background()
	require.NoError(t, service.Load(ctx))

	_, err := service.Upsert(ctx, UpsertProductRequest{
		ID:        "x",
		Name:      "   ",
		SellPrice: 10,
		UnitType:  "WEIGHT",
	})
	require.Error(t, err)
}

func TestDeleteUnknownIsNoop(t *testing.T) {
	service, _ := newProductService(t)
	ctx := context.Background()
	require.NoError(t, service.Load(ctx))

	require.NoError(t, service.Delete(ctx, "nope"))
	assert.Len(t, service.List(), 2)
}

func TestGetUnknownProduct(t *testing.T) {
	service, _ := newProductService(t)
	require.NoError(t, service.Load(context.Background()))

	_, err := service.Get("nope")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
