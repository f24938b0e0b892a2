package partner

import (
	"context"
	"testing"

	"github.com/mvfrios/queijaria/internal/domain/shared"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCustomerService(t *testing.T) *CustomerService {
	t.Helper()
	blob, err := blobstore.NewFileStore(t.TempDir())
	require.NoError(t, err)
	service := NewCustomerService(persistence.NewCustomerStore(blob), zap.NewNop())
	require.NoError(t, service.Load(context.Background()))
	return service
}

func TestRegisterCustomer(t *testing.T) {
	service := newCustomerService(t)

	customer, err := service.Register(context.Background(), RegisterCustomerRequest{
		Name:  " Ana Souza ",
		Phone: "37 99999-0000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", customer.Name)
	assert.Len(t, service.List(), 1)
}

func TestRegisterRejectsDuplicateName(t *testing.T) {
	service := newCustomerService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterCustomerRequest{Name: "Ana"})
	require.NoError(t, err)

	_, err = service.Register(ctx, RegisterCustomerRequest{Name: "Ana"})
	assert.ErrorIs(t, err, shared.ErrAlreadyExists)
}

func TestRegisterRejectsBlankName(t *testing.T) {
	service := newCustomerService(t)

	_, err := service.Register(context.Background(), RegisterCustomerRequest{Name: "   "})
	require.Error(t, err)
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	service := newCustomerService(t)
	ctx := context.Background()

	for _, name := range []string{"Ana Souza", "Bia Santos", "Carla Souza"} {
		_, err := service.Register(ctx, RegisterCustomerRequest{Name: name})
		require.NoError(t, err)
	}

	matches := service.Search("souza")
	require.Len(t, matches, 2)

	matches = service.Search("  BIA ")
	require.Len(t, matches, 1)
	assert.Equal(t, "Bia Santos", matches[0].Name)

	assert.Len(t, service.Search(""), 3)
	assert.Empty(t, service.Search("zé"))
}

func TestFindByName(t *testing.T) {
	service := newCustomerService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, RegisterCustomerRequest{Name: "Ana"})
	require.NoError(t, err)

	customer, err := service.FindByName(" Ana ")
	require.NoError(t, err)
	assert.Equal(t, "Ana", customer.Name)

	// matching is exact, not fuzzy
	_, err = service.FindByName("ana")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
