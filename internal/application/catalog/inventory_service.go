package catalog

import (
	"context"

	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/mvfrios/queijaria/internal/domain/shared"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

// InventoryService applies cart consumption to product stock levels.
// Refusing a sale over insufficient stock is a policy warning the
// caller may override; the deduction itself never refuses.
type InventoryService struct {
	store  *persistence.CatalogStore
	logger *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(store *persistence.CatalogStore, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		store:  store,
		logger: logger,
	}
}

// CheckAvailability verifies that every tracked product covers the
// amount the lines consume. Unknown products and untracked products
// always pass.
func (s *InventoryService) CheckAvailability(lines []sales.CartLine) error {
	for productID, amount := range sales.ConsumptionByProduct(lines) {
		product, ok := s.store.Find(productID)
		if !ok {
			continue
		}
		if !product.HasSufficientStock(amount) {
			return shared.ErrInsufficientStock
		}
	}
	return nil
}

// Deduct subtracts the aggregated consumption from each tracked
// product and persists the catalog. Stock may go negative when the
// caller forced the sale past an availability warning. The returned
// map records the prior stock of every deducted product so the caller
// can undo the deduction with RestoreStock if a later step of its own
// transaction fails.
func (s *InventoryService) Deduct(ctx context.Context, lines []sales.CartLine) (map[string]int64, error) {
	products := s.store.List()
	consumption := sales.ConsumptionByProduct(lines)

	prior := make(map[string]int64)
	for _, product := range products {
		amount, ok := consumption[product.ID]
		if !ok || !product.TrackStock {
			continue
		}
		prior[product.ID] = product.Stock
		product.DeductStock(amount)
		if product.Stock < 0 {
			s.logger.Warn("Product stock went negative",
				zap.String("product_id", product.ID),
				zap.String("name", product.Name),
				zap.Int64("stock", product.Stock),
			)
		}
	}

	if err := s.store.Save(ctx, products); err != nil {
		restoreStockLevels(products, prior)
		return nil, err
	}
	return prior, nil
}

// RestoreStock puts each recorded product back to its prior stock
// level and persists the catalog. Products added or removed since the
// deduction are left alone.
func (s *InventoryService) RestoreStock(ctx context.Context, prior map[string]int64) error {
	if len(prior) == 0 {
		return nil
	}
	products := s.store.List()
	restoreStockLevels(products, prior)
	return s.store.Save(ctx, products)
}

func restoreStockLevels(products []*catalog.Product, prior map[string]int64) {
	for _, product := range products {
		if stock, ok := prior[product.ID]; ok {
			product.Stock = stock
		}
	}
}
