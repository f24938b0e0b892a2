package catalog

import (
	"context"

	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/shared"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService manages the product catalog
type ProductService struct {
	store  *persistence.CatalogStore
	logger *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(store *persistence.CatalogStore, logger *zap.Logger) *ProductService {
	return &ProductService{
		store:  store,
		logger: logger,
	}
}

// UpsertProductRequest carries the editable product attributes
type UpsertProductRequest struct {
	ID         string  `json:"id"`
	Name       string  `json:"name" binding:"required"`
	SellPrice  float64 `json:"sell_price" binding:"required,gt=0"`
	CostPrice  float64 `json:"cost_price" binding:"gte=0"`
	UnitType   string  `json:"unit_type" binding:"required,oneof=WEIGHT COUNT"`
	TrackStock bool    `json:"track_stock"`
	Stock      int64   `json:"stock"`
	Image      string  `json:"image"`
}

// Load reads the catalog, seeding the default products on first run
func (s *ProductService) Load(ctx context.Context) error {
	found, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	defaults := catalog.DefaultProducts()
	if err := s.store.Save(ctx, defaults); err != nil {
		return err
	}
	s.logger.Info("Seeded default product catalog", zap.Int("count", len(defaults)))
	return nil
}

// List returns all catalog products
func (s *ProductService) List() []*catalog.Product {
	return s.store.List()
}

// Get returns the product with the given id
func (s *ProductService) Get(id string) (*catalog.Product, error) {
	product, ok := s.store.Find(id)
	if !ok {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

// Upsert creates the product when the id is new, otherwise updates it.
// The unit type of an existing product is never changed.
func (s *ProductService) Upsert(ctx context.Context, req UpsertProductRequest) (*catalog.Product, error) {
	sellPrice := decimal.NewFromFloat(req.SellPrice)
	costPrice := decimal.NewFromFloat(req.CostPrice)

	products := s.store.List()
	for _, p := range products {
		if p.ID != req.ID {
			continue
		}
		if err := p.Update(req.Name, sellPrice, costPrice); err != nil {
			return nil, err
		}
		p.SetStockTracking(req.TrackStock, req.Stock)
		p.SetImage(req.Image)
		if err := s.store.Save(ctx, products); err != nil {
			return nil, err
		}
		s.logger.Info("Updated product", zap.String("product_id", p.ID), zap.String("name", p.Name))
		return p, nil
	}

	product, err := catalog.NewProduct(req.ID, req.Name, sellPrice, catalog.UnitType(req.UnitType))
	if err != nil {
		return nil, err
	}
	product.CostPrice = costPrice
	product.SetStockTracking(req.TrackStock, req.Stock)
	product.SetImage(req.Image)

	if err := s.store.Save(ctx, append(products, product)); err != nil {
		return nil, err
	}
	s.logger.Info("Created product", zap.String("product_id", product.ID), zap.String("name", product.Name))
	return product, nil
}

// Delete removes the product from the catalog. Deleting an unknown id
// is a no-op; lines already in carts or the ledger keep their snapshot.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	products := s.store.List()
	for i, p := range products {
		if p.ID == id {
			updated := append(products[:i], products[i+1:]...)
			if err := s.store.Save(ctx, updated); err != nil {
				return err
			}
			s.logger.Info("Deleted product", zap.String("product_id", id))
			return nil
		}
	}
	return nil
}
