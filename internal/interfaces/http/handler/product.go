package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/mvfrios/queijaria/internal/application/catalog"
	"github.com/mvfrios/queijaria/internal/domain/catalog"
)

// ProductHandler exposes catalog management over HTTP
type ProductHandler struct {
	BaseHandler
	service *appcatalog.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *appcatalog.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// ProductResponse is one catalog product
type ProductResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SellPrice    float64   `json:"sell_price"`
	CostPrice    float64   `json:"cost_price"`
	UnitType     string    `json:"unit_type"`
	Stock        int64     `json:"stock"`
	TrackStock   bool      `json:"track_stock"`
	Image        string    `json:"image,omitempty"`
	IsDefault    bool      `json:"is_default,omitempty"`
	ProfitMargin float64   `json:"profit_margin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SellPrice:    p.SellPrice.InexactFloat64(),
		CostPrice:    p.CostPrice.InexactFloat64(),
		UnitType:     p.UnitType.String(),
		Stock:        p.Stock,
		TrackStock:   p.TrackStock,
		Image:        p.Image,
		IsDefault:    p.IsDefault,
		ProfitMargin: p.ProfitMargin().InexactFloat64(),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// List returns all catalog products
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	products := h.service.List()
	result := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, toProductResponse(p))
	}
	h.Success(c, result)
}

// Get returns one product
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProductResponse(product))
}

// Upsert creates or updates a product
// PUT /api/v1/products/:id
func (h *ProductHandler) Upsert(c *gin.Context) {
	var req appcatalog.UpsertProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	req.ID = c.Param("id")

	product, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toProductResponse(product))
}

// Delete removes a product from the catalog
// DELETE /api/v1/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
