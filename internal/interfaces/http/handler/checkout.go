package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appsales "github.com/mvfrios/queijaria/internal/application/sales"
	"github.com/mvfrios/queijaria/internal/domain/sales"
)

// CheckoutHandler exposes the cart and sale lifecycle over HTTP
type CheckoutHandler struct {
	BaseHandler
	service *appsales.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service *appsales.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

// AddLineRequest adds a priced line to the cart
type AddLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Force     bool   `json:"force"`
}

// CartLineResponse is one cart or order line
type CartLineResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ProductName   string    `json:"product_name"`
	UnitType      string    `json:"unit_type"`
	WeightGrams   int64     `json:"weight_grams,omitempty"`
	QuantityUnits int64     `json:"quantity_units,omitempty"`
	LinePrice     float64   `json:"line_price"`
	CreatedAt     time.Time `json:"created_at"`
}

// CartResponse is the current cart
type CartResponse struct {
	Lines    []CartLineResponse `json:"lines"`
	Subtotal float64            `json:"subtotal"`
}

// OrderResponse is one ledger entry
type OrderResponse struct {
	ID            string             `json:"id"`
	Lines         []CartLineResponse `json:"lines"`
	Subtotal      float64            `json:"subtotal"`
	Discount      float64            `json:"discount"`
	Total         float64            `json:"total"`
	PaymentMethod string             `json:"payment_method"`
	CustomerName  string             `json:"customer_name,omitempty"`
	Status        string             `json:"status"`
	Note          string             `json:"note,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

func toLineResponse(line sales.CartLine) CartLineResponse {
	return CartLineResponse{
		ID:            line.ID.String(),
		ProductID:     line.ProductID,
		ProductName:   line.ProductName,
		UnitType:      line.UnitType.String(),
		WeightGrams:   line.WeightGrams,
		QuantityUnits: line.QuantityUnits,
		LinePrice:     line.LinePrice.InexactFloat64(),
		CreatedAt:     line.CreatedAt,
	}
}

func toLineResponses(lines []sales.CartLine) []CartLineResponse {
	result := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		result = append(result, toLineResponse(line))
	}
	return result
}

func toOrderResponse(order *sales.Order) OrderResponse {
	return OrderResponse{
		ID:            order.ID.String(),
		Lines:         toLineResponses(order.Lines),
		Subtotal:      order.Subtotal.InexactFloat64(),
		Discount:      order.Discount.InexactFloat64(),
		Total:         order.Total.InexactFloat64(),
		PaymentMethod: order.PaymentMethod.String(),
		CustomerName:  order.CustomerName,
		Status:        order.Status.String(),
		Note:          order.Note,
		CreatedAt:     order.CreatedAt,
	}
}

func toOrderResponses(orders []*sales.Order) []OrderResponse {
	result := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}
	return result
}

func (h *CheckoutHandler) cartResponse() CartResponse {
	return CartResponse{
		Lines:    toLineResponses(h.service.CartLines()),
		Subtotal: h.service.CartSubtotal().Float64(),
	}
}

// GetCart returns the current cart
// GET /api/v1/cart
func (h *CheckoutHandler) GetCart(c *gin.Context) {
	h.Success(c, h.cartResponse())
}

// AddLine adds a line to the cart
// POST /api/v1/cart/lines
func (h *CheckoutHandler) AddLine(c *gin.Context) {
	var req AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if _, err := h.service.AddLine(c.Request.Context(), req.ProductID, req.Amount, req.Force); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.cartResponse())
}

// RemoveLine removes a line from the cart
// DELETE /api/v1/cart/lines/:id
func (h *CheckoutHandler) RemoveLine(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid line ID")
		return
	}

	if err := h.service.RemoveLine(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.cartResponse())
}

// EditLine removes a line and returns it for re-entry
// POST /api/v1/cart/lines/:id/edit
func (h *CheckoutHandler) EditLine(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid line ID")
		return
	}

	line, err := h.service.EditLine(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toLineResponse(line))
}

// ClearCart empties the cart
// DELETE /api/v1/cart
func (h *CheckoutHandler) ClearCart(c *gin.Context) {
	if err := h.service.ClearCart(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Finalize turns the cart into a completed order
// POST /api/v1/checkout
func (h *CheckoutHandler) Finalize(c *gin.Context) {
	var req appsales.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	order, err := h.service.Finalize(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toOrderResponse(order))
}

// ListOrders returns the ledger, newest-first
// GET /api/v1/orders
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	var orders []OrderResponse
	for order := range h.service.History() {
		orders = append(orders, toOrderResponse(order))
	}
	if orders == nil {
		orders = []OrderResponse{}
	}
	h.Success(c, orders)
}

// SaveDraft moves the cart into a saved quote
// POST /api/v1/drafts
func (h *CheckoutHandler) SaveDraft(c *gin.Context) {
	draft, err := h.service.SaveDraft(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toOrderResponse(draft))
}

// ListDrafts returns the saved quotes
// GET /api/v1/drafts
func (h *CheckoutHandler) ListDrafts(c *gin.Context) {
	h.Success(c, toOrderResponses(h.service.Drafts()))
}

// ResumeDraftRequest controls draft resumption
type ResumeDraftRequest struct {
	Force bool `json:"force"`
}

// ResumeDraft moves a saved quote back into the cart
// POST /api/v1/drafts/:id/resume
func (h *CheckoutHandler) ResumeDraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid draft ID")
		return
	}

	var req ResumeDraftRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}
	}

	if _, err := h.service.ResumeDraft(c.Request.Context(), id, req.Force); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, h.cartResponse())
}

// DiscardDraft deletes a saved quote
// DELETE /api/v1/drafts/:id
func (h *CheckoutHandler) DiscardDraft(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid draft ID")
		return
	}

	if err := h.service.DiscardDraft(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RecordCreditPayment appends a repayment to the ledger
// POST /api/v1/credit-payments
func (h *CheckoutHandler) RecordCreditPayment(c *gin.Context) {
	var req appsales.CreditPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	payment, err := h.service.RecordCreditPayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toOrderResponse(payment))
}
