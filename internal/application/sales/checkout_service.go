package sales

import (
	"context"
	"iter"
	"sync"

	"github.com/google/uuid"
	appcatalog "github.com/mvfrios/queijaria/internal/application/catalog"
	"github.com/mvfrios/queijaria/internal/domain/catalog"
	"github.com/mvfrios/queijaria/internal/domain/sales"
	"github.com/mvfrios/queijaria/internal/domain/shared"
	"github.com/mvfrios/queijaria/internal/domain/shared/valueobject"
	"github.com/mvfrios/queijaria/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CheckoutService drives the sale lifecycle: cart accumulation, draft
// save/resume, finalization into the ledger, and credit repayments.
// The cart blob is rewritten after every mutation so an interrupted
// session resumes intact.
type CheckoutService struct {
	cartStore *persistence.CartStore
	history   *persistence.HistoryStore
	drafts    *persistence.DraftStore
	catalog   *persistence.CatalogStore
	inventory *appcatalog.InventoryService
	logger    *zap.Logger

	mu   sync.Mutex
	cart *sales.Cart
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartStore *persistence.CartStore,
	history *persistence.HistoryStore,
	drafts *persistence.DraftStore,
	catalog *persistence.CatalogStore,
	inventory *appcatalog.InventoryService,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartStore: cartStore,
		history:   history,
		drafts:    drafts,
		catalog:   catalog,
		inventory: inventory,
		logger:    logger,
		cart:      sales.NewCart(),
	}
}

// FinalizeRequest carries the settlement choices made at checkout
type FinalizeRequest struct {
	Discount      float64 `json:"discount" binding:"gte=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=CASH TRANSFER CREDIT"`
	CustomerName  string  `json:"customer_name"`
}

// CreditPaymentRequest records a repayment against outstanding credit
type CreditPaymentRequest struct {
	CustomerName  string  `json:"customer_name" binding:"required,notblank"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,oneof=CASH TRANSFER"`
}

// Load restores the persisted cart from the previous session
func (s *CheckoutService) Load(ctx context.Context) error {
	lines, err := s.cartStore.Load(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.cart.Replace(lines)
	s.mu.Unlock()
	return nil
}

// AddLine prices the given amount of product and appends it to the
// cart. When the product tracks stock and the cart's total consumption
// of it would exceed what is on hand, the add is refused with
// ErrInsufficientStock unless force is set.
func (s *CheckoutService) AddLine(ctx context.Context, productID string, amount int64, force bool) (sales.CartLine, error) {
	product, ok := s.catalog.Find(productID)
	if !ok {
		return sales.CartLine{}, shared.ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if product.TrackStock {
		requested := sales.ClampGrams(amount)
		if product.UnitType == catalog.UnitTypeCount {
			requested = sales.ClampUnits(amount)
		}
		inCart := sales.ConsumptionByProduct(s.cart.Lines())[productID]
		if !product.HasSufficientStock(inCart + requested) {
			if !force {
				return sales.CartLine{}, shared.ErrInsufficientStock
			}
			s.logger.Warn("Line added past stock warning",
				zap.String("product_id", productID),
				zap.Int64("requested", requested),
				zap.Int64("available", product.Stock-inCart),
			)
		}
	}

	line := s.cart.AddLine(product, amount)
	if err := s.cartStore.Save(ctx, s.cart.Lines()); err != nil {
		return sales.CartLine{}, err
	}
	return line, nil
}

// RemoveLine removes a cart line. Removing a line that is no longer
// present is a no-op.
func (s *CheckoutService) RemoveLine(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.RemoveLine(id) {
		return nil
	}
	return s.cartStore.Save(ctx, s.cart.Lines())
}

// EditLine removes a line and returns it so the caller can re-seed its
// inputs from the line's product and amount. Re-adding goes through
// AddLine, which reprices.
func (s *CheckoutService) EditLine(ctx context.Context, id uuid.UUID) (sales.CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.cart.TakeLine(id)
	if !ok {
		return sales.CartLine{}, shared.ErrNotFound
	}
	if err := s.cartStore.Save(ctx, s.cart.Lines()); err != nil {
		return sales.CartLine{}, err
	}
	return line, nil
}

// ClearCart empties the cart unconditionally
func (s *CheckoutService) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Clear()
	return s.cartStore.Save(ctx, s.cart.Lines())
}

// CartLines returns the current cart lines in insertion order
func (s *CheckoutService) CartLines() []sales.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// CartSubtotal returns the running subtotal of the cart
func (s *CheckoutService) CartSubtotal() valueobject.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal()
}

// Finalize turns the cart into a completed ledger entry: stock is
// deducted, the cart is cleared, and the order is appended to the
// history. The append is the commit point; when it or the cart save
// fails, the deduction and the cart are rolled back so a failed
// finalize leaves no trace. Availability was already weighed at add
// time; finalization never refuses over stock.
func (s *CheckoutService) Finalize(ctx context.Context, req FinalizeRequest) (*sales.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.cart.Lines()
	order, err := sales.NewCompletedOrder(
		lines,
		decimal.NewFromFloat(req.Discount),
		sales.PaymentMethod(req.PaymentMethod),
		req.CustomerName,
	)
	if err != nil {
		return nil, err
	}

	prior, err := s.inventory.Deduct(ctx, order.Lines)
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	if err := s.cartStore.Save(ctx, s.cart.Lines()); err != nil {
		s.cart.Replace(lines)
		s.undoDeduction(ctx, prior)
		return nil, err
	}

	if err := s.history.Append(ctx, order); err != nil {
		s.cart.Replace(lines)
		if saveErr := s.cartStore.Save(ctx, lines); saveErr != nil {
			s.logger.Error("Cart restore after failed finalize", zap.Error(saveErr))
		}
		s.undoDeduction(ctx, prior)
		return nil, err
	}

	s.logger.Info("Order finalized",
		zap.String("order_id", order.ID.String()),
		zap.String("customer", order.CustomerName),
		zap.String("payment_method", order.PaymentMethod.String()),
		zap.String("total", order.Total.StringFixed(2)),
	)
	return order, nil
}

// undoDeduction re-saves the prior stock levels after a failed
// finalize. A failing restore is logged; the catalog blob then holds
// the deducted levels but the ledger holds no matching order.
func (s *CheckoutService) undoDeduction(ctx context.Context, prior map[string]int64) {
	if err := s.inventory.RestoreStock(ctx, prior); err != nil {
		s.logger.Error("Stock restore after failed finalize", zap.Error(err))
	}
}

// SaveDraft moves the cart into a saved quote. The draft keeps the
// priced lines; payment method and discount are chosen again when it
// is resumed and finalized.
func (s *CheckoutService) SaveDraft(ctx context.Context) (*sales.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := sales.NewDraft(s.cart.Lines())
	if err != nil {
		return nil, err
	}
	if err := s.drafts.Add(ctx, draft); err != nil {
		return nil, err
	}

	s.cart.Clear()
	if err := s.cartStore.Save(ctx, s.cart.Lines()); err != nil {
		return nil, err
	}

	s.logger.Info("Draft saved",
		zap.String("draft_id", draft.ID.String()),
		zap.Int("lines", draft.LineCount()),
	)
	return draft, nil
}

// ResumeDraft moves a saved quote back into the cart, replacing its
// contents. A non-empty cart refuses with ErrCartNotEmpty unless force
// is set; the current cart contents are then discarded.
func (s *CheckoutService) ResumeDraft(ctx context.Context, id uuid.UUID, force bool) (*sales.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.IsEmpty() && !force {
		return nil, shared.ErrCartNotEmpty
	}

	draft, found, err := s.drafts.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, shared.ErrNotFound
	}

	s.cart.Replace(draft.Lines)
	if err := s.cartStore.Save(ctx, s.cart.Lines()); err != nil {
		return nil, err
	}

	s.logger.Info("Draft resumed", zap.String("draft_id", draft.ID.String()))
	return draft, nil
}

// DiscardDraft deletes a saved quote. Discarding an unknown id is a
// no-op.
func (s *CheckoutService) DiscardDraft(ctx context.Context, id uuid.UUID) error {
	_, _, err := s.drafts.Remove(ctx, id)
	return err
}

// Drafts returns the saved quotes, newest-first
func (s *CheckoutService) Drafts() []*sales.Order {
	return s.drafts.List()
}

// RecordCreditPayment appends a repayment entry to the ledger
func (s *CheckoutService) RecordCreditPayment(ctx context.Context, req CreditPaymentRequest) (*sales.Order, error) {
	payment, err := sales.NewCreditPayment(
		req.CustomerName,
		decimal.NewFromFloat(req.Amount),
		sales.PaymentMethod(req.PaymentMethod),
	)
	if err != nil {
		return nil, err
	}
	if err := s.history.Append(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Credit payment recorded",
		zap.String("customer", payment.CustomerName),
		zap.String("amount", payment.Total.StringFixed(2)),
	)
	return payment, nil
}

// History yields ledger entries newest-first
func (s *CheckoutService) History() iter.Seq[*sales.Order] {
	return s.history.History()
}
