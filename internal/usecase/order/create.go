package order

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/apfood/storefront-api/internal/audit"
	"github.com/apfood/storefront-api/internal/availability"
	domain "github.com/apfood/storefront-api/internal/domain/order"
	"github.com/apfood/storefront-api/internal/httperr"
	"github.com/apfood/storefront-api/internal/models"
	"github.com/apfood/storefront-api/internal/payments"
)

// ======================================================
// INPUT
// ======================================================

type ItemInput struct {
	Name           string
	Quantity       int
	UnitPriceCents int
}

type CreateOrderInput struct {
	Slug string

	CustomerName  string
	CustomerPhone string

	Items []ItemInput
	Notes string
}

// StoreClosedError carrega o veredicto para a resposta do checkout.
type StoreClosedError struct {
	Verdict availability.Verdict
}

func (e StoreClosedError) Error() string {
	return "store_closed"
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo      domain.Repository
	audit     *audit.Dispatcher
	checkout  *payments.Checkout
	evaluator availability.Evaluator

	now func() time.Time
}

func NewCreateOrder(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	checkout *payments.Checkout,
	evaluator availability.Evaluator,
) *CreateOrder {
	return &CreateOrder{
		repo:      repo,
		audit:     auditDispatcher,
		checkout:  checkout,
		evaluator: evaluator,
		now:       time.Now,
	}
}

// WithClock troca a fonte de tempo (testes usam instante fixo).
func (uc *CreateOrder) WithClock(now func() time.Time) *CreateOrder {
	uc.now = now
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	// --------------------------------------------------
	// 1️⃣ Loja
	// --------------------------------------------------
	store, err := uc.repo.GetStoreBySlug(ctx, in.Slug)
	if err != nil {
		return nil, httperr.ErrBusiness("store_not_found")
	}

	// --------------------------------------------------
	// 2️⃣ Itens
	// --------------------------------------------------
	if strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, httperr.ErrBusiness("invalid_customer")
	}

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_order")
	}

	total := 0
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 || item.UnitPriceCents < 0 {
			return nil, httperr.ErrBusiness("invalid_item")
		}
		total += item.Quantity * item.UnitPriceCents
		items = append(items, models.OrderItem{
			Name:           strings.TrimSpace(item.Name),
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	// --------------------------------------------------
	// 3️⃣ Portão de disponibilidade: pedido só com loja aberta
	// --------------------------------------------------
	verdict, err := uc.evaluator.Evaluate(store.Operacao, uc.now())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_timezone")
	}

	if !verdict.IsOpen {
		return nil, StoreClosedError{Verdict: verdict}
	}

	// --------------------------------------------------
	// 4️⃣ Criação do pedido
	// --------------------------------------------------
	o := &models.Order{
		StoreID:       store.ID,
		Code:          uuid.NewString(),
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerPhone: strings.TrimSpace(in.CustomerPhone),
		Items:         items,
		TotalCents:    total,
		Notes:         in.Notes,
		Status:        string(domain.InitialStatus()),
	}

	// --------------------------------------------------
	// 5️⃣ Preferência de pagamento (melhor esforço)
	// --------------------------------------------------
	if uc.checkout != nil {
		if pref, err := uc.checkout.CreatePreference(ctx, store, o); err != nil {
			log.Println("mercadopago preference:", err)
		} else {
			o.PaymentPreferenceID = pref.ID
			o.PaymentURL = pref.URL
		}
	}

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			StoreID:  store.ID,
			Action:   "order_created",
			Entity:   "order",
			EntityID: &o.ID,
			Metadata: map[string]any{"code": o.Code, "total_cents": o.TotalCents},
		})
	}

	return o, nil
}
