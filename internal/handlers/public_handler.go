package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apfood/storefront-api/internal/availability"
	"github.com/apfood/storefront-api/internal/cache"
	"github.com/apfood/storefront-api/internal/httperr"
	"github.com/apfood/storefront-api/internal/httpresp"
	"github.com/apfood/storefront-api/internal/models"
	"github.com/apfood/storefront-api/internal/tenant"
	usecase "github.com/apfood/storefront-api/internal/usecase/order"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serve a vitrine: sem autenticação, sempre por slug.
type PublicHandler struct {
	db          *gorm.DB
	cache       *cache.StoreCache
	evaluator   availability.Evaluator
	createOrder *usecase.CreateOrder
	rootDomain  string
}

func NewPublicHandler(
	db *gorm.DB,
	storeCache *cache.StoreCache,
	evaluator availability.Evaluator,
	createOrder *usecase.CreateOrder,
	rootDomain string,
) *PublicHandler {
	return &PublicHandler{
		db:          db,
		cache:       storeCache,
		evaluator:   evaluator,
		createOrder: createOrder,
		rootDomain:  rootDomain,
	}
}

// loadStore busca pelo cache primeiro; miss vai ao banco e repovoa.
func (h *PublicHandler) loadStore(ctx context.Context, slug string) (*models.Store, error) {
	if store, ok := h.cache.Get(ctx, slug); ok {
		return store, nil
	}

	var store models.Store
	if err := h.db.Where("slug = ?", slug).First(&store).Error; err != nil {
		return nil, err
	}

	h.cache.Set(ctx, &store)
	return &store, nil
}

////////////////////////////////////////////////////////
// TENANT
////////////////////////////////////////////////////////

// ResolveTenant traduz o hostname da vitrine (via X-Forwarded-Host atrás
// do proxy) no slug da loja. Hosts locais caem no query param ?loja=.
func (h *PublicHandler) ResolveTenant(c *gin.Context) {
	hostname := tenant.HostnameFromHeaders(c.Request.Header, c.Request.Host)

	slug := tenant.SlugFromHostname(hostname, c.Request.URL.Query(), h.rootDomain)
	if slug == "" {
		httperr.NotFound(c, "tenant_not_found", "Nenhuma loja para este endereço.")
		return
	}

	store, err := h.loadStore(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	httpresp.OK(c, gin.H{
		"slug":     store.Slug,
		"hostname": hostname,
		"store": gin.H{
			"name":     store.Name,
			"phone":    store.Phone,
			"address":  store.Address,
			"branding": store.Branding,
		},
	})
}

////////////////////////////////////////////////////////
// LOJA (snapshot público)
////////////////////////////////////////////////////////

type PublicStoreResponse struct {
	Name     string               `json:"name"`
	Slug     string               `json:"slug"`
	Phone    string               `json:"phone,omitempty"`
	Address  string               `json:"address,omitempty"`
	Branding models.Branding      `json:"branding"`
	Status   availability.Verdict `json:"status"`
}

func (h *PublicHandler) GetStore(c *gin.Context) {
	slug := tenant.SanitizeSlug(c.Param("slug"))
	if slug == "" {
		httperr.BadRequest(c, "invalid_slug", "Slug inválido.")
		return
	}

	store, err := h.loadStore(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	verdict, err := h.evaluator.Evaluate(store.Operacao, time.Now())
	if err != nil {
		httperr.Internal(c, "invalid_timezone", "Fuso horário da loja inválido.")
		return
	}

	httpresp.OK(c, PublicStoreResponse{
		Name:     store.Name,
		Slug:     store.Slug,
		Phone:    store.Phone,
		Address:  store.Address,
		Branding: store.Branding,
		Status:   verdict,
	})
}

////////////////////////////////////////////////////////
// DISPONIBILIDADE
////////////////////////////////////////////////////////

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	slug := tenant.SanitizeSlug(c.Param("slug"))
	if slug == "" {
		httperr.BadRequest(c, "invalid_slug", "Slug inválido.")
		return
	}

	store, err := h.loadStore(c.Request.Context(), slug)
	if err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	at := time.Now()
	if raw := c.Query("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_at", "Use RFC3339 no parâmetro 'at'.")
			return
		}
		at = parsed
	}

	verdict, err := h.evaluator.Evaluate(store.Operacao, at)
	if err != nil {
		httperr.Internal(c, "invalid_timezone", "Fuso horário da loja inválido.")
		return
	}

	httpresp.OK(c, verdict)
}

////////////////////////////////////////////////////////
// PEDIDOS
////////////////////////////////////////////////////////

type CreateOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`

	Items []struct {
		Name           string `json:"name"`
		Quantity       int    `json:"quantity"`
		UnitPriceCents int    `json:"unit_price_cents"`
	} `json:"items"`
}

func (h *PublicHandler) CreateOrder(c *gin.Context) {
	slug := tenant.SanitizeSlug(c.Param("slug"))
	if slug == "" {
		httperr.BadRequest(c, "invalid_slug", "Slug inválido.")
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	in := usecase.CreateOrderInput{
		Slug:          slug,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, usecase.ItemInput{
			Name:           item.Name,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
		})
	}

	order, err := h.createOrder.Execute(c.Request.Context(), in)
	if err != nil {
		var closed usecase.StoreClosedError
		var business httperr.BusinessError

		switch {
		case errors.As(err, &closed):
			// 409 carrega o veredicto para a vitrine exibir o motivo
			c.JSON(http.StatusConflict, gin.H{
				"error":   "store_closed",
				"message": closed.Verdict.Message,
				"status":  closed.Verdict,
			})
		case httperr.IsBusiness(err, "store_not_found"):
			httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		case errors.As(err, &business):
			httperr.BadRequest(c, business.Code, "Pedido inválido.")
		default:
			httperr.Internal(c, "failed_to_create_order", "Erro ao criar o pedido.")
		}
		return
	}

	httpresp.Created(c, order)
}
