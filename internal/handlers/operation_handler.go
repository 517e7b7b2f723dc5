package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apfood/storefront-api/internal/audit"
	"github.com/apfood/storefront-api/internal/availability"
	"github.com/apfood/storefront-api/internal/cache"
	"github.com/apfood/storefront-api/internal/httperr"
	"github.com/apfood/storefront-api/internal/middleware"
	"github.com/apfood/storefront-api/internal/models"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// OperationHandler expõe o documento de operação da loja: agenda semanal,
// pausa manual e override. É o mesmo documento que o motor de
// disponibilidade avalia na vitrine.
type OperationHandler struct {
	db    *gorm.DB
	cache *cache.StoreCache
	audit *audit.Dispatcher
}

func NewOperationHandler(db *gorm.DB, storeCache *cache.StoreCache, dispatcher *audit.Dispatcher) *OperationHandler {
	return &OperationHandler{db: db, cache: storeCache, audit: dispatcher}
}

////////////////////////////////////////////////////////
// VALIDAÇÃO
////////////////////////////////////////////////////////

// validateOperacao devolve o código de erro, ou "" quando o documento é
// aceitável. Diferente do motor (que tolera documento antigo ruim), aqui
// a gravação é estrita para não criar documento novo já quebrado.
func validateOperacao(op availability.OperatingConfig) string {
	if op.Schedule.Timezone != "" {
		if _, err := time.LoadLocation(op.Schedule.Timezone); err != nil {
			return "invalid_timezone"
		}
	}

	for dayKey, intervals := range op.Schedule.Weekly {
		if !availability.ValidDayKey(dayKey) {
			return "invalid_day_key"
		}

		for _, interval := range intervals {
			start, ok := availability.ParseTimeOfDay(interval.Start)
			if !ok {
				return "invalid_interval"
			}
			end, ok := availability.ParseTimeOfDay(interval.End)
			if !ok {
				return "invalid_interval"
			}
			// faixa que nunca abre: rejeitada na escrita
			if end <= start {
				return "invalid_interval"
			}
		}
	}

	switch op.Override.Mode {
	case availability.OverrideOpen, availability.OverrideClosed, "":
	default:
		return "invalid_override_mode"
	}

	if op.Override.Until != "" {
		if _, err := time.Parse(time.RFC3339, op.Override.Until); err != nil {
			return "invalid_override_until"
		}
	}

	return ""
}

////////////////////////////////////////////////////////
// OPERAÇÃO (documento completo)
////////////////////////////////////////////////////////

func (h *OperationHandler) Get(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)

	var store models.Store
	if err := h.db.First(&store, storeID).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	c.JSON(http.StatusOK, store.Operacao)
}

func (h *OperationHandler) Update(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var store models.Store
	if err := h.db.First(&store, storeID).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	var req availability.OperatingConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Documento de operação inválido.")
		return
	}

	if code := validateOperacao(req); code != "" {
		httperr.BadRequest(c, code, "Documento de operação inválido.")
		return
	}

	if req.Schedule.Timezone == "" {
		req.Schedule.Timezone = availability.DefaultTimezone
	}

	store.Operacao = req
	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_save_operation", "Erro ao salvar a operação.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), store.Slug)

	h.audit.Dispatch(audit.Event{
		StoreID:  storeID,
		UserID:   &userID,
		Action:   "operation_updated",
		Entity:   "store",
		EntityID: &store.ID,
	})

	c.JSON(http.StatusOK, store.Operacao)
}

////////////////////////////////////////////////////////
// OVERRIDE (ação rápida do gestor)
////////////////////////////////////////////////////////

type SetOverrideRequest struct {
	Enabled bool   `json:"enabled"`
	Mode    string `json:"mode"`
	Reason  string `json:"reason"`

	// RFC3339 explícito, ou atalho em minutos a partir de agora
	Until        string `json:"until"`
	UntilMinutes int    `json:"until_minutes"`
}

func (h *OperationHandler) SetOverride(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var store models.Store
	if err := h.db.First(&store, storeID).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	var req SetOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	override := availability.Override{
		Enabled: req.Enabled,
		Mode:    availability.OverrideMode(req.Mode),
		Reason:  req.Reason,
		Until:   req.Until,
	}

	if req.Until != "" && req.UntilMinutes > 0 {
		httperr.BadRequest(c, "ambiguous_until", "Informe until ou until_minutes, não os dois.")
		return
	}
	if req.UntilMinutes > 0 {
		override.Until = time.Now().Add(time.Duration(req.UntilMinutes) * time.Minute).Format(time.RFC3339)
	}

	if override.Mode == "" {
		override.Mode = availability.OverrideClosed
	}

	probe := store.Operacao
	probe.Override = override
	if code := validateOperacao(probe); code != "" {
		httperr.BadRequest(c, code, "Override inválido.")
		return
	}

	store.Operacao.Override = override
	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_save_override", "Erro ao salvar o override.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), store.Slug)

	h.audit.Dispatch(audit.Event{
		StoreID:  storeID,
		UserID:   &userID,
		Action:   "override_changed",
		Entity:   "store",
		EntityID: &store.ID,
		Metadata: override,
	})

	c.JSON(http.StatusOK, store.Operacao.Override)
}

////////////////////////////////////////////////////////
// PAUSA MANUAL
////////////////////////////////////////////////////////

type SetPauseRequest struct {
	ManualOpen *bool `json:"manualOpen" binding:"required"`
}

func (h *OperationHandler) SetPause(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var store models.Store
	if err := h.db.First(&store, storeID).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	var req SetPauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	store.Operacao.ManualOpen = *req.ManualOpen
	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_save_pause", "Erro ao salvar a pausa.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), store.Slug)

	h.audit.Dispatch(audit.Event{
		StoreID:  storeID,
		UserID:   &userID,
		Action:   "manual_pause_changed",
		Entity:   "store",
		EntityID: &store.ID,
		Metadata: map[string]bool{"manualOpen": *req.ManualOpen},
	})

	c.JSON(http.StatusOK, gin.H{"manualOpen": store.Operacao.ManualOpen})
}
