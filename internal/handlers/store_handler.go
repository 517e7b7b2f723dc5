package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apfood/storefront-api/internal/cache"
	"github.com/apfood/storefront-api/internal/httperr"
	"github.com/apfood/storefront-api/internal/middleware"
	"github.com/apfood/storefront-api/internal/models"
)

type StoreHandler struct {
	db    *gorm.DB
	cache *cache.StoreCache
}

func NewStoreHandler(db *gorm.DB, storeCache *cache.StoreCache) *StoreHandler {
	return &StoreHandler{db: db, cache: storeCache}
}

type UpdateStoreRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

func (h *StoreHandler) GetMeStore(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)

	var store models.Store
	if err := h.db.First(&store, storeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_store", "Erro ao buscar dados da loja.")
		return
	}

	c.JSON(http.StatusOK, store)
}

func (h *StoreHandler) UpdateMeStore(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)

	var store models.Store
	if err := h.db.First(&store, storeID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_store", "Erro ao buscar dados da loja.")
		return
	}

	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	if req.Name != nil {
		if *req.Name == "" {
			httperr.BadRequest(c, "invalid_name", "Nome da loja não pode ficar vazio.")
			return
		}
		store.Name = *req.Name
	}
	if req.Phone != nil {
		store.Phone = *req.Phone
	}
	if req.Address != nil {
		store.Address = *req.Address
	}

	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_update_store", "Erro ao salvar as configurações da loja.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), store.Slug)

	c.JSON(http.StatusOK, store)
}
