package handlers

import (
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apfood/storefront-api/internal/audit"
	"github.com/apfood/storefront-api/internal/branding"
	"github.com/apfood/storefront-api/internal/cache"
	"github.com/apfood/storefront-api/internal/httperr"
	"github.com/apfood/storefront-api/internal/middleware"
	"github.com/apfood/storefront-api/internal/models"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type BrandingHandler struct {
	db       *gorm.DB
	cache    *cache.StoreCache
	uploader *branding.Uploader
	audit    *audit.Dispatcher
}

func NewBrandingHandler(db *gorm.DB, storeCache *cache.StoreCache, uploader *branding.Uploader, dispatcher *audit.Dispatcher) *BrandingHandler {
	return &BrandingHandler{db: db, cache: storeCache, uploader: uploader, audit: dispatcher}
}

////////////////////////////////////////////////////////
// LOGO
////////////////////////////////////////////////////////

func (h *BrandingHandler) UploadLogo(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var store models.Store
	if err := h.db.First(&store, storeID).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'logo'.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Não foi possível ler o arquivo.")
		return
	}
	defer file.Close()

	// +1 para detectar estouro do limite sem carregar o arquivo inteiro
	data, err := io.ReadAll(io.LimitReader(file, branding.MaxLogoBytes+1))
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Não foi possível ler o arquivo.")
		return
	}

	webpData, err := branding.PrepareLogo(data)
	if err != nil {
		switch {
		case errors.Is(err, branding.ErrLogoTooLarge):
			httperr.BadRequest(c, "logo_too_large", "O logo deve ter no máximo 1MB.")
		case errors.Is(err, branding.ErrLogoInvalidFormat):
			httperr.BadRequest(c, "logo_invalid_format", "Formato inválido: use png, jpg ou webp.")
		default:
			httperr.Internal(c, "failed_to_process_logo", "Erro ao processar o logo.")
		}
		return
	}

	path, url, err := h.uploader.UploadLogo(c.Request.Context(), store.ID, webpData)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_logo", "Erro ao enviar o logo.")
		return
	}

	store.Branding.LogoPath = path
	store.Branding.LogoURL = url
	store.Branding.UpdatedBy = &userID

	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_save_branding", "Erro ao salvar o branding.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), store.Slug)

	h.audit.Dispatch(audit.Event{
		StoreID:  storeID,
		UserID:   &userID,
		Action:   "logo_uploaded",
		Entity:   "store",
		EntityID: &store.ID,
		Metadata: map[string]string{"logoPath": path},
	})

	c.JSON(http.StatusOK, store.Branding)
}

////////////////////////////////////////////////////////
// CORES
////////////////////////////////////////////////////////

type UpdateColorsRequest struct {
	BrandPrimary   *string `json:"brandPrimary"`
	BrandSecondary *string `json:"brandSecondary"`
	BrandAccent    *string `json:"brandAccent"`
}

func (h *BrandingHandler) UpdateColors(c *gin.Context) {
	storeID := c.MustGet(middleware.ContextStoreID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var store models.Store
	if err := h.db.First(&store, storeID).Error; err != nil {
		httperr.NotFound(c, "store_not_found", "Loja não encontrada.")
		return
	}

	var req UpdateColorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos na requisição.")
		return
	}

	for _, color := range []*string{req.BrandPrimary, req.BrandSecondary, req.BrandAccent} {
		if color != nil && !hexColorPattern.MatchString(*color) {
			httperr.BadRequest(c, "invalid_color", "Cores devem estar no formato #RRGGBB.")
			return
		}
	}

	if req.BrandPrimary != nil {
		store.Branding.Colors.BrandPrimary = *req.BrandPrimary
	}
	if req.BrandSecondary != nil {
		store.Branding.Colors.BrandSecondary = *req.BrandSecondary
	}
	if req.BrandAccent != nil {
		store.Branding.Colors.BrandAccent = *req.BrandAccent
	}
	store.Branding.UpdatedBy = &userID

	if err := h.db.Save(&store).Error; err != nil {
		httperr.Internal(c, "failed_to_save_branding", "Erro ao salvar o branding.")
		return
	}

	h.cache.Invalidate(c.Request.Context(), store.Slug)

	h.audit.Dispatch(audit.Event{
		StoreID:  storeID,
		UserID:   &userID,
		Action:   "branding_colors_updated",
		Entity:   "store",
		EntityID: &store.ID,
		Metadata: store.Branding.Colors,
	})

	c.JSON(http.StatusOK, store.Branding)
}
