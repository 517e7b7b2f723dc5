package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/apfood/storefront-api/internal/audit"
	"github.com/apfood/storefront-api/internal/availability"
	"github.com/apfood/storefront-api/internal/branding"
	"github.com/apfood/storefront-api/internal/cache"
	"github.com/apfood/storefront-api/internal/config"
	"github.com/apfood/storefront-api/internal/handlers"
	infraRepo "github.com/apfood/storefront-api/internal/infra/repository"
	"github.com/apfood/storefront-api/internal/middleware"
	"github.com/apfood/storefront-api/internal/payments"
	ucOrder "github.com/apfood/storefront-api/internal/usecase/order"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	storeCache *cache.StoreCache,
	checkout *payments.Checkout,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	evaluator := availability.Evaluator{DefaultTimezone: cfg.DefaultTimezone}

	uploader := branding.NewUploader(cfg)

	// ======================================================
	// 🧠 USE CASES — PEDIDOS
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(
		orderRepo,
		auditDispatcher,
		checkout,
		evaluator,
	)

	confirmOrderUC := ucOrder.NewConfirmOrder(
		orderRepo,
		auditDispatcher,
	)

	cancelOrderUC := ucOrder.NewCancelOrder(
		orderRepo,
		auditDispatcher,
	)

	listOrdersByDateUC := ucOrder.NewListOrdersByDate(
		orderRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	storeHandler := handlers.NewStoreHandler(db, storeCache)

	operationHandler := handlers.NewOperationHandler(db, storeCache, auditDispatcher)
	brandingHandler := handlers.NewBrandingHandler(db, storeCache, uploader, auditDispatcher)

	ordersHandler := handlers.NewOrdersHandler(
		listOrdersByDateUC,
		confirmOrderUC,
		cancelOrderUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		storeCache,
		evaluator,
		createOrderUC,
		cfg.RootDomain,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (vitrine)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/resolve-tenant", publicHandler.ResolveTenant)
			publicAPI.GET("/:slug/store", publicHandler.GetStore)
			publicAPI.GET("/:slug/availability", publicHandler.GetAvailability)
			publicAPI.POST("/:slug/orders", publicHandler.CreateOrder)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (painel do gestor)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/store", storeHandler.GetMeStore)
			secured.PATCH("/me/store", storeHandler.UpdateMeStore)

			secured.GET("/me/store/operation", operationHandler.Get)
			secured.PUT("/me/store/operation", operationHandler.Update)
			secured.PATCH("/me/store/override", operationHandler.SetOverride)
			secured.PATCH("/me/store/pause", operationHandler.SetPause)

			secured.POST("/me/store/logo", brandingHandler.UploadLogo)
			secured.PATCH("/me/store/branding", brandingHandler.UpdateColors)

			// ------------------------------
			// PEDIDOS
			// ------------------------------
			secured.GET("/me/orders", ordersHandler.ListByDate)
			secured.PATCH("/me/orders/:id/confirm", ordersHandler.Confirm)
			secured.PATCH("/me/orders/:id/cancel", ordersHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
