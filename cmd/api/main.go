package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/apfood/storefront-api/internal/cache"
	"github.com/apfood/storefront-api/internal/config"
	dbpkg "github.com/apfood/storefront-api/internal/db"
	"github.com/apfood/storefront-api/internal/payments"
	"github.com/apfood/storefront-api/internal/routes"
)

func main() {

	// .env local; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient := cache.NewClient(cfg)
	storeCache := cache.NewStoreCache(redisClient, 60*time.Second)

	checkout, err := payments.NewCheckout(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatalf("mercadopago: %v", err)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, storeCache, checkout)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
