package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/apfood/storefront-api/internal/config"
	"github.com/apfood/storefront-api/internal/models"
)

func NewClient(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

// StoreCache guarda o snapshot público da loja por slug. Falha de Redis
// nunca derruba a requisição: a vitrine cai no banco e segue.
type StoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStoreCache(client *redis.Client, ttl time.Duration) *StoreCache {
	return &StoreCache{client: client, ttl: ttl}
}

func storeKey(slug string) string {
	return "store:slug:" + slug
}

func (c *StoreCache) Get(ctx context.Context, slug string) (*models.Store, bool) {
	payload, err := c.client.Get(ctx, storeKey(slug)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("store cache get:", err)
		}
		return nil, false
	}

	var store models.Store
	if err := json.Unmarshal(payload, &store); err != nil {
		return nil, false
	}
	return &store, true
}

func (c *StoreCache) Set(ctx context.Context, store *models.Store) {
	payload, err := json.Marshal(store)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, storeKey(store.Slug), payload, c.ttl).Err(); err != nil {
		log.Println("store cache set:", err)
	}
}

// Invalidate é chamado em toda mutação do gestor (operação, branding, dados).
func (c *StoreCache) Invalidate(ctx context.Context, slug string) {
	if err := c.client.Del(ctx, storeKey(slug)).Err(); err != nil {
		log.Println("store cache invalidate:", err)
	}
}
