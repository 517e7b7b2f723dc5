package order

import (
	"context"
	"time"

	"github.com/apfood/storefront-api/internal/models"
)

type Repository interface {
	// -------- Store --------
	GetStoreBySlug(
		ctx context.Context,
		slug string,
	) (*models.Store, error)

	GetStoreByID(
		ctx context.Context,
		id uint,
	) (*models.Store, error)

	// -------- Order --------
	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	GetOrderForStore(
		ctx context.Context,
		orderID uint,
		storeID uint,
	) (*models.Order, error)

	UpdateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	ListOrdersForDay(
		ctx context.Context,
		storeID uint,
		start time.Time,
		end time.Time,
	) ([]models.Order, error)
}
