package order

import (
	"context"
	"time"

	domain "github.com/apfood/storefront-api/internal/domain/order"
	"github.com/apfood/storefront-api/internal/httperr"
	"github.com/apfood/storefront-api/internal/models"
	"github.com/apfood/storefront-api/internal/timezone"
)

type ListOrdersByDate struct {
	repo domain.Repository
}

func NewListOrdersByDate(repo domain.Repository) *ListOrdersByDate {
	return &ListOrdersByDate{repo: repo}
}

// Execute lista os pedidos do dia no timezone da loja.
func (uc *ListOrdersByDate) Execute(
	ctx context.Context,
	storeID uint,
	dateStr string,
) ([]models.Order, error) {

	store, err := uc.repo.GetStoreByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	dayStart, err := timezone.ParseDateIn(store.Operacao.Schedule.Timezone, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return uc.repo.ListOrdersForDay(ctx, storeID, dayStart, dayStart.Add(24*time.Hour))
}
