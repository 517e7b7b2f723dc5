package order

import (
	"context"
	"time"

	"github.com/apfood/storefront-api/internal/audit"
	domain "github.com/apfood/storefront-api/internal/domain/order"
	"github.com/apfood/storefront-api/internal/models"
)

type CancelOrder struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelOrder(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CancelOrder {
	return &CancelOrder{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *CancelOrder) Execute(
	ctx context.Context,
	storeID uint,
	userID uint,
	orderID uint,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderForStore(ctx, orderID, storeID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(o, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			StoreID:  storeID,
			UserID:   &userID,
			Action:   "order_cancelled",
			Entity:   "order",
			EntityID: &o.ID,
		})
	}

	return o, nil
}
