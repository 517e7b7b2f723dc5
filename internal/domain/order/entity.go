package order

import (
	"time"

	"github.com/apfood/storefront-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(o *models.Order, now time.Time) error {
	if err := CanConfirm(Status(o.Status)); err != nil {
		return err
	}

	o.Status = string(StatusConfirmed)
	o.ConfirmedAt = &now
	return nil
}

func Cancel(o *models.Order, now time.Time) error {
	if err := CanCancel(Status(o.Status)); err != nil {
		return err
	}

	o.Status = string(StatusCancelled)
	o.CancelledAt = &now
	return nil
}
