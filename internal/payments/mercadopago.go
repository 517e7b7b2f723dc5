// Package payments cria a preferência de checkout no Mercado Pago para
// pedidos criados na vitrine. Sem token configurado o recurso fica desligado
// e o pedido segue sem link de pagamento.
package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/apfood/storefront-api/internal/models"
)

type Checkout struct {
	prefs preference.Client
}

// NewCheckout devolve nil quando não há token: chamador trata como opcional.
func NewCheckout(accessToken string) (*Checkout, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Checkout{prefs: preference.NewClient(cfg)}, nil
}

type Preference struct {
	ID  string
	URL string
}

func (c *Checkout) CreatePreference(ctx context.Context, store *models.Store, o *models.Order) (*Preference, error) {
	items := make([]preference.ItemRequest, 0, len(o.Items))
	for i, item := range o.Items {
		items = append(items, preference.ItemRequest{
			ID:        fmt.Sprintf("%s-%d", o.Code, i),
			Title:     item.Name,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPriceCents) / 100,
		})
	}

	resource, err := c.prefs.Create(ctx, preference.Request{
		Items:               items,
		ExternalReference:   o.Code,
		StatementDescriptor: store.Name,
	})
	if err != nil {
		return nil, err
	}

	return &Preference{ID: resource.ID, URL: resource.InitPoint}, nil
}
