package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/kinafsalud/turnos-api/internal/models"
)

// Checkout cria preferências de pagamento do Mercado Pago para
// serviços pagos. Nil quando MP_ACCESS_TOKEN não está configurado.
type Checkout struct {
	client preference.Client
}

func NewCheckout(accessToken string) (*Checkout, error) {
	if accessToken == "" {
		return nil, nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Checkout{client: preference.NewClient(cfg)}, nil
}

// PreferenceFor devolve o init point do checkout para um turno de um
// serviço pago. Vazio quando o checkout está desligado ou o serviço é
// gratuito.
func (c *Checkout) PreferenceFor(
	ctx context.Context,
	ap *models.Appointment,
	service *models.Service,
) (string, error) {

	if c == nil || service.Price <= 0 {
		return "", nil
	}

	resp, err := c.client.Create(ctx, preference.Request{
		Items: []preference.ItemRequest{
			{
				Title:     service.Name,
				Quantity:  1,
				UnitPrice: service.Price,
			},
		},
		ExternalReference: ap.ID.String(),
	})
	if err != nil {
		return "", err
	}

	return resp.InitPoint, nil
}
