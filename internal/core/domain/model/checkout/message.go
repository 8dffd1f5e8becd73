package checkout

import (
	"errors"
	"fmt"
	"strings"

	"pratofit/internal/core/domain/model/cart"
	"pratofit/internal/core/domain/model/catalog"
	"pratofit/internal/core/domain/model/kernel"
)

// separator is the visual divider the receiving operator relies on.
const separator = "--------------------------------"

// ErrOrderIsIncomplete is returned when an order is composed from a cart
// that is not exactly at kit capacity.
var ErrOrderIsIncomplete = errors.New("order requires a cart filled to exact kit capacity")

// PickupInfo describes the store location for pickup orders. Static
// configuration.
type PickupInfo struct {
	Address  string
	City     string
	Hours    string
	MapsLink string
}

// Order is a finished, validated order ready for serialization: the chosen
// kit, the lines filling it, the fulfillment details and the resolved fee.
type Order struct {
	kit          catalog.Kit
	lines        []cart.Line
	mode         Mode
	draft        Draft
	neighborhood string
	fee          kernel.Money
	pickup       PickupInfo
}

// NewOrder assembles an order for serialization. The cart lines must sum to
// exactly the kit capacity; draft validation has already happened by the
// time an order is composed.
func NewOrder(
	kit catalog.Kit,
	lines []cart.Line,
	mode Mode,
	draft Draft,
	neighborhood string,
	fee kernel.Money,
	pickup PickupInfo,
) (Order, error) {
	if err := kit.Validate(); err != nil {
		return Order{}, err
	}
	if err := mode.Validate(); err != nil {
		return Order{}, err
	}

	total := 0
	for _, line := range lines {
		total += line.Quantity()
	}
	if total != kit.TotalMeals() {
		return Order{}, ErrOrderIsIncomplete
	}

	return Order{
		kit:          kit,
		lines:        append([]cart.Line(nil), lines...),
		mode:         mode,
		draft:        draft,
		neighborhood: neighborhood,
		fee:          fee,
		pickup:       pickup,
	}, nil
}

// Total returns the amount to pay: kit price plus the fee in delivery mode.
func (o Order) Total() kernel.Money {
	if o.mode == ModeDelivery {
		return o.kit.Price().Add(o.fee)
	}
	return o.kit.Price()
}

// Message serializes the order into the text block sent to the operator
// channel. The field order and labeling are a de facto external contract —
// the receiving human parses this visually — and must stay stable.
func (o Order) Message() string {
	var b strings.Builder

	b.WriteString("*NOVO PEDIDO - PRATOFIT* 🥗\n\n")
	fmt.Fprintf(&b, "*Cliente:* %s\n", o.draft.Name)

	if o.mode == ModeDelivery {
		b.WriteString("*MODO:* ENTREGA 🛵\n")
		fmt.Fprintf(&b, "*Endereço:* %s, Nº %s\n", o.draft.Street, o.draft.Number)
		fmt.Fprintf(&b, "*CEP:* %s\n", o.draft.PostalCode)
		fmt.Fprintf(&b, "*Bairro:* %s (+R$ %s)\n", o.neighborhood, o.fee.StringFixed())
	} else {
		b.WriteString("*MODO:* RETIRADA NA LOJA 🛍️\n")
		fmt.Fprintf(&b, "(Cliente irá retirar em: %s)\n", o.pickup.Address)
		fmt.Fprintf(&b, "*Horário de Retirada:* %s\n", o.draft.PickupTime)
	}

	if o.draft.Observation != "" {
		fmt.Fprintf(&b, "*Obs:* %s\n", o.draft.Observation)
	}

	b.WriteString(separator + "\n")
	fmt.Fprintf(&b, "*Plano Escolhido:* %s\n", o.kit.Name())
	fmt.Fprintf(&b, "*Valor do Kit:* %s\n", o.kit.Price().BRL())
	if o.mode == ModeDelivery {
		fmt.Fprintf(&b, "*Taxa de Entrega:* %s\n", o.fee.BRL())
	}
	fmt.Fprintf(&b, "*VALOR TOTAL:* %s\n", o.Total().BRL())

	b.WriteString(separator + "\n")
	b.WriteString("*ITENS DO KIT:*\n")
	for _, line := range o.lines {
		fmt.Fprintf(&b, "• %dx %s\n", line.Quantity(), line.Item().Title())
	}

	b.WriteString(separator + "\n")
	b.WriteString("*FORMA DE PAGAMENTO:*\n")
	if o.draft.Payment == PaymentLink {
		b.WriteString("🔗 Quero *LINK DE PAGAMENTO*")
	} else {
		b.WriteString("💠 Vou pagar via *PIX*")
	}

	return b.String()
}
