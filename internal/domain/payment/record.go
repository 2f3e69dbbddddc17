package payment

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/BruksfildServices01/barbersmart-admin/internal/flex"
)

// Record is one entry of the upstream payments history: everything known
// about the invoice of a single appointment. Any field may be missing.
type Record struct {
	AppointmentID flex.ID      `json:"cita_id"`
	ClientName    flex.Text    `json:"cliente_nombre"`
	BarberName    flex.Text    `json:"barbero_nombre"`
	TotalAmount   flex.Number  `json:"monto_total"`
	PaymentMethod flex.Text    `json:"metodo_pago"`
	PaymentStatus flex.Text    `json:"estado_pago"`
	ConfirmedAt   flex.Text    `json:"fecha_pago_confirmado"`
	TransactionID flex.Text    `json:"libelula_transaction_id"`
	ServiceDate   flex.Text    `json:"fecha_cita"`
	ServiceNames  flex.Strings `json:"servicio_nombres"`
	BilledItems   BilledItems  `json:"items_facturados"`
}

type BilledItem struct {
	Description flex.Text   `json:"descripcion"`
	UnitPrice   flex.Number `json:"precio_unitario"`
	Quantity    flex.Number `json:"cantidad"`
	Subtotal    flex.Number `json:"subtotal"`
}

// BilledItems decodes to nil when the payload holds anything other than an
// array; array elements that are not objects are dropped.
type BilledItems []BilledItem

func (items *BilledItems) UnmarshalJSON(b []byte) error {
	*items = nil

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}

	out := make(BilledItems, 0, len(raw))
	for _, el := range raw {
		el = bytes.TrimSpace(el)
		if len(el) == 0 || el[0] != '{' {
			continue
		}
		var item BilledItem
		if err := json.Unmarshal(el, &item); err != nil {
			continue
		}
		out = append(out, item)
	}

	*items = out
	return nil
}

// ===============================
// Payment status
// ===============================

// StatusClass is the badge class of a payment status.
type StatusClass string

const (
	StatusPaid      StatusClass = "paid"
	StatusPending   StatusClass = "pending"
	StatusCancelled StatusClass = "cancelled"
	StatusUnknown   StatusClass = "unknown"
)

func ClassFor(status string) StatusClass {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "pagado", "paid":
		return StatusPaid
	case "pendiente", "pending":
		return StatusPending
	case "cancelado", "cancelled", "canceled":
		return StatusCancelled
	default:
		return StatusUnknown
	}
}
