package invoice

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
)

const (
	numberPrefix = "BSM-"
	numberWidth  = 5

	GeneralServiceLabel = "General Service"
	AdjustmentLabel     = "Adjustment"
	serviceLabel        = "Service"
	unknownClient       = "Unspecified Client"

	NoDataMessage = "No payment data available to build this invoice."
)

var (
	one       = decimal.NewFromInt(1)
	hundred   = decimal.NewFromInt(100)
	tolerance = decimal.New(1, -2)
)

// DefaultIssuer is used field by field when the configured issuer leaves
// something blank.
var DefaultIssuer = Party{
	Name:    "BarberSmart Central",
	Address: "BarberSmart Central Address",
	Phone:   notAvailable,
	Email:   "contacto@barbersmart.com",
}

// Reconciler builds invoice views. It holds only immutable settings and is
// safe for concurrent use.
type Reconciler struct {
	issuer Party
	loc    *time.Location
}

// NewReconciler returns a reconciler that issues invoices as issuer and
// renders issue and confirmation times in loc (UTC when nil).
func NewReconciler(issuer Party, loc *time.Location) *Reconciler {
	if loc == nil {
		loc = time.UTC
	}
	return &Reconciler{
		issuer: Party{
			Name:    or(issuer.Name, DefaultIssuer.Name),
			Address: or(issuer.Address, DefaultIssuer.Address),
			Phone:   or(issuer.Phone, DefaultIssuer.Phone),
			Email:   or(issuer.Email, DefaultIssuer.Email),
		},
		loc: loc,
	}
}

// Reconcile derives the invoice of rec as of now. It never fails: a nil
// record, or one without any pricing data, yields a NoData view.
func (r *Reconciler) Reconcile(rec *payment.Record, now time.Time) View {
	if rec == nil {
		return View{
			LineItems: []LineItem{},
			Source:    KindNoData,
			NoData:    true,
			Message:   NoDataMessage,
		}
	}

	v := View{
		Number:      Number(string(rec.AppointmentID)),
		IssueDate:   FormatLongDate(now.In(r.loc)),
		ServiceDate: serviceDate(string(rec.ServiceDate)),
		Issuer:      r.issuer,
		Recipient: Party{
			Name:  rec.ClientName.Or(unknownClient),
			Email: notAvailable,
		},
		Payment: PaymentInfo{
			Method:        rec.PaymentMethod.Or(notAvailable),
			TransactionID: rec.TransactionID.Or(notAvailable),
			ConfirmedAt:   confirmedAt(string(rec.ConfirmedAt), r.loc),
		},
	}
	if rec.TotalAmount.Valid {
		v.GrandTotal = rec.TotalAmount.Value
	}

	src := Decode(rec)
	v.Source = src.Kind()
	v.LineItems = LineItems(src)

	if len(v.LineItems) == 0 {
		v.NoData = true
		v.Message = NoDataMessage
	}

	return v
}

// LineItems expands a source into priced rows.
func LineItems(src Source) []LineItem {
	switch s := src.(type) {
	case Itemized:
		return itemized(s)
	case ServiceList:
		return evenSplit(s)
	case BareTotal:
		return []LineItem{{
			Description: GeneralServiceLabel,
			UnitPrice:   s.Total,
			Quantity:    one,
			Subtotal:    s.Total,
		}}
	default:
		return []LineItem{}
	}
}

// itemized fills each item's missing unit price or subtotal from the other
// one. An item with neither is worth zero. When a total is known and the
// rounded rows miss it by more than a cent, an Adjustment row closes the gap.
func itemized(s Itemized) []LineItem {
	out := make([]LineItem, 0, len(s.Items)+1)
	shown := decimal.Zero

	for _, it := range s.Items {
		qty := one
		if it.Quantity.Positive() {
			qty = it.Quantity.Value
		}

		var unit, sub decimal.Decimal
		switch {
		case it.UnitPrice.Valid && it.Subtotal.Valid:
			unit, sub = it.UnitPrice.Value, it.Subtotal.Value
		case it.UnitPrice.Valid:
			unit = it.UnitPrice.Value
			sub = unit.Mul(qty)
		case it.Subtotal.Valid:
			sub = it.Subtotal.Value
			unit = sub.Div(qty)
		}

		out = append(out, LineItem{
			Description: it.Description.Or(serviceLabel),
			UnitPrice:   unit,
			Quantity:    qty,
			Subtotal:    sub,
		})
		shown = shown.Add(sub.Round(2))
	}

	if s.Total.Valid {
		gap := s.Total.Value.Round(2).Sub(shown)
		if gap.Abs().GreaterThan(tolerance) {
			out = append(out, LineItem{
				Description: AdjustmentLabel,
				UnitPrice:   gap,
				Quantity:    one,
				Subtotal:    gap,
			})
		}
	}

	return out
}

// evenSplit gives every service the same share of the total in whole cents.
// Leftover cents go to the first rows so the rows add up to the total.
func evenSplit(s ServiceList) []LineItem {
	n := int64(len(s.Names))
	if n == 0 {
		return []LineItem{}
	}
	cents := s.Total.Mul(hundred).Round(0)

	base, rem := cents.QuoRem(decimal.NewFromInt(n), 0)
	step := one
	if rem.IsNegative() {
		step, rem = one.Neg(), rem.Neg()
	}
	extra := rem.IntPart()

	out := make([]LineItem, 0, n)
	for i, name := range s.Names {
		c := base
		if int64(i) < extra {
			c = c.Add(step)
		}
		amount := c.Shift(-2)
		out = append(out, LineItem{
			Description: or(strings.TrimSpace(name), serviceLabel),
			UnitPrice:   amount,
			Quantity:    one,
			Subtotal:    amount,
		})
	}
	return out
}

// Number is the human-readable invoice number of an appointment id,
// left-padded with zeros to five characters.
func Number(appointmentID string) string {
	id := strings.TrimSpace(appointmentID)
	if len(id) < numberWidth {
		id = strings.Repeat("0", numberWidth-len(id)) + id
	}
	return numberPrefix + id
}

func or(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
