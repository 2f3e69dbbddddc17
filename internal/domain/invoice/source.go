package invoice

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/flex"
)

type SourceKind string

const (
	KindItemized    SourceKind = "itemized"
	KindServiceList SourceKind = "service_list"
	KindBareTotal   SourceKind = "bare_total"
	KindNoData      SourceKind = "no_data"
)

// Source is where the line items of an invoice come from. It is one of
// Itemized, ServiceList, BareTotal or NoData.
type Source interface {
	Kind() SourceKind
}

// Itemized carries explicit billed items. Total may be absent.
type Itemized struct {
	Items []payment.BilledItem
	Total flex.Number
}

// ServiceList splits Total evenly across Names.
type ServiceList struct {
	Names []string
	Total decimal.Decimal
}

// BareTotal has nothing but a non-zero total.
type BareTotal struct {
	Total decimal.Decimal
}

type NoData struct{}

func (Itemized) Kind() SourceKind    { return KindItemized }
func (ServiceList) Kind() SourceKind { return KindServiceList }
func (BareTotal) Kind() SourceKind   { return KindBareTotal }
func (NoData) Kind() SourceKind      { return KindNoData }

// Decode picks the item source of a payment record, in priority order:
// billed items, then service names sharing the total, then the bare total.
// A nil record, or one without items, services or a non-zero total, is
// NoData.
func Decode(rec *payment.Record) Source {
	if rec == nil {
		return NoData{}
	}

	if len(rec.BilledItems) > 0 {
		return Itemized{Items: rec.BilledItems, Total: rec.TotalAmount}
	}

	total := decimal.Zero
	if rec.TotalAmount.Valid {
		total = rec.TotalAmount.Value
	}

	if rec.ServiceNames.Len() > 0 {
		return ServiceList{Names: rec.ServiceNames.Items, Total: total}
	}

	if !total.IsZero() {
		return BareTotal{Total: total}
	}

	return NoData{}
}
