package invoice

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

const Currency = "Bs."

// LineItem is one row of the itemized table. Amounts are exact; they are
// rounded to two places only when encoded.
type LineItem struct {
	Description string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Subtotal    decimal.Decimal
}

func (li LineItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Description string      `json:"description"`
		UnitPrice   json.Number `json:"unit_price"`
		Quantity    json.Number `json:"quantity"`
		Subtotal    json.Number `json:"subtotal"`
	}{
		Description: li.Description,
		UnitPrice:   money(li.UnitPrice),
		Quantity:    json.Number(li.Quantity.String()),
		Subtotal:    money(li.Subtotal),
	})
}

type Party struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email"`
}

type PaymentInfo struct {
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
	ConfirmedAt   string `json:"confirmed_at,omitempty"`
}

// View is everything the invoice template renders. When NoData is set the
// renderer shows Message instead of the table.
type View struct {
	Number      string
	IssueDate   string
	ServiceDate string
	Issuer      Party
	Recipient   Party
	LineItems   []LineItem
	GrandTotal  decimal.Decimal
	Payment     PaymentInfo
	Source      SourceKind
	NoData      bool
	Message     string
}

func (v View) MarshalJSON() ([]byte, error) {
	items := v.LineItems
	if items == nil {
		items = []LineItem{}
	}

	return json.Marshal(struct {
		Number      string      `json:"number,omitempty"`
		IssueDate   string      `json:"issue_date,omitempty"`
		ServiceDate string      `json:"service_date,omitempty"`
		Issuer      *Party      `json:"issuer,omitempty"`
		Recipient   *Party      `json:"recipient,omitempty"`
		LineItems   []LineItem  `json:"line_items"`
		GrandTotal  json.Number `json:"grand_total"`
		Currency    string      `json:"currency"`
		Payment     PaymentInfo `json:"payment"`
		Source      SourceKind  `json:"source"`
		NoData      bool        `json:"no_data"`
		Message     string      `json:"message,omitempty"`
	}{
		Number:      v.Number,
		IssueDate:   v.IssueDate,
		ServiceDate: v.ServiceDate,
		Issuer:      partyOrNil(v.Issuer),
		Recipient:   partyOrNil(v.Recipient),
		LineItems:   items,
		GrandTotal:  money(v.GrandTotal),
		Currency:    Currency,
		Payment:     v.Payment,
		Source:      v.Source,
		NoData:      v.NoData,
		Message:     v.Message,
	})
}

func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func partyOrNil(p Party) *Party {
	if p == (Party{}) {
		return nil
	}
	return &p
}
