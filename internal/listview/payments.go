package listview

import (
	"strings"

	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
)

// AllStatuses disables the payment status filter.
const AllStatuses = "todos"

type PaymentQuery struct {
	Search string `json:"search"`
	Status string `json:"status"`
	Page   int    `json:"page"`
}

func NewPaymentQuery() PaymentQuery {
	return PaymentQuery{Status: AllStatuses, Page: 1}
}

func (q PaymentQuery) WithSearch(term string) PaymentQuery {
	q.Search = term
	q.Page = 1
	return q
}

func (q PaymentQuery) WithStatus(status string) PaymentQuery {
	q.Status = strings.TrimSpace(status)
	if q.Status == "" {
		q.Status = AllStatuses
	}
	q.Page = 1
	return q
}

func (q PaymentQuery) GoToPage(page, totalPages int) PaymentQuery {
	if page < 1 || page > totalPages {
		return q
	}
	q.Page = page
	return q
}

// FilterPayments matches the search term against client name, barber name
// and appointment id, then applies the exact status filter.
func FilterPayments(records []payment.Record, q PaymentQuery) []payment.Record {
	out := make([]payment.Record, 0, len(records))
	for _, r := range records {
		if !matchesText(r.ClientName.String(), q.Search) &&
			!matchesText(r.BarberName.String(), q.Search) &&
			!matchesText(string(r.AppointmentID), q.Search) {
			continue
		}
		if q.Status != "" && q.Status != AllStatuses && r.PaymentStatus.String() != q.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}

func NewPaymentRow(r payment.Record) dto.PaymentRow {
	total := "0.00"
	if r.TotalAmount.Valid {
		total = r.TotalAmount.Value.StringFixed(2)
	}

	return dto.PaymentRow{
		AppointmentID: string(r.AppointmentID),
		InvoiceNumber: invoice.Number(string(r.AppointmentID)),
		ClientName:    r.ClientName.String(),
		BarberName:    r.BarberName.String(),
		TotalAmount:   total,
		PaymentMethod: r.PaymentMethod.String(),
		Status:        r.PaymentStatus.Or("N/A"),
		StatusClass:   payment.ClassFor(r.PaymentStatus.String()),
		ServiceDate:   r.ServiceDate.String(),
		ConfirmedAt:   r.ConfirmedAt.String(),
	}
}

func ApplyPayments(records []payment.Record, q PaymentQuery, pageSize int) Page[dto.PaymentRow] {
	page := Paginate(FilterPayments(records, q), q.Page, pageSize)

	rows := make([]dto.PaymentRow, 0, len(page.Items))
	for _, r := range page.Items {
		rows = append(rows, NewPaymentRow(r))
	}

	return Page[dto.PaymentRow]{Items: rows, Meta: page.Meta}
}
