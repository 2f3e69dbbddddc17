package dto

import "github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"

type PaymentRow struct {
	AppointmentID string              `json:"appointment_id"`
	InvoiceNumber string              `json:"invoice_number"`
	ClientName    string              `json:"client_name"`
	BarberName    string              `json:"barber_name"`
	TotalAmount   string              `json:"total_amount"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	StatusClass   payment.StatusClass `json:"status_class"`
	ServiceDate   string              `json:"service_date"`
	ConfirmedAt   string              `json:"confirmed_at,omitempty"`
}
