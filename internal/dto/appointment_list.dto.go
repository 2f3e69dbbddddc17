package dto

import "github.com/BruksfildServices01/barbersmart-admin/internal/domain/appointment"

type AppointmentRow struct {
	ID           string             `json:"id"`
	Date         string             `json:"date"`
	Time         string             `json:"time"`
	ClientName   string             `json:"client_name"`
	BarberID     string             `json:"barber_id"`
	BarberName   string             `json:"barber_name"`
	ShopName     string             `json:"shop_name"`
	ServiceNames []string           `json:"service_names"`
	StoredStatus string             `json:"stored_status,omitempty"`
	Status       appointment.Status `json:"status"`
	Reason       appointment.Reason `json:"status_reason,omitempty"`
	Color        appointment.Color  `json:"color"`
}

type StatusSummary struct {
	Total    int                        `json:"total"`
	ByStatus map[appointment.Status]int `json:"by_status"`
}

type BarberOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
