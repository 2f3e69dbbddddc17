package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbersmart-admin/internal/flex"
)

// Record is an appointment as the upstream API returns it. All fields are
// optional; see package flex for how loosely typed values decode.
type Record struct {
	ID           flex.ID      `json:"appointment_id"`
	Date         flex.Text    `json:"fecha"`
	Time         flex.Text    `json:"hora"`
	Status       flex.Text    `json:"status"`
	ClientID     flex.ID      `json:"client_id"`
	ClientName   flex.Text    `json:"client_name"`
	BarberID     flex.ID      `json:"barber_id"`
	BarberName   flex.Text    `json:"barber_name"`
	ShopName     flex.Text    `json:"barberia_nombre"`
	ServiceNames flex.Strings `json:"servicio_nombres"`
}

func (r Record) DisplayStatus(now time.Time) DisplayStatus {
	return DeriveStatus(string(r.Date), string(r.Time), string(r.Status), now)
}

// Barber is an entry of the barber filter dropdown.
type Barber struct {
	ID   flex.ID   `json:"id"`
	Name flex.Text `json:"name"`
}
