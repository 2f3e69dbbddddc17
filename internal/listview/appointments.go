package listview

import (
	"time"

	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
)

// Annotate attaches the display status and its color to an appointment.
func Annotate(r appointment.Record, now time.Time) dto.AppointmentRow {
	ds := r.DisplayStatus(now)

	services := r.ServiceNames.Items
	if services == nil {
		services = []string{}
	}

	return dto.AppointmentRow{
		ID:           string(r.ID),
		Date:         r.Date.String(),
		Time:         r.Time.String(),
		ClientName:   r.ClientName.String(),
		BarberID:     string(r.BarberID),
		BarberName:   r.BarberName.String(),
		ShopName:     r.ShopName.String(),
		ServiceNames: services,
		StoredStatus: r.Status.String(),
		Status:       ds.Status,
		Reason:       ds.Reason,
		Color:        ds.Color(),
	}
}

// FilterAppointments keeps the appointments whose client name contains the
// search term and whose barber matches the selected one.
func FilterAppointments(snapshot []appointment.Record, q Query) []appointment.Record {
	out := make([]appointment.Record, 0, len(snapshot))
	for _, r := range snapshot {
		if !matchesText(r.ClientName.String(), q.Search) {
			continue
		}
		if !q.BarberID.Matches(r.BarberID) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Apply is the appointments table as a pure function of the snapshot and
// the query: filter, paginate, then annotate the visible rows.
func Apply(snapshot []appointment.Record, q Query, pageSize int, now time.Time) Page[dto.AppointmentRow] {
	filtered := FilterAppointments(snapshot, q)
	page := Paginate(filtered, q.Page, pageSize)

	rows := make([]dto.AppointmentRow, 0, len(page.Items))
	for _, r := range page.Items {
		rows = append(rows, Annotate(r, now))
	}

	return Page[dto.AppointmentRow]{Items: rows, Meta: page.Meta}
}

// AnnotateAll annotates every record, keeping order.
func AnnotateAll(snapshot []appointment.Record, now time.Time) []dto.AppointmentRow {
	rows := make([]dto.AppointmentRow, 0, len(snapshot))
	for _, r := range snapshot {
		rows = append(rows, Annotate(r, now))
	}
	return rows
}

// Summarize counts appointments per display status.
func Summarize(snapshot []appointment.Record, now time.Time) dto.StatusSummary {
	s := dto.StatusSummary{
		Total:    len(snapshot),
		ByStatus: map[appointment.Status]int{},
	}
	for _, r := range snapshot {
		s.ByStatus[r.DisplayStatus(now).Status]++
	}
	return s
}
