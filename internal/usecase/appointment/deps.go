package appointment

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domain "github.com/BruksfildServices01/barbersmart-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
)

type Snapshots interface {
	Appointments(ctx context.Context) ([]domain.Record, error)
	UserAppointments(ctx context.Context, userID string) ([]domain.Record, error)
	Barbers(ctx context.Context) ([]domain.Barber, error)
}

// Clock returns the instant statuses are derived against.
type Clock func() time.Time

// statusObserver counts derived statuses and reports rows whose date or
// time could not be parsed.
type statusObserver struct {
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func (o statusObserver) observe(rows []dto.AppointmentRow) {
	for _, r := range rows {
		reason := string(r.Reason)
		if reason == "" {
			reason = "none"
		}
		o.metrics.DerivedStatus.WithLabelValues(string(r.Status), reason).Inc()

		if r.Reason != domain.ReasonNone {
			o.log.Warn().
				Str("appointment_id", r.ID).
				Str("date", r.Date).
				Str("time", r.Time).
				Str("reason", string(r.Reason)).
				Msg("appointment schedule could not be parsed")
		}
	}
}
