package appointment

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
	"github.com/BruksfildServices01/barbersmart-admin/internal/httperr"
	"github.com/BruksfildServices01/barbersmart-admin/internal/listview"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
)

// ListUserAppointments is the appointment history of one client, annotated
// the same way as the admin table.
type ListUserAppointments struct {
	repo Snapshots
	now  Clock
	obs  statusObserver
}

func NewListUserAppointments(
	repo Snapshots,
	now Clock,
	m *metrics.Metrics,
	log zerolog.Logger,
) *ListUserAppointments {
	return &ListUserAppointments{
		repo: repo,
		now:  now,
		obs:  statusObserver{metrics: m, log: log},
	}
}

func (uc *ListUserAppointments) Execute(ctx context.Context, userID string) ([]dto.AppointmentRow, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, httperr.ErrBusiness("invalid_user_id")
	}

	snapshot, err := uc.repo.UserAppointments(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := listview.AnnotateAll(snapshot, uc.now())
	uc.obs.observe(rows)

	return rows, nil
}
