package appointment

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
	"github.com/BruksfildServices01/barbersmart-admin/internal/listview"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
)

type ListAppointments struct {
	repo     Snapshots
	pageSize int
	now      Clock
	obs      statusObserver
}

func NewListAppointments(
	repo Snapshots,
	pageSize int,
	now Clock,
	m *metrics.Metrics,
	log zerolog.Logger,
) *ListAppointments {
	return &ListAppointments{
		repo:     repo,
		pageSize: pageSize,
		now:      now,
		obs:      statusObserver{metrics: m, log: log},
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	q listview.Query,
) (listview.Page[dto.AppointmentRow], error) {

	snapshot, err := uc.repo.Appointments(ctx)
	if err != nil {
		return listview.Page[dto.AppointmentRow]{}, err
	}

	page := listview.Apply(snapshot, q, uc.pageSize, uc.now())
	uc.obs.observe(page.Items)

	return page, nil
}
