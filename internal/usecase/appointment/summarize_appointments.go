package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
	"github.com/BruksfildServices01/barbersmart-admin/internal/listview"
)

type SummarizeAppointments struct {
	repo Snapshots
	now  Clock
}

func NewSummarizeAppointments(repo Snapshots, now Clock) *SummarizeAppointments {
	return &SummarizeAppointments{repo: repo, now: now}
}

func (uc *SummarizeAppointments) Execute(ctx context.Context) (dto.StatusSummary, error) {
	snapshot, err := uc.repo.Appointments(ctx)
	if err != nil {
		return dto.StatusSummary{}, err
	}
	return listview.Summarize(snapshot, uc.now()), nil
}
