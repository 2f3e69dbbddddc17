package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
)

type ListBarbers struct {
	repo Snapshots
}

func NewListBarbers(repo Snapshots) *ListBarbers {
	return &ListBarbers{repo: repo}
}

// Execute returns the barber filter options in upstream order, skipping
// entries without an id.
func (uc *ListBarbers) Execute(ctx context.Context) ([]dto.BarberOption, error) {
	barbers, err := uc.repo.Barbers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BarberOption, 0, len(barbers))
	for _, b := range barbers {
		if b.ID.IsZero() {
			continue
		}
		out = append(out, dto.BarberOption{
			ID:   string(b.ID),
			Name: b.Name.Or(string(b.ID)),
		})
	}
	return out, nil
}
