package payment

import (
	"context"

	domain "github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
	"github.com/BruksfildServices01/barbersmart-admin/internal/listview"
)

type Payments interface {
	Payments(ctx context.Context) ([]domain.Record, error)
}

type ListPayments struct {
	repo     Payments
	pageSize int
}

func NewListPayments(repo Payments, pageSize int) *ListPayments {
	return &ListPayments{repo: repo, pageSize: pageSize}
}

func (uc *ListPayments) Execute(
	ctx context.Context,
	q listview.PaymentQuery,
) (listview.Page[dto.PaymentRow], error) {

	records, err := uc.repo.Payments(ctx)
	if err != nil {
		return listview.Page[dto.PaymentRow]{}, err
	}
	return listview.ApplyPayments(records, q, uc.pageSize), nil
}
