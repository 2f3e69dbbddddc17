package invoice

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbersmart-admin/internal/audit"
	domain "github.com/BruksfildServices01/barbersmart-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/barbersmart-admin/internal/httperr"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
)

type GetInvoice struct {
	repo       Payments
	reconciler *domain.Reconciler
	now        Clock
	metrics    *metrics.Metrics
	audit      Auditor
}

func NewGetInvoice(
	repo Payments,
	reconciler *domain.Reconciler,
	now Clock,
	m *metrics.Metrics,
	audit Auditor,
) *GetInvoice {
	return &GetInvoice{
		repo:       repo,
		reconciler: reconciler,
		now:        now,
		metrics:    m,
		audit:      audit,
	}
}

// Execute reconciles the invoice of one appointment. An appointment without
// a payment record yields the no-data view rather than an error.
func (uc *GetInvoice) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID string,
) (domain.View, error) {

	view, err := uc.build(ctx, appointmentID)
	if err != nil {
		return domain.View{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.UserID,
		RequestID: actor.RequestID,
		Action:    "invoice_viewed",
		Entity:    "invoice",
		EntityID:  strings.TrimSpace(appointmentID),
		Metadata:  map[string]any{"source": view.Source, "no_data": view.NoData},
	})

	return view, nil
}

func (uc *GetInvoice) build(ctx context.Context, appointmentID string) (domain.View, error) {
	if strings.TrimSpace(appointmentID) == "" {
		return domain.View{}, httperr.ErrBusiness("invalid_appointment_id")
	}

	records, err := uc.repo.Payments(ctx)
	if err != nil {
		return domain.View{}, err
	}

	view := uc.reconciler.Reconcile(findPayment(records, appointmentID), uc.now())
	uc.metrics.Invoices.WithLabelValues(string(view.Source)).Inc()

	return view, nil
}
