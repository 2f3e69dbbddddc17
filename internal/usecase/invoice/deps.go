package invoice

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbersmart-admin/internal/audit"
	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/flex"
)

type Payments interface {
	Payments(ctx context.Context) ([]payment.Record, error)
}

type Archiver interface {
	Put(ctx context.Context, key string, body []byte) (string, error)
}

type Auditor interface {
	Dispatch(ev audit.Event)
}

type Clock func() time.Time

// Actor identifies who asked for an invoice, for the audit trail.
type Actor struct {
	UserID    string
	RequestID string
}

// findPayment returns the payment of appointmentID, or nil. Ids are compared
// by canonical key so "42" and 42 match.
func findPayment(records []payment.Record, appointmentID string) *payment.Record {
	key := flex.CanonicalKey(appointmentID)
	for i := range records {
		if records[i].AppointmentID.Key() == key {
			return &records[i]
		}
	}
	return nil
}
