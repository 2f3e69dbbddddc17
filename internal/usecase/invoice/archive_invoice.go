package invoice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barbersmart-admin/internal/archive"
	"github.com/BruksfildServices01/barbersmart-admin/internal/audit"
	"github.com/BruksfildServices01/barbersmart-admin/internal/dto"
	"github.com/BruksfildServices01/barbersmart-admin/internal/httperr"
)

// ArchiveInvoice stores the reconciled invoice document in object storage.
type ArchiveInvoice struct {
	invoices *GetInvoice
	archiver Archiver
	audit    Auditor
}

// NewArchiveInvoice wires the use case. archiver is nil when archiving is
// not configured.
func NewArchiveInvoice(
	invoices *GetInvoice,
	archiver Archiver,
	audit Auditor,
) *ArchiveInvoice {
	return &ArchiveInvoice{
		invoices: invoices,
		archiver: archiver,
		audit:    audit,
	}
}

func (uc *ArchiveInvoice) Execute(
	ctx context.Context,
	actor Actor,
	appointmentID string,
) (dto.ArchivedInvoice, error) {

	if uc.archiver == nil {
		return dto.ArchivedInvoice{}, httperr.ErrBusiness("archive_disabled")
	}

	view, err := uc.invoices.build(ctx, appointmentID)
	if err != nil {
		return dto.ArchivedInvoice{}, err
	}
	if view.NoData {
		return dto.ArchivedInvoice{}, httperr.ErrBusiness("no_invoice_data")
	}

	body, err := json.Marshal(view)
	if err != nil {
		return dto.ArchivedInvoice{}, fmt.Errorf("encode invoice %s: %w", view.Number, err)
	}

	location, err := uc.archiver.Put(ctx, archive.InvoiceKey(view.Number), body)
	if err != nil {
		return dto.ArchivedInvoice{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:   actor.UserID,
		RequestID: actor.RequestID,
		Action:    "invoice_archived",
		Entity:    "invoice",
		EntityID:  strings.TrimSpace(appointmentID),
		Metadata:  map[string]any{"number": view.Number, "location": location},
	})

	return dto.ArchivedInvoice{
		Number:   view.Number,
		Location: location,
	}, nil
}
