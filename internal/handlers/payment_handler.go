package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbersmart-admin/internal/httperr"
	"github.com/BruksfildServices01/barbersmart-admin/internal/httpresp"
	"github.com/BruksfildServices01/barbersmart-admin/internal/listview"
	ucInvoice "github.com/BruksfildServices01/barbersmart-admin/internal/usecase/invoice"
	ucPayment "github.com/BruksfildServices01/barbersmart-admin/internal/usecase/payment"
)

// ======================================================
// HANDLER
// ======================================================

type PaymentHandler struct {
	listUC    *ucPayment.ListPayments
	invoiceUC *ucInvoice.GetInvoice
	archiveUC *ucInvoice.ArchiveInvoice
}

func NewPaymentHandler(
	listUC *ucPayment.ListPayments,
	invoiceUC *ucInvoice.GetInvoice,
	archiveUC *ucInvoice.ArchiveInvoice,
) *PaymentHandler {
	return &PaymentHandler{
		listUC:    listUC,
		invoiceUC: invoiceUC,
		archiveUC: archiveUC,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *PaymentHandler) List(c *gin.Context) {
	q := listview.NewPaymentQuery().
		WithSearch(c.Query("search")).
		WithStatus(c.Query("status"))
	q.Page = queryPage(c)

	page, err := h.listUC.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, page)
}

// ======================================================
// INVOICE
// ======================================================

// Invoice always answers with a view; appointments without usable payment
// data get the no-data view.
func (h *PaymentHandler) Invoice(c *gin.Context) {
	view, err := h.invoiceUC.Execute(c.Request.Context(), actorFrom(c), c.Param("appointmentId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, view)
}

func (h *PaymentHandler) ArchiveInvoice(c *gin.Context) {
	out, err := h.archiveUC.Execute(c.Request.Context(), actorFrom(c), c.Param("appointmentId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}
