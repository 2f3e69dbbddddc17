package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbersmart-admin/internal/httperr"
	"github.com/BruksfildServices01/barbersmart-admin/internal/httpresp"
	"github.com/BruksfildServices01/barbersmart-admin/internal/listview"
	ucAppointment "github.com/BruksfildServices01/barbersmart-admin/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listUC    *ucAppointment.ListAppointments
	summaryUC *ucAppointment.SummarizeAppointments
	userUC    *ucAppointment.ListUserAppointments
	barbersUC *ucAppointment.ListBarbers
}

func NewAppointmentHandler(
	listUC *ucAppointment.ListAppointments,
	summaryUC *ucAppointment.SummarizeAppointments,
	userUC *ucAppointment.ListUserAppointments,
	barbersUC *ucAppointment.ListBarbers,
) *AppointmentHandler {
	return &AppointmentHandler{
		listUC:    listUC,
		summaryUC: summaryUC,
		userUC:    userUC,
		barbersUC: barbersUC,
	}
}

// ======================================================
// LIST
// ======================================================

// List serves GET /appointments?search=&barber_id=&page=. A page past the
// end of the filtered list is clamped to the last page.
func (h *AppointmentHandler) List(c *gin.Context) {
	q := listview.NewQuery().
		WithSearch(c.Query("search")).
		WithBarber(c.Query("barber_id"))
	q.Page = queryPage(c)

	page, err := h.listUC.Execute(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, page)
}

func (h *AppointmentHandler) Summary(c *gin.Context) {
	summary, err := h.summaryUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, summary)
}

func (h *AppointmentHandler) ListForUser(c *gin.Context) {
	rows, err := h.userUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, rows)
}

// ======================================================
// BARBERS
// ======================================================

func (h *AppointmentHandler) Barbers(c *gin.Context) {
	barbers, err := h.barbersUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, barbers)
}
