package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbersmart-admin/internal/config"
	domainInvoice "github.com/BruksfildServices01/barbersmart-admin/internal/domain/invoice"
	"github.com/BruksfildServices01/barbersmart-admin/internal/handlers"
	infraRepo "github.com/BruksfildServices01/barbersmart-admin/internal/infra/repository"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
	"github.com/BruksfildServices01/barbersmart-admin/internal/middleware"
	"github.com/BruksfildServices01/barbersmart-admin/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barbersmart-admin/internal/usecase/appointment"
	ucInvoice "github.com/BruksfildServices01/barbersmart-admin/internal/usecase/invoice"
	ucPayment "github.com/BruksfildServices01/barbersmart-admin/internal/usecase/payment"
)

// Infra is what the process builds once at startup. DB and Archiver are nil
// when their backends are not configured.
type Infra struct {
	Snapshots *infraRepo.SnapshotRepository
	DB        *gorm.DB
	Audit     ucInvoice.Auditor
	Archiver  ucInvoice.Archiver
	Metrics   *metrics.Metrics
	Gatherer  prometheus.Gatherer
	Log       zerolog.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(infra.Log),
		middleware.Recovery(infra.Log),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	clock := timezone.Now

	// ======================================================
	// USE CASES
	// ======================================================
	listAppointmentsUC := ucAppointment.NewListAppointments(
		infra.Snapshots,
		cfg.PageSize,
		clock,
		infra.Metrics,
		infra.Log,
	)
	summarizeAppointmentsUC := ucAppointment.NewSummarizeAppointments(infra.Snapshots, clock)
	listUserAppointmentsUC := ucAppointment.NewListUserAppointments(
		infra.Snapshots,
		clock,
		infra.Metrics,
		infra.Log,
	)
	listBarbersUC := ucAppointment.NewListBarbers(infra.Snapshots)

	listPaymentsUC := ucPayment.NewListPayments(infra.Snapshots, cfg.PageSize)

	reconciler := domainInvoice.NewReconciler(
		domainInvoice.Party{
			Name:    cfg.IssuerName,
			Address: cfg.IssuerAddress,
			Phone:   cfg.IssuerPhone,
			Email:   cfg.IssuerEmail,
		},
		timezone.Location(cfg.IssuerTimezone),
	)
	getInvoiceUC := ucInvoice.NewGetInvoice(
		infra.Snapshots,
		reconciler,
		clock,
		infra.Metrics,
		infra.Audit,
	)
	archiveInvoiceUC := ucInvoice.NewArchiveInvoice(getInvoiceUC, infra.Archiver, infra.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		summarizeAppointmentsUC,
		listUserAppointmentsUC,
		listBarbersUC,
	)
	paymentHandler := handlers.NewPaymentHandler(
		listPaymentsUC,
		getInvoiceUC,
		archiveInvoiceUC,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(infra.DB)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if infra.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(infra.Gatherer, promhttp.HandlerOpts{})))
	}

	// ======================================================
	// ADMIN API
	// ======================================================
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/appointments", appointmentHandler.List)
		admin.GET("/appointments/summary", appointmentHandler.Summary)
		admin.GET("/users/:id/appointments", appointmentHandler.ListForUser)
		admin.GET("/barbers", appointmentHandler.Barbers)

		admin.GET("/payments", paymentHandler.List)
		admin.GET("/payments/:appointmentId/invoice", paymentHandler.Invoice)
		admin.POST("/payments/:appointmentId/invoice/archive", paymentHandler.ArchiveInvoice)

		admin.GET("/audit-logs", auditLogsHandler.List)
	}
}
