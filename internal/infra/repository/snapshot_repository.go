package repository

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
)

type Upstream interface {
	ListAppointments(ctx context.Context) ([]appointment.Record, error)
	ListUserAppointments(ctx context.Context, userID string) ([]appointment.Record, error)
	ListPayments(ctx context.Context) ([]payment.Record, error)
	ListBarbers(ctx context.Context) ([]appointment.Barber, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

const (
	keyAppointments = "appointments"
	keyPayments     = "payments"
	keyBarbers      = "barbers"
)

// SnapshotRepository serves upstream snapshots, reading through the cache
// when one is configured. A failing cache never fails a read.
type SnapshotRepository struct {
	api     Upstream
	cache   Cache
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// NewSnapshotRepository builds the repository. cache may be nil.
func NewSnapshotRepository(
	api Upstream,
	cache Cache,
	log zerolog.Logger,
	m *metrics.Metrics,
) *SnapshotRepository {
	return &SnapshotRepository{
		api:     api,
		cache:   cache,
		log:     log,
		metrics: m,
	}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *SnapshotRepository) Appointments(ctx context.Context) ([]appointment.Record, error) {
	return load(ctx, r, keyAppointments, keyAppointments, r.api.ListAppointments)
}

func (r *SnapshotRepository) UserAppointments(ctx context.Context, userID string) ([]appointment.Record, error) {
	return load(ctx, r, "user_appointments", "user_appointments:"+userID, func(ctx context.Context) ([]appointment.Record, error) {
		return r.api.ListUserAppointments(ctx, userID)
	})
}

func (r *SnapshotRepository) Payments(ctx context.Context) ([]payment.Record, error) {
	return load(ctx, r, keyPayments, keyPayments, r.api.ListPayments)
}

func (r *SnapshotRepository) Barbers(ctx context.Context) ([]appointment.Barber, error) {
	return load(ctx, r, keyBarbers, keyBarbers, r.api.ListBarbers)
}

// --------------------------------------------------
// Refresh
// --------------------------------------------------

// Refresh fetches the shared snapshots from upstream and overwrites the
// cached copies.
func (r *SnapshotRepository) Refresh(ctx context.Context) error {
	return errors.Join(
		refreshErr(ctx, r, keyAppointments, r.api.ListAppointments),
		refreshErr(ctx, r, keyPayments, r.api.ListPayments),
		refreshErr(ctx, r, keyBarbers, r.api.ListBarbers),
	)
}

// load reads key from the cache, falling back to fetch. resource labels the
// metrics so per-user keys do not explode their cardinality.
func load[T any](
	ctx context.Context,
	r *SnapshotRepository,
	resource, key string,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {

	if r.cache != nil {
		var cached []T
		ok, err := r.cache.Get(ctx, key, &cached)
		if err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("snapshot cache read failed")
		}
		if ok {
			r.metrics.SnapshotSource.WithLabelValues(resource, "cache").Inc()
			return cached, nil
		}
	}

	r.metrics.SnapshotSource.WithLabelValues(resource, "upstream").Inc()
	return refresh(ctx, r, resource, key, fetch)
}

func refreshErr[T any](
	ctx context.Context,
	r *SnapshotRepository,
	key string,
	fetch func(context.Context) ([]T, error),
) error {
	_, err := refresh(ctx, r, key, key, fetch)
	return err
}

func refresh[T any](
	ctx context.Context,
	r *SnapshotRepository,
	resource, key string,
	fetch func(context.Context) ([]T, error),
) ([]T, error) {

	items, err := fetch(ctx)
	if err != nil {
		r.metrics.UpstreamFetch.WithLabelValues(resource, "error").Inc()
		return nil, err
	}
	r.metrics.UpstreamFetch.WithLabelValues(resource, "ok").Inc()

	if items == nil {
		items = []T{}
	}

	if r.cache != nil {
		if err := r.cache.Set(ctx, key, items); err != nil {
			r.log.Warn().Err(err).Str("key", key).Msg("snapshot cache write failed")
		}
	}
	return items, nil
}
