package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/domain/payment"
	"github.com/BruksfildServices01/barbersmart-admin/internal/metrics"
)

type fakeUpstream struct {
	appointments []appointment.Record
	payments     []payment.Record
	barbers      []appointment.Barber
	err          error
	calls        int
	lastUser     string
}

func (f *fakeUpstream) ListAppointments(ctx context.Context) ([]appointment.Record, error) {
	f.calls++
	return f.appointments, f.err
}

func (f *fakeUpstream) ListUserAppointments(ctx context.Context, userID string) ([]appointment.Record, error) {
	f.calls++
	f.lastUser = userID
	return f.appointments, f.err
}

func (f *fakeUpstream) ListPayments(ctx context.Context) ([]payment.Record, error) {
	f.calls++
	return f.payments, f.err
}

func (f *fakeUpstream) ListBarbers(ctx context.Context) ([]appointment.Barber, error) {
	f.calls++
	return f.barbers, f.err
}

// memCache round-trips through JSON like the Redis cache does.
type memCache struct {
	data    map[string][]byte
	failGet bool
	failSet bool
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (m *memCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if m.failGet {
		return false, errors.New("connection refused")
	}
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (m *memCache) Set(ctx context.Context, key string, v any) error {
	if m.failSet {
		return errors.New("connection refused")
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func sampleAppointments() []appointment.Record {
	return []appointment.Record{
		{ID: "1", Date: "2025-05-22", Time: "10:00", Status: "Pendiente", BarberID: "7"},
	}
}

func TestAppointments_ReadThrough(t *testing.T) {
	api := &fakeUpstream{appointments: sampleAppointments()}
	cache := newMemCache()
	m := metrics.NewNop()
	repo := NewSnapshotRepository(api, cache, zerolog.Nop(), m)

	first, err := repo.Appointments(context.Background())
	require.NoError(t, err)
	second, err := repo.Appointments(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, api.calls)
	assert.Equal(t, first, second)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SnapshotSource.WithLabelValues("appointments", "cache")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamFetch.WithLabelValues("appointments", "ok")))
}

func TestAppointments_NoCache(t *testing.T) {
	api := &fakeUpstream{appointments: sampleAppointments()}
	repo := NewSnapshotRepository(api, nil, zerolog.Nop(), metrics.NewNop())

	_, _ = repo.Appointments(context.Background())
	_, _ = repo.Appointments(context.Background())

	assert.Equal(t, 2, api.calls)
}

func TestReads_CacheFailureFallsBackToUpstream(t *testing.T) {
	api := &fakeUpstream{payments: []payment.Record{{AppointmentID: "9"}}}
	cache := newMemCache()
	cache.failGet = true
	cache.failSet = true
	repo := NewSnapshotRepository(api, cache, zerolog.Nop(), metrics.NewNop())

	got, err := repo.Payments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "9", string(got[0].AppointmentID))
}

func TestReads_UpstreamErrorIsReturned(t *testing.T) {
	api := &fakeUpstream{err: errors.New("boom")}
	m := metrics.NewNop()
	repo := NewSnapshotRepository(api, newMemCache(), zerolog.Nop(), m)

	_, err := repo.Barbers(context.Background())
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.UpstreamFetch.WithLabelValues("barbers", "error")))
}

func TestReads_NilSnapshotBecomesEmpty(t *testing.T) {
	repo := NewSnapshotRepository(&fakeUpstream{}, nil, zerolog.Nop(), metrics.NewNop())

	got, err := repo.Barbers(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUserAppointments_CachedPerUser(t *testing.T) {
	api := &fakeUpstream{appointments: sampleAppointments()}
	cache := newMemCache()
	repo := NewSnapshotRepository(api, cache, zerolog.Nop(), metrics.NewNop())

	_, err := repo.UserAppointments(context.Background(), "15")
	require.NoError(t, err)
	_, err = repo.UserAppointments(context.Background(), "16")
	require.NoError(t, err)

	assert.Equal(t, 2, api.calls)
	assert.Equal(t, "16", api.lastUser)
	assert.Contains(t, cache.data, "user_appointments:15")
	assert.Contains(t, cache.data, "user_appointments:16")
}

func TestRefresh_OverwritesCache(t *testing.T) {
	api := &fakeUpstream{
		appointments: sampleAppointments(),
		barbers:      []appointment.Barber{{ID: "7", Name: "Luis"}},
	}
	cache := newMemCache()
	repo := NewSnapshotRepository(api, cache, zerolog.Nop(), metrics.NewNop())

	require.NoError(t, repo.Refresh(context.Background()))
	assert.Equal(t, 3, api.calls)

	barbers, err := repo.Barbers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, api.calls)
	require.Len(t, barbers, 1)
	assert.Equal(t, "Luis", barbers[0].Name.String())
}

func TestRefresh_JoinsErrors(t *testing.T) {
	api := &fakeUpstream{err: errors.New("down")}
	repo := NewSnapshotRepository(api, nil, zerolog.Nop(), metrics.NewNop())

	err := repo.Refresh(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "down")
}
