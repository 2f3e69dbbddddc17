package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbersmart-admin/internal/httperr"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "svc-token", 2*time.Second)
}

func TestListPayments_Envelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/payments-history", r.URL.Path)
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "payments": [
			{"cita_id": 42, "monto_total": "90.00", "servicio_nombres": ["Corte"]},
			{"cita_id": "43", "items_facturados": "oops"}
		]}`))
	})

	got, err := c.ListPayments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "42", string(got[0].AppointmentID))
	assert.True(t, got[0].TotalAmount.Valid)
	assert.Nil(t, got[1].BilledItems)
}

func TestListAppointments_BareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"appointment_id": 1, "fecha": "2025-05-22", "hora": "10:00"}]`))
	})

	got, err := c.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "10:00", got[0].Time.String())
}

func TestListUserAppointments_EscapesID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/appointments/user/a%2Fb", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"success": true, "appointments": []}`))
	})

	got, err := c.ListUserAppointments(context.Background(), "a/b")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_MissingKeyIsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	got, err := c.ListBarbers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"server error", http.StatusInternalServerError, `{"message": "db down"}`, "db down"},
		{"unsuccessful envelope", http.StatusOK, `{"success": false, "message": "no access"}`, "no access"},
		{"not json", http.StatusOK, `<html>`, ""},
		{"wrong list shape", http.StatusOK, `{"success": true, "payments": {"a": 1}}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.ListPayments(context.Background())
			require.Error(t, err)
			assert.True(t, httperr.IsUpstream(err))
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message)
			}
		})
	}
}

func TestList_Unreachable(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", time.Second)

	_, err := c.ListPayments(context.Background())
	require.Error(t, err)
	assert.True(t, httperr.IsUpstream(err))
}
