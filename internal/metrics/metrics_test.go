package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveRPC("/billsplit.v1.FormService/Submit", "ok", 3*time.Millisecond)
	m.ObserveRPC("/billsplit.v1.FormService/Submit", "ok", 5*time.Millisecond)
	m.ObserveRPC("/billsplit.v1.FormService/GetForm", "not_found", time.Millisecond)
	m.ObserveSubmit(true)
	m.ObserveSubmit(false)
	m.ObserveSubmit(false)
	m.ObserveCalculation()

	if got := testutil.ToFloat64(m.rpcRequests.WithLabelValues("/billsplit.v1.FormService/Submit", "ok")); got != 2 {
		t.Errorf("rpc_requests_total{Submit,ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.formSubmits.WithLabelValues(ResultRejected)); got != 2 {
		t.Errorf("form_submits_total{rejected} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.calculations); got != 1 {
		t.Errorf("calculations_total = %v, want 1", got)
	}
}

func TestHandler_ExportsSessionGauge(t *testing.T) {
	m := New()
	open := 3
	m.TrackSessions(func() int { return open })

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "billsplit_form_sessions_open 3") {
		t.Errorf("metrics output missing session gauge:\n%s", body)
	}
}
