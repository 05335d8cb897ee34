package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveOperation(t *testing.T) {
	m := New()
	m.ObserveOperation("send_sol", ResultSuccess)
	m.ObserveOperation("send_sol", ResultSuccess)
	m.ObserveOperation("send_sol", "InvalidPublicKey")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.operations.WithLabelValues("send_sol", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operations.WithLabelValues("send_sol", "InvalidPublicKey")))
}

func TestHandler_ExposesCounters(t *testing.T) {
	m := New()
	m.ObserveInstruction("11111111111111111111111111111111", "system_transfer")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `solana_api_instructions_total{instruction="system_transfer",program="11111111111111111111111111111111"} 1`)
}
