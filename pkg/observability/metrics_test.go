package observability_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/medcalc"
	"github.com/aretw0/medcalc/pkg/domain"
	"github.com/aretw0/medcalc/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordsRuns(t *testing.T) {
	m := observability.NewMetrics(nil)
	svc := medcalc.New(medcalc.WithDispatchHooks(m.Hooks()))
	ctx := context.Background()

	payload := map[string]any{"Heart Rate or Pulse": 60, "QT interval": 400}
	for i := 0; i < 3; i++ {
		_, err := svc.Run(ctx, "qtc-bazett-calculator", payload)
		require.NoError(t, err)
	}
	_, err := svc.Run(ctx, "qtc-bazett-calculator", map[string]any{"Heart Rate or Pulse": 60})
	require.Error(t, err)

	n, err := testutil.GatherAndCount(m.Registry(), "medcalc_calculator_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	expected := `
# HELP medcalc_calculator_runs_total Total number of calculator runs by outcome
# TYPE medcalc_calculator_runs_total counter
medcalc_calculator_runs_total{outcome="missing_input",slug="qtc-bazett-calculator"} 1
medcalc_calculator_runs_total{outcome="ok",slug="qtc-bazett-calculator"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "medcalc_calculator_runs_total"))

	resolves := `
# HELP medcalc_resolutions_total Implementation lookups by cache hit and result
# TYPE medcalc_resolutions_total counter
medcalc_resolutions_total{cache_hit="false",ok="true"} 1
medcalc_resolutions_total{cache_hit="true",ok="true"} 3
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(resolves), "medcalc_resolutions_total"))
}

func TestMetrics_Handler(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.Hooks().OnExecute(context.Background(), &domain.ExecuteEvent{
		Slug:     "body-mass-index-bmi",
		Duration: 2 * time.Millisecond,
		Outcome:  domain.OutcomeOK,
	})

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `medcalc_calculator_runs_total{outcome="ok",slug="body-mass-index-bmi"} 1`)
}
